// SPDX-License-Identifier: MPL-2.0

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mantlekit/mantle/internal/config"
	"github.com/mantlekit/mantle/internal/issue"
	"github.com/mantlekit/mantle/pkg/theme"
)

// loadConfig loads the project configuration for the --root directory.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("loading project configuration: %w", err)
	}
	return cfg, nil
}

// loadEngine loads configuration plus the theme descriptor, the inputs
// every resolution entry point needs. A missing theme gets its remediation
// message rendered before the error propagates.
func loadEngine() (*config.Config, *theme.Descriptor, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	th, err := theme.Load(cfg.ThemePath())
	if err != nil {
		if errors.Is(err, theme.ErrThemeNotInstalled) {
			renderIssue(issue.ThemeNotInstalledId)
		}
		return nil, nil, err
	}
	return cfg, th, nil
}

// fileExists reports whether path names an existing regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// renderIssue prints the remediation message for a known failure mode.
// Rendering failures fall back to the raw markdown; remediation text should
// never be lost to a styling problem.
func renderIssue(id issue.Id) {
	i, ok := issue.Lookup(id)
	if !ok {
		return
	}
	out, err := i.Render("dark")
	if err != nil {
		out = string(i.MarkdownMsg())
	}
	fmt.Fprintln(os.Stderr, out)
}
