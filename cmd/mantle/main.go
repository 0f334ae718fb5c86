// SPDX-License-Identifier: MPL-2.0

// Command mantle is the CLI surface of the override-resolution engine: it
// validates a project against its theme package, explains which copy of any
// resource wins and why, and re-checks on file changes during development.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"

	// projectRoot is the project directory commands operate on.
	projectRoot string

	rootCmd = &cobra.Command{
		Use:   "mantle",
		Short: "Convention-based theme override resolution",
		Long: TitleStyle.Render("mantle") + SubtitleStyle.Render(" - convention-based theme override resolution") + `

mantle resolves every resource request against two locations: the installed
theme package (defaults) and this content repository (overrides). The user
copy always wins, and every answer carries provenance: theme, user, or
override.

` + SubtitleStyle.Render("Examples:") + `
  mantle validate               Check theme installation and conventions
  mantle resolve templates post Show which copy of "post" wins and why
  mantle list static            List every static asset with provenance
  mantle features               Show the bundler entry map
  mantle data                   Show the merged data catalog
  mantle watch                  Re-validate whenever sources change`,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&projectRoot, "root", "C", ".", "project root directory")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(featuresCmd)
	rootCmd.AddCommand(dataCmd)
	rootCmd.AddCommand(watchCmd)
}

func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

func main() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
