// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/mantlekit/mantle/pkg/resource"
)

const (
	// ConfigFileName is the config file name (without extension) looked up
	// at the project root. Viper resolves the extension, so mantle.yaml,
	// mantle.toml, and mantle.json all work.
	ConfigFileName = "mantle"

	// LegacyConfigFileName is the pre-1.0 rc-style config file. Its presence
	// is reported as a deprecation warning by the validator; it is never read.
	LegacyConfigFileName = ".mantlerc"

	// DefaultThemeDir is the conventional theme install location, relative
	// to the project root.
	DefaultThemeDir = "theme"

	// DefaultEntryPoint is the conventional bundler main entry point,
	// relative to the project root.
	DefaultEntryPoint = "src/main.js"
)

// Misconfigured records an override directory value that was rejected
// because it would escape the project root. The value is flagged, never
// followed; resolution uses the conventional default instead.
type Misconfigured struct {
	// Type is the resource type whose override directory was rejected.
	Type resource.Type
	// Value is the offending configured value.
	Value string
}

// Config is the immutable per-run override configuration. Construct it with
// Load or Default; the zero value is not usable.
type Config struct {
	projectRoot   string
	themeDir      string
	entryPoint    string
	overrides     map[resource.Type]string
	misconfigured []Misconfigured
}

// Default returns the framework-default configuration rooted at projectRoot,
// as if no config file existed.
func Default(projectRoot string) (*Config, error) {
	return build(projectRoot, DefaultThemeDir, DefaultEntryPoint, nil)
}

// Load reads mantle.{yaml,toml,json} from the project root, applying
// framework defaults for anything unset. A missing config file is not an
// error; an unreadable or malformed one is.
func Load(projectRoot string) (*Config, error) {
	absRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("resolving project root: %w", err)
	}

	v := viper.New()
	v.SetConfigName(ConfigFileName)
	v.AddConfigPath(absRoot)

	v.SetDefault("theme", DefaultThemeDir)
	v.SetDefault("entry_point", DefaultEntryPoint)
	for _, t := range resource.Types() {
		v.SetDefault("overrides."+t.String(), t.DefaultOverrideDir())
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading mantle config: %w", err)
		}
	}

	overrides := make(map[resource.Type]string, len(resource.Types()))
	for _, t := range resource.Types() {
		overrides[t] = v.GetString("overrides." + t.String())
	}

	return build(absRoot, v.GetString("theme"), v.GetString("entry_point"), overrides)
}

// build validates the override directory mapping and freezes the Config.
func build(projectRoot, themeDir, entryPoint string, overrides map[resource.Type]string) (*Config, error) {
	absRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("resolving project root: %w", err)
	}

	cfg := &Config{
		projectRoot: absRoot,
		themeDir:    themeDir,
		entryPoint:  entryPoint,
		overrides:   make(map[resource.Type]string, len(resource.Types())),
	}

	for _, t := range resource.Types() {
		raw, ok := overrides[t]
		if !ok || raw == "" {
			raw = t.DefaultOverrideDir()
		}
		dir, safe := sanitizeOverrideDir(raw)
		if !safe {
			cfg.misconfigured = append(cfg.misconfigured, Misconfigured{Type: t, Value: raw})
			dir = t.DefaultOverrideDir()
		}
		cfg.overrides[t] = dir
	}

	return cfg, nil
}

// sanitizeOverrideDir cleans a configured override directory and rejects
// values that would resolve outside the project root: absolute paths and
// paths beginning with a ".." segment.
func sanitizeOverrideDir(dir string) (string, bool) {
	cleaned := filepath.Clean(filepath.FromSlash(dir))
	if filepath.IsAbs(cleaned) {
		return "", false
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", false
	}
	return cleaned, true
}

// ProjectRoot returns the absolute project root directory.
func (c *Config) ProjectRoot() string { return c.projectRoot }

// ThemePath returns the absolute theme package install location. A relative
// configured value resolves against the project root; an absolute one is
// used as-is (themes may be installed outside the repository, e.g. from a
// package manager's store).
func (c *Config) ThemePath() string {
	if filepath.IsAbs(c.themeDir) {
		return filepath.Clean(c.themeDir)
	}
	return filepath.Join(c.projectRoot, c.themeDir)
}

// EntryPoint returns the bundler main entry point relative to the project
// root, as configured.
func (c *Config) EntryPoint() string { return c.entryPoint }

// EntryPointPath returns the absolute path of the bundler main entry point.
func (c *Config) EntryPointPath() string {
	return filepath.Join(c.projectRoot, filepath.FromSlash(c.entryPoint))
}

// OverrideDir returns the absolute override directory for a resource type.
// The returned path is always inside the project root.
func (c *Config) OverrideDir(t resource.Type) string {
	return filepath.Join(c.projectRoot, c.overrides[t])
}

// Misconfigured returns the override directory values rejected during
// construction, in resource type order.
func (c *Config) Misconfigured() []Misconfigured {
	out := make([]Misconfigured, len(c.misconfigured))
	copy(out, c.misconfigured)
	return out
}

// LegacyConfigPath returns where the deprecated rc-style config file would
// live if present.
func (c *Config) LegacyConfigPath() string {
	return filepath.Join(c.projectRoot, LegacyConfigFileName)
}
