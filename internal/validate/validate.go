// SPDX-License-Identifier: MPL-2.0

package validate

import (
	"bytes"
	"fmt"
	"os"

	"github.com/mantlekit/mantle/internal/bundle"
	"github.com/mantlekit/mantle/internal/config"
	"github.com/mantlekit/mantle/pkg/resource"
	"github.com/mantlekit/mantle/pkg/theme"
)

// Finding codes. Machine-readable so callers can filter or test without
// string-matching messages.
const (
	CodeThemeUnresolvable   = "theme_unresolvable"
	CodeFeatureEntryMissing = "feature_entry_missing"
	CodeEntryPointMissing   = "entry_point_missing"
	CodeDeprecatedConfig    = "deprecated_config"
	CodeLegacyManualImport  = "legacy_manual_import"
	CodeOverrideDirMissing  = "override_dir_missing"
	CodeMisconfiguredPath   = "misconfigured_override_path"
)

// legacyImportMarker is the manual feature-import idiom from pre-cascade
// framework versions. Feature bundles are discovered automatically now, so
// its presence in the entry point means the feature loads twice.
var legacyImportMarker = []byte("mantle/features/")

// Finding is one validation outcome: a machine-readable code, a
// human-readable message with remediation, and the path it concerns.
type Finding struct {
	Code    string
	Message string
	Path    string
}

// Report is the result of a validation run. Warnings never affect validity.
type Report struct {
	Errors   []Finding
	Warnings []Finding
}

// IsValid reports whether the run produced no hard errors.
func (r *Report) IsValid() bool { return len(r.Errors) == 0 }

// Run probes the project and theme filesystem state and returns a Report.
// An unresolvable theme package is fatal and short-circuits every further
// check, since they would all produce noise against a theme that is not
// there.
func Run(cfg *config.Config) *Report {
	rep := &Report{}

	th, err := theme.Load(cfg.ThemePath())
	if err != nil {
		rep.Errors = append(rep.Errors, Finding{
			Code:    CodeThemeUnresolvable,
			Message: err.Error(),
			Path:    cfg.ThemePath(),
		})
		return rep
	}

	checkFeatureEntries(rep, cfg, th)
	checkEntryPoint(rep, cfg)
	checkDeprecatedConfig(rep, cfg)
	checkOverrideDirs(rep, cfg)
	checkMisconfigured(rep, cfg)

	return rep
}

// checkFeatureEntries errors on every theme-declared feature whose entry
// file exists neither in the theme package nor as a user override. A
// declared feature is a promise to the bundler; a missing entry breaks the
// production build much later with a far worse message.
func checkFeatureEntries(rep *Report, cfg *config.Config, th *theme.Descriptor) {
	entries := bundle.Entries(cfg, th)
	for _, f := range th.Features {
		if _, ok := entries[f.Name]; ok {
			continue
		}
		rep.Errors = append(rep.Errors, Finding{
			Code: CodeFeatureEntryMissing,
			Message: fmt.Sprintf(
				"theme declares feature %q but its entry file %q is missing from both the theme and your overrides; "+
					"reinstall the theme or remove the feature from theme.json", f.Name, f.Entry),
			Path: th.FeatureEntryPath(f),
		})
	}
}

// checkEntryPoint warns when the recommended script entry point is absent.
// The bundler will emit an empty main bundle, which is usually not what the
// user meant.
func checkEntryPoint(rep *Report, cfg *config.Config) {
	path := cfg.EntryPointPath()
	data, err := os.ReadFile(path)
	if err != nil {
		rep.Warnings = append(rep.Warnings, Finding{
			Code: CodeEntryPointMissing,
			Message: fmt.Sprintf(
				"script entry point %q not found; create it (or set 'entry_point' in your mantle config) to get a main bundle",
				cfg.EntryPoint()),
			Path: path,
		})
		return
	}

	if bytes.Contains(data, legacyImportMarker) {
		rep.Warnings = append(rep.Warnings, Finding{
			Code: CodeLegacyManualImport,
			Message: fmt.Sprintf(
				"entry point imports feature bundles manually (found %q); features are discovered automatically now, remove the import to avoid double-loading",
				string(legacyImportMarker)),
			Path: path,
		})
	}
}

// checkDeprecatedConfig warns when the pre-1.0 rc-style config file is
// present. It is never read, which surprises users who edit it.
func checkDeprecatedConfig(rep *Report, cfg *config.Config) {
	path := cfg.LegacyConfigPath()
	if _, err := os.Stat(path); err != nil {
		return
	}
	rep.Warnings = append(rep.Warnings, Finding{
		Code: CodeDeprecatedConfig,
		Message: fmt.Sprintf(
			"%s is no longer read; move its settings into %s.yaml and delete it",
			config.LegacyConfigFileName, config.ConfigFileName),
		Path: path,
	})
}

// checkOverrideDirs warns per resource type whose recommended override
// directory does not exist. Purely advisory: a project that overrides
// nothing is fine, but a user who mistyped a directory name gets pointed at
// the convention.
func checkOverrideDirs(rep *Report, cfg *config.Config) {
	for _, t := range resource.Types() {
		dir := cfg.OverrideDir(t)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			continue
		}
		rep.Warnings = append(rep.Warnings, Finding{
			Code:    CodeOverrideDirMissing,
			Message: fmt.Sprintf("no %s override directory; create %s to override theme %s", t, dir, t),
			Path:    dir,
		})
	}
}

// checkMisconfigured surfaces override directory values the configuration
// layer rejected because they escape the project root. The values were
// never followed; this warning is the only trace of them.
func checkMisconfigured(rep *Report, cfg *config.Config) {
	for _, m := range cfg.Misconfigured() {
		rep.Warnings = append(rep.Warnings, Finding{
			Code: CodeMisconfiguredPath,
			Message: fmt.Sprintf(
				"configured override directory %q for %s escapes the project root; using the default %q instead",
				m.Value, m.Type, m.Type.DefaultOverrideDir()),
			Path: m.Value,
		})
	}
}
