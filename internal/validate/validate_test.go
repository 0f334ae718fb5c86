// SPDX-License-Identifier: MPL-2.0

package validate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mantlekit/mantle/internal/config"
)

// projectFixture creates a project with a minimal valid theme installed at
// the conventional location and returns its configuration.
func projectFixture(t *testing.T, descriptor string) *config.Config {
	t.Helper()
	root := t.TempDir()

	cfg, err := config.Load(root)
	if err != nil {
		t.Fatalf("config.Load() returned error: %v", err)
	}

	if descriptor != "" {
		themeDir := cfg.ThemePath()
		if err := os.MkdirAll(themeDir, 0o755); err != nil {
			t.Fatalf("mkdir theme: %v", err)
		}
		if err := os.WriteFile(filepath.Join(themeDir, "theme.json"), []byte(descriptor), 0o644); err != nil {
			t.Fatalf("write theme.json: %v", err)
		}
	}
	return cfg
}

func writeProjectFile(t *testing.T, cfg *config.Config, rel, content string) {
	t.Helper()
	path := filepath.Join(cfg.ProjectRoot(), filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func findingCodes(findings []Finding) []string {
	codes := make([]string, len(findings))
	for i, f := range findings {
		codes[i] = f.Code
	}
	return codes
}

func hasCode(findings []Finding, code string) bool {
	for _, f := range findings {
		if f.Code == code {
			return true
		}
	}
	return false
}

func TestRun_MissingThemeShortCircuits(t *testing.T) {
	cfg := projectFixture(t, "")

	rep := Run(cfg)
	if rep.IsValid() {
		t.Error("a missing theme must make the report invalid")
	}
	if len(rep.Errors) != 1 || rep.Errors[0].Code != CodeThemeUnresolvable {
		t.Fatalf("errors = %v, want a single %s", findingCodes(rep.Errors), CodeThemeUnresolvable)
	}
	// Short-circuit: no further checks ran, so no warnings either.
	if len(rep.Warnings) != 0 {
		t.Errorf("warnings = %v, want none after short-circuit", findingCodes(rep.Warnings))
	}
}

func TestRun_HealthyProjectIsValid(t *testing.T) {
	cfg := projectFixture(t, `{"name": "aurora"}`)
	writeProjectFile(t, cfg, "src/main.js", "console.log('hi')\n")

	rep := Run(cfg)
	if !rep.IsValid() {
		t.Errorf("report invalid, errors = %v", findingCodes(rep.Errors))
	}
	// Missing recommended override dirs are warnings, not errors.
	if !hasCode(rep.Warnings, CodeOverrideDirMissing) {
		t.Errorf("warnings = %v, want %s entries", findingCodes(rep.Warnings), CodeOverrideDirMissing)
	}
}

func TestRun_IsValidIgnoresWarningCount(t *testing.T) {
	cfg := projectFixture(t, `{"name": "aurora"}`)
	// No entry point, no override dirs, deprecated config present: plenty of
	// warnings, zero errors.
	writeProjectFile(t, cfg, config.LegacyConfigFileName, "old settings\n")

	rep := Run(cfg)
	if len(rep.Warnings) == 0 {
		t.Fatal("fixture should produce warnings")
	}
	if !rep.IsValid() {
		t.Errorf("warnings must never affect validity; errors = %v", findingCodes(rep.Errors))
	}
}

func TestRun_DeclaredFeatureWithoutEntryIsError(t *testing.T) {
	cfg := projectFixture(t, `{
		"name": "aurora",
		"features": [{"name": "code-highlighting", "entry": "features/code-highlighting/index.js"}]
	}`)

	rep := Run(cfg)
	if rep.IsValid() {
		t.Error("a declared feature with no entry anywhere must be a hard error")
	}
	if !hasCode(rep.Errors, CodeFeatureEntryMissing) {
		t.Errorf("errors = %v, want %s", findingCodes(rep.Errors), CodeFeatureEntryMissing)
	}
}

func TestRun_UserOverrideSatisfiesDeclaredFeature(t *testing.T) {
	cfg := projectFixture(t, `{
		"name": "aurora",
		"features": [{"name": "code-highlighting", "entry": "features/code-highlighting/index.js"}]
	}`)
	writeProjectFile(t, cfg, "features/code-highlighting/index.js", "export {}\n")

	rep := Run(cfg)
	if hasCode(rep.Errors, CodeFeatureEntryMissing) {
		t.Errorf("a user override should satisfy the declared feature; errors = %v", findingCodes(rep.Errors))
	}
}

func TestRun_EntryPointWarnings(t *testing.T) {
	t.Run("missing entry point", func(t *testing.T) {
		cfg := projectFixture(t, `{"name": "aurora"}`)
		rep := Run(cfg)
		if !hasCode(rep.Warnings, CodeEntryPointMissing) {
			t.Errorf("warnings = %v, want %s", findingCodes(rep.Warnings), CodeEntryPointMissing)
		}
	})

	t.Run("legacy manual import", func(t *testing.T) {
		cfg := projectFixture(t, `{"name": "aurora"}`)
		writeProjectFile(t, cfg, "src/main.js", `import "mantle/features/code-highlighting"`+"\n")
		rep := Run(cfg)
		if !hasCode(rep.Warnings, CodeLegacyManualImport) {
			t.Errorf("warnings = %v, want %s", findingCodes(rep.Warnings), CodeLegacyManualImport)
		}
		if hasCode(rep.Warnings, CodeEntryPointMissing) {
			t.Error("an existing entry point must not also warn as missing")
		}
	})
}

func TestRun_DeprecatedConfigWarning(t *testing.T) {
	cfg := projectFixture(t, `{"name": "aurora"}`)
	writeProjectFile(t, cfg, config.LegacyConfigFileName, "ignored\n")

	rep := Run(cfg)
	if !hasCode(rep.Warnings, CodeDeprecatedConfig) {
		t.Errorf("warnings = %v, want %s", findingCodes(rep.Warnings), CodeDeprecatedConfig)
	}
}

func TestRun_MisconfiguredOverrideWarning(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "mantle.yaml"),
		[]byte("overrides:\n  templates: ../outside\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := config.Load(root)
	if err != nil {
		t.Fatalf("config.Load() returned error: %v", err)
	}
	if err := os.MkdirAll(cfg.ThemePath(), 0o755); err != nil {
		t.Fatalf("mkdir theme: %v", err)
	}
	if err := os.WriteFile(filepath.Join(cfg.ThemePath(), "theme.json"), []byte(`{"name":"aurora"}`), 0o644); err != nil {
		t.Fatalf("write theme.json: %v", err)
	}

	rep := Run(cfg)
	if !hasCode(rep.Warnings, CodeMisconfiguredPath) {
		t.Errorf("warnings = %v, want %s", findingCodes(rep.Warnings), CodeMisconfiguredPath)
	}
	if !rep.IsValid() {
		t.Error("a misconfigured override path is a warning, not an error")
	}
}

func TestRun_PresentOverrideDirsNotWarned(t *testing.T) {
	cfg := projectFixture(t, `{"name": "aurora"}`)
	writeProjectFile(t, cfg, "_templates/.keep", "")

	rep := Run(cfg)
	for _, f := range rep.Warnings {
		if f.Code == CodeOverrideDirMissing && f.Path == filepath.Join(cfg.ProjectRoot(), "_templates") {
			t.Error("an existing override directory should not be warned about")
		}
	}
}
