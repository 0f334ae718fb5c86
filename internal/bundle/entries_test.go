// SPDX-License-Identifier: MPL-2.0

package bundle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mantlekit/mantle/internal/config"
	"github.com/mantlekit/mantle/pkg/resource"
	"github.com/mantlekit/mantle/pkg/theme"
)

func fixture(t *testing.T, features ...theme.Feature) (*config.Config, *theme.Descriptor) {
	t.Helper()
	root := t.TempDir()

	cfg, err := config.Default(root)
	if err != nil {
		t.Fatalf("config.Default() returned error: %v", err)
	}
	th := &theme.Descriptor{
		Name:     "aurora",
		Dir:      filepath.Join(root, config.DefaultThemeDir),
		Features: features,
	}
	return cfg, th
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("export {}\n"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestEntries_AlwaysIncludesMain(t *testing.T) {
	cfg, th := fixture(t)

	entries := Entries(cfg, th)
	if len(entries) != 1 {
		t.Fatalf("entries = %v, want only the main entry", entries)
	}
	if entries[MainEntryKey] != cfg.EntryPointPath() {
		t.Errorf("main entry = %s, want %s", entries[MainEntryKey], cfg.EntryPointPath())
	}
}

func TestEntries_MainPresentEvenWhenFileMissing(t *testing.T) {
	// The entry point's absence is the validator's concern, not an error
	// here.
	cfg, th := fixture(t)

	entries := Entries(cfg, th)
	if _, ok := entries[MainEntryKey]; !ok {
		t.Error("main entry must be present even when the file does not exist")
	}
}

func TestEntries_ThemeDeclaredFeature(t *testing.T) {
	cfg, th := fixture(t, theme.Feature{Name: "code-highlighting", Entry: "features/code-highlighting/index.js"})

	themeEntry := filepath.Join(th.Dir, "features", "code-highlighting", "index.js")
	writeFile(t, themeEntry)

	entries := Entries(cfg, th)
	if entries["code-highlighting"] != themeEntry {
		t.Errorf("feature entry = %s, want %s", entries["code-highlighting"], themeEntry)
	}
}

func TestEntries_DeclaredFeatureMissingOnDisk(t *testing.T) {
	cfg, th := fixture(t, theme.Feature{Name: "ghost", Entry: "features/ghost/index.js"})

	entries := Entries(cfg, th)
	if _, ok := entries["ghost"]; ok {
		t.Error("a declared feature with no entry file should not become an entry")
	}
}

func TestEntries_UserOverrideWins(t *testing.T) {
	cfg, th := fixture(t, theme.Feature{Name: "code-highlighting", Entry: "features/code-highlighting/index.js"})

	writeFile(t, filepath.Join(th.Dir, "features", "code-highlighting", "index.js"))
	userEntry := filepath.Join(cfg.OverrideDir(resource.Feature), "code-highlighting", "index.js")
	writeFile(t, userEntry)

	entries := Entries(cfg, th)
	if len(entries) != 2 {
		t.Fatalf("entries = %v, want main plus one feature", entries)
	}
	if entries["code-highlighting"] != userEntry {
		t.Errorf("feature entry = %s, want the user copy %s", entries["code-highlighting"], userEntry)
	}
}

func TestEntries_UndeclaredUserFeatureIsAdded(t *testing.T) {
	cfg, th := fixture(t)

	userEntry := filepath.Join(cfg.OverrideDir(resource.Feature), "analytics", "index.ts")
	writeFile(t, userEntry)

	entries := Entries(cfg, th)
	if entries["analytics"] != userEntry {
		t.Errorf("undeclared user feature entry = %s, want %s", entries["analytics"], userEntry)
	}
}

func TestEntries_UserFolderWithoutEntryFileIgnored(t *testing.T) {
	cfg, th := fixture(t)

	writeFile(t, filepath.Join(cfg.OverrideDir(resource.Feature), "notes", "README.md"))

	entries := Entries(cfg, th)
	if _, ok := entries["notes"]; ok {
		t.Error("a feature folder without a recognized entry file should be ignored")
	}
}

func TestEntries_MainIsReserved(t *testing.T) {
	cfg, th := fixture(t, theme.Feature{Name: "main", Entry: "features/main/index.js"})

	writeFile(t, filepath.Join(th.Dir, "features", "main", "index.js"))
	writeFile(t, filepath.Join(cfg.OverrideDir(resource.Feature), "main", "index.js"))

	entries := Entries(cfg, th)
	if entries[MainEntryKey] != cfg.EntryPointPath() {
		t.Errorf("a feature named main must not clobber the fixed entry; got %s", entries[MainEntryKey])
	}
	if len(entries) != 1 {
		t.Errorf("entries = %v, want the reserved collision to be skipped", entries)
	}
}
