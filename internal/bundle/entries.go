// SPDX-License-Identifier: MPL-2.0

package bundle

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/mantlekit/mantle/internal/config"
	"github.com/mantlekit/mantle/pkg/resource"
	"github.com/mantlekit/mantle/pkg/theme"
)

// MainEntryKey is the reserved key for the content repository's own script
// entry point. It is always present in the entry map, and no feature may
// claim it: a feature literally named "main" is skipped with a warning
// rather than silently clobbering the user's entry point.
const MainEntryKey = "main"

// entryFileNames are the recognized entry files inside a user feature
// folder, probed in order.
var entryFileNames = []string{"index.js", "index.ts"}

// Entries builds the bundler entry map: MainEntryKey mapped to the
// configured entry point (whose absence is the validator's concern, not an
// error here), plus one entry per feature.
//
// A theme-declared feature contributes its entry only when the file exists
// on disk; a same-named user feature folder with a recognized entry file
// overrides it. User feature folders the theme never declared become
// additional entries.
func Entries(cfg *config.Config, th *theme.Descriptor) map[string]string {
	entries := map[string]string{
		MainEntryKey: cfg.EntryPointPath(),
	}

	for _, f := range th.Features {
		if userEntry, ok := userFeatureEntry(cfg, f.Name); ok {
			addEntry(entries, f.Name, userEntry)
			continue
		}
		themeEntry := th.FeatureEntryPath(f)
		if fileExists(themeEntry) {
			addEntry(entries, f.Name, themeEntry)
		}
	}

	for _, name := range userFeatureNames(cfg) {
		if _, claimed := entries[name]; claimed && name != MainEntryKey {
			continue
		}
		if userEntry, ok := userFeatureEntry(cfg, name); ok {
			addEntry(entries, name, userEntry)
		}
	}

	return entries
}

// addEntry inserts an entry unless the key is reserved.
func addEntry(entries map[string]string, name, path string) {
	if name == MainEntryKey {
		log.Warn("feature name is reserved for the script entry point; skipping",
			"feature", name, "path", path)
		return
	}
	entries[name] = path
}

// userFeatureEntry probes the user's feature override folder for a
// recognized entry file.
func userFeatureEntry(cfg *config.Config, name string) (string, bool) {
	dir := filepath.Join(cfg.OverrideDir(resource.Feature), name)
	for _, entryFile := range entryFileNames {
		candidate := filepath.Join(dir, entryFile)
		if fileExists(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// userFeatureNames lists the subfolders of the user's feature override
// directory. A missing or unreadable directory yields none.
func userFeatureNames(cfg *config.Config) []string {
	entries, err := os.ReadDir(cfg.OverrideDir(resource.Feature))
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names
}

// fileExists reports whether path names an existing regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
