// SPDX-License-Identifier: MPL-2.0

package cascade

import (
	"os"
	"path/filepath"

	"github.com/mantlekit/mantle/internal/config"
	"github.com/mantlekit/mantle/pkg/resource"
	"github.com/mantlekit/mantle/pkg/theme"
)

// Filter selects resource names during a scan. A nil Filter accepts
// everything.
type Filter func(name string) bool

// Scan enumerates a flat resource set with provenance. The theme directory
// is listed first (every entry tagged theme), then the user override
// directory (new entries tagged user, collisions promoted to override with
// the user path winning). Merge order of entries within a pass does not
// affect the result.
//
// A missing or unreadable directory on either side contributes zero entries;
// Scan never fails.
func Scan(t resource.Type, cfg *config.Config, th *theme.Descriptor, filter Filter) resource.Catalog {
	catalog := resource.Catalog{}

	themeDir := filepath.Join(th.Dir, t.ThemeDir())
	for _, name := range listFiles(themeDir, filter) {
		catalog.AddTheme(name, filepath.Join(themeDir, name))
	}

	userDir := cfg.OverrideDir(t)
	for _, name := range listFiles(userDir, filter) {
		catalog.AddUser(name, filepath.Join(userDir, name))
	}

	return catalog
}

// listFiles returns the regular-file entries of dir that pass the filter.
// Any read error degrades to an empty listing.
func listFiles(dir string, filter Filter) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filter != nil && !filter(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	return names
}
