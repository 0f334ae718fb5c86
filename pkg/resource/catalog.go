// SPDX-License-Identifier: MPL-2.0

package resource

import (
	"maps"
	"slices"
)

// Catalog maps a resource name (or a slash-relative path for tree-shaped
// resources) to its winning resolution. A catalog is built in two passes:
// every theme entry first, then every user entry. The ordered build plus the
// promote-on-collision rule in AddUser make the merge deterministic, so a
// catalog never holds duplicate names and a name present on the user side is
// never tagged SourceTheme.
type Catalog map[string]Resolved

// AddTheme records a theme-side entry. Theme entries are always added during
// the first pass, before any user entry, so a plain overwrite is safe.
func (c Catalog) AddTheme(name, path string) {
	c[name] = Resolved{Path: path, Source: SourceTheme}
}

// AddUser records a user-side entry. If the name already exists it was
// contributed by the theme pass; the entry is replaced with the user path and
// promoted to SourceOverride. Otherwise it is tagged SourceUser.
func (c Catalog) AddUser(name, path string) {
	if _, exists := c[name]; exists {
		c[name] = Resolved{Path: path, Source: SourceOverride}
		return
	}
	c[name] = Resolved{Path: path, Source: SourceUser}
}

// Names returns the catalog keys in sorted order for deterministic iteration.
func (c Catalog) Names() []string {
	return slices.Sorted(maps.Keys(c))
}
