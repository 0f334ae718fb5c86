// SPDX-License-Identifier: MPL-2.0

package cascade

import (
	"os"
	"path/filepath"

	"github.com/mantlekit/mantle/internal/config"
	"github.com/mantlekit/mantle/pkg/resource"
	"github.com/mantlekit/mantle/pkg/theme"
)

// ScanTree is Scan for tree-structured resources (static assets, nested
// data). Catalog keys are slash-relative paths below the resource root, so
// the relative structure is preserved regardless of traversal order. The
// same theme-pass-then-user-pass merge applies: a user file at the same
// relative path replaces the theme file and is tagged override.
//
// Unreadable subdirectories contribute nothing from that branch. Symlink
// cycles are not guarded against.
func ScanTree(t resource.Type, cfg *config.Config, th *theme.Descriptor, filter Filter) resource.Catalog {
	catalog := resource.Catalog{}

	walkTree(filepath.Join(th.Dir, t.ThemeDir()), filter, catalog.AddTheme)
	walkTree(cfg.OverrideDir(t), filter, catalog.AddUser)

	return catalog
}

// walkTree visits every regular file under root depth-first, calling visit
// with the slash-relative path and the absolute path. An explicit stack of
// (absolute dir, relative prefix) pairs is used instead of recursion so a
// pathological tree cannot exhaust the call stack.
func walkTree(root string, filter Filter, visit func(rel, abs string)) {
	type frame struct {
		abs string
		rel string
	}

	stack := []frame{{abs: root, rel: ""}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(f.abs)
		if err != nil {
			// Missing root or unreadable branch: no entries from here.
			continue
		}

		for _, entry := range entries {
			abs := filepath.Join(f.abs, entry.Name())
			rel := entry.Name()
			if f.rel != "" {
				rel = f.rel + "/" + entry.Name()
			}

			if entry.IsDir() {
				stack = append(stack, frame{abs: abs, rel: rel})
				continue
			}
			if filter != nil && !filter(rel) {
				continue
			}
			visit(rel, abs)
		}
	}
}
