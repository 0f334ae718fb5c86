// SPDX-License-Identifier: MPL-2.0

package render

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mantlekit/mantle/internal/cascade"
	"github.com/mantlekit/mantle/internal/config"
	"github.com/mantlekit/mantle/pkg/resource"
	"github.com/mantlekit/mantle/pkg/theme"
)

// ThemePrefix is the reserved name prefix that forces resolution directly
// against the theme package, bypassing the cascade.
const ThemePrefix = "theme:"

// Loader resolves template names through the cascade. It holds only
// immutable configuration; every lookup re-probes the filesystem.
type Loader struct {
	userRoots  []string
	themeRoots []string
}

// NewLoader builds a Loader for the given configuration and theme. Search
// root order is fixed: the user's template override root, the user's partial
// override root, then the theme's template and partial roots.
func NewLoader(cfg *config.Config, th *theme.Descriptor) *Loader {
	return &Loader{
		userRoots: []string{
			cfg.OverrideDir(resource.Template),
			cfg.OverrideDir(resource.Partial),
		},
		themeRoots: []string{
			filepath.Join(th.Dir, resource.Template.ThemeDir()),
			filepath.Join(th.Dir, resource.Partial.ThemeDir()),
		},
	}
}

// SearchRoots returns the ordered root list: every user override root in
// priority order, then the theme roots. Engines that do their own
// first-match lookup can consume this directly.
func (l *Loader) SearchRoots() []string {
	roots := make([]string, 0, len(l.userRoots)+len(l.themeRoots))
	roots = append(roots, l.userRoots...)
	roots = append(roots, l.themeRoots...)
	return roots
}

// Lookup resolves a template name to the winning absolute path. Names with
// the ThemePrefix are resolved against the theme roots only; all other
// names walk the full search-root list in order. A name found nowhere
// yields an *fs.PathError wrapping fs.ErrNotExist, matching what a template
// engine's own loader would report.
func (l *Loader) Lookup(name string) (string, error) {
	roots := l.SearchRoots()
	lookupName := name
	if stripped, ok := strings.CutPrefix(name, ThemePrefix); ok {
		roots = l.themeRoots
		lookupName = stripped
	}

	clean, err := cascade.CleanName(lookupName)
	if err != nil {
		return "", &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}

	native := filepath.FromSlash(clean)
	for _, root := range roots {
		candidate := filepath.Join(root, native)
		if info, statErr := os.Stat(candidate); statErr == nil && info.Mode().IsRegular() {
			return candidate, nil
		}
	}
	return "", &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}

// Open implements fs.FS over the cascade, so template.ParseFS and friends
// perform first-match lookup across the search roots transparently.
// Template-not-found errors from the engine propagate unchanged.
func (l *Loader) Open(name string) (fs.File, error) {
	path, err := l.Lookup(name)
	if err != nil {
		return nil, err
	}
	return os.Open(path)
}
