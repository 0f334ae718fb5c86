// SPDX-License-Identifier: MPL-2.0

package cascade

import (
	"errors"
	"fmt"
	"os"

	"github.com/mantlekit/mantle/internal/config"
	"github.com/mantlekit/mantle/pkg/resource"
	"github.com/mantlekit/mantle/pkg/theme"
)

// ErrNotFound is the sentinel error wrapped by NotFoundError.
var ErrNotFound = errors.New("resource not found")

// NotFoundError is returned by ResolveStrict when a resource exists in
// neither location. It lists both checked paths so the user can see exactly
// where the engine looked.
type NotFoundError struct {
	// Type is the requested resource type.
	Type resource.Type
	// Name is the requested resource name.
	Name string
	// UserPath and ThemePath are the two locations that were checked.
	UserPath  string
	ThemePath string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf(
		"%s resource %q not found; checked:\n"+
			"  - %s (content repository override)\n"+
			"  - %s (theme package)\n\n"+
			"Create the file at the first path to supply your own copy, or pick a\n"+
			"name the theme provides ('mantle list %s' shows every known name).",
		e.Type, e.Name, e.UserPath, e.ThemePath, e.Type)
}

// Unwrap returns ErrNotFound for errors.Is() compatibility.
func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// Resolve resolves one named resource with user-over-theme priority: the
// user path is probed first and wins outright when present; otherwise the
// theme path is probed. Resolution is whole-file, never content-merged.
//
// A resource present in neither location yields (nil, nil); strict callers
// that want an error should use ResolveStrict.
func Resolve(t resource.Type, name string, cfg *config.Config, th *theme.Descriptor) (*resource.Resolved, error) {
	cand, err := Paths(t, name, cfg, th)
	if err != nil {
		return nil, err
	}

	if fileExists(cand.UserPath) {
		return &resource.Resolved{Path: cand.UserPath, Source: resource.SourceUser}, nil
	}
	if fileExists(cand.ThemePath) {
		return &resource.Resolved{Path: cand.ThemePath, Source: resource.SourceTheme}, nil
	}
	return nil, nil
}

// ResolveStrict is Resolve with throw-on-missing semantics: a resource
// absent from both locations yields a NotFoundError naming both checked
// paths.
func ResolveStrict(t resource.Type, name string, cfg *config.Config, th *theme.Descriptor) (*resource.Resolved, error) {
	cand, err := Paths(t, name, cfg, th)
	if err != nil {
		return nil, err
	}

	if fileExists(cand.UserPath) {
		return &resource.Resolved{Path: cand.UserPath, Source: resource.SourceUser}, nil
	}
	if fileExists(cand.ThemePath) {
		return &resource.Resolved{Path: cand.ThemePath, Source: resource.SourceTheme}, nil
	}
	return nil, &NotFoundError{
		Type:      t,
		Name:      name,
		UserPath:  cand.UserPath,
		ThemePath: cand.ThemePath,
	}
}

// fileExists reports whether path names an existing regular file. Stat
// errors (permission, dangling symlink) count as absent: the cascade favors
// tolerance of unreadable conventional locations over strict I/O error
// surfacing.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
