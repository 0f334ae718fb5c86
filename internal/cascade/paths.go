// SPDX-License-Identifier: MPL-2.0

package cascade

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/mantlekit/mantle/internal/config"
	"github.com/mantlekit/mantle/pkg/resource"
	"github.com/mantlekit/mantle/pkg/theme"
)

// ErrUnsafeName is the sentinel error wrapped by UnsafeNameError.
var ErrUnsafeName = errors.New("unsafe resource name")

// UnsafeNameError is returned when a resource name would escape its resource
// root: empty names, absolute names, and names with a ".." segment.
type UnsafeNameError struct {
	Name string
}

// Error implements the error interface.
func (e *UnsafeNameError) Error() string {
	return fmt.Sprintf("resource name %q is not a clean relative path", e.Name)
}

// Unwrap returns ErrUnsafeName for errors.Is() compatibility.
func (e *UnsafeNameError) Unwrap() error { return ErrUnsafeName }

// Candidate holds the two locations a named resource may live at. The user
// path always outranks the theme path.
type Candidate struct {
	// UserPath is the would-be location in the content repository's
	// override directory.
	UserPath string
	// ThemePath is the would-be location in the theme package.
	ThemePath string
}

// Paths computes both candidate locations for a named resource. It is pure
// path arithmetic: no filesystem access, and therefore no statement about
// whether either candidate exists.
func Paths(t resource.Type, name string, cfg *config.Config, th *theme.Descriptor) (Candidate, error) {
	clean, err := CleanName(name)
	if err != nil {
		return Candidate{}, err
	}

	native := filepath.FromSlash(clean)
	return Candidate{
		UserPath:  filepath.Join(cfg.OverrideDir(t), native),
		ThemePath: filepath.Join(th.Dir, t.ThemeDir(), native),
	}, nil
}

// CleanName normalizes a resource name to a clean slash-separated relative
// path and rejects names that would escape the resource root.
func CleanName(name string) (string, error) {
	if name == "" {
		return "", &UnsafeNameError{Name: name}
	}

	clean := path.Clean(filepath.ToSlash(name))
	if path.IsAbs(clean) || clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", &UnsafeNameError{Name: name}
	}
	return clean, nil
}
