// SPDX-License-Identifier: MPL-2.0

package theme

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mantlekit/mantle/pkg/cueutil"
)

//go:embed theme_schema.cue
var themeSchema []byte

// DescriptorFileName is the metadata file expected at the theme package root.
const DescriptorFileName = "theme.json"

// ErrThemeNotInstalled is the sentinel error wrapped by NotInstalledError.
var ErrThemeNotInstalled = errors.New("theme package not installed")

// Feature is one optionally-loaded script/style bundle declared by the theme.
type Feature struct {
	// Name is the feature identifier, used as the bundler entry key.
	Name string `json:"name"`
	// Entry is the entry file path, relative to the theme root, using
	// forward slashes.
	Entry string `json:"entry"`
}

// Descriptor is the parsed, validated content of theme.json plus the install
// location it was read from. It is constructed once per process and never
// mutated; every entry point receives it as an explicit value.
type Descriptor struct {
	// Name is the theme identifier.
	Name string `json:"name"`
	// Version is the theme's semantic version, if declared.
	Version string `json:"version,omitempty"`
	// Description is a one-line summary, if declared.
	Description string `json:"description,omitempty"`
	// Templates are the public template names the theme declares.
	Templates []string `json:"templates,omitempty"`
	// Features are the declared feature bundles.
	Features []Feature `json:"features,omitempty"`

	// Dir is the absolute path of the theme package root. Filled in by Load,
	// never read from theme.json.
	Dir string `json:"-"`
}

// NotInstalledError is returned when the theme package cannot be resolved:
// its directory is missing or holds no theme.json. This is the single fatal
// condition of the engine; validation short-circuits on it and the process
// should abort.
type NotInstalledError struct {
	// Dir is the directory that was probed.
	Dir string
	// Cause is the underlying filesystem error.
	Cause error
}

// Error implements the error interface.
func (e *NotInstalledError) Error() string {
	return fmt.Sprintf(
		"theme package not found at %s\n"+
			"  checked: %s\n\n"+
			"Install a theme into that directory, or point the 'theme' key of\n"+
			"your mantle config file at the theme's install location.",
		e.Dir, filepath.Join(e.Dir, DescriptorFileName))
}

// Unwrap returns ErrThemeNotInstalled for errors.Is() compatibility.
func (e *NotInstalledError) Unwrap() error { return ErrThemeNotInstalled }

// Load reads and validates the descriptor of the theme package rooted at dir.
// A missing directory or missing theme.json yields a NotInstalledError; a
// descriptor that fails schema validation yields a path-qualified parse
// error.
func Load(dir string) (*Descriptor, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving theme directory: %w", err)
	}

	descPath := filepath.Join(absDir, DescriptorFileName)
	data, err := os.ReadFile(descPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotInstalledError{Dir: absDir, Cause: err}
		}
		return nil, fmt.Errorf("reading %s: %w", descPath, err)
	}

	// JSON is a subset of CUE, so the descriptor bytes compile directly
	// against the embedded schema.
	desc, err := cueutil.Decode[Descriptor](themeSchema, data, "#Theme", descPath)
	if err != nil {
		return nil, err
	}

	desc.Dir = absDir
	return desc, nil
}

// Feature returns the declared feature with the given name.
func (d *Descriptor) Feature(name string) (Feature, bool) {
	for _, f := range d.Features {
		if f.Name == name {
			return f, true
		}
	}
	return Feature{}, false
}

// FeatureEntryPath resolves a feature's declared entry path against the
// theme root, converting forward slashes to the native separator.
func (d *Descriptor) FeatureEntryPath(f Feature) string {
	return filepath.Join(d.Dir, filepath.FromSlash(f.Entry))
}
