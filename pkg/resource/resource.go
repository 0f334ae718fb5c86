// SPDX-License-Identifier: MPL-2.0

package resource

import "fmt"

// Type identifies one of the five managed resource classes.
type Type int

const (
	// Template is a full page template, addressed by name.
	Template Type = iota
	// Partial is a template fragment included by other templates.
	Partial
	// Data is a structured data file (JSON, YAML, or TOML).
	Data
	// Feature is a self-contained, optionally-loaded script/style bundle.
	Feature
	// StaticAsset is a file copied through to the output verbatim.
	StaticAsset
)

// Types lists every managed resource type in declaration order.
func Types() []Type {
	return []Type{Template, Partial, Data, Feature, StaticAsset}
}

// String returns the configuration key for the type. It is also used in
// user-facing messages and CLI arguments.
func (t Type) String() string {
	switch t {
	case Template:
		return "templates"
	case Partial:
		return "partials"
	case Data:
		return "data"
	case Feature:
		return "features"
	case StaticAsset:
		return "static"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// ThemeDir returns the canonical theme-relative directory for the type.
// Theme packages are not configurable: a theme that wants to be consumed by
// this engine lays its resources out exactly this way.
func (t Type) ThemeDir() string {
	switch t {
	case Template:
		return "templates"
	case Partial:
		return "templates/partials"
	case Data:
		return "data"
	case Feature:
		return "features"
	case StaticAsset:
		return "static"
	default:
		return ""
	}
}

// DefaultOverrideDir returns the conventional repository-relative override
// directory for the type, used when the project configuration does not remap
// it.
func (t Type) DefaultOverrideDir() string {
	switch t {
	case Template:
		return "_templates"
	case Partial:
		return "_partials"
	case Data:
		return "_data"
	case Feature:
		return "features"
	case StaticAsset:
		return "static"
	default:
		return ""
	}
}

// ParseType converts a configuration key or CLI argument into a Type.
func ParseType(s string) (Type, error) {
	for _, t := range Types() {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown resource type %q (valid: templates, partials, data, features, static)", s)
}

// Source records the provenance of a resolved resource.
type Source int

const (
	// SourceTheme means only the theme package provided the resource.
	SourceTheme Source = iota
	// SourceUser means only the content repository provided the resource.
	SourceUser
	// SourceOverride means both locations provided it and the user copy won.
	SourceOverride
)

// String returns a human-readable source name.
func (s Source) String() string {
	switch s {
	case SourceTheme:
		return "theme"
	case SourceUser:
		return "user"
	case SourceOverride:
		return "override"
	default:
		return "unknown"
	}
}

// Resolved is the outcome of resolving one named resource: the winning
// filesystem path and where it came from. Values are computed fresh on every
// call and never cached, so they always reflect current filesystem state.
type Resolved struct {
	// Path is the absolute path of the winning copy.
	Path string
	// Source is the provenance tag.
	Source Source
}
