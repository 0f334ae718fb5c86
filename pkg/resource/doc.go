// SPDX-License-Identifier: MPL-2.0

// Package resource defines the resource classes managed by the override
// cascade and the provenance-tagged values produced when they are resolved.
//
// A resource is any file a theme package ships and a content repository may
// replace: templates, partials, data files, feature bundles, and static
// assets. Every resolution records where the winning copy came from (the
// theme, the user, or a user override of a theme default) so that downstream
// tooling can explain its decisions.
package resource
