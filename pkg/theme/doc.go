// SPDX-License-Identifier: MPL-2.0

// Package theme loads and validates theme package metadata.
//
// A theme package is a versioned directory of default resources (templates,
// data, feature bundles, static assets) plus a theme.json descriptor at its
// root. The descriptor declares the theme's identity, its feature bundles
// (name plus entry path), and its public template names. It is read once per
// process and never written by this system.
//
// theme.json is validated against an embedded CUE schema before use, so a
// malformed descriptor is rejected with a path-qualified error instead of
// surfacing later as a nil-map panic or a silent missing feature.
package theme
