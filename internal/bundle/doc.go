// SPDX-License-Identifier: MPL-2.0

// Package bundle turns discovered feature bundles into entry points for an
// external script/style bundler.
//
// The engine never invokes the bundler. It only answers the question "which
// entry files exist, and under which keys": a fixed "main" entry for the
// content repository's own script entry point, plus one entry per feature,
// resolved through the override cascade so a user's copy of a feature wins
// over the theme's.
package bundle
