// SPDX-License-Identifier: MPL-2.0

// Package issue holds the user-facing remediation messages for the known
// failure modes of the engine. Each Issue pairs a stable Id with a markdown
// message that the CLI renders via glamour, so a failed resolution or an
// uninstalled theme comes with concrete next steps instead of a bare error
// string. Discoverability is a first-class goal of this layer.
package issue
