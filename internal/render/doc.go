// SPDX-License-Identifier: MPL-2.0

// Package render adapts the override cascade to template-engine lookup.
//
// The Loader does not parse or render anything itself. It supplies two
// addressing modes to whatever engine consumes it:
//
//   - explicit theme addressing: a name carrying the reserved "theme:"
//     prefix resolves directly against the theme package, bypassing the
//     cascade. This is the intentional "extend the original" escape hatch
//     for a user template that wraps the theme's copy of itself.
//
//   - implicit cascade addressing: all other names are probed against an
//     ordered list of search roots (user override roots first, theme roots
//     last), first match wins. Handing the ordered root list to an engine's
//     own first-match lookup reproduces user-over-theme priority without a
//     custom merge step.
//
// Loader implements fs.FS, so html/template and text/template consume the
// cascade through their ordinary ParseFS path. Not-found conditions
// propagate unchanged as fs.ErrNotExist.
package render
