// SPDX-License-Identifier: MPL-2.0

// Package cascade implements the override-resolution algorithm: for every
// resource request, decide whether the theme package's copy or the content
// repository's copy wins, and record provenance.
//
// The package intentionally combines four tightly coupled layers:
//   - paths.go: candidate path computation (pure path arithmetic, no I/O)
//   - resolver.go: single-resource resolution with user-over-theme priority
//   - scan.go: flat catalog building with provenance tags
//   - tree.go: the same merge for directory-tree-shaped resources
//
// Every call re-probes the filesystem; nothing is cached. That is a
// correctness requirement, not an optimization gap: under a live
// watch/rebuild loop the winning copy of a resource can change between any
// two calls, and a stale answer would render the wrong file.
package cascade
