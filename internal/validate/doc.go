// SPDX-License-Identifier: MPL-2.0

// Package validate probes the project filesystem at initialization time and
// reports everything that will bite the user later: a missing theme package
// (fatal), declared feature bundles with no entry file anywhere, absent
// conventional directories, and leftovers from older framework versions.
//
// The reporter is read-only and side-effect free. It returns structured
// findings for the CLI layer to render; it never prints and never aborts
// the process itself.
package validate
