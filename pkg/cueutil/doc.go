// SPDX-License-Identifier: MPL-2.0

// Package cueutil validates structured data against embedded CUE schemas and
// decodes it into Go structs.
//
// The framework keeps its file-format schemas as CUE definitions embedded in
// the binary. Because JSON is a subset of CUE, descriptor files like
// theme.json compile directly, so the same unify-validate-decode flow covers
// both CUE and JSON inputs without a separate JSON schema dependency.
//
// Validation failures are flattened into path-qualified messages
// ("features[0].entry: incomplete value string") so users see which field is
// wrong, not a CUE evaluation trace.
package cueutil
