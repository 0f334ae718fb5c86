// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// MaxInputSize caps the size of input accepted for parsing. Descriptor files
// are tiny; anything near this limit is not a descriptor.
const MaxInputSize int64 = 5 * 1024 * 1024

// Decode validates data against the definition named defPath inside schema
// and decodes the unified value into T. The schema is trusted (it ships
// embedded in the binary), so schema compilation failures are reported as
// internal errors; everything about data is reported through FormatError with
// filename as the context.
//
// Validation requires concrete values: an input that type-checks but leaves a
// required field unset is rejected.
func Decode[T any](schema, data []byte, defPath, filename string) (*T, error) {
	if filename == "" {
		filename = "<input>"
	}
	if int64(len(data)) > MaxInputSize {
		return nil, fmt.Errorf("%s: input size %d bytes exceeds maximum %d bytes",
			filename, len(data), MaxInputSize)
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileBytes(schema)
	if schemaValue.Err() != nil {
		return nil, fmt.Errorf("internal error: failed to compile schema: %w", schemaValue.Err())
	}
	def := schemaValue.LookupPath(cue.ParsePath(defPath))
	if def.Err() != nil {
		return nil, fmt.Errorf("internal error: schema definition %s not found: %w", defPath, def.Err())
	}

	input := ctx.CompileBytes(data, cue.Filename(filename))
	if input.Err() != nil {
		return nil, FormatError(input.Err(), filename)
	}

	unified := def.Unify(input)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, FormatError(err, filename)
	}

	var out T
	if err := unified.Decode(&out); err != nil {
		return nil, FormatError(err, filename)
	}
	return &out, nil
}
