// Package layout derives the in-memory size and alignment of every
// type in an ir type arena.
//
// It implements the default layout table for shading language types:
// scalars align to their width, vectors of three or more components to
// four widths, matrices by their row count, arrays to their stride,
// and structs to their widest member. Struct members may carry
// explicit alignment and size overrides, and arrays an explicit
// stride.
//
// # Usage
//
//	l := layout.New(&types, &consts)
//	tl := l.Resolve(handle)
//	// tl.Size, tl.Alignment available
//
// Construction is a single forward pass over the type arena, so a
// type may only reference types appended before it.
//
// # Error Model
//
// The layouter assumes pre-validated input. Malformed input (an array
// size referencing a non-integer constant) or a stale handle is an
// upstream defect, not a runtime condition: Initialize and Resolve
// panic with a structured *errors.Error naming the offending handle.
// InitializeChecked and ResolveChecked propagate the same errors for
// callers that cannot guarantee well-formed input; using them weakens
// that assumption rather than changing default behavior.
package layout
