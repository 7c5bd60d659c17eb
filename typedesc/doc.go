// Package typedesc parses a small text format describing a type and
// constant table into ir arenas.
//
// The format is line-oriented, one declaration per line, with `#`
// comments:
//
//	const N = uint 10
//	type f32   = scalar float 4
//	type vec3f = vector 3 float 4
//	type m44   = matrix 4x4 4
//	type ptr   = pointer f32
//	type arr   = array vec3f N stride 16
//	type darr  = array f32 dynamic
//	type light = struct { pos: vec3f; intensity: f32 @align(8) }
//	type tex   = image
//	type samp  = sampler
//
// Declarations may only reference names declared on earlier lines,
// which enforces the definitions-before-uses ordering the layout
// package assumes.
package typedesc
