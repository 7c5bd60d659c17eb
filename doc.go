// Package shaderir provides an intermediate representation for shading
// language types and the default memory layout rules that go with it.
//
// # Architecture Overview
//
// The library is organized into a few packages with distinct
// responsibilities:
//
//	shaderir/            Root package with this overview
//	├── ir/              Type and constant arenas, handles, type variants
//	├── layout/          Size/alignment table builder and member placement
//	├── errors/          Structured error types for debugging
//	├── typedesc/        Text format for describing type tables
//	└── cmd/shaderlayout Layout inspector CLI
//
// # Quick Start
//
// Build a type table and derive its layouts:
//
//	var types ir.Arena[ir.Type]
//	var consts ir.Arena[ir.Constant]
//
//	f32 := types.Append(ir.Type{Inner: ir.Scalar{Kind: ir.Float, Width: 4}})
//	v3 := types.Append(ir.Type{Inner: ir.Vector{Size: ir.Tri, Kind: ir.Float, Width: 4}})
//	_ = types.Append(ir.Type{Inner: ir.Struct{Members: []ir.StructMember{
//	    {Name: "pos", Type: v3},
//	    {Name: "w", Type: f32},
//	}}})
//
//	l := layout.New(&types, &consts)
//	tl := l.Resolve(v3) // {Size: 12, Alignment: 16}
//
// # Layout Rules
//
// The layout package implements the default layout table for shading
// language types: scalars align to their width, vectors of three or
// more components to four widths, arrays to their stride, structs to
// their widest member. Struct members may carry explicit alignment and
// size overrides, and arrays an explicit stride.
//
// # Thread Safety
//
// A Layouter is read-only after construction and safe for concurrent
// readers. Rebuilding via Initialize is a single-writer operation and
// must not race with readers.
package shaderir
