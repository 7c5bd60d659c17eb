// Package ir defines the shading-language type and constant tables.
//
// Types and constants live in append-only arenas and reference each
// other by dense integer handles. Arena producers must append a type
// before anything that refers to it, so a type only ever references
// handles smaller than its own; the layout package relies on this
// ordering for its single forward pass.
//
// This package is purely a data model: it performs no validation and
// no arithmetic.
package ir
