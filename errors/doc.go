// Package errors provides structured error types for the shaderir
// library.
//
// Errors carry the processing phase, a machine-readable kind, and the
// offending handle where one exists, so that a failure deep in a
// layout pass can name exactly which table entry broke the contract.
//
// The layout package treats these as fatal by default (panicking with
// an *Error); its Checked variants return them instead.
package errors
