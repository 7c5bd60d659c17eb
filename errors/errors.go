package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseLayout  Phase = "layout"  // layout table construction
	PhaseResolve Phase = "resolve" // layout table lookup
	PhaseParse   Phase = "parse"   // type description parsing
)

// Kind categorizes the error
type Kind string

const (
	KindOutOfBounds     Kind = "out_of_bounds"
	KindInvalidConstant Kind = "invalid_constant"
	KindInvalidData     Kind = "invalid_data"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause     error
	Phase     Phase
	Kind      Kind
	Variant   string // type or constant variant involved, if known
	Detail    string
	Handle    uint32
	HasHandle bool
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.HasHandle {
		fmt.Fprintf(&b, " at handle %d", e.Handle)
	}

	if e.Variant != "" {
		b.WriteString(" (")
		b.WriteString(e.Variant)
		b.WriteByte(')')
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Convenience constructors for common error patterns

// OutOfBounds creates an out of bounds error for a handle lookup
func OutOfBounds(phase Phase, handle uint32, length int) *Error {
	return &Error{
		Phase:     phase,
		Kind:      KindOutOfBounds,
		Handle:    handle,
		HasHandle: true,
		Detail:    fmt.Sprintf("handle %d out of bounds (table length %d)", handle, length),
	}
}

// InvalidConstant creates an error for a constant whose shape the
// layout pass cannot consume
func InvalidConstant(handle uint32, variant, expected string) *Error {
	return &Error{
		Phase:     PhaseLayout,
		Kind:      KindInvalidConstant,
		Handle:    handle,
		HasHandle: true,
		Variant:   variant,
		Detail:    fmt.Sprintf("expected %s", expected),
	}
}

// ParseFailed creates a parsing error
func ParseFailed(what string, cause error) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidData,
		Detail: fmt.Sprintf("parse %s", what),
		Cause:  cause,
	}
}
