package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorFormat(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want []string
	}{
		{
			"out_of_bounds",
			OutOfBounds(PhaseResolve, 42, 10),
			[]string{"[resolve]", "out_of_bounds", "handle 42", "table length 10"},
		},
		{
			"invalid_constant",
			InvalidConstant(3, "composite constant", "scalar integer array size"),
			[]string{"[layout]", "invalid_constant", "handle 3", "composite constant", "expected scalar integer array size"},
		},
		{
			"parse_failed",
			ParseFailed("type description", fmt.Errorf("line 4: unknown keyword")),
			[]string{"[parse]", "invalid_data", "type description", "caused by: line 4"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := tc.err.Error()
			for _, want := range tc.want {
				if !strings.Contains(msg, want) {
					t.Errorf("message %q missing %q", msg, want)
				}
			}
		})
	}
}

func TestErrorIs(t *testing.T) {
	err := OutOfBounds(PhaseResolve, 1, 0)

	if !errors.Is(err, &Error{Phase: PhaseResolve, Kind: KindOutOfBounds}) {
		t.Error("expected match on phase+kind")
	}
	if errors.Is(err, &Error{Phase: PhaseLayout, Kind: KindOutOfBounds}) {
		t.Error("unexpected match across phases")
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("line 2: bad token")
	err := ParseFailed("type description", cause)

	if !errors.Is(err, cause) {
		t.Error("expected unwrap to reach the cause")
	}
}
