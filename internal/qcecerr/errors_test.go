package qcecerr

import (
	"errors"
	"testing"
)

func TestNewFormatsMessage(t *testing.T) {
	err := New(InvalidInput, "qubit %d out of range", 3)

	if err.Kind != InvalidInput {
		t.Errorf("got kind %v, want InvalidInput", err.Kind)
	}

	if err.Error() != "invalid_input: qubit 3 out of range" {
		t.Errorf("got %q, want %q", err.Error(), "invalid_input: qubit 3 out of range")
	}
}

func TestCategorizeQcecError(t *testing.T) {
	cases := []struct {
		kind Kind
		want ExceptionKind
	}{
		{InvalidInput, ExceptionInvalidArgument},
		{UnsupportedConfiguration, ExceptionLogicError},
		{IncompatibleShape, ExceptionOther},
		{Timeout, ExceptionOther},
	}

	for _, c := range cases {
		got := Categorize(New(c.kind, "x"))
		if got != c.want {
			t.Errorf("Categorize(%v) = %v, want %v", c.kind, got, c.want)
		}
	}
}

func TestCategorizePlainError(t *testing.T) {
	if got := Categorize(errors.New("boom")); got != ExceptionRuntimeError {
		t.Errorf("got %v, want ExceptionRuntimeError for a plain error", got)
	}
}

func TestCategorizeUnknownValue(t *testing.T) {
	if got := Categorize("not an error"); got != ExceptionOther {
		t.Errorf("got %v, want ExceptionOther for a non-error panic value", got)
	}
}

func TestKindStringRoundTrip(t *testing.T) {
	cases := map[Kind]string{
		InvalidInput:             "invalid_input",
		IncompatibleShape:        "incompatible_shape",
		UnsupportedConfiguration: "unsupported_configuration",
		Timeout:                  "timeout",
	}

	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
