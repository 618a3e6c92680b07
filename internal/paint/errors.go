package paint

import "fmt"

// InvalidInputError reports a structurally invalid pixel grid, mask, or
// tolerance. The whole invocation fails; no partial output is produced.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

// InvalidColorError reports a target color string that is not exactly six
// hexadecimal digits after an optional leading '#'.
type InvalidColorError struct {
	Value  string // The rejected input, verbatim
	Reason string
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("invalid color %q: %s", e.Value, e.Reason)
}

func invalidInput(format string, args ...interface{}) error {
	return &InvalidInputError{Reason: fmt.Sprintf(format, args...)}
}
