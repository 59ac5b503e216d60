package dualdate

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrFormat is matched by every [*FormatError] through errors.Is.
var ErrFormat = errors.New("dualdate: unsupported date format")

// FormatError reports text that does not have the shape a parser requires.
type FormatError struct {
	Input  string // The rejected text.
	Reason string // What was wrong with it.
	Err    error  // Underlying parse error, if any.
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("dualdate: cannot parse %q: %s: %v", e.Input, e.Reason, e.Err)
	}
	return fmt.Sprintf("dualdate: cannot parse %q: %s", e.Input, e.Reason)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrFormat) succeed for any FormatError.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

func formatError(input, reason string) error {
	return &FormatError{Input: input, Reason: reason}
}
