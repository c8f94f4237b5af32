package texarg

import (
	"errors"
	"fmt"
)

var (
	// ErrUnbalanced reports a bracket with no matching counterpart. Callers
	// must treat it as a fatal parse failure; no partial recovery is
	// attempted.
	ErrUnbalanced = errors.New("texarg: unbalanced brackets")

	// ErrKeyNotFound reports a lookup of a key that is not present.
	// Arg.GetKeyVal and Arg.Delete return it; Arg.Get deliberately does not
	// (a missing key there is an absent result, not an error).
	ErrKeyNotFound = errors.New("texarg: key not found")
)

// ParseError is a parse failure with the byte offset where it was detected.
type ParseError struct {
	Message string
	Offset  int
	Err     error // underlying kind, if any (e.g. ErrUnbalanced)
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Message, e.Offset)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseErrorf(kind error, offset int, format string, args ...any) *ParseError {
	return &ParseError{
		Message: fmt.Sprintf(format, args...),
		Offset:  offset,
		Err:     kind,
	}
}
