package heightmap

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput reports a non-digit cell or rows of unequal length.
	ErrMalformedInput = errors.New("heightmap: malformed input")
	// ErrHeightOutOfRange reports a cell value outside 0-9 given to New.
	ErrHeightOutOfRange = errors.New("heightmap: height out of range")
)

// ParseError locates a malformed cell or row. Line and Column are 1-based;
// Column is 0 when the whole row is at fault.
type ParseError struct {
	Reason string
	Line   int
	Column int
}

func (e *ParseError) Error() string {
	if e.Column == 0 {
		return fmt.Sprintf("heightmap: line %d: %s", e.Line, e.Reason)
	}

	return fmt.Sprintf("heightmap: line %d, column %d: %s", e.Line, e.Column, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrMalformedInput
}
