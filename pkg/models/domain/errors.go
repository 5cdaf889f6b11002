package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingFile indicates an input file is absent or unreadable
	ErrMissingFile = errors.New("missing input file")

	// ErrMalformedRow indicates a line that does not match the expected layout
	ErrMalformedRow = errors.New("malformed row")

	// ErrEmptySeries indicates a series with no records where at least one is required
	ErrEmptySeries = errors.New("empty series")

	// ErrIndexMisalignment indicates weekly series that cannot be joined by index
	ErrIndexMisalignment = errors.New("weekly series misaligned")

	// ErrOutOfRange indicates a series lookup past its bounds
	ErrOutOfRange = errors.New("index out of range")
)

// RowError describes a rejected input line.
type RowError struct {
	File   string
	Line   int
	Reason string
	Err    error
}

func NewRowError(file string, line int, reason string, err error) *RowError {
	return &RowError{File: file, Line: line, Reason: reason, Err: err}
}

func (e *RowError) Error() string {
	msg := fmt.Sprintf("%s:%d: %s: %s", e.File, e.Line, ErrMalformedRow, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is reports ErrMalformedRow for every row error.
func (e *RowError) Is(target error) bool {
	return target == ErrMalformedRow
}

func (e *RowError) Unwrap() error {
	return e.Err
}
