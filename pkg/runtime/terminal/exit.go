package terminal

import (
	"errors"

	"github.com/de-tools/block-atlas/pkg/models/domain"
)

// Process exit codes.
const (
	ExitOK           = 0
	ExitFailure      = 1
	ExitMissingFile  = 2
	ExitMalformedRow = 3
	ExitEmptySeries  = 4
	ExitMisaligned   = 5
)

// ExitCode maps an error returned by Execute to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, domain.ErrMissingFile):
		return ExitMissingFile
	case errors.Is(err, domain.ErrMalformedRow):
		return ExitMalformedRow
	case errors.Is(err, domain.ErrEmptySeries):
		return ExitEmptySeries
	case errors.Is(err, domain.ErrIndexMisalignment), errors.Is(err, domain.ErrOutOfRange):
		return ExitMisaligned
	default:
		return ExitFailure
	}
}
