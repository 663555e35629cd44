package cli

import (
	"errors"
	"fmt"

	"geocoord/internal/domain"
)

// Process exit codes.
const (
	ExitOK           = 0
	ExitFailure      = 1
	ExitInvalidInput = 2
)

var ErrInvalidInput = errors.New("invalid input")

func invalidInput(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}

// ExitCode maps err to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var pe *domain.ParseError
	switch {
	case errors.As(err, &pe),
		errors.Is(err, ErrInvalidInput),
		errors.Is(err, domain.ErrNoCoordinates),
		errors.Is(err, domain.ErrUnsupportedParameters),
		errors.Is(err, domain.ErrAngleOutOfRange),
		errors.Is(err, domain.ErrUnsupportedFormat):
		return ExitInvalidInput
	default:
		return ExitFailure
	}
}
