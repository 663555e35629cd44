package domain

import (
	"errors"
	"fmt"
)

// Input shape errors.
var (
	ErrNoCoordinates         = errors.New("no coordinates given")
	ErrUnsupportedParameters = errors.New("unsupported parameters given")
)

// Parse errors.
var (
	ErrUnrecognizedFormat = errors.New("unrecognized coordinate format")
	ErrMatchArity         = errors.New("unexpected number of matched groups")
)

// Range and invariant errors.
var (
	ErrAngleOutOfRange   = errors.New("angle out of range")
	ErrDirectionMismatch = errors.New("direction does not match axis")
	ErrUnsupportedAxis   = errors.New("unsupported axis")
	ErrUnsupportedFormat = errors.New("unsupported dms format")
	ErrUnsupportedUnit   = errors.New("unsupported distance unit")
	ErrUnexpectedBearing = errors.New("unexpected bearing")
)

// ParseError reports why an input string could not be turned into a Point.
// Token is set when a single part of the input could not be classified.
type ParseError struct {
	Input string
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("unable to parse coordinate %q (%s): %v", e.Input, e.Token, e.Err)
	}
	return fmt.Sprintf("unable to parse coordinate %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
