package level

import (
	"errors"
	"fmt"
)

// Errors returned by the level conversions.
var (
	ErrEmptyInput     = errors.New("level: empty input")
	ErrLengthMismatch = errors.New("level: buffer length mismatch")
	ErrInvalidRatio   = errors.New("level: compressor ratio must be >= 1")
)

// LengthMismatchError reports a slice whose length differs from the input.
//
// It unwraps to ErrLengthMismatch.
type LengthMismatchError struct {
	Want int
	Got  int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("level: buffer length mismatch: want %d, got %d", e.Want, e.Got)
}

func (e *LengthMismatchError) Unwrap() error { return ErrLengthMismatch }

// checkLengths validates that every slice in others has length n.
func checkLengths(n int, others ...int) error {
	if n == 0 {
		return ErrEmptyInput
	}
	for _, got := range others {
		if got != n {
			return &LengthMismatchError{Want: n, Got: got}
		}
	}
	return nil
}
