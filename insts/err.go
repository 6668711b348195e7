package insts

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMask is returned when a zero mask is used to decompose a
	// word.
	ErrInvalidMask = errors.New("invalid mask: no bits set")

	// ErrNoMatchingGroup is returned when no rule in a classification
	// table matches the op0 field of a word.
	ErrNoMatchingGroup = errors.New("no matching instruction group")

	// ErrInvalidPattern is returned for a group pattern that is not four
	// symbols of 0, 1 or X.
	ErrInvalidPattern = errors.New("invalid group pattern")

	// ErrInvalidGroup is returned for an unrecognized group name.
	ErrInvalidGroup = errors.New("invalid instruction group")

	// ErrInvalidWord is returned when text does not parse as a 32-bit word.
	ErrInvalidWord = errors.New("invalid instruction word")

	// ErrInvalidBitRange is returned for a field range outside [31:0] or
	// with msb below lsb.
	ErrInvalidBitRange = errors.New("invalid bit range")
)

// NoMatchError reports the op0 value that no rule matched.
type NoMatchError struct {
	Op0 Component
}

func (e NoMatchError) Error() string {
	return fmt.Sprintf("%v for op0 0b%04b", ErrNoMatchingGroup, uint32(e.Op0))
}

// Is makes errors.Is(err, ErrNoMatchingGroup) hold for any NoMatchError.
func (e NoMatchError) Is(err error) bool {
	return err == ErrNoMatchingGroup
}
