package insts

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// Word is a fixed-width 32-bit encoded instruction.
type Word uint32

// Mask selects the bit positions of a Word that form a field.
type Mask uint32

// Component is a field value extracted from a Word, right-aligned so that
// the lowest selected bit lands at bit 0. It is never sign-extended.
type Component uint32

// WordBits is the width of an instruction word.
const WordBits = 32

// Op0Mask selects op0, bits [28:25].
const Op0Mask Mask = 0x1E000000

// String renders the word as 32 binary digits.
func (w Word) String() string {
	return fmt.Sprintf("0b%032b", uint32(w))
}

// String renders the mask as 32 binary digits.
func (m Mask) String() string {
	return fmt.Sprintf("0b%032b", uint32(m))
}

// Width returns the number of bit positions spanned by the mask, from its
// lowest to its highest set bit.
func (m Mask) Width() int {
	if m == 0 {
		return 0
	}
	return WordBits - bits.LeadingZeros32(uint32(m)) - bits.TrailingZeros32(uint32(m))
}

// BitMask returns the contiguous mask covering bits [msb:lsb] inclusive.
func BitMask(msb, lsb int) (Mask, error) {
	if lsb < 0 || msb >= WordBits || msb < lsb {
		return 0, fmt.Errorf("%w: [%d:%d]", ErrInvalidBitRange, msb, lsb)
	}

	width := msb - lsb + 1
	if width == WordBits {
		return Mask(^uint32(0)), nil
	}

	return Mask(((uint32(1) << width) - 1) << lsb), nil
}

// MustBitMask is like BitMask but panics on an invalid range. It is meant
// for package-level field tables.
func MustBitMask(msb, lsb int) Mask {
	m, err := BitMask(msb, lsb)
	if err != nil {
		panic(err)
	}
	return m
}

// Decompose applies mask to word and shifts the selected bits right until
// the lowest bit of the mask sits at bit 0.
//
// Non-contiguous masks shift the selected bits together; gaps between them
// are kept as zeros.
func Decompose(word Word, mask Mask) (Component, error) {
	if mask == 0 {
		return 0, ErrInvalidMask
	}

	selected := uint32(word) & uint32(mask)
	shift := bits.TrailingZeros32(uint32(mask))

	return Component(selected >> shift), nil
}

// Op0 extracts bits [28:25] of word.
func Op0(word Word) Component {
	op0, _ := Decompose(word, Op0Mask)
	return op0
}

// ParseWord parses an instruction word written in binary or hexadecimal.
//
// A "0x" prefix selects hexadecimal, a "0b" prefix or no prefix selects
// binary. Spaces and underscores are ignored so that split displays such
// as "100 0101 0000..." parse as one word.
func ParseWord(s string) (Word, error) {
	digits := strings.Map(func(r rune) rune {
		if r == ' ' || r == '_' || r == '\t' {
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))

	base := 2
	switch {
	case strings.HasPrefix(digits, "0x"):
		base = 16
		digits = digits[2:]
	case strings.HasPrefix(digits, "0b"):
		digits = digits[2:]
	}

	if digits == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWord, s)
	}

	v, err := strconv.ParseUint(digits, base, WordBits)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidWord, s, err)
	}

	return Word(v), nil
}
