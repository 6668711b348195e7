package insts

import (
	"fmt"
	"strings"
)

// PatternLen is the number of symbols in a group pattern, one per op0 bit.
const PatternLen = 4

// Pattern matches a 4-bit op0 value. Each symbol is 0, 1 or X (don't care),
// written most-significant bit first, e.g. "100X".
type Pattern struct {
	care uint8 // bits that must match
	code uint8 // expected value of the cared-for bits
}

// CatchAll is the all-X pattern. It matches every op0 value.
var CatchAll = Pattern{}

// ParsePattern parses a pattern such as "X1X0". Lower-case x is accepted.
func ParsePattern(s string) (Pattern, error) {
	if len(s) != PatternLen {
		return Pattern{}, fmt.Errorf("%w: %q must have %d symbols",
			ErrInvalidPattern, s, PatternLen)
	}

	var p Pattern
	for i := 0; i < PatternLen; i++ {
		bit := uint8(1) << (PatternLen - 1 - i)

		switch s[i] {
		case '0':
			p.care |= bit
		case '1':
			p.care |= bit
			p.code |= bit
		case 'x', 'X':
		default:
			return Pattern{}, fmt.Errorf("%w: %q has bad symbol %q",
				ErrInvalidPattern, s, s[i])
		}
	}

	return p, nil
}

// MustPattern is like ParsePattern but panics on a malformed pattern.
func MustPattern(s string) Pattern {
	p, err := ParsePattern(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Matches reports whether every fixed symbol of the pattern equals the
// corresponding bit of op0. Bits of op0 above bit 3 are ignored.
func (p Pattern) Matches(op0 Component) bool {
	return uint8(op0)&p.care == p.code
}

// Care returns the mask of fixed (non-X) positions.
func (p Pattern) Care() Mask {
	return Mask(p.care)
}

// Code returns the value the fixed positions must hold.
func (p Pattern) Code() Component {
	return Component(p.code)
}

func (p Pattern) String() string {
	var sb strings.Builder
	for i := 0; i < PatternLen; i++ {
		bit := uint8(1) << (PatternLen - 1 - i)
		switch {
		case p.care&bit == 0:
			sb.WriteByte('X')
		case p.code&bit != 0:
			sb.WriteByte('1')
		default:
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// MarshalText implements encoding.TextMarshaler.
func (p Pattern) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Pattern) UnmarshalText(text []byte) error {
	parsed, err := ParsePattern(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
