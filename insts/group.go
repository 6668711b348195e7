package insts

import (
	"fmt"
	"strings"
)

// Group is the broad instruction category selected by op0.
type Group uint8

// Instruction groups.
const (
	GroupUnknown   Group = iota
	GroupImmediate       // Data Processing (Immediate)
	GroupRegister        // Data Processing (Register)
	GroupLoadStore       // Loads and Stores
	GroupBranch          // Branches, Exception Generating and System
	GroupReserved
)

func (g Group) String() string {
	switch g {
	case GroupImmediate:
		return "Immediate"
	case GroupRegister:
		return "Register"
	case GroupLoadStore:
		return "LoadStore"
	case GroupBranch:
		return "Branch"
	case GroupReserved:
		return "Reserved"
	case GroupUnknown:
		return "Unknown"
	default:
		return fmt.Sprintf("Group(%d)", uint8(g))
	}
}

// ParseGroup parses a group name. Matching ignores case, spaces and the
// separators '/', '-' and '_', so "Loads and Stores" and "load/store" both
// name GroupLoadStore.
func ParseGroup(name string) (Group, error) {
	key := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '/', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(name))

	switch key {
	case "immediate", "imm", "dpimm":
		return GroupImmediate, nil
	case "register", "reg", "dpreg":
		return GroupRegister, nil
	case "loadstore", "loadsandstores", "ls":
		return GroupLoadStore, nil
	case "branch", "branches", "br":
		return GroupBranch, nil
	case "reserved":
		return GroupReserved, nil
	case "unknown":
		return GroupUnknown, nil
	}

	return GroupUnknown, fmt.Errorf("%w: %q", ErrInvalidGroup, name)
}

// MarshalText implements encoding.TextMarshaler.
func (g Group) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(g.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *Group) UnmarshalText(text []byte) error {
	parsed, err := ParseGroup(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// Rule assigns Group to every op0 value that Pattern matches.
type Rule struct {
	Pattern Pattern
	Group   Group
}

func (r Rule) String() string {
	return fmt.Sprintf("%v (%v)", r.Pattern, r.Group)
}

// DefaultRules returns the op0 table in priority order:
//
//	100X Immediate
//	X1X0 LoadStore
//	X101 Register
//	101X Branch
//
// The table has no catch-all entry. Each call returns a fresh slice.
func DefaultRules() []Rule {
	return []Rule{
		{Pattern: MustPattern("100X"), Group: GroupImmediate},
		{Pattern: MustPattern("X1X0"), Group: GroupLoadStore},
		{Pattern: MustPattern("X101"), Group: GroupRegister},
		{Pattern: MustPattern("101X"), Group: GroupBranch},
	}
}

// WithFallback returns a copy of rules ending with a catch-all entry that
// assigns fallback.
func WithFallback(rules []Rule, fallback Group) []Rule {
	out := make([]Rule, 0, len(rules)+1)
	out = append(out, rules...)
	return append(out, Rule{Pattern: CatchAll, Group: fallback})
}

// Classify extracts op0 from word and returns the group of the first rule
// whose pattern matches it. Rules may overlap; table order breaks ties.
func Classify(word Word, rules []Rule) (Group, error) {
	op0, err := Decompose(word, Op0Mask)
	if err != nil {
		return GroupUnknown, err
	}

	return classifyOp0(op0, rules)
}

func classifyOp0(op0 Component, rules []Rule) (Group, error) {
	for _, r := range rules {
		if r.Pattern.Matches(op0) {
			return r.Group, nil
		}
	}

	return GroupUnknown, NoMatchError{Op0: op0}
}
