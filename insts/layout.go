package insts

import "fmt"

// Field names one component of an encoding.
type Field struct {
	Name string
	Mask Mask
}

// Layout is an ordered list of fields, most-significant first.
type Layout []Field

// NamedComponent is the value of one field of a word.
type NamedComponent struct {
	Name  string
	Mask  Mask
	Value Component
}

func (c NamedComponent) String() string {
	return fmt.Sprintf("%s=0b%0*b", c.Name, c.Mask.Width(), uint32(c.Value))
}

// Split decomposes word into every field of layout, in layout order.
func Split(word Word, layout Layout) ([]NamedComponent, error) {
	out := make([]NamedComponent, 0, len(layout))
	for _, f := range layout {
		v, err := Decompose(word, f.Mask)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		out = append(out, NamedComponent{Name: f.Name, Mask: f.Mask, Value: v})
	}
	return out, nil
}

// Common fields
var (
	fieldOp0 = Field{"op0", Op0Mask}
	fieldRn  = Field{"rn", MustBitMask(9, 5)}
	fieldRd  = Field{"rd", MustBitMask(4, 0)}
)

// Op0Layout returns a layout holding op0 only.
func Op0Layout() Layout {
	return Layout{fieldOp0}
}

// CondBranchLayout returns the B.cond layout.
// Format: 0101010 0 | simm19 | 0 | cond
func CondBranchLayout() Layout {
	return Layout{
		fieldOp0,
		{"simm19", MustBitMask(23, 5)},
		{"cond", MustBitMask(3, 0)},
	}
}

// DPImmLayout returns the Add/Sub immediate layout.
// Format: sf | op | S | 100010 | sh | imm12 | Rn | Rd
func DPImmLayout() Layout {
	return Layout{
		{"sf", MustBitMask(31, 31)},
		{"op", MustBitMask(30, 30)},
		{"S", MustBitMask(29, 29)},
		fieldOp0,
		{"sh", MustBitMask(22, 22)},
		{"imm12", MustBitMask(21, 10)},
		fieldRn,
		fieldRd,
	}
}

// DPRegLayout returns the logical (shifted register) layout.
// Format: sf | opc | 01010 | shift | N | Rm | imm6 | Rn | Rd
func DPRegLayout() Layout {
	return Layout{
		{"sf", MustBitMask(31, 31)},
		{"opc", MustBitMask(30, 29)},
		fieldOp0,
		{"shift", MustBitMask(23, 22)},
		{"N", MustBitMask(21, 21)},
		{"rm", MustBitMask(20, 16)},
		{"imm6", MustBitMask(15, 10)},
		fieldRn,
		fieldRd,
	}
}

// LoadStoreLayout returns the register-offset load/store layout.
// Format: size | 111 | V | 00 | opc | 1 | Rm | option | S | 10 | Rn | Rt
func LoadStoreLayout() Layout {
	return Layout{
		{"size", MustBitMask(31, 30)},
		fieldOp0,
		{"opc", MustBitMask(23, 22)},
		{"rm", MustBitMask(20, 16)},
		{"option", MustBitMask(15, 13)},
		{"S", MustBitMask(12, 12)},
		fieldRn,
		{"rt", MustBitMask(4, 0)},
	}
}

// LayoutFor returns the layout used to split words of group g.
func LayoutFor(g Group) Layout {
	switch g {
	case GroupImmediate:
		return DPImmLayout()
	case GroupRegister:
		return DPRegLayout()
	case GroupLoadStore:
		return LoadStoreLayout()
	case GroupBranch:
		return CondBranchLayout()
	default:
		return Op0Layout()
	}
}
