package insts

// Instruction is a decomposed A64 instruction word.
type Instruction struct {
	Word  Word      // Encoded instruction
	Op0   Component // Bits [28:25]
	Group Group     // Group selected by op0

	// Components of the word, in layout order
	Components []NamedComponent
}

// Component returns the value of the named field.
func (inst *Instruction) Component(name string) (Component, bool) {
	for _, c := range inst.Components {
		if c.Name == name {
			return c.Value, true
		}
	}
	return 0, false
}

// Decoder splits instruction words into their op0 group and components.
// A Decoder is not modified after construction and may be shared between
// goroutines.
type Decoder struct {
	rules  []Rule
	layout Layout
}

// DecoderOption configures a Decoder.
type DecoderOption func(*Decoder)

// WithRules sets the classification table. The table is copied.
func WithRules(rules []Rule) DecoderOption {
	return func(d *Decoder) {
		d.rules = append([]Rule(nil), rules...)
	}
}

// WithLayout splits every word with layout instead of the layout of its
// group. The layout is copied.
func WithLayout(layout Layout) DecoderOption {
	return func(d *Decoder) {
		d.layout = append(Layout(nil), layout...)
	}
}

// NewDecoder creates a decoder using DefaultRules unless overridden.
func NewDecoder(opts ...DecoderOption) *Decoder {
	d := &Decoder{rules: DefaultRules()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Rules returns a copy of the decoder's classification table.
func (d *Decoder) Rules() []Rule {
	return append([]Rule(nil), d.rules...)
}

// Decode classifies word and splits it into components.
//
// When no rule matches, the returned Instruction still carries Word and
// Op0, with GroupUnknown and no components.
func (d *Decoder) Decode(word Word) (*Instruction, error) {
	inst := &Instruction{Word: word, Op0: Op0(word), Group: GroupUnknown}

	group, err := classifyOp0(inst.Op0, d.rules)
	if err != nil {
		return inst, err
	}
	inst.Group = group

	layout := d.layout
	if layout == nil {
		layout = LayoutFor(group)
	}

	inst.Components, err = Split(word, layout)
	if err != nil {
		return inst, err
	}

	return inst, nil
}
