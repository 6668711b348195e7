package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/a64fields/insts"
)

var _ = Describe("Pattern", func() {
	It("should round-trip its notation", func() {
		for _, s := range []string{"100X", "X1X0", "X101", "101X", "XXXX", "0000"} {
			Expect(insts.MustPattern(s).String()).To(Equal(s))
		}
	})

	It("should accept lower-case don't-care symbols", func() {
		p, err := insts.ParsePattern("x1x0")
		Expect(err).ToNot(HaveOccurred())
		Expect(p).To(Equal(insts.MustPattern("X1X0")))
		Expect(p.Care()).To(Equal(insts.Mask(0b0101)))
		Expect(p.Code()).To(Equal(insts.Component(0b0100)))
	})

	It("should reject patterns of the wrong length or with bad symbols", func() {
		for _, s := range []string{"", "10X", "10X01", "10Y0", "1 00"} {
			_, err := insts.ParsePattern(s)
			Expect(err).To(MatchError(insts.ErrInvalidPattern), s)
		}
		Expect(func() { insts.MustPattern("abc") }).To(Panic())
	})

	It("should treat position 0 as the most-significant op0 bit", func() {
		p := insts.MustPattern("1XXX")
		Expect(p.Matches(0b1000)).To(BeTrue())
		Expect(p.Matches(0b0001)).To(BeFalse())
	})

	It("should match every value with the catch-all", func() {
		for v := insts.Component(0); v < 16; v++ {
			Expect(insts.CatchAll.Matches(v)).To(BeTrue())
		}
		Expect(insts.CatchAll.String()).To(Equal("XXXX"))
	})

	It("should match exactly the values agreeing on fixed bits", func() {
		p := insts.MustPattern("X101")
		var matched []insts.Component
		for v := insts.Component(0); v < 16; v++ {
			if p.Matches(v) {
				matched = append(matched, v)
			}
		}
		Expect(matched).To(ConsistOf(insts.Component(0b0101), insts.Component(0b1101)))
	})

	It("should marshal as text", func() {
		var p insts.Pattern
		Expect(p.UnmarshalText([]byte("101x"))).To(Succeed())
		text, err := p.MarshalText()
		Expect(err).ToNot(HaveOccurred())
		Expect(string(text)).To(Equal("101X"))
	})
})
