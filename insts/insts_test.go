package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/a64fields/insts"
)

var _ = Describe("Insts Package", func() {
	It("should have a zero Instruction of group Unknown", func() {
		var i insts.Instruction
		Expect(i).To(BeZero())
		Expect(i.Group).To(Equal(insts.GroupUnknown))
	})

	It("should select bits [28:25] with Op0Mask", func() {
		Expect(insts.Op0Mask).To(Equal(insts.Mask(0x1E000000)))
		Expect(insts.Op0Mask.String()).To(Equal("0b00011110000000000000000000000000"))
	})

	It("should default to the four-entry table", func() {
		decoder := insts.NewDecoder()
		Expect(decoder.Rules()).To(Equal(insts.DefaultRules()))
	})
})
