package insts_test

import (
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/a64fields/insts"
)

var _ = Describe("Decoder", func() {
	var decoder *insts.Decoder

	BeforeEach(func() {
		decoder = insts.NewDecoder()
	})

	Describe("Data Processing (Register)", func() {
		// AND X0, X0, X0     -> 0x8A000000
		It("should decode AND X0, X0, X0", func() {
			inst, err := decoder.Decode(0b10001010000000000000000000000000)

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Op0).To(Equal(insts.Component(0b0101)))
			Expect(inst.Group).To(Equal(insts.GroupRegister))

			sf, ok := inst.Component("sf")
			Expect(ok).To(BeTrue())
			Expect(sf).To(Equal(insts.Component(1)))
		})
	})

	Describe("Data Processing (Immediate)", func() {
		// ADD X0, X1, #42    -> 0x9100A820
		It("should decode ADD X0, X1, #42", func() {
			inst, err := decoder.Decode(0x9100A820)

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Group).To(Equal(insts.GroupImmediate))

			imm, _ := inst.Component("imm12")
			rn, _ := inst.Component("rn")
			rd, _ := inst.Component("rd")
			Expect(imm).To(Equal(insts.Component(42)))
			Expect(rn).To(Equal(insts.Component(1)))
			Expect(rd).To(Equal(insts.Component(0)))
		})
	})

	Describe("Branches", func() {
		// B.LE 0x4           -> 0x5400008D
		It("should decode B.LE", func() {
			inst, err := decoder.Decode(0x5400008D)

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Group).To(Equal(insts.GroupBranch))

			cond, ok := inst.Component("cond")
			Expect(ok).To(BeTrue())
			Expect(cond).To(Equal(insts.Component(0b1101)))
		})
	})

	Describe("Unmatched op0", func() {
		It("should return the partial instruction with the error", func() {
			inst, err := decoder.Decode(0x00000000)

			Expect(err).To(MatchError(insts.ErrNoMatchingGroup))
			Expect(inst).ToNot(BeNil())
			Expect(inst.Group).To(Equal(insts.GroupUnknown))
			Expect(inst.Components).To(BeEmpty())

			_, ok := inst.Component("op0")
			Expect(ok).To(BeFalse())
		})

		It("should use the fallback group when configured", func() {
			decoder = insts.NewDecoder(
				insts.WithRules(insts.WithFallback(insts.DefaultRules(), insts.GroupReserved)))

			inst, err := decoder.Decode(0x00000000)
			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Group).To(Equal(insts.GroupReserved))
			Expect(inst.Components).To(HaveLen(1))
		})
	})

	Describe("Options", func() {
		It("should split every word with a fixed layout", func() {
			decoder = insts.NewDecoder(insts.WithLayout(insts.Op0Layout()))

			inst, err := decoder.Decode(0x9100A820)
			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Components).To(HaveLen(1))
			Expect(inst.Components[0].Name).To(Equal("op0"))
		})

		It("should copy the rule table", func() {
			rules := insts.DefaultRules()
			decoder = insts.NewDecoder(insts.WithRules(rules))
			rules[0].Group = insts.GroupReserved

			Expect(decoder.Rules()[0].Group).To(Equal(insts.GroupImmediate))
		})

		It("should fail every word with an empty table", func() {
			decoder = insts.NewDecoder(insts.WithRules(nil))

			_, err := decoder.Decode(0x9100A820)
			Expect(err).To(MatchError(insts.ErrNoMatchingGroup))
		})
	})

	It("should be safe for concurrent use", func() {
		words := []insts.Word{0x8A000000, 0x9100A820, 0x5400008D, 0xF8646A9C}
		want := []insts.Group{
			insts.GroupRegister, insts.GroupImmediate,
			insts.GroupBranch, insts.GroupLoadStore,
		}

		var wg sync.WaitGroup
		for i := range 8 {
			wg.Add(1)
			go func() {
				defer GinkgoRecover()
				defer wg.Done()

				for j := range 200 {
					k := (i + j) % len(words)
					inst, err := decoder.Decode(words[k])
					Expect(err).ToNot(HaveOccurred())
					Expect(inst.Group).To(Equal(want[k]))
				}
			}()
		}
		wg.Wait()
	})
})
