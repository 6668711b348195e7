// Package insts provides A64 instruction-word field decomposition and
// op0 group classification.
//
// An instruction word is split into components by applying a mask and
// right-aligning the selected bits. The 4-bit op0 field (bits [28:25]) is
// then matched against an ordered table of don't-care patterns to place
// the instruction into a broad group. It supports:
//   - Decompose: mask-and-shift extraction of a single component
//   - Classify: first-match op0 classification against a rule table
//   - Split: extraction of every named field of an encoding layout
//
// Usage:
//
//	decoder := insts.NewDecoder()
//	inst, err := decoder.Decode(0x8A000000) // AND X0, X0, X0
//	fmt.Printf("op0: %04b, group: %v\n", inst.Op0, inst.Group)
package insts
