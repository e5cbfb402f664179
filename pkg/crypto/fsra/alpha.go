package fsra

import "github.com/k2stream/k2fsr/pkg/crypto/gf8"

// AlphaTable is the 256-entry lookup table driving the register feedback.
// Entry i packs the four products multipliers[j]*i into byte lanes j=0..3,
// so one table read replaces four field multiplications per step.
type AlphaTable [TableSize]uint32

// BuildAlphaTable computes the alpha table for a multiplier set. The result
// depends only on its inputs; the table is safe for concurrent readers once
// built.
func BuildAlphaTable(multipliers MultiplierSet, modulus uint32) *AlphaTable {
	var table AlphaTable
	for i := uint32(0); i < TableSize; i++ {
		for j := 0; j < LaneCount; j++ {
			product := gf8.Multiply(multipliers[j], i, modulus, gf8.DefaultReduceBit)
			table[i] |= product << (8 * uint(j))
		}
	}
	return &table
}

// Lane extracts byte lane j of entry i.
func (t *AlphaTable) Lane(i, j int) uint32 {
	return (t[i] >> (8 * uint(j))) & 0xFF
}
