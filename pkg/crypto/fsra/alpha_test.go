package fsra

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k2stream/k2fsr/pkg/crypto/gf8"
)

func buildBetaTable(t *testing.T) (MultiplierSet, *AlphaTable) {
	t.Helper()
	multipliers, table, err := Build(Config{
		Modulus:   0x1C3,
		Exponents: [LaneCount]int{71, 12, 3, 24},
	})
	require.NoError(t, err)
	return multipliers, table
}

func TestAlphaTableGoldenEntries(t *testing.T) {
	_, table := buildBetaTable(t)

	golden := map[int]uint32{
		0x00: 0x00000000,
		0x01: 0xB6086D1A,
		0x02: 0xAF10DA34,
		0x10: 0x31801F63,
		0x80: 0x4B8AF89E,
		0xBE: 0xD3B99AB7,
		0xFF: 0xA1F48BE2,
	}

	for i, expected := range golden {
		assert.Equalf(t, expected, table[i], "alpha[%#02x]", i)
	}
}

func TestAlphaTableLaneDecomposition(t *testing.T) {
	multipliers, table := buildBetaTable(t)

	for i := 0; i < TableSize; i++ {
		for j := 0; j < LaneCount; j++ {
			expected := gf8.Multiply(multipliers[j], uint32(i), 0x1C3, gf8.DefaultReduceBit)
			if table.Lane(i, j) != expected {
				t.Fatalf("alpha[%#02x] lane %d = %#x, expected Multiply(%#x, %#x) = %#x",
					i, j, table.Lane(i, j), multipliers[j], i, expected)
			}
		}
	}
}

func TestAlphaTableRebuildIsIdentical(t *testing.T) {
	_, first := buildBetaTable(t)
	_, second := buildBetaTable(t)
	assert.Equal(t, *first, *second, "table construction must have no hidden state")
}

func BenchmarkBuildAlphaTable(b *testing.B) {
	multipliers, err := BuildCoefficients([LaneCount]int{71, 12, 3, 24}, 0x1C3)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BuildAlphaTable(multipliers, 0x1C3)
	}
}
