package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k2stream/k2fsr/pkg/crypto/fsra"
)

func TestCollectLaneHistograms(t *testing.T) {
	_, table, err := fsra.Build(fsra.Config{
		Modulus:   0x1C3,
		Exponents: [fsra.LaneCount]int{71, 12, 3, 24},
	})
	require.NoError(t, err)

	register := fsra.NewRegister([fsra.RegisterSize]uint32{
		0xBE3CA984, 0x974E6719, 0x86916EFF, 0xF52DACF9, 0x960329B5,
	})

	const steps = 1000
	histograms, stats := collectLaneHistograms(register, table, steps)

	for lane := 0; lane < fsra.LaneCount; lane++ {
		total := 0
		for _, count := range histograms[lane] {
			total += count
		}
		assert.Equalf(t, steps, total, "lane %d histogram must account for every step", lane)
		assert.Equal(t, steps, stats[lane].Count)
		assert.Equal(t, lane, stats[lane].Lane)
	}
}

func TestComputeLaneStatsUniform(t *testing.T) {
	var histogram [256]int
	for i := range histogram {
		histogram[i] = 4
	}

	stats := computeLaneStats(0, histogram, 1024)

	assert.InDelta(t, 127.5, stats.Mean, 1e-9)
	assert.InDelta(t, 73.9, stats.Std, 0.1)
	assert.InDelta(t, 0.0, stats.ChiSquare, 1e-9)
}

func TestComputeLaneStatsEmpty(t *testing.T) {
	var histogram [256]int
	stats := computeLaneStats(2, histogram, 0)
	assert.Equal(t, 2, stats.Lane)
	assert.Equal(t, 0, stats.Count)
}
