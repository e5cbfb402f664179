package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k2stream/k2fsr/pkg/crypto/fsra"
)

func TestRegisterDump(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false)

	r.Register(3, [fsra.RegisterSize]uint32{
		0xBE3CA984, 0x974E6719, 0x86916EFF, 0xF52DACF9, 0x960329B5,
	})

	out := buf.String()
	assert.Contains(t, out, "loop: 3")
	assert.Contains(t, out, "FSR-A[0]:BE3CA984")
	assert.Contains(t, out, "FSR-A[4]:960329B5")
	assert.Contains(t, out, strings.Repeat("*", 50))
}

func TestMultipliersDump(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false)

	r.Multipliers("beta", [fsra.LaneCount]int{71, 12, 3, 24},
		fsra.MultiplierSet{0x1A, 0x6D, 0x08, 0xB6})

	out := buf.String()
	assert.Contains(t, out, "beta^71 = 1A")
	assert.Contains(t, out, "beta^12 = 6D")
	assert.Contains(t, out, "beta^3 = 08")
	assert.Contains(t, out, "beta^24 = B6")
}

func TestTableCDump(t *testing.T) {
	_, table, err := fsra.Build(fsra.Config{
		Modulus:   0x1C3,
		Exponents: [fsra.LaneCount]int{71, 12, 3, 24},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	New(&buf, false).TableC("alpha_0", table)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "alpha_0[256]={"))
	assert.Contains(t, out, "0x00000000,")
	assert.Contains(t, out, "0xB6086D1A,")
	assert.Contains(t, out, "0xD3B99AB7,")
	assert.Contains(t, out, "};")
	assert.NotContains(t, out, "0xA1F48BE2,", "last entry must not carry a trailing comma")
	assert.Contains(t, out, "0xA1F48BE2")
}

func TestTableHexDump(t *testing.T) {
	_, table, err := fsra.Build(fsra.Config{
		Modulus:   0x1C3,
		Exponents: [fsra.LaneCount]int{71, 12, 3, 24},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	New(&buf, false).TableHex(table)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 32)
	assert.Contains(t, lines[0], "b6086d1a")
}
