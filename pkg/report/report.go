// Package report formats register and table contents for humans. It is kept
// out of the arithmetic packages so the presentation can be swapped without
// touching the core.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/k2stream/k2fsr/pkg/crypto/fsra"
)

const rule = "**************************************************"

// Reporter writes formatted dumps to a single destination writer.
type Reporter struct {
	w        io.Writer
	useColor bool
}

// New creates a Reporter writing to w. Color is applied only to headings and
// only when enabled.
func New(w io.Writer, useColor bool) *Reporter {
	return &Reporter{w: w, useColor: useColor}
}

func (r *Reporter) heading(format string, args ...interface{}) {
	if r.useColor {
		color.New(color.FgYellow, color.Bold).Fprintf(r.w, format, args...)
		return
	}
	fmt.Fprintf(r.w, format, args...)
}

// Rule writes a horizontal separator line.
func (r *Reporter) Rule() {
	fmt.Fprintln(r.w, rule)
}

// Register dumps the register words for one loop iteration, one word per
// line, in the simulator's FSR-A[i]:XXXXXXXX layout.
func (r *Reporter) Register(loop int, words [fsra.RegisterSize]uint32) {
	r.Rule()
	fmt.Fprintf(r.w, "loop:%2d\n", loop)
	for i, w := range words {
		fmt.Fprintf(r.w, "FSR-A[%d]:%08X\n", i, w)
	}
}

// Multipliers dumps the derived lane multipliers as generator powers,
// e.g. "beta^71 = 1A".
func (r *Reporter) Multipliers(field string, exponents [fsra.LaneCount]int, multipliers fsra.MultiplierSet) {
	for i, m := range multipliers {
		fmt.Fprintf(r.w, "%s^%d = %02X\n", field, exponents[i], m)
	}
}

// TableC dumps the alpha table as a C array initializer, seven entries per
// line, matching the layout reference implementations embed directly.
func (r *Reporter) TableC(name string, table *fsra.AlphaTable) {
	r.heading("%s[%d]={\n", name, fsra.TableSize)
	for i, entry := range table {
		sep := ","
		if i == fsra.TableSize-1 {
			sep = ""
		}
		fmt.Fprintf(r.w, "0x%08X%s", entry, sep)
		if (i+1)%7 == 0 {
			fmt.Fprintln(r.w)
		}
	}
	fmt.Fprintln(r.w, "\n};")
}

// TableHex dumps the alpha table as plain hex words, eight per line.
func (r *Reporter) TableHex(table *fsra.AlphaTable) {
	var line []string
	for i, entry := range table {
		line = append(line, fmt.Sprintf("%08x", entry))
		if (i+1)%8 == 0 {
			fmt.Fprintln(r.w, strings.Join(line, " "))
			line = line[:0]
		}
	}
}
