package fsra

import (
	"fmt"

	"github.com/k2stream/k2fsr/pkg/crypto/gf8"
)

// MultiplierSet is the ordered set of field elements multiplied into the four
// byte lanes of the alpha table. Element i is the field generator raised to
// Exponents[i] by repeated doubling.
type MultiplierSet [LaneCount]uint32

// BuildCoefficients computes the lane multipliers for the given exponents.
//
// Each multiplier starts at the multiplicative identity and is doubled
// exponent times. Whenever a doubling overflows into bit 8 the modulus is
// folded back in; when that fold would leave the element with even parity,
// bit 0 is forced on so the result stays monic. The correction is part of the
// cipher's published table derivation and must not be replaced with a
// textbook reduction, or the derived tables change.
//
// Exponents are fixed small constants in practice, so repeated doubling is
// used rather than square-and-multiply.
func BuildCoefficients(exponents [LaneCount]int, modulus uint32) (MultiplierSet, error) {
	cfg := Config{Modulus: modulus, Exponents: exponents}
	if err := cfg.Validate(); err != nil {
		return MultiplierSet{}, fmt.Errorf("invalid coefficient parameters: %w", err)
	}

	var multipliers MultiplierSet
	for i, exponent := range exponents {
		m := uint32(1)
		for j := 0; j < exponent; j++ {
			m <<= 1
			if m&0x100 != 0 {
				correction := uint32(0)
				if gf8.Parity8(m^modulus) == 0 {
					correction = 1
				}
				m ^= modulus | correction
			}
		}
		multipliers[i] = m
	}

	return multipliers, nil
}
