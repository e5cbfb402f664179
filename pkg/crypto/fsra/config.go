// Package fsra implements FSR-A, the first feedback shift register of the
// KCipher-2 stream cipher (RFC 7008): the monic coefficient derivation, the
// packed alpha lookup table, and the five-word register recurrence.
package fsra

import "fmt"

const (
	// RegisterSize is the number of 32-bit words held by FSR-A.
	RegisterSize = 5

	// TableSize is the number of entries in an alpha lookup table.
	TableSize = 256

	// LaneCount is the number of packed byte lanes per table entry, one per
	// field multiplier.
	LaneCount = 4

	// maxExponent bounds the coefficient exponents. Real configurations use
	// exponents below 256; anything past this is a caller bug.
	maxExponent = 1024
)

// Config holds the field parameters defining one FSR-A instance: the degree-8
// irreducible polynomial and the four generator exponents whose powers become
// the byte-lane multipliers of the alpha table.
type Config struct {
	Modulus   uint32
	Exponents [LaneCount]int
}

// Validate checks that the configuration describes a usable degree-8 field.
func (c Config) Validate() error {
	if c.Modulus&0x100 == 0 {
		return fmt.Errorf("modulus %#x must have bit 8 set (degree-8 polynomial)", c.Modulus)
	}
	if c.Modulus > 0x1FF {
		return fmt.Errorf("modulus %#x exceeds 9 bits", c.Modulus)
	}
	for i, e := range c.Exponents {
		if e < 0 || e > maxExponent {
			return fmt.Errorf("exponent %d (index %d) outside [0, %d]", e, i, maxExponent)
		}
	}
	return nil
}

// Build derives the multiplier set and alpha table for the configuration.
// Both are computed once at setup and are immutable afterwards; the table may
// be shared by any number of registers.
func Build(cfg Config) (MultiplierSet, *AlphaTable, error) {
	multipliers, err := BuildCoefficients(cfg.Exponents, cfg.Modulus)
	if err != nil {
		return MultiplierSet{}, nil, err
	}
	return multipliers, BuildAlphaTable(multipliers, cfg.Modulus), nil
}
