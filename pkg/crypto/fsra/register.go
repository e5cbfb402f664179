package fsra

// Register is the FSR-A state: five 32-bit words advanced in place by Step.
// Each register is owned by a single caller; independent registers may share
// one alpha table.
type Register struct {
	words [RegisterSize]uint32
}

// NewRegister creates a register seeded with the given words. The seed is
// supplied by the key/IV loading layer, which is outside this package.
func NewRegister(seed [RegisterSize]uint32) *Register {
	return &Register{words: seed}
}

// Step advances the register by one tick. The feedback word is the previous
// head shifted up a byte, mixed with the alpha entry selected by the head's
// top byte and with word 3; the remaining words shift down one position.
func (r *Register) Step(table *AlphaTable) {
	head := r.words[0]
	feedback := (head << 8) ^ table[head>>24] ^ r.words[3]
	copy(r.words[:RegisterSize-1], r.words[1:])
	r.words[RegisterSize-1] = feedback
}

// Run advances the register n ticks. How many ticks to run is entirely the
// caller's decision; the register has no terminal state.
func (r *Register) Run(table *AlphaTable, n int) {
	for i := 0; i < n; i++ {
		r.Step(table)
	}
}

// Words returns a copy of the current register contents.
func (r *Register) Words() [RegisterSize]uint32 {
	return r.words
}
