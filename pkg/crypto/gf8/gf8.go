// Package gf8 implements GF(2^8) field arithmetic over a caller-supplied
// irreducible polynomial, using carry-less polynomial multiplication with
// single-step reduction as specified in RFC 7008 (KCipher-2).
package gf8

// DefaultReduceBit is the bit position checked for reduction in a degree-8
// field: whenever the accumulator reaches degree 8, the modulus is folded in.
const DefaultReduceBit = 8

// Multiply performs carry-less multiplication of a and b modulo the given
// field polynomial. Bits of b are processed from its highest set bit down to
// bit 0; at each step the accumulator is shifted left by one, a is XORed in
// when the corresponding bit of b is set, and the modulus is folded in
// whenever the accumulator's reduceBit becomes set.
//
// Multiply(a, 0) is 0 for all a.
func Multiply(a, b, modulus uint32, reduceBit uint) uint32 {
	pos := -1
	for i := 7; i >= 0; i-- {
		if b&(1<<uint(i)) != 0 {
			pos = i
			break
		}
	}

	var t uint32
	for i := pos; i >= 0; i-- {
		t <<= 1
		if b&(1<<uint(i)) != 0 {
			t ^= a
		}
		if t&(1<<reduceBit) != 0 {
			t ^= modulus
		}
	}

	return t
}

// Parity8 XOR-folds the low 8 bits of x down to a single parity bit.
func Parity8(x uint32) uint32 {
	p := x
	p ^= p >> 4
	p ^= p >> 2
	p ^= p >> 1
	return p & 1
}

// Parity32 XOR-folds all 32 bits of x down to a single parity bit.
func Parity32(x uint32) uint32 {
	p := x
	p ^= p >> 16
	p ^= p >> 8
	p ^= p >> 4
	p ^= p >> 2
	p ^= p >> 1
	return p & 1
}
