package sha256

import "math/bits"

// rotr rotates x right by n bits within 32 bits.
func rotr(x uint32, n int) uint32 {
	return bits.RotateLeft32(x, -n)
}

// bigSigma0 is Σ0, applied to the a register in each round.
func bigSigma0(x uint32) uint32 {
	return rotr(x, 2) ^ rotr(x, 13) ^ rotr(x, 22)
}

// bigSigma1 is Σ1, applied to the e register in each round.
func bigSigma1(x uint32) uint32 {
	return rotr(x, 6) ^ rotr(x, 11) ^ rotr(x, 25)
}

// smallSigma0 is σ0, applied to W[t-15] during schedule expansion.
func smallSigma0(x uint32) uint32 {
	return rotr(x, 7) ^ rotr(x, 18) ^ (x >> 3)
}

// smallSigma1 is σ1, applied to W[t-2] during schedule expansion.
func smallSigma1(x uint32) uint32 {
	return rotr(x, 17) ^ rotr(x, 19) ^ (x >> 10)
}

// ch picks bits of y where x is set and bits of z elsewhere.
func ch(x, y, z uint32) uint32 {
	return (x & y) ^ (^x & z)
}

// maj is the bitwise majority of x, y and z.
func maj(x, y, z uint32) uint32 {
	return (x & y) ^ (x & z) ^ (y & z)
}
