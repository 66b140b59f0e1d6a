// Package hashfuncs composes the sha256 core into the digests callers
// usually want as byte slices.
package hashfuncs

import (
	"golang.org/x/crypto/ripemd160"
	"massnet.org/masssum/sha256"
)

// Size160 is the length of a Hash160 or Ripemd160 result.
const Size160 = ripemd160.Size

func sum(data []byte) [sha256.Size]byte {
	return sha256.MustSum256(data).Bytes()
}

// Sha256 returns the SHA-256 digest of data.
func Sha256(data []byte) []byte {
	h := sum(data)
	return h[:]
}

// Hash256 applies SHA-256 twice.
func Hash256(data []byte) []byte {
	inner := sum(data)
	outer := sum(inner[:])
	return outer[:]
}

// Ripemd160 returns the RIPEMD-160 digest of data.
func Ripemd160(data []byte) []byte {
	r := ripemd160.New()
	r.Write(data)
	return r.Sum(make([]byte, 0, Size160))
}

// Hash160 returns RIPEMD-160 over the SHA-256 digest of data.
func Hash160(data []byte) []byte {
	h := sum(data)
	return Ripemd160(h[:])
}
