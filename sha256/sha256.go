// Package sha256 implements the SHA-256 hash algorithm as defined in
// FIPS 180-4.
//
// The whole message is hashed in one call. Every call owns its hash state,
// so Sum256 is safe for concurrent use.
package sha256

// Sum256 returns the SHA-256 digest of data. The only error is
// ErrInputTooLarge.
func Sum256(data []byte) (Digest, error) {
	if err := checkLength(uint64(len(data))); err != nil {
		return Digest{}, err
	}

	h := initialState()
	full := len(data) - len(data)%chunk
	blockGeneric(&h, data[:full])
	blockGeneric(&h, padTail(data))

	return Digest(h), nil
}

// MustSum256 is like Sum256 but panics if data cannot be hashed.
func MustSum256(data []byte) Digest {
	d, err := Sum256(data)
	if err != nil {
		panic(err)
	}
	return d
}
