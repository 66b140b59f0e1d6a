package sha256

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidDigestLength indicates a digest of the wrong length.
var ErrInvalidDigestLength = errors.New("invalid length for digest")

// Digest is a SHA-256 digest as eight words, H[0] first.
type Digest [8]uint32

// Words returns the digest words.
func (d Digest) Words() [8]uint32 {
	return d
}

// Bytes returns the big-endian concatenation of the digest words.
func (d Digest) Bytes() [Size]byte {
	var b [Size]byte
	for i, v := range d {
		binary.BigEndian.PutUint32(b[i*4:], v)
	}
	return b
}

// String converts Digest to 64 lowercase hex characters.
func (d Digest) String() string {
	b := d.Bytes()
	return hex.EncodeToString(b[:])
}

// WordString formats the digest as eight space separated upper-case words,
// like "BA7816BF 8F01CFEA ...".
func (d Digest) WordString() string {
	parts := make([]string, len(d))
	for i, v := range d {
		parts[i] = fmt.Sprintf("%08X", v)
	}
	return strings.Join(parts, " ")
}

// Equal reports whether d and other are the same digest.
func (d Digest) Equal(other Digest) bool {
	return d == other
}

// DigestFromBytes converts a 32-byte big-endian value to Digest.
func DigestFromBytes(b []byte) (Digest, error) {
	if len(b) != Size {
		return Digest{}, errors.Wrapf(ErrInvalidDigestLength, "got %d bytes", len(b))
	}
	var d Digest
	for i := range d {
		d[i] = binary.BigEndian.Uint32(b[i*4:])
	}
	return d, nil
}

// ParseDigest decodes either textual form of a digest: 64 hex characters,
// or eight 8-digit hex words separated by whitespace. Case is ignored.
func ParseDigest(s string) (Digest, error) {
	str := strings.Join(strings.Fields(s), "")
	if len(str) != Size*2 {
		return Digest{}, ErrInvalidDigestLength
	}
	b, err := hex.DecodeString(str)
	if err != nil {
		return Digest{}, errors.Wrap(err, "decode digest")
	}
	return DigestFromBytes(b)
}
