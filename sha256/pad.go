package sha256

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

var (
	// ErrInputTooLarge is returned for messages whose length in bits
	// does not fit in the 64-bit length field.
	ErrInputTooLarge = errors.New("input too large for sha256")

	// ErrPaddedLength is returned when a padded message is empty or not
	// a whole number of blocks.
	ErrPaddedLength = errors.New("padded length is not a positive multiple of block size")
)

// Block is one 512-bit chunk of a padded message.
type Block [BlockSize]byte

// Words is a block parsed into its big-endian 32-bit words.
type Words [WordsPerBlock]uint32

func checkLength(n uint64) error {
	if n > MaxMessageLen {
		return errors.Wrapf(ErrInputTooLarge, "length %d exceeds %d bytes", n, uint64(MaxMessageLen))
	}
	return nil
}

// padTail returns the last one or two blocks of the padded message: the
// bytes of msg after its final whole block, the 0x80 marker, zero fill and
// the big-endian bit length.
func padTail(msg []byte) []byte {
	n := len(msg)
	rem := msg[n-n%chunk:]

	size := chunk
	if len(rem)+1 > lenOffset {
		size = 2 * chunk
	}
	tail := make([]byte, size)
	copy(tail, rem)
	tail[len(rem)] = 0x80
	binary.BigEndian.PutUint64(tail[size-8:], uint64(n)<<3)
	return tail
}

// Pad returns msg followed by the SHA-256 padding. The result is always a
// positive multiple of BlockSize long. msg is not modified.
func Pad(msg []byte) ([]byte, error) {
	if err := checkLength(uint64(len(msg))); err != nil {
		return nil, err
	}
	full := len(msg) - len(msg)%chunk
	tail := padTail(msg)
	out := make([]byte, 0, full+len(tail))
	out = append(out, msg[:full]...)
	return append(out, tail...), nil
}

// ParseBlocks splits a padded message into blocks of big-endian words.
func ParseBlocks(padded []byte) ([]Words, error) {
	if len(padded) == 0 || len(padded)%chunk != 0 {
		return nil, errors.Wrapf(ErrPaddedLength, "got %d bytes", len(padded))
	}
	blocks := make([]Words, 0, len(padded)/chunk)
	for p := padded; len(p) >= chunk; p = p[chunk:] {
		var w Words
		parseWords(&w, p)
		blocks = append(blocks, w)
	}
	return blocks, nil
}

// parseWords reads the first BlockSize bytes of p as big-endian words.
func parseWords(w *Words, p []byte) {
	_ = p[chunk-1]
	for i := 0; i < WordsPerBlock; i++ {
		j := i * 4
		w[i] = uint32(p[j])<<24 | uint32(p[j+1])<<16 | uint32(p[j+2])<<8 | uint32(p[j+3])
	}
}

// Words parses the block into its big-endian words.
func (b *Block) Words() Words {
	var w Words
	parseWords(&w, b[:])
	return w
}
