package sha256

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotr(t *testing.T) {
	t.Parallel()
	assert.Equal(t, uint32(0x80000000), rotr(1, 1))
	assert.Equal(t, uint32(0x12345678), rotr(0x12345678, 0))
	assert.Equal(t, uint32(0x81234567), rotr(0x12345678, 4))
	assert.Equal(t, uint32(0x23456781), rotr(0x12345678, 28))
}

func TestMixingFunctions(t *testing.T) {
	t.Parallel()
	assert.Equal(t, uint32(0x000F0000), smallSigma1(0x18))
	assert.Equal(t, uint32(0), smallSigma0(0))
	assert.Equal(t, rotr(1, 7)^rotr(1, 18), smallSigma0(1))
	assert.Equal(t, rotr(1, 2)^rotr(1, 13)^rotr(1, 22), bigSigma0(1))
	assert.Equal(t, rotr(1, 6)^rotr(1, 11)^rotr(1, 25), bigSigma1(1))

	assert.Equal(t, uint32(0xF0F0F0F0), ch(0xFFFF0000, 0xF0F00000, 0x0000F0F0))
	assert.Equal(t, uint32(0xFF00FF00), maj(0xFF00FF00, 0xFFFF0000, 0x0000FF00))
}

func TestSchedule(t *testing.T) {
	t.Parallel()
	words := Words{0x61626380}
	words[15] = 0x18

	w := Schedule(words)
	assert.Equal(t, words[:], w[:WordsPerBlock])
	assert.Equal(t, uint32(0x61626380), w[16])
	assert.Equal(t, uint32(0x000F0000), w[17])
	assert.Equal(t, uint32(0x12B1EDEB), w[63])
}

func TestCompressFeedForward(t *testing.T) {
	t.Parallel()
	words := Words{0x61626380}
	words[15] = 0x18
	w := Schedule(words)

	h := initialState()
	compress(&h, &w)
	assert.Equal(t, [8]uint32{
		0xBA7816BF, 0x8F01CFEA, 0x414140DE, 0x5DAE2223,
		0xB00361A3, 0x96177A9C, 0xB410FF61, 0xF20015AD,
	}, h)
}
