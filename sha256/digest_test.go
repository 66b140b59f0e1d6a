package sha256_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"massnet.org/masssum/sha256"
	"massnet.org/masssum/testutil"
)

func TestDigest_String(t *testing.T) {
	var d = sha256.MustSum256([]byte("TestDigest_String"))
	var testRound = 1000

	for i := 0; i < testRound; i++ {
		b := d.Bytes()
		d = sha256.MustSum256(b[:])

		fromHex, err := sha256.ParseDigest(d.String())
		require.NoError(t, err)
		fromWords, err := sha256.ParseDigest(d.WordString())
		require.NoError(t, err)
		if d != fromHex || d != fromWords {
			t.Fatal("Digest String decode error")
		}
	}
}

func TestDigest_WordString(t *testing.T) {
	d := sha256.MustSum256([]byte("abc"))
	assert.Equal(t, "BA7816BF 8F01CFEA 414140DE 5DAE2223 B00361A3 96177A9C B410FF61 F20015AD", d.WordString())
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", d.String())
	assert.Equal(t, uint32(0xBA7816BF), d.Words()[0])
	assert.Equal(t, byte(0xBA), d.Bytes()[0])
	assert.Equal(t, byte(0xAD), d.Bytes()[sha256.Size-1])
}

func TestParseDigest(t *testing.T) {
	tests := []*struct {
		str string
		err error
	}{
		{
			str: "0123456789",
			err: sha256.ErrInvalidDigestLength,
		},
		{
			str: "01234567890123456789012345678901234567890123456789012345678901234",
			err: sha256.ErrInvalidDigestLength,
		},
		{
			str: "0123456789012345678901234567890123456789012345678901234567890123",
			err: nil,
		},
		{
			str: "01234567 89012345 67890123 45678901 23456789 01234567 89012345 67890123",
			err: nil,
		},
		{
			str: "BA7816BF\t8F01CFEA\n414140DE 5DAE2223 b00361a3 96177a9c B410FF61 F20015AD",
			err: nil,
		},
		{
			str: "g123456789012345678901234567890123456789012345678901234567890123",
			err: errors.New("decode digest: encoding/hex: invalid byte: U+0067 'g'"),
		},
	}

	for i, test := range tests {
		if _, err := sha256.ParseDigest(test.str); !testutil.SameErrorString(err, test.err) {
			t.Errorf("%d, ParseDigest error not match, got = %v, want = %v", i, err, test.err)
		}
	}
}

func TestParseDigestConventionsAgree(t *testing.T) {
	words := "BA7816BF 8F01CFEA 414140DE 5DAE2223 B00361A3 96177A9C B410FF61 F20015AD"
	a, err := sha256.ParseDigest(words)
	require.NoError(t, err)
	b, err := sha256.ParseDigest(strings.ToLower(strings.Replace(words, " ", "", -1)))
	require.NoError(t, err)
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestDigestFromBytes(t *testing.T) {
	want := sha256.MustSum256([]byte("bytes"))
	b := want.Bytes()

	got, err := sha256.DigestFromBytes(b[:])
	require.NoError(t, err)
	assert.True(t, want.Equal(got))

	_, err = sha256.DigestFromBytes(b[:31])
	assert.True(t, testutil.SameErrorString(err, errors.New("got 31 bytes: invalid length for digest")))
}
