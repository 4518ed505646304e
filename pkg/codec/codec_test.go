package codec

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cb17225/huffman-compression/pkg/huffman"
	"github.com/cb17225/huffman-compression/pkg/weights"
)

func newCodec(t *testing.T, text string, minimize bool) *Codec {
	t.Helper()
	w, err := weights.Count(strings.NewReader(text))
	require.NoError(t, err)
	c, err := New(w, minimize)
	require.NoError(t, err)
	return c
}

func TestRoundTrip(t *testing.T) {
	texts := []string{
		"a",
		"hello, world\n",
		"mississippi",
		strings.Repeat("ab", 500) + "\tend\r\n",
	}
	for _, text := range texts {
		for _, minimize := range []bool{true, false} {
			c := newCodec(t, text, minimize)
			packed, bits, err := c.Encode([]byte(text))
			require.NoError(t, err)
			require.Equal(t, (bits+7)/8, len(packed))

			out, err := c.Decode(packed)
			require.NoError(t, err)
			require.Equal(t, text, string(out))
		}
	}
}

func TestRoundTripRandomASCII(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	data := make([]byte, 4096)
	for i := range data {
		data[i] = byte(1 + r.Intn(huffman.AlphabetSize-1))
	}
	c := newCodec(t, string(data), true)
	packed, _, err := c.Encode(data)
	require.NoError(t, err)
	require.Less(t, len(packed), len(data))

	out, err := c.Decode(packed)
	require.NoError(t, err)
	require.True(t, bytes.Equal(data, out))
}

func TestEncodeEndsWithTerminator(t *testing.T) {
	c := newCodec(t, "aab", true)
	bits, err := c.EncodeBits([]byte("ab"))
	require.NoError(t, err)
	codes := c.Codes()
	require.Equal(t, codes['a']+codes['b']+codes[huffman.Terminator], bits)
}

func TestEmptyText(t *testing.T) {
	c := newCodec(t, "", true)
	require.True(t, c.Root().IsLeaf())

	packed, bits, err := c.Encode(nil)
	require.NoError(t, err)
	require.Zero(t, bits)
	require.Empty(t, packed)

	out, err := c.Decode(packed)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestUnencodable(t *testing.T) {
	c := newCodec(t, "abc", true)
	_, _, err := c.Encode([]byte("abd"))
	require.ErrorIs(t, err, ErrUnencodable)

	_, _, err = c.Encode([]byte("a\x00b"))
	require.ErrorIs(t, err, ErrUnencodable)
}

func TestMinimizeFalseEncodesUnseen(t *testing.T) {
	c := newCodec(t, "abc", false)
	require.False(t, c.Minimize())
	require.Len(t, c.Codes(), huffman.AlphabetSize)
	packed, _, err := c.Encode([]byte("xyz"))
	require.NoError(t, err)
	out, err := c.Decode(packed)
	require.NoError(t, err)
	require.Equal(t, "xyz", string(out))
}

func TestTruncated(t *testing.T) {
	c := newCodec(t, "abcdefgh", true)
	bits, err := c.EncodeBits([]byte("abcdefgh"))
	require.NoError(t, err)

	_, err = c.DecodeBits(bits[:len(bits)-1])
	require.ErrorIs(t, err, ErrTruncated)

	_, err = c.DecodeBits("")
	require.ErrorIs(t, err, ErrTruncated)
}

func TestNegativeWeights(t *testing.T) {
	var w huffman.Weights
	w['a'] = -3
	_, err := New(w, true)
	require.ErrorIs(t, err, huffman.ErrNegativeWeight)
}
