package base32

import (
	"crypto/rand"
	stdbase32 "encoding/base32"
	"testing"

	"github.com/presbrey/rfc4648/blockcodec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeToString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"f", "MY======"},
		{"fo", "MZXQ===="},
		{"foo", "MZXW6==="},
		{"foob", "MZXW6YQ="},
		{"fooba", "MZXW6YTB"},
		{"foobar", "MZXW6YTBOI======"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeToString([]byte(tt.input)...))
		})
	}
}

func TestFullBlockRoundTrip(t *testing.T) {
	block := []byte{0x66, 0x6f, 0x6f, 0x62, 0x61}
	encoded := Encode(block)
	assert.Len(t, encoded, 8)
	assert.NotContains(t, string(encoded), "=")

	decoded, err := DecodeBytes(encoded)
	require.NoError(t, err)
	assert.Equal(t, block, decoded)
}

func TestNilAndEmpty(t *testing.T) {
	assert.Nil(t, Encode(nil))
	assert.Equal(t, "", EncodeToString())

	got, err := DecodeBytes(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = Decode("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecodeWhitespace(t *testing.T) {
	got, err := Decode("MZXW6YTB\nOI======\n")
	require.NoError(t, err)
	assert.Equal(t, []byte("foobar"), got)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"short group", "MZXW6YT", blockcodec.ErrMalformedLength},
		{"two pads", "MZXW6Y==", blockcodec.ErrInvalidPaddingCount},
		{"five pads", "MZX=====", blockcodec.ErrInvalidPaddingCount},
		{"set tail bits", "MZ======", blockcodec.ErrNonCanonicalEncoding},
		{"lowercase", "mzxw6ytb", blockcodec.ErrInvalidSymbol},
		{"digit one", "MZXW6YT1", blockcodec.ErrInvalidSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.input)
			require.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "base32: ")
		})
	}
}

func TestMatchesStandardLibrary(t *testing.T) {
	for size := 0; size < 100; size++ {
		data := make([]byte, size)
		_, err := rand.Read(data)
		require.NoError(t, err)

		want := stdbase32.StdEncoding.EncodeToString(data)
		require.Equal(t, want, EncodeToString(data...), "size %d", size)

		decoded, err := Decode(want)
		require.NoError(t, err)
		require.Equal(t, data, append([]byte{}, decoded...))
	}
}
