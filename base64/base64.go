package base64

import (
	"fmt"

	"github.com/presbrey/rfc4648/blockcodec"
	"github.com/presbrey/rfc4648/sanitize"
)

// Alphabet is the standard Base64 alphabet in value order.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// Params describes the standard Base64 block encoding.
var Params = blockcodec.Params{
	Name:          "base64",
	BitsPerSymbol: 6,
	BlockBytes:    3,
	BlockSymbols:  4,
	Alphabet:      Alphabet,
	Pad:           '=',
}

var std = blockcodec.MustNew(Params)

// Codec returns the shared Base64 codec.
func Codec() *blockcodec.Codec { return std }

// Encode returns the padded Base64 encoding of src as symbol bytes.
// A nil src yields nil.
func Encode(src []byte) []byte {
	if src == nil {
		return nil
	}
	return std.Encode(src)
}

// EncodeToString returns the padded Base64 encoding of src.
func EncodeToString(src ...byte) string {
	if len(src) == 0 {
		return ""
	}
	return string(std.Encode(src))
}

// Decode strips whitespace from text and decodes the remaining symbols.
func Decode(text string) ([]byte, error) {
	if len(text) == 0 {
		return []byte{}, nil
	}

	data, n, err := sanitize.Clean(text)
	if err != nil {
		return nil, fmt.Errorf("base64: %w", err)
	}
	return decode(data, n)
}

// DecodeBytes decodes src, which must hold only alphabet and pad symbols.
// A nil src yields nil.
func DecodeBytes(src []byte) ([]byte, error) {
	if src == nil {
		return nil, nil
	}
	if len(src) == 0 {
		return []byte{}, nil
	}
	return decode(src, len(src))
}

func decode(src []byte, n int) ([]byte, error) {
	out, err := std.Decode(src, n)
	if err != nil {
		return nil, fmt.Errorf("base64: %w", err)
	}
	return out, nil
}
