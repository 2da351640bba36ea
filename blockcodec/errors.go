package blockcodec

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLength is returned when the encoded length is not a
	// multiple of the symbol group size.
	ErrMalformedLength = errors.New("blockcodec: malformed encoded length")

	// ErrInvalidPaddingCount is returned when the number of trailing pad
	// symbols is not one the encoder can produce.
	ErrInvalidPaddingCount = errors.New("blockcodec: invalid padding count")

	// ErrInvalidSymbol matches every *InvalidSymbolError.
	ErrInvalidSymbol = errors.New("blockcodec: invalid symbol")

	// ErrNonCanonicalEncoding is returned when the final symbol carries
	// non-zero bits that do not belong to any decoded byte.
	ErrNonCanonicalEncoding = errors.New("blockcodec: non-canonical encoding")

	// ErrInvalidParams is returned by New and NewAlphabet for unusable
	// codec parameters.
	ErrInvalidParams = errors.New("blockcodec: invalid parameters")
)

// InvalidSymbolError reports a byte outside the alphabet.
type InvalidSymbolError struct {
	Char byte
	// Offset is the position of Char in the decoder input, or -1 when the
	// symbol was looked up outside of a decode.
	Offset int
}

func (e *InvalidSymbolError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("blockcodec: invalid symbol %q", e.Char)
	}
	return fmt.Sprintf("blockcodec: invalid symbol %q at offset %d", e.Char, e.Offset)
}

// Is reports whether target is ErrInvalidSymbol.
func (e *InvalidSymbolError) Is(target error) bool {
	return target == ErrInvalidSymbol
}
