package blockcodec

import (
	"fmt"
	"sync"
)

// invalidSymbol marks inverse table slots with no alphabet mapping.
const invalidSymbol = 0xFF

// Alphabet maps symbol values to printable bytes and back.
//
// The forward direction is the symbol string itself. The inverse table is
// built on first use and is read-only afterwards, so an Alphabet may be
// shared between goroutines.
type Alphabet struct {
	symbols string
	pad     byte

	once    sync.Once
	inverse [256]byte
}

// NewAlphabet returns an Alphabet over symbols with the given pad byte.
// The symbol count must be a power of two no larger than 256, every symbol
// must be printable ASCII, symbols must be distinct and the pad byte must
// not be one of them.
func NewAlphabet(symbols string, pad byte) (*Alphabet, error) {
	n := len(symbols)
	if n < 2 || n > 256 || n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: alphabet has %d symbols", ErrInvalidParams, n)
	}
	if !printable(pad) {
		return nil, fmt.Errorf("%w: pad byte 0x%02x is not printable", ErrInvalidParams, pad)
	}

	var seen [256]bool
	for i := 0; i < n; i++ {
		c := symbols[i]
		switch {
		case !printable(c):
			return nil, fmt.Errorf("%w: symbol 0x%02x at index %d is not printable", ErrInvalidParams, c, i)
		case c == pad:
			return nil, fmt.Errorf("%w: pad %q is also an alphabet symbol", ErrInvalidParams, pad)
		case seen[c]:
			return nil, fmt.Errorf("%w: duplicate symbol %q", ErrInvalidParams, c)
		}
		seen[c] = true
	}

	return &Alphabet{symbols: symbols, pad: pad}, nil
}

// MustAlphabet is like NewAlphabet but panics on error.
func MustAlphabet(symbols string, pad byte) *Alphabet {
	a, err := NewAlphabet(symbols, pad)
	if err != nil {
		panic(err)
	}
	return a
}

// Len returns the number of symbols.
func (a *Alphabet) Len() int { return len(a.symbols) }

// Pad returns the pad symbol.
func (a *Alphabet) Pad() byte { return a.pad }

// String returns the symbols in value order.
func (a *Alphabet) String() string { return a.symbols }

// Symbol returns the symbol for value v. v must be below Len.
func (a *Alphabet) Symbol(v byte) byte { return a.symbols[v] }

// PositionOf returns the value of symbol c, or an *InvalidSymbolError when
// c is not in the alphabet. The pad symbol is not in the alphabet.
func (a *Alphabet) PositionOf(c byte) (byte, error) {
	v := a.table()[c]
	if v == invalidSymbol {
		return 0, &InvalidSymbolError{Char: c, Offset: -1}
	}
	return v, nil
}

// table returns the inverse table, building it on first call.
func (a *Alphabet) table() *[256]byte {
	a.once.Do(func() {
		for i := range a.inverse {
			a.inverse[i] = invalidSymbol
		}
		for i := 0; i < len(a.symbols); i++ {
			a.inverse[a.symbols[i]] = byte(i)
		}
	})
	return &a.inverse
}

func printable(c byte) bool {
	return c > ' ' && c < 0x7F
}
