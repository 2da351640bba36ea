// Package blockcodec implements padded RFC 4648 style block encodings.
//
// A Codec repacks groups of k input bytes into m symbols of b bits each,
// where k*8 == m*b. Base64 (b=6, k=3, m=4) and Base32 (b=5, k=5, m=8) are
// both expressed as Params for the same engine. Decoding is strict: only the
// exact output of Encode is accepted.
package blockcodec

import "fmt"

// maxBlockBytes keeps a full block inside a uint64 accumulator.
const maxBlockBytes = 7

// Params describes a block encoding.
type Params struct {
	Name          string
	BitsPerSymbol uint
	BlockBytes    int
	BlockSymbols  int
	Alphabet      string
	Pad           byte
}

// Codec encodes and decodes one block encoding. A Codec is immutable apart
// from the lazily built inverse table and is safe for concurrent use.
type Codec struct {
	name     string
	bits     uint
	k, m     int
	alphabet *Alphabet

	// quantum maps a trailing pad count to the number of bytes carried by
	// the final group, or -1 when the encoder never emits that count.
	quantum []int
	maxPad  int
}

// New validates p and returns a Codec for it.
func New(p Params) (*Codec, error) {
	if p.BitsPerSymbol < 1 || p.BitsPerSymbol > 8 {
		return nil, fmt.Errorf("%w: %d bits per symbol", ErrInvalidParams, p.BitsPerSymbol)
	}
	if p.BlockBytes < 1 || p.BlockBytes > maxBlockBytes {
		return nil, fmt.Errorf("%w: %d bytes per block", ErrInvalidParams, p.BlockBytes)
	}
	if p.BlockBytes*8 != p.BlockSymbols*int(p.BitsPerSymbol) {
		return nil, fmt.Errorf("%w: %d bytes do not fill %d symbols of %d bits",
			ErrInvalidParams, p.BlockBytes, p.BlockSymbols, p.BitsPerSymbol)
	}
	if len(p.Alphabet) != 1<<p.BitsPerSymbol {
		return nil, fmt.Errorf("%w: %d bits per symbol needs %d symbols, got %d",
			ErrInvalidParams, p.BitsPerSymbol, 1<<p.BitsPerSymbol, len(p.Alphabet))
	}

	alphabet, err := NewAlphabet(p.Alphabet, p.Pad)
	if err != nil {
		return nil, err
	}

	c := &Codec{
		name:     p.Name,
		bits:     p.BitsPerSymbol,
		k:        p.BlockBytes,
		m:        p.BlockSymbols,
		alphabet: alphabet,
		quantum:  make([]int, p.BlockSymbols+1),
	}
	for i := range c.quantum {
		c.quantum[i] = -1
	}
	for q := 1; q <= c.k; q++ {
		pads := c.m - c.symbolsFor(q)
		c.quantum[pads] = q
		if pads > c.maxPad {
			c.maxPad = pads
		}
	}
	return c, nil
}

// MustNew is like New but panics on error. It is meant for package level
// codec variables.
func MustNew(p Params) *Codec {
	c, err := New(p)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the codec name from its Params.
func (c *Codec) Name() string { return c.name }

// Alphabet returns the codec's symbol table.
func (c *Codec) Alphabet() *Alphabet { return c.alphabet }

// BlockBytes returns the number of input bytes per full group.
func (c *Codec) BlockBytes() int { return c.k }

// BlockSymbols returns the number of symbols per group.
func (c *Codec) BlockSymbols() int { return c.m }

// PadCounts returns the legal trailing pad counts in ascending order.
func (c *Codec) PadCounts() []int {
	var counts []int
	for pads, q := range c.quantum {
		if q >= 0 {
			counts = append(counts, pads)
		}
	}
	return counts
}

// EncodedLen returns the length of the encoding of n bytes.
func (c *Codec) EncodedLen(n int) int {
	return (n + c.k - 1) / c.k * c.m
}

// MaxDecodedLen returns the decoded length of n symbols when the final group
// carries no padding. Padding only shortens the result.
func (c *Codec) MaxDecodedLen(n int) int {
	return n / c.m * c.k
}

// symbolsFor returns how many symbols carry r bytes: ceil(r*8 / bits).
func (c *Codec) symbolsFor(r int) int {
	return (r*8 + int(c.bits) - 1) / int(c.bits)
}
