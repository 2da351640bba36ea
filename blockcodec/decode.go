package blockcodec

// Decode decodes the first n bytes of src. n lets callers pass a buffer
// whose tail is scratch space, such as the output of an in-place
// sanitization pass.
//
// Decode accepts only canonical input: the length must be a multiple of the
// group size, the pad count must be one the encoder emits, every other byte
// must be in the alphabet and the unused low bits of the last meaningful
// symbol must be zero.
func (c *Codec) Decode(src []byte, n int) ([]byte, error) {
	if n < 0 || n > len(src) || n%c.m != 0 {
		return nil, ErrMalformedLength
	}
	if n == 0 {
		return []byte{}, nil
	}
	src = src[:n]

	q := c.quantum[c.countPads(src)]
	if q < 0 {
		return nil, ErrInvalidPaddingCount
	}

	groups := n / c.m
	dst := make([]byte, groups*c.k-(c.k-q))

	di := 0
	for g := 0; g < groups-1; g++ {
		v, err := c.unpack(src, g*c.m, c.m)
		if err != nil {
			return nil, err
		}
		split(dst[di:di+c.k], v)
		di += c.k
	}

	// Final group: only ceil(q*8/bits) symbols carry data. The low bits of
	// the last one that spill past the final byte must be zero.
	s := c.symbolsFor(q)
	v, err := c.unpack(src, (groups-1)*c.m, s)
	if err != nil {
		return nil, err
	}
	unused := uint(s)*c.bits - uint(q)*8
	if v&(uint64(1)<<unused-1) != 0 {
		return nil, ErrNonCanonicalEncoding
	}
	split(dst[di:di+q], v>>unused)

	return dst, nil
}

// DecodeString decodes s, which must contain only alphabet and pad symbols.
func (c *Codec) DecodeString(s string) ([]byte, error) {
	return c.Decode([]byte(s), len(s))
}

// countPads counts trailing pad symbols, stopping at the largest count the
// encoder can produce. Extra pads are then seen as alphabet symbols and
// rejected as invalid.
func (c *Codec) countPads(src []byte) int {
	pads := 0
	for i := len(src) - 1; i >= 0 && pads < c.maxPad && src[i] == c.alphabet.pad; i-- {
		pads++
	}
	return pads
}

// unpack concatenates the values of count symbols starting at off.
func (c *Codec) unpack(src []byte, off, count int) (uint64, error) {
	inv := c.alphabet.table()
	var v uint64
	for i := off; i < off+count; i++ {
		x := inv[src[i]]
		if x == invalidSymbol {
			return 0, &InvalidSymbolError{Char: src[i], Offset: i}
		}
		v = v<<c.bits | uint64(x)
	}
	return v, nil
}

// split writes the low len(dst) bytes of v into dst, big-endian.
func split(dst []byte, v uint64) {
	for j := len(dst) - 1; j >= 0; j-- {
		dst[j] = byte(v)
		v >>= 8
	}
}
