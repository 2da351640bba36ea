package blockcodec

// Encode returns the padded encoding of src. It never fails.
func (c *Codec) Encode(src []byte) []byte {
	dst := make([]byte, c.EncodedLen(len(src)))
	c.encode(dst, src)
	return dst
}

// EncodeToString returns the padded encoding of src as a string.
func (c *Codec) EncodeToString(src []byte) string {
	return string(c.Encode(src))
}

// encode writes the encoding of src into dst, which must hold
// EncodedLen(len(src)) bytes.
func (c *Codec) encode(dst, src []byte) {
	di := 0
	for len(src) >= c.k {
		c.emit(dst[di:di+c.m], pack(src[:c.k], c.k), c.m)
		src = src[c.k:]
		di += c.m
	}
	if len(src) == 0 {
		return
	}

	// Final quantum: the missing bytes read as zero, so the low bits of the
	// last meaningful symbol are zero and the rest of the group is padding.
	n := c.symbolsFor(len(src))
	group := dst[di : di+c.m]
	c.emit(group, pack(src, c.k), n)
	for i := n; i < c.m; i++ {
		group[i] = c.alphabet.pad
	}
}

// emit writes the first n symbols of the m*bits wide group held in v,
// most significant bits first.
func (c *Codec) emit(dst []byte, v uint64, n int) {
	mask := uint64(1)<<c.bits - 1
	for i := 0; i < n; i++ {
		shift := c.bits * uint(c.m-1-i)
		dst[i] = c.alphabet.symbols[(v>>shift)&mask]
	}
}

// pack reads b as a big-endian number k bytes wide. Bytes past the end of b
// are zero, which left-aligns a short final quantum.
func pack(b []byte, k int) uint64 {
	var v uint64
	for i := 0; i < k; i++ {
		v <<= 8
		if i < len(b) {
			v |= uint64(b[i])
		}
	}
	return v
}
