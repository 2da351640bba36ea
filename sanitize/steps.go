package sanitize

// StripWhitespace removes space, tab, CR, LF, VT and FF.
func StripWhitespace(buf *Buffer) error {
	return Strip(buf, ' ', '\t', '\n', '\r', '\v', '\f')
}

// StripLineBreaks removes CR and LF only, for input wrapped at a fixed width.
func StripLineBreaks(buf *Buffer) error {
	return Strip(buf, '\n', '\r')
}

// Strip compacts buf in place, dropping every byte in set.
func Strip(buf *Buffer, set ...byte) error {
	var skip [256]bool
	for _, c := range set {
		skip[c] = true
	}

	n := 0
	for _, c := range buf.Data[:buf.Len] {
		if skip[c] {
			continue
		}
		buf.Data[n] = c
		n++
	}
	buf.Len = n
	return nil
}
