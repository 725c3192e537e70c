package simd

// FindByte returns the offset of the first byte in buf equal to val, or
// -1 if val does not occur. It is the primitive the chunked reader uses
// to locate the line delimiter, and the one the trie's suffix scan never
// calls directly (the trie walks its own bitmap instead) but which
// backs every other byte search in the package.
func FindByte(buf []byte, val byte) int {
	return findByteImpl(buf, val)
}

// Equal reports whether a and b hold identical bytes. Slices of
// different lengths are never equal; the length check is done here, so
// callers need not compare lengths first.
func Equal(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return equalImpl(a, b)
}
