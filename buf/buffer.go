package buf

// Buffer owns a resizable byte slice. Its length is set by Reset,
// ExpandTo and Append; its capacity never shrinks and grows geometrically (>=2x) as ExpandTo demands more
// room, so repeated appends during a single chunked read amortize to a
// handful of reallocations regardless of final line length.
type Buffer struct {
	data []byte
}

// NewBuffer returns a Buffer with the given initial capacity.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{data: make([]byte, 0, capacity)}
}

// Len returns the buffer's current length.
func (b *Buffer) Len() int { return len(b.data) }

// Cap returns the buffer's current capacity.
func (b *Buffer) Cap() int { return cap(b.data) }

// Bytes returns the buffer's valid bytes.
func (b *Buffer) Bytes() []byte { return b.data }

// View returns a View over the buffer's current contents.
func (b *Buffer) View() View { return NewView(b.data) }

// Reset truncates the buffer to length 0 without releasing capacity.
func (b *Buffer) Reset() { b.data = b.data[:0] }

// ExpandTo sets the buffer's length to minLen, reallocating only if
// minLen exceeds the current capacity. Existing bytes [0, min(oldLen,
// minLen)) are preserved. Newly exposed bytes are zeroed only when the
// buffer reallocates; within the current capacity they keep whatever
// bytes were stored there before.
func (b *Buffer) ExpandTo(minLen int) {
	if minLen <= cap(b.data) {
		b.data = b.data[:minLen]
		return
	}
	newCap := cap(b.data) * 2
	if newCap < minLen {
		newCap = minLen
	}
	grown := make([]byte, minLen, newCap)
	copy(grown, b.data)
	b.data = grown
}

// Append appends src starting at offset off, growing the buffer to
// fit. Offset+len(src) becomes the buffer's new length iff it exceeds
// the current one. This is the operation the chunked reader uses to
// concatenate successive chunks of an over-long line: policy "expand to
// 2*(offset+chunk) on each append" per the growth contract, realized
// here by ExpandTo's doubling.
func (b *Buffer) Append(off int, src []byte) {
	need := off + len(src)
	if need > len(b.data) {
		b.ExpandTo(need)
	}
	copy(b.data[off:need], src)
}

// ToLower writes LOWER[src[i]] into the buffer at [0, len(src)), growing
// the buffer to fit, and returns the resulting view.
func (b *Buffer) ToLower(src []byte, table *[256]byte) View {
	b.ExpandTo(len(src))
	dst := b.data
	for i, c := range src {
		dst[i] = table[c]
	}
	return NewView(dst[:len(src)])
}
