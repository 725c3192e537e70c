// Package buf provides a non-owning byte-range view over a growable byte
// buffer. A View never copies; it narrows as bytes are consumed from the
// front, mirroring how the line filter peels successive suffixes off a
// line during a trie lookup.
package buf

// View is a read-only window (offset, length) into a Buffer's backing
// array. It does not own memory: the referenced bytes remain valid only
// as long as the owning Buffer is not regrown past the view's extent.
type View struct {
	data   []byte
	offset int
	length int
}

// NewView returns a View over data[0:len(data)].
func NewView(data []byte) View {
	return View{data: data, length: len(data)}
}

// Len returns the number of bytes in the view.
func (v View) Len() int { return v.length }

// Bytes returns the view's bytes as a slice. The slice aliases the
// owning Buffer's storage and must not be retained past the Buffer's next
// mutation.
func (v View) Bytes() []byte {
	return v.data[v.offset : v.offset+v.length]
}

// Sub returns the sub-view [off, off+n), clamped to the receiver's
// extent so the operation is always total and never panics.
func (v View) Sub(off, n int) View {
	if off < 0 {
		off = 0
	}
	if off > v.length {
		off = v.length
	}
	if n < 0 {
		n = 0
	}
	if off+n > v.length {
		n = v.length - off
	}
	return View{data: v.data, offset: v.offset + off, length: n}
}

// Suffix returns the view starting at offset k, i.e. Sub(k, Len()-k).
// This is the operation the per-line search loop drives: one call per
// candidate starting position.
func (v View) Suffix(k int) View {
	return v.Sub(k, v.length-k)
}

// TrimTrailing decrements the view's length while its last byte equals b.
func (v View) TrimTrailing(b byte) View {
	for v.length > 0 && v.data[v.offset+v.length-1] == b {
		v.length--
	}
	return v
}

// StartsWith reports whether the view begins with other's bytes.
func (v View) StartsWith(other View) bool {
	if other.length > v.length {
		return false
	}
	a := v.data[v.offset : v.offset+other.length]
	b := other.data[other.offset : other.offset+other.length]
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// At returns the byte at position i within the view.
func (v View) At(i int) byte {
	return v.data[v.offset+i]
}

// Empty reports whether the view has zero length.
func (v View) Empty() bool { return v.length == 0 }
