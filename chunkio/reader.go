// Package chunkio implements the streaming line reader the rest of
// fastgrep is built around: a fixed-capacity read buffer refilled by a
// single system read at a time, with lines split out of it on a
// configurable delimiter byte. Grounded in encoding/fastq's
// fileHandle/reader split, generalized from "fastq record" framing to
// "single delimiter byte" framing.
package chunkio

import (
	"io"

	"github.com/grailbio/fastgrep/buf"
	"github.com/grailbio/fastgrep/simd"
)

// DefaultCapacity is the recommended fixed read-buffer size (spec.md
// §3: "recommend 4 MiB").
const DefaultCapacity = 4 << 20

// Reader reads delimiter-terminated lines out of an underlying
// io.Reader through a fixed-capacity backing buffer. It is not safe for
// concurrent use; fastgrep's single-threaded cooperative scheduling
// model (spec.md §5) never needs it to be.
type Reader struct {
	src    io.Reader
	delim  byte
	data   []byte
	filled int
	cursor int
	eof    bool
}

// New returns a Reader with the default 4 MiB backing buffer.
func New(src io.Reader, delim byte) *Reader {
	return NewSize(src, delim, DefaultCapacity)
}

// NewSize returns a Reader with an explicit backing-buffer capacity.
func NewSize(src io.Reader, delim byte, capacity int) *Reader {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Reader{src: src, delim: delim, data: make([]byte, capacity)}
}

// ReadLine reads the next logical line into line, growing it as
// needed, and returns a view over the accumulated bytes (including the
// terminating delimiter, if one was present before EOF). At end of
// stream it returns a zero-length view and io.EOF.
func (r *Reader) ReadLine(line *buf.Buffer) (buf.View, error) {
	line.Reset()
	total := 0
	for {
		if r.cursor == r.filled {
			if r.eof {
				if total == 0 {
					return buf.View{}, io.EOF
				}
				return line.View(), nil
			}
			n, err := r.refill()
			if n == 0 {
				r.eof = true
				if err != nil && err != io.EOF {
					return buf.View{}, err
				}
				if total == 0 {
					return buf.View{}, io.EOF
				}
				return line.View(), nil
			}
		}
		window := r.data[r.cursor:r.filled]
		idx := simd.FindByte(window, r.delim)
		if idx < 0 {
			line.Append(total, window)
			total += len(window)
			r.cursor = r.filled
			continue
		}
		end := idx + 1
		line.Append(total, window[:end])
		total += end
		r.cursor += end
		return line.View(), nil
	}
}

// refill performs a single system read into the backing buffer,
// resetting cursor/filled to describe the freshly read region.
func (r *Reader) refill() (int, error) {
	n, err := rawRead(r.src, r.data)
	r.cursor = 0
	r.filled = n
	return n, err
}
