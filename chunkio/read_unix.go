// +build linux darwin freebsd netbsd openbsd dragonfly

package chunkio

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// rawRead performs a single system read. When src is an *os.File it
// bypasses the runtime's buffered-file machinery and calls unix.Read
// directly against the file descriptor, matching spec.md §4.2's
// "refill via a single system read" contract literally rather than
// through an intermediate bufio layer. Any other io.Reader (e.g. a test
// harness's bytes.Reader, or stdin wrapped for testing) falls back to
// its own Read method.
func rawRead(src io.Reader, p []byte) (int, error) {
	if f, ok := src.(*os.File); ok {
		n, err := unix.Read(int(f.Fd()), p)
		if err != nil {
			return 0, err
		}
		if n == 0 {
			return 0, io.EOF
		}
		return n, nil
	}
	return src.Read(p)
}
