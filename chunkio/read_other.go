// +build !linux,!darwin,!freebsd,!netbsd,!openbsd,!dragonfly

package chunkio

import "io"

// rawRead is the portable fallback for platforms without a
// golang.org/x/sys/unix raw read path: it defers entirely to the
// standard io.Reader contract.
func rawRead(src io.Reader, p []byte) (int, error) {
	return src.Read(p)
}
