// +build linux darwin freebsd netbsd openbsd dragonfly

package progress

import (
	"os"

	"golang.org/x/sys/unix"
)

// IsTerminal reports whether f is attached to a terminal, by attempting
// the same termios ioctl a shell uses to decide whether to enable line
// editing. A non-tty destination (a redirected file, a pipe feeding
// another process) gets no progress output, matching spec.md §5's
// "bound to a tty" contract.
func IsTerminal(f *os.File) bool {
	_, err := termiosGet(int(f.Fd()))
	return err == nil
}

func termiosGet(fd int) (*unix.Termios, error) {
	return unix.IoctlGetTermios(fd, ioctlTermiosReq)
}
