// +build amd64,!appengine

package simd

import (
	"encoding/binary"

	"github.com/klauspost/cpuid"
)

// wordSize is the width, in bytes, of the packed compare unit. A true
// 16-byte vector compare belongs in hand-written assembly; in its
// absence this realizes the same "packed equality compare reduced to a
// test-zero" idea at native machine-word granularity (SWAR, SIMD within
// a register), which the cpuid probe below confirms is cheap on the
// running CPU.
const wordSize = 8

// wordAccelerated is set once at process start. Every amd64 CPU Go
// targets has fast unaligned 64-bit loads, so this is expected to
// always be true; the probe exists so a future narrower target (or a
// CPU model cpuid flags as unsuitable) has a documented fallback path
// rather than a silent assumption.
var wordAccelerated = cpuid.CPU.Supports(cpuid.SSE2)

func findByteImpl(buf []byte, val byte) int {
	if !wordAccelerated {
		return findByteScalar(buf, val)
	}
	n := len(buf)
	pattern := repeatByte(val)
	i := 0
	for ; i+wordSize <= n; i += wordSize {
		w := binary.LittleEndian.Uint64(buf[i : i+wordSize])
		if hasZeroByte(w ^ pattern) {
			for j := i; j < i+wordSize; j++ {
				if buf[j] == val {
					return j
				}
			}
		}
	}
	for ; i < n; i++ {
		if buf[i] == val {
			return i
		}
	}
	return -1
}

func equalImpl(a, b []byte) bool {
	if !wordAccelerated {
		return equalScalar(a, b)
	}
	n := len(a)
	i := 0
	for ; i+wordSize <= n; i += wordSize {
		if binary.LittleEndian.Uint64(a[i:i+wordSize]) != binary.LittleEndian.Uint64(b[i:i+wordSize]) {
			return false
		}
	}
	for ; i < n; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// hasZeroByte reports whether any of w's 8 bytes is zero, using the
// classic bit-trick: (w - 0x01..01) & ^w & 0x80..80 is nonzero iff some
// byte of w underflowed from 0x00, which only happens for a byte that
// was already zero (given no byte of w exceeds 0xFF, which is always
// true for a machine word).
func hasZeroByte(w uint64) bool {
	const lo = 0x0101010101010101
	const hi = 0x8080808080808080
	return (w-lo)&^w&hi != 0
}

func repeatByte(b byte) uint64 {
	x := uint64(b)
	x |= x << 8
	x |= x << 16
	x |= x << 32
	return x
}

func findByteScalar(buf []byte, val byte) int {
	for i, c := range buf {
		if c == val {
			return i
		}
	}
	return -1
}

func equalScalar(a, b []byte) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
