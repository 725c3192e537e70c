// +build !amd64 appengine

package simd

// findByteImpl and equalImpl are the scalar fallback used on
// architectures where the word-parallel amd64 path does not apply, and
// under appengine where unsafe/cpuid tricks are off the table. They are
// the semantic reference the amd64 path must never diverge from.

func findByteImpl(buf []byte, val byte) int {
	for i, c := range buf {
		if c == val {
			return i
		}
	}
	return -1
}

func equalImpl(a, b []byte) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
