// Package simd provides the two byte-level primitives the rest of
// fastgrep builds on: FindByte (first occurrence of a byte in a slice)
// and Equal (byte-for-byte comparison). Both have a word-parallel
// (SIMD-within-a-register) realization on amd64, gated by a CPU feature
// probe, and a byte-at-a-time scalar fallback everywhere else. The two
// paths must be observationally indistinguishable; simd_test.go checks
// this against the standard library's bytes.IndexByte/bytes.Equal as the
// reference implementation.
package simd
