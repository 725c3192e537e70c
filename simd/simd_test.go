package simd

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindByteMatchesStdlib(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for trial := 0; trial < 2000; trial++ {
		n := rnd.Intn(40)
		buf := make([]byte, n)
		for i := range buf {
			buf[i] = byte(rnd.Intn(4)) // small alphabet maximizes hit density
		}
		val := byte(rnd.Intn(4))
		got := FindByte(buf, val)
		want := bytes.IndexByte(buf, val)
		assert.Equal(t, want, got, "buf=%v val=%d", buf, val)
	}
}

func TestFindByteEmptyAndAbsent(t *testing.T) {
	assert.Equal(t, -1, FindByte(nil, 'x'))
	assert.Equal(t, -1, FindByte([]byte("hello"), 'z'))
	assert.Equal(t, 0, FindByte([]byte("hello"), 'h'))
	assert.Equal(t, 4, FindByte([]byte("hello"), 'o'))
}

func TestFindByteTailBoundary(t *testing.T) {
	// exercise the scalar tail loop for lengths that straddle wordSize.
	for n := 0; n < 20; n++ {
		buf := make([]byte, n)
		for i := range buf {
			buf[i] = 'a'
		}
		if n > 0 {
			buf[n-1] = 'z'
		}
		assert.Equal(t, bytes.IndexByte(buf, 'z'), FindByte(buf, 'z'))
	}
}

func TestEqualMatchesStdlib(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for trial := 0; trial < 2000; trial++ {
		n := rnd.Intn(40)
		a := make([]byte, n)
		b := make([]byte, n)
		rnd.Read(a)
		copy(b, a)
		if n > 0 && rnd.Intn(3) == 0 {
			b[rnd.Intn(n)] ^= 0xFF
		}
		assert.Equal(t, bytes.Equal(a, b), Equal(a, b))
	}
}

func TestEqualDifferentLengths(t *testing.T) {
	assert.False(t, Equal([]byte("abc"), []byte("abcd")))
	assert.True(t, Equal(nil, nil))
	assert.True(t, Equal([]byte{}, []byte{}))
}
