package fold

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLowerASCII(t *testing.T) {
	table := Lower()
	assert.Equal(t, byte('a'), table['A'])
	assert.Equal(t, byte('z'), table['Z'])
	assert.Equal(t, byte('a'), table['a'])
	assert.Equal(t, byte('0'), table['0'])
}

func TestLowerNonASCIIIdentity(t *testing.T) {
	table := Lower()
	for _, b := range []byte{0x80, 0xA0, 0xFF} {
		assert.Equal(t, b, table[b])
	}
}

func TestLowerIsSingleton(t *testing.T) {
	assert.Same(t, Lower(), Lower())
}
