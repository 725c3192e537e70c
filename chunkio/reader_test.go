package chunkio

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/grailbio/fastgrep/buf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAllLines(t *testing.T, r *Reader) []string {
	t.Helper()
	var out []string
	line := buf.NewBuffer(64)
	for {
		v, err := r.ReadLine(line)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		out = append(out, string(v.Bytes()))
	}
	return out
}

func TestReadLineBasic(t *testing.T) {
	r := NewSize(strings.NewReader("foo\nbar\nbaz\n"), '\n', 4)
	lines := readAllLines(t, r)
	assert.Equal(t, []string{"foo\n", "bar\n", "baz\n"}, lines)
}

func TestReadLineNoTrailingDelimiter(t *testing.T) {
	r := NewSize(strings.NewReader("foo\nbar"), '\n', 4)
	lines := readAllLines(t, r)
	assert.Equal(t, []string{"foo\n", "bar"}, lines)
}

func TestReadLineLongerThanBuffer(t *testing.T) {
	long := strings.Repeat("x", 100) + "\n"
	r := NewSize(strings.NewReader(long+"short\n"), '\n', 8)
	lines := readAllLines(t, r)
	assert.Equal(t, []string{long, "short\n"}, lines)
}

func TestReadLineEmptyInput(t *testing.T) {
	r := NewSize(strings.NewReader(""), '\n', 8)
	line := buf.NewBuffer(8)
	_, err := r.ReadLine(line)
	assert.Equal(t, io.EOF, err)
}

func TestReadLineRepeatedEOFIsStable(t *testing.T) {
	r := NewSize(strings.NewReader("one\n"), '\n', 8)
	line := buf.NewBuffer(8)
	v, err := r.ReadLine(line)
	require.NoError(t, err)
	assert.Equal(t, "one\n", string(v.Bytes()))
	for i := 0; i < 3; i++ {
		_, err := r.ReadLine(line)
		assert.Equal(t, io.EOF, err)
	}
}

func TestReadLinePreservesEmbeddedNUL(t *testing.T) {
	data := []byte("a\x00b\n")
	r := NewSize(bytes.NewReader(data), '\n', 2)
	line := buf.NewBuffer(2)
	v, err := r.ReadLine(line)
	require.NoError(t, err)
	assert.Equal(t, data, v.Bytes())
}

func TestReadLineCRLFPreserved(t *testing.T) {
	r := NewSize(strings.NewReader("alpha\r\nbeta\r\n"), '\n', 16)
	lines := readAllLines(t, r)
	assert.Equal(t, []string{"alpha\r\n", "beta\r\n"}, lines)
}
