package index

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/grailbio/fastgrep/buf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contains(t *Trie, s string) bool {
	return t.ContainsAnywhere(buf.NewView([]byte(s)))
}

func prefixOf(t *Trie, s string) bool {
	return t.ContainsPrefixOf(buf.NewView([]byte(s)))
}

func TestInsertAndContainsPrefixOf(t *testing.T) {
	tr := New(false)
	tr.Insert([]byte("foo"))
	tr.Insert([]byte("bar"))
	assert.True(t, prefixOf(tr, "foo"))
	assert.True(t, prefixOf(tr, "foobar")) // shortest-prefix match
	assert.True(t, prefixOf(tr, "bar"))
	assert.False(t, prefixOf(tr, "baz"))
	assert.False(t, prefixOf(tr, "fo"))
}

func TestContainsAnywhereScansAllSuffixes(t *testing.T) {
	tr := New(false)
	tr.Insert([]byte("foo"))
	tr.Insert([]byte("bar"))
	assert.True(t, contains(tr, "afoo"))
	assert.True(t, contains(tr, "XbarY"))
	assert.False(t, contains(tr, "baz"))
}

func TestEmptyDictionary(t *testing.T) {
	tr := New(false)
	assert.False(t, contains(tr, "anything"))
	assert.False(t, contains(tr, ""))
}

func TestEmptyKeywordsIgnored(t *testing.T) {
	tr := New(false)
	tr.Insert([]byte(""))
	tr.Insert([]byte("\n"))
	tr.Insert([]byte("\r\n"))
	assert.Equal(t, 0, tr.KeywordCount())
	assert.False(t, contains(tr, "\r\n"))
}

func TestInsertStripsTrailingCRLF(t *testing.T) {
	tr := New(false)
	tr.Insert([]byte("beta\r\n"))
	assert.True(t, prefixOf(tr, "beta"))
}

func TestInsertionIsIdempotent(t *testing.T) {
	tr := New(false)
	tr.Insert([]byte("dup"))
	tr.Insert([]byte("dup"))
	tr.Insert([]byte("dup"))
	assert.Equal(t, 1, tr.KeywordCount())
	assert.Equal(t, 2, tr.DuplicateCount())
	assert.True(t, prefixOf(tr, "dup"))
}

func TestCaseInsensitiveFoldsBothSides(t *testing.T) {
	tr := New(true)
	tr.Insert([]byte("FOO"))
	lowered := strings.ToLower("FOO")
	assert.True(t, prefixOf(tr, lowered))
}

func TestNonASCIICompareByRawValue(t *testing.T) {
	tr := New(true)
	tr.Insert([]byte{0xC9, 0x41}) // non-ASCII byte, then 'A'
	assert.True(t, prefixOf(tr, string([]byte{0xC9, 0x61})))
	assert.False(t, prefixOf(tr, string([]byte{0xE9, 0x61})))
}

func TestKeywordLongerThanLineDoesNotMatch(t *testing.T) {
	tr := New(false)
	tr.Insert([]byte("averylongkeyword"))
	assert.False(t, contains(tr, "short"))
}

func TestKeywordAtLineBoundaries(t *testing.T) {
	tr := New(false)
	tr.Insert([]byte("a"))
	tr.Insert([]byte("z"))
	assert.True(t, contains(tr, "aXXXX"))
	assert.True(t, contains(tr, "XXXXz"))
}

func TestBitmapCollisionResolvedByChainWalk(t *testing.T) {
	// 'A' (0x41) and 0xC1 collide under &127; the chain walk must still
	// disambiguate them correctly.
	tr := New(false)
	tr.Insert([]byte{0xC1, 'x'})
	assert.True(t, prefixOf(tr, string([]byte{0xC1, 'x'})))
	assert.False(t, prefixOf(tr, string([]byte{'A', 'x'})))
}

func TestGrowthAcrossReallocationsPreservesLookups(t *testing.T) {
	tr := New(false)
	var keywords []string
	rnd := rand.New(rand.NewSource(3))
	for i := 0; i < 5000; i++ {
		k := fmt.Sprintf("kw%d-%x", i, rnd.Int63())
		keywords = append(keywords, k)
		tr.Insert([]byte(k))
	}
	require.Greater(t, tr.ReallocCount(), 0)
	for _, k := range keywords {
		assert.True(t, prefixOf(tr, k), "missing keyword %q after growth", k)
	}
}

func TestRandomDictionaryAllMembersFindable(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	alphabet := []byte("abcdefgh")
	tr := New(false)
	seen := map[string]bool{}
	for i := 0; i < 2000; i++ {
		n := rnd.Intn(6) + 1
		b := make([]byte, n)
		for j := range b {
			b[j] = alphabet[rnd.Intn(len(alphabet))]
		}
		s := string(b)
		seen[s] = true
		tr.Insert(b)
	}
	for s := range seen {
		assert.True(t, prefixOf(tr, s), "missing %q", s)
	}
	assert.False(t, contains(tr, "zzzzzzzzzzzz"))
}
