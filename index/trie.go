// Package index implements the arena trie that is fastgrep's core: an
// insert-only byte trie stored in a single contiguous node slice, with a
// 128-bit fast-reject bitmap on the head of every sibling list.
//
// The representation is grounded in circular.Bitmap's "row of machine
// words, population-tracked, Set/Clear via word|(1<<(col%BitsPerWord))"
// style (circular/bitmap.go), narrowed from a 2-D circular bitmap down
// to a fixed two-word bitmap per trie level, and in
// umi.NewSnapCorrector's "scan a newline-delimited byte blob once,
// build a lookup structure, never mutate it again" build-phase shape
// (umi/correction.go).
package index

import (
	"github.com/grailbio/fastgrep/buf"
	"github.com/grailbio/fastgrep/fold"
	"github.com/grailbio/fastgrep/simd"

	"blainsmith.com/go/seahash"
)

// chunkBuckets is K from spec.md §4.5: sibling lists are partitioned
// into this many chains, keyed by the byte's low bits, to bound
// expected chain length to n/K.
const chunkBuckets = 4

type nodeIndex int32

const nilNode nodeIndex = -1

// node is one trie node. label/leaf/child/next describe its place in
// the tree; chainHeads and bitmap are populated only while the node is
// serving as the head of a level's sibling list (the root, or a node
// reached via another node's child link).
type node struct {
	label      byte
	claimed    bool
	leaf       bool
	child      nodeIndex
	next       nodeIndex
	chainHeads [chunkBuckets]nodeIndex
	bitmap     [2]uint64
}

func newHeadPlaceholder() node {
	return node{
		child:      nilNode,
		next:       nilNode,
		chainHeads: [chunkBuckets]nodeIndex{nilNode, nilNode, nilNode, nilNode},
	}
}

// Trie is the insert-only dictionary index. The zero value is not
// usable; construct one with New.
type Trie struct {
	nodes           []node
	caseInsensitive bool

	// seen deduplicates exact-repeat keyword insertions by hash, with a
	// byte-equality check on any hash collision so a 64-bit hash
	// collision between two distinct keywords can never cause a
	// keyword to be silently dropped (spec.md §8 invariant 3 must hold
	// unconditionally, not "almost always").
	seen map[uint64][][]byte

	keywordCount int
	dupCount     int
	reallocCount int
}

// New returns an empty Trie. caseInsensitive must match the setting
// used when scanning lines against it: the trie itself does not fold
// case at lookup time, only at insertion time (fold.go documents why
// this is sufficient).
func New(caseInsensitive bool) *Trie {
	t := &Trie{
		caseInsensitive: caseInsensitive,
		seen:            make(map[uint64][][]byte),
	}
	t.nodes = append(t.nodes, newHeadPlaceholder()) // root at index 0
	return t
}

// CaseInsensitive reports whether the trie folds inserted keywords to
// lowercase before indexing them.
func (t *Trie) CaseInsensitive() bool { return t.caseInsensitive }

// KeywordCount returns the number of distinct keywords inserted.
func (t *Trie) KeywordCount() int { return t.keywordCount }

// DuplicateCount returns the number of insertions skipped because the
// exact same keyword (after case folding) had already been inserted.
func (t *Trie) DuplicateCount() int { return t.dupCount }

// NodeCount returns the arena's current size.
func (t *Trie) NodeCount() int { return len(t.nodes) }

// ReallocCount returns the number of times the arena's backing slice
// was reallocated during construction.
func (t *Trie) ReallocCount() int { return t.reallocCount }

func (t *Trie) alloc() nodeIndex {
	beforeCap := cap(t.nodes)
	t.nodes = append(t.nodes, newHeadPlaceholder())
	if cap(t.nodes) != beforeCap {
		t.reallocCount++
	}
	return nodeIndex(len(t.nodes) - 1)
}

// Insert adds keyword to the dictionary. Per spec.md §4.5: empty
// strings (after trimming) are ignored; a trailing '\n' then a trailing
// '\r' are stripped before insertion; if the trie is case-insensitive
// the keyword is lowercased through fold.Lower first. Re-inserting an
// identical keyword is idempotent and cheap (a hash-set probe, not a
// full trie walk).
func (t *Trie) Insert(keyword []byte) {
	v := buf.NewView(keyword).TrimTrailing('\n').TrimTrailing('\r')
	if v.Len() == 0 {
		return
	}
	raw := v.Bytes()
	if t.caseInsensitive {
		table := fold.Lower()
		lowered := make([]byte, len(raw))
		for i, c := range raw {
			lowered[i] = table[c]
		}
		raw = lowered
	}
	if t.markSeen(raw) {
		t.dupCount++
		return
	}
	t.insertBytes(raw)
	t.keywordCount++
}

// markSeen reports whether raw has already been inserted. If raw is
// new, it records a private copy of it, so raw may alias caller-owned
// memory (as it does in Insert's unmodified-case path).
func (t *Trie) markSeen(raw []byte) (dup bool) {
	h := seahash.Sum64(raw)
	for _, existing := range t.seen[h] {
		if simd.Equal(existing, raw) {
			return true
		}
	}
	owned := append([]byte(nil), raw...)
	t.seen[h] = append(t.seen[h], owned)
	return false
}

func (t *Trie) insertBytes(word []byte) {
	head := nodeIndex(0)
	last := len(word) - 1
	for i, c := range word {
		t.setBit(head, c)
		cur := t.claimOrFind(head, c)
		if i == last {
			t.nodes[cur].leaf = true
			return
		}
		if t.nodes[cur].child == nilNode {
			t.nodes[cur].child = t.alloc()
		}
		head = t.nodes[cur].child
	}
}

// claimOrFind implements step 2 of spec.md §4.5's insertion algorithm:
// reuse a matching sibling if one exists in byte c's bucket, otherwise
// claim the still-unclaimed head node (the level's very first byte), or
// failing that append a new node to the end of c's bucket chain.
func (t *Trie) claimOrFind(head nodeIndex, c byte) nodeIndex {
	bucket := nodeIndex(c & (chunkBuckets - 1))
	chainHead := t.nodes[head].chainHeads[bucket]

	var prev nodeIndex = nilNode
	cur := chainHead
	for cur != nilNode {
		if t.nodes[cur].label == c {
			return cur
		}
		prev = cur
		cur = t.nodes[cur].next
	}

	if !t.nodes[head].claimed {
		t.nodes[head].claimed = true
		t.nodes[head].label = c
		t.nodes[head].next = nilNode
		t.nodes[head].chainHeads[bucket] = head
		return head
	}

	newIdx := t.alloc()
	t.nodes[newIdx].label = c
	t.nodes[newIdx].claimed = true
	t.nodes[newIdx].next = nilNode
	if prev == nilNode {
		t.nodes[head].chainHeads[bucket] = newIdx
	} else {
		t.nodes[prev].next = newIdx
	}
	return newIdx
}

func (t *Trie) setBit(head nodeIndex, c byte) {
	idx := c & 127
	t.nodes[head].bitmap[idx/64] |= uint64(1) << (idx % 64)
}

func (t *Trie) testBit(head nodeIndex, c byte) bool {
	idx := c & 127
	return t.nodes[head].bitmap[idx/64]&(uint64(1)<<(idx%64)) != 0
}

// ContainsPrefixOf reports whether some non-empty prefix of v is a
// member of the dictionary (spec.md §4.5, shortest-prefix-match
// policy: a dictionary entry matches even if a longer entry also
// would).
func (t *Trie) ContainsPrefixOf(v buf.View) bool {
	if v.Len() == 0 {
		return false
	}
	head := nodeIndex(0)
	pos := 0
	n := v.Len()
	for {
		c := v.At(pos)
		if !t.testBit(head, c) {
			return false
		}
		bucket := c & (chunkBuckets - 1)
		cur := t.nodes[head].chainHeads[bucket]
		for cur != nilNode && t.nodes[cur].label != c {
			cur = t.nodes[cur].next
		}
		if cur == nilNode {
			return false
		}
		if t.nodes[cur].leaf {
			return true
		}
		pos++
		if pos >= n {
			return false
		}
		if t.nodes[cur].child == nilNode {
			return false
		}
		head = t.nodes[cur].child
	}
}

// ContainsAnywhere reports whether some substring of v (length >= 1) is
// a dictionary member: the anchored suffix scan of spec.md §4.5.
func (t *Trie) ContainsAnywhere(v buf.View) bool {
	n := v.Len()
	for i := 0; i < n; i++ {
		if t.ContainsPrefixOf(v.Suffix(i)) {
			return true
		}
	}
	return false
}
