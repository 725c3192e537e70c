package index

import (
	"io"

	"github.com/grailbio/fastgrep/buf"
	"github.com/grailbio/fastgrep/chunkio"
)

// BuildFromReader streams a newline-delimited dictionary out of r
// (spec.md §2: "built first from... a dictionary file, streamed through
// [the chunked reader]") and inserts each line into a fresh Trie.
func BuildFromReader(r io.Reader, caseInsensitive bool) (*Trie, error) {
	t := New(caseInsensitive)
	cr := chunkio.New(r, '\n')
	line := buf.NewBuffer(4096)
	for {
		v, err := cr.ReadLine(line)
		if err == io.EOF {
			return t, nil
		}
		if err != nil {
			return nil, err
		}
		t.Insert(v.Bytes())
	}
}

// BuildFromStrings builds a Trie from an in-memory keyword list
// (spec.md §2: "or from an in-memory list of substrings"), as used by
// repeated -s/--substring flags.
func BuildFromStrings(keywords []string, caseInsensitive bool) *Trie {
	t := New(caseInsensitive)
	for _, k := range keywords {
		t.Insert([]byte(k))
	}
	return t
}
