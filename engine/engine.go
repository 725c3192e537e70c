// Package engine implements the line filter engine (component G): for
// every line read from a chunkio.Reader, it decides whether to emit the
// original, unmodified bytes based on an index.Trie lookup, optionally
// folding case for the comparison only.
package engine

import (
	"fmt"
	"io"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/fastgrep/buf"
	"github.com/grailbio/fastgrep/chunkio"
	"github.com/grailbio/fastgrep/fold"
	"github.com/grailbio/fastgrep/index"
	"github.com/grailbio/fastgrep/progress"
)

// Options controls the engine's matching behavior. It is the subset of
// config.Options the engine actually consumes.
type Options struct {
	CaseInsensitive bool
	Invert          bool
	Delim           byte  // defaults to '\n' if zero
	MaxLineBytes    int64 // 0 = unlimited (spec.md's default "unbounded line growth")
}

// Filter drives the read-match-emit loop described in spec.md §4.6.
type Filter struct {
	trie     *index.Trie
	opts     Options
	reporter *progress.Reporter
}

// New returns a Filter that matches lines against trie. reporter may be
// nil, in which case no progress is reported.
func New(trie *index.Trie, opts Options, reporter *progress.Reporter) *Filter {
	if opts.Delim == 0 {
		opts.Delim = '\n'
	}
	if reporter == nil {
		reporter = progress.New(io.Discard, false)
	}
	return &Filter{trie: trie, opts: opts, reporter: reporter}
}

// Run reads src to EOF and writes every line for which
// ContainsAnywhere(line) != Invert to dst, in input order, byte-for-byte
// including the terminating delimiter. totalBytes is the known size of
// src (0 if unknown, e.g. a pipe); it is passed straight through to the
// progress reporter. It returns the number of lines emitted.
func (f *Filter) Run(src io.Reader, dst io.Writer, totalBytes int64) (int64, error) {
	reader := chunkio.New(src, f.opts.Delim)
	line := buf.NewBuffer(4096)
	var shadow *buf.Buffer
	if f.opts.CaseInsensitive {
		shadow = buf.NewBuffer(4096)
	}

	var processed, emitted int64
	table := fold.Lower()
	for {
		v, err := reader.ReadLine(line)
		if err == io.EOF {
			break
		}
		if err != nil {
			return emitted, errors.E(err, "read input")
		}
		processed += int64(v.Len())
		if f.opts.MaxLineBytes > 0 && int64(v.Len()) > f.opts.MaxLineBytes {
			return emitted, errors.E(errors.Unknown, fmt.Sprintf(
				"line of %d bytes exceeds -max-line-bytes (%d)", v.Len(), f.opts.MaxLineBytes))
		}

		needle := v
		if f.opts.CaseInsensitive {
			needle = shadow.ToLower(v.Bytes(), table)
		}
		needle = needle.TrimTrailing('\n').TrimTrailing('\r')

		matched := f.trie.ContainsAnywhere(needle)
		if matched != f.opts.Invert {
			if _, werr := dst.Write(v.Bytes()); werr != nil {
				return emitted, errors.E(werr, "write output")
			}
			emitted++
		}
		f.reporter.Report(processed, totalBytes)
	}
	f.reporter.Finish(processed, totalBytes)
	return emitted, nil
}
