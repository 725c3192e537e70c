/*
fastgrep filters lines from an input stream against a dictionary of
literal substrings, the way grep -F does, but built around an in-memory
trie so the dictionary can hold millions of entries.

Usage:

	fastgrep [OPTIONS] DICTFILE [FILE]
	fastgrep [OPTIONS] -s STR [-s STR ...] [FILE]

FILE defaults to stdin. DICTFILE and FILE may be local paths, s3://
paths, or end in .gz/.xz for transparent decompression (DICTFILE and
FILE only; -o output is always written uncompressed).
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/fastgrep/config"
	"github.com/grailbio/fastgrep/engine"
	"github.com/grailbio/fastgrep/index"
	"github.com/grailbio/fastgrep/ioxform"
	"github.com/grailbio/fastgrep/progress"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS] DICTFILE [FILE]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "       %s [OPTIONS] -s STR [-s STR ...] [FILE]\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	shutdown := grail.Init()
	defer shutdown()

	opts, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Error.Printf("%v", err)
		usage()
		os.Exit(exitCode(err))
	}
	if opts.Help {
		usage()
		return
	}

	ctx := vcontext.Background()
	if err := run(ctx, opts); err != nil {
		log.Error.Printf("%v", err)
		os.Exit(exitCode(err))
	}
}

// run builds the dictionary, opens the input and output streams, and
// drives the engine. It is separated from main so error paths return
// instead of calling os.Exit directly.
func run(ctx context.Context, opts *config.Options) error {
	trie, err := buildDictionary(ctx, opts)
	if err != nil {
		return err
	}
	if opts.DictStats {
		log.Debug.Printf("dictionary: %d keywords, %d duplicates, %d nodes, %d arena reallocations",
			trie.KeywordCount(), trie.DuplicateCount(), trie.NodeCount(), trie.ReallocCount())
	}

	inPath := opts.InputPath
	if inPath == "" {
		inPath = "-"
	}
	src, totalBytes, err := openInput(ctx, inPath)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, showProgress, err := openOutput(ctx, opts.OutputPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	reporter := progress.New(os.Stderr, showProgress)
	f := engine.New(trie, engine.Options{
		CaseInsensitive: opts.CaseInsensitive,
		Invert:          opts.Invert,
		MaxLineBytes:    opts.MaxLineBytes,
	}, reporter)

	_, err = f.Run(src, dst, totalBytes)
	return err
}

func buildDictionary(ctx context.Context, opts *config.Options) (*index.Trie, error) {
	if len(opts.Substrings) > 0 {
		return index.BuildFromStrings(opts.Substrings, opts.CaseInsensitive), nil
	}
	dictSrc, err := ioxform.Open(ctx, opts.DictPath)
	if err != nil {
		return nil, errors.E(err, "open dictionary", opts.DictPath)
	}
	defer dictSrc.Close()
	return index.BuildFromReader(dictSrc, opts.CaseInsensitive)
}

// inputSource unifies os.Stdin and an ioxform.Source behind a single
// Close-ing reader, so callers can always defer Close.
type inputSource struct {
	r     io.Reader
	close func() error
}

func (s *inputSource) Read(p []byte) (int, error) { return s.r.Read(p) }
func (s *inputSource) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

func openInput(ctx context.Context, path string) (*inputSource, int64, error) {
	if path == "-" {
		return &inputSource{r: os.Stdin}, 0, nil
	}
	src, err := ioxform.Open(ctx, path)
	if err != nil {
		return nil, 0, err
	}
	return &inputSource{r: src, close: src.Close}, src.TotalBytes, nil
}

type outputSink struct {
	w     io.Writer
	close func() error
}

func (s *outputSink) Write(p []byte) (int, error) { return s.w.Write(p) }
func (s *outputSink) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// openOutput returns the destination writer and whether progress should
// be reported. Per spec.md §6, progress is a byproduct of -o/--output
// (it would otherwise interleave with the matched lines themselves on
// stdout) and is only worth drawing when stderr, where it's written, is
// an interactive tty rather than a redirected file or pipe.
func openOutput(ctx context.Context, path string) (*outputSink, bool, error) {
	if path == "" {
		return &outputSink{w: os.Stdout}, false, nil
	}
	sink, err := ioxform.Create(ctx, path)
	if err != nil {
		return nil, false, err
	}
	return &outputSink{w: sink, close: sink.Close}, progress.IsTerminal(os.Stderr), nil
}

// exitCode maps an error's Kind to a process exit status: usage errors
// and missing files are distinguished from generic failures so scripts
// can branch on them.
func exitCode(err error) int {
	e, ok := err.(*errors.Error)
	if !ok {
		return 1
	}
	switch e.Kind {
	case errors.NotExist:
		return 2
	case errors.Invalid:
		return 3
	default:
		return 1
	}
}
