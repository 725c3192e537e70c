// Package config resolves the CLI surface of spec.md §6 into a single
// validated Options record (component I). Argument parsing itself is
// "trivial glue" per spec.md §1; Parse exists so cmd/fastgrep's main.go
// stays a thin caller of config.Parse + engine.Filter.Run, matching how
// every grailbio-bio cmd/bio-* binary keeps its main() to flag
// declarations and a handful of calls into library packages.
package config

import (
	"flag"
	"fmt"
	"strings"

	"github.com/grailbio/base/errors"
)

// Options is the resolved configuration record the core consumes.
type Options struct {
	CaseInsensitive bool
	Invert          bool
	OutputPath      string // "" => stdout, no progress reporting
	Substrings      []string
	DictPath        string // "" when Substrings is non-empty
	InputPath       string // "" => stdin
	DictStats       bool
	MaxLineBytes    int64 // 0 => unlimited
	Help            bool
}

type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }
func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// Parse declares fastgrep's flags on fs and resolves args into an
// Options record. When -h/--help is present, it returns an Options with
// Help set and no error; the caller is responsible for printing usage
// and exiting 0 (spec.md §6: "-h, --help: Print help and exit 0").
func Parse(fs *flag.FlagSet, args []string) (*Options, error) {
	var (
		caseInsensitive bool
		invert          bool
		output          string
		substrings      stringList
		dictStats       bool
		maxLineBytes    int64
		help            bool
	)
	fs.BoolVar(&caseInsensitive, "i", false, "case-insensitive matching")
	fs.BoolVar(&caseInsensitive, "case-insensitive", false, "case-insensitive matching")
	fs.BoolVar(&invert, "v", false, "emit lines that do not match")
	fs.BoolVar(&invert, "invert", false, "emit lines that do not match")
	fs.StringVar(&output, "o", "", "write matching lines to PATH instead of stdout")
	fs.StringVar(&output, "output", "", "write matching lines to PATH instead of stdout")
	fs.Var(&substrings, "s", "add STR to the in-memory dictionary (repeatable)")
	fs.Var(&substrings, "substring", "add STR to the in-memory dictionary (repeatable)")
	fs.BoolVar(&dictStats, "dict-stats", false, "log dictionary build diagnostics")
	fs.Int64Var(&maxLineBytes, "max-line-bytes", 0, "abort if a single line exceeds this many bytes (0 = unlimited)")
	fs.BoolVar(&help, "h", false, "print help and exit")
	fs.BoolVar(&help, "help", false, "print help and exit")

	if err := fs.Parse(args); err != nil {
		return nil, errors.E(errors.Invalid, err, "parse arguments")
	}
	if help {
		return &Options{Help: true}, nil
	}

	positional := fs.Args()
	opts := &Options{
		CaseInsensitive: caseInsensitive,
		Invert:          invert,
		OutputPath:      output,
		Substrings:      []string(substrings),
		DictStats:       dictStats,
		MaxLineBytes:    maxLineBytes,
	}

	if len(opts.Substrings) > 0 {
		if len(positional) > 1 {
			return nil, errors.E(errors.Invalid, fmt.Sprintf("unexpected extra arguments: %v", positional[1:]))
		}
		if len(positional) == 1 {
			opts.InputPath = positional[0]
		}
		return opts, nil
	}

	if len(positional) == 0 {
		return nil, errors.E(errors.Invalid, "missing dictionary file argument (or use -s/--substring)")
	}
	opts.DictPath = positional[0]
	switch len(positional) {
	case 1:
	case 2:
		opts.InputPath = positional[1]
	default:
		return nil, errors.E(errors.Invalid, fmt.Sprintf("unexpected extra arguments: %v", positional[2:]))
	}
	return opts, nil
}
