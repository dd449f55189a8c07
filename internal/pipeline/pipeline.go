// Package pipeline composes the normalizer, the lexical scanner, and the
// sandhi splitter into the full tokenization pipeline. Every run is a pure,
// finite function of its inputs with no shared state, so a Pipeline value
// may be used concurrently without coordination.
package pipeline

import (
	"github.com/example/go-sanskrit-tokenizer/internal/sandhi"
	"github.com/example/go-sanskrit-tokenizer/internal/scan"
	"github.com/example/go-sanskrit-tokenizer/internal/text"
)

// Options controls the pipeline stages. The zero value disables everything;
// use DefaultOptions for the documented defaults.
type Options struct {
	// Normalize applies canonical (NFC) Unicode normalization first.
	Normalize bool
	// StripDiacritics removes combining marks after normalization.
	StripDiacritics bool
	// ASCIIMap applies the fixed IAST→ASCII letter mapping. It runs after
	// stripping when both are set, where it is usually a no-op; it still
	// applies its table to letters stripping leaves untouched.
	ASCIIMap bool
	// SandhiSplit replaces each word token that has split candidates with
	// the best-ranked candidate's two fragments.
	SandhiSplit bool
	// MinPartLen is the minimum rune length of each sandhi fragment.
	MinPartLen int
}

// DefaultOptions returns the documented defaults: normalization on,
// everything else off, fragment minimum of two runes.
func DefaultOptions() Options {
	return Options{
		Normalize:  true,
		MinPartLen: sandhi.DefaultMinPartLen,
	}
}

// Pipeline runs text through normalization, scanning, and optional sandhi
// splitting under a fixed scanner policy. The zero value uses the default
// (Unicode word-class) policy.
type Pipeline struct {
	scanner scan.Scanner
}

// New returns a Pipeline whose scanner uses the given word-class policy.
func New(policy scan.Policy) Pipeline {
	return Pipeline{scanner: scan.Scanner{Policy: policy}}
}

// Run executes the pipeline and returns the ordered token sequence.
// Sandhi-split tokens expand in place into two adjacent entries; number,
// punctuation, and fallback tokens always pass through unchanged.
func Run(input string, opts Options) []string {
	return Pipeline{}.Run(input, opts)
}

// Run executes the pipeline with this Pipeline's scanner policy.
func (p Pipeline) Run(input string, opts Options) []string {
	if opts.Normalize {
		input = text.Normalize(input)
	}
	if opts.StripDiacritics {
		input = text.StripDiacritics(input)
	}
	if opts.ASCIIMap {
		input = text.TransliterateASCII(input)
	}

	tokens := p.scanner.Scan(input)
	if !opts.SandhiSplit {
		return tokens
	}

	minPartLen := opts.MinPartLen
	if minPartLen < 1 {
		minPartLen = sandhi.DefaultMinPartLen
	}

	expanded := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if scan.IsWord(tok) {
			if splits := sandhi.Splits(tok, minPartLen); len(splits) > 0 {
				best := splits[0]
				expanded = append(expanded, best.Left, best.Right)
				continue
			}
		}
		expanded = append(expanded, tok)
	}

	return expanded
}
