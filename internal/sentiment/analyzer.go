// Package sentiment scores token sequences against a lexicon of word
// valences. The analyzer is an explicitly constructed collaborator of the
// tokenizer pipeline: build one once, pass it by reference to whatever
// consumer needs it. It holds no mutable state after construction and is
// safe for concurrent use.
package sentiment

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// ErrUnavailable reports that the lexicon dependency is missing and could
// not be provisioned. Tokenizer output is never affected by this condition.
var ErrUnavailable = errors.New("sentiment lexicon unavailable")

// Label is the polarity classification of a scored text.
type Label string

const (
	Positive Label = "positive"
	Negative Label = "negative"
	Neutral  Label = "neutral"
)

// Classification thresholds on the compound score.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// normalizationAlpha dampens the compound score toward (-1, 1):
// compound = sum / sqrt(sum² + alpha).
const normalizationAlpha = 15.0

// Result holds one scoring outcome.
type Result struct {
	Label    Label   `json:"label"`
	Compound float64 `json:"compound"`
	// Hits is the number of tokens found in the lexicon.
	Hits int `json:"hits"`
}

// Analyzer scores token sequences against a fixed lexicon.
type Analyzer struct {
	lexicon map[string]float64
}

// New loads a lexicon file and returns an analyzer over it.
func New(path string) (*Analyzer, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: no lexicon path configured", ErrUnavailable)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrUnavailable, path, err)
	}
	defer f.Close()

	return NewFromReader(f)
}

// NewFromReader parses a lexicon in the common tab-separated format
// (token, mean valence, remaining columns ignored). Blank lines, comment
// lines starting with '#', and malformed rows are skipped.
func NewFromReader(r io.Reader) (*Analyzer, error) {
	lexicon := make(map[string]float64)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			continue
		}
		valence, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			continue
		}
		lexicon[strings.ToLower(strings.TrimSpace(fields[0]))] = valence
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}
	if len(lexicon) == 0 {
		return nil, fmt.Errorf("%w: lexicon is empty", ErrUnavailable)
	}

	return &Analyzer{lexicon: lexicon}, nil
}

// Len returns the number of lexicon entries.
func (a *Analyzer) Len() int {
	return len(a.lexicon)
}

// Score filters tokens down to ASCII-alphabetic ones, sums their lexicon
// valences, and maps the normalized compound score to a polarity label:
// at least +0.05 is positive, at most -0.05 is negative, else neutral.
func (a *Analyzer) Score(tokens []string) Result {
	var sum float64
	hits := 0

	for _, tok := range tokens {
		if !isASCIIAlpha(tok) {
			continue
		}
		if valence, ok := a.lexicon[strings.ToLower(tok)]; ok {
			sum += valence
			hits++
		}
	}

	compound := 0.0
	if sum != 0 {
		compound = sum / math.Sqrt(sum*sum+normalizationAlpha)
	}

	label := Neutral
	switch {
	case compound >= positiveThreshold:
		label = Positive
	case compound <= negativeThreshold:
		label = Negative
	}

	return Result{Label: label, Compound: compound, Hits: hits}
}

// isASCIIAlpha reports whether s is non-empty and entirely ASCII letters.
func isASCIIAlpha(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return false
		}
	}
	return true
}
