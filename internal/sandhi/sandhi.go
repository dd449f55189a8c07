// Package sandhi proposes binary splits of a word token at plausible
// vowel/consonant boundaries. The rules approximate common Sanskrit sandhi
// joins by character class only; they are deliberately not real phonology
// and never consult a lexicon.
package sandhi

import "sort"

// DefaultMinPartLen is the minimum rune length of each split fragment.
const DefaultMinPartLen = 2

// visarga is the IAST letter ḥ (voiceless glottal fricative).
const visarga = 'ḥ'

// Reason labels the boundary rule that produced a candidate.
type Reason int

const (
	// VowelVowel: the left fragment ends and the right fragment starts
	// with a vowel.
	VowelVowel Reason = iota
	// VisargaOnset: the left fragment ends with visarga or plain "h" and
	// the right fragment starts with a vowel.
	VisargaOnset
	// ConsonantVowel: the left fragment ends with any other non-vowel and
	// the right fragment starts with a vowel.
	ConsonantVowel
)

func (r Reason) String() string {
	switch r {
	case VowelVowel:
		return "vowel+vowel"
	case VisargaOnset:
		return "visarga/h onset"
	default:
		return "consonant+vowel"
	}
}

// Candidate is one proposed split. Left+Right always reproduces the token
// the candidate was generated from.
type Candidate struct {
	Left   string
	Right  string
	Reason Reason
}

// vowels is the fixed IAST vowel set, short and long, both cases. The
// vocalic ḷ counts as a vowel here.
var vowels = map[rune]bool{
	'a': true, 'e': true, 'i': true, 'o': true, 'u': true,
	'ā': true, 'ī': true, 'ū': true, 'ṛ': true, 'ṝ': true, 'ḷ': true,
	'A': true, 'E': true, 'I': true, 'O': true, 'U': true,
	'Ā': true, 'Ī': true, 'Ū': true, 'Ṛ': true, 'Ṝ': true, 'Ḷ': true,
}

// IsVowel reports whether r is in the fixed IAST vowel set.
func IsVowel(r rune) bool {
	return vowels[r]
}

// Splits returns the ranked split candidates for token. Each fragment has
// at least minPartLen runes; a token shorter than 2*minPartLen yields no
// candidates. Results are deduplicated and ordered most-balanced first
// (ascending |len(Left)-len(Right)| in runes), with ties kept in split-index
// order. The function is pure: it never mutates its input and never fails.
//
// A boundary is a candidate exactly when the right fragment starts with a
// vowel. The rules classify it: vowel+vowel (Rule A), visarga/h onset
// (Rule C, checked before the generic consonant case so the label is
// reachable), consonant+vowel (Rule B). The trailing-vowel requirement
// applies to both the "ḥ" and the "h" form of Rule C.
func Splits(token string, minPartLen int) []Candidate {
	// Fragments are always non-empty, so a minimum below one is raised to
	// one rather than rejected.
	if minPartLen < 1 {
		minPartLen = 1
	}

	rs := []rune(token)
	n := len(rs)
	if n < minPartLen*2 {
		return nil
	}

	var candidates []Candidate
	seen := make(map[string]bool)

	for i := minPartLen; i <= n-minPartLen; i++ {
		left, right := rs[:i], rs[i:]
		reason, ok := classify(left, right)
		if !ok {
			continue
		}
		l, r := string(left), string(right)
		key := l + "\x00" + r
		if seen[key] {
			continue
		}
		seen[key] = true
		candidates = append(candidates, Candidate{Left: l, Right: r, Reason: reason})
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return balance(candidates[a]) < balance(candidates[b])
	})

	return candidates
}

// classify applies the boundary rules to a prospective split.
func classify(left, right []rune) (Reason, bool) {
	last := left[len(left)-1]
	first := right[0]

	if !vowels[first] {
		return 0, false
	}
	switch {
	case vowels[last]:
		return VowelVowel, true
	case last == visarga || last == 'h':
		return VisargaOnset, true
	default:
		return ConsonantVowel, true
	}
}

// balance is the ranking key: distance from a perfectly even split,
// measured in runes.
func balance(c Candidate) int {
	d := len([]rune(c.Left)) - len([]rune(c.Right))
	if d < 0 {
		d = -d
	}
	return d
}
