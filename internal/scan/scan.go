// Package scan implements the lexical scanner for mixed English/Sanskrit
// (IAST) text. A single left-to-right pass over code points skips whitespace
// and tries a fixed, ordered rule table — number, word, punctuation — at
// each position, with a single-rune fallback for anything no rule covers.
// Tokens carry no stored category; Classify re-derives it by re-matching
// the same rules.
package scan

import "unicode"

// Kind is the re-derivable category of a token.
type Kind int

const (
	Number Kind = iota
	Word
	Punct
	Fallback
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Word:
		return "word"
	case Punct:
		return "punct"
	default:
		return "fallback"
	}
}

// Policy selects the word-character classification used to negate the
// punctuation rule. Two published variants of the tokenizer differ only
// here, so both are expressed through one scanner.
type Policy int

const (
	// PolicyUnicode treats every Unicode letter, number, and the underscore
	// as a word character.
	PolicyUnicode Policy = iota
	// PolicyASCII treats only ASCII alphanumerics, the underscore, and the
	// two extended Latin ranges used by IAST as word characters. Letters
	// outside those ranges (e.g. Latin-1 "é") count as punctuation here.
	PolicyASCII
)

// isWordClass reports whether r is a word character under the policy.
// Used only by the punctuation rule's negation; the word pattern itself
// has a fixed letter set (see isWordLetter).
func (p Policy) isWordClass(r rune) bool {
	switch p {
	case PolicyASCII:
		return r == '_' ||
			(r >= '0' && r <= '9') ||
			(r >= 'A' && r <= 'Z') ||
			(r >= 'a' && r <= 'z') ||
			isExtendedLatin(r)
	default:
		return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
	}
}

// Scanner tokenizes text under a word-character policy.
// The zero value uses PolicyUnicode.
type Scanner struct {
	Policy Policy
}

// Scan splits text with the default (PolicyUnicode) scanner.
func Scan(text string) []string {
	return Scanner{}.Scan(text)
}

// Scan splits text into an ordered sequence of tokens. Whitespace runs are
// skipped and never emitted. Every iteration consumes at least one code
// point, so the scan terminates on any finite input, and concatenating the
// returned tokens reproduces the input minus the skipped whitespace.
func (s Scanner) Scan(text string) []string {
	rs := []rune(text)
	var tokens []string

	i := 0
	for i < len(rs) {
		if unicode.IsSpace(rs[i]) {
			i++
			continue
		}

		if end := matchNumber(rs, i); end > i {
			tokens = append(tokens, string(rs[i:end]))
			i = end
			continue
		}

		if end := matchWord(rs, i); end > i {
			tokens = append(tokens, string(rs[i:end]))
			i = end
			continue
		}

		// Punctuation rule matches exactly one rune; anything that slips
		// past it (a word-class rune no pattern consumed, e.g. "_") is
		// emitted as a single-rune fallback token. Either way the cursor
		// advances by one.
		tokens = append(tokens, string(rs[i]))
		i++
	}

	return tokens
}

// Classify re-derives the kind of a token produced by Scan by re-matching
// the rule table against the whole token.
func (s Scanner) Classify(token string) Kind {
	rs := []rune(token)
	if len(rs) == 0 {
		return Fallback
	}
	if matchNumber(rs, 0) == len(rs) {
		return Number
	}
	if matchWord(rs, 0) == len(rs) {
		return Word
	}
	if len(rs) == 1 && !unicode.IsSpace(rs[0]) && !s.Policy.isWordClass(rs[0]) {
		return Punct
	}
	return Fallback
}

// IsWord reports whether token fully matches the word pattern.
func IsWord(token string) bool {
	rs := []rune(token)
	return len(rs) > 0 && matchWord(rs, 0) == len(rs)
}

// isWordLetter is the fixed letter set of the word pattern: ASCII letters
// plus Latin Extended-A and Latin Extended Additional, which cover the IAST
// diacritic letters.
func isWordLetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') ||
		(r >= 'a' && r <= 'z') ||
		isExtendedLatin(r)
}

func isExtendedLatin(r rune) bool {
	return (r >= 0x0100 && r <= 0x024F) || (r >= 0x1E00 && r <= 0x1EFF)
}

// matchNumber matches one or more decimal digits, optionally followed by
// repeated groups of a single '.' or ',' plus more digits, starting at i.
// It returns the end of the match, or i when no digit starts there. A
// trailing separator with no digits after it is not consumed.
func matchNumber(rs []rune, i int) int {
	j := i
	for j < len(rs) && unicode.IsDigit(rs[j]) {
		j++
	}
	if j == i {
		return i
	}
	for j < len(rs) && (rs[j] == '.' || rs[j] == ',') {
		k := j + 1
		for k < len(rs) && unicode.IsDigit(rs[k]) {
			k++
		}
		if k == j+1 {
			break
		}
		j = k
	}
	return j
}

// matchWord matches one or more word letters, optionally followed by
// repeated groups of a hyphen or apostrophe plus more letters, starting
// at i. It returns the end of the match, or i when no letter starts there.
// A trailing hyphen or apostrophe with no letter after it is not consumed.
func matchWord(rs []rune, i int) int {
	j := i
	for j < len(rs) && isWordLetter(rs[j]) {
		j++
	}
	if j == i {
		return i
	}
	for j < len(rs) && (rs[j] == '-' || rs[j] == '\'') {
		k := j + 1
		for k < len(rs) && isWordLetter(rs[k]) {
			k++
		}
		if k == j+1 {
			break
		}
		j = k
	}
	return j
}
