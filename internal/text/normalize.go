// Package text provides Unicode normalization and IAST diacritic handling
// for the tokenizer pipeline. All functions are pure and total: any Unicode
// string is a valid input, and an empty string yields an empty result.
package text

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize applies canonical composition (NFC) to s.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// NormalizeForm applies the given Unicode normalization form to s.
// Use norm.NFKC when compatibility decomposition is wanted; Normalize
// covers the common case.
func NormalizeForm(s string, form norm.Form) string {
	return form.String(s)
}

// stripper decomposes to NFD, drops combining marks, and recomposes to NFC.
var stripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// StripDiacritics removes diacritics by canonical decomposition followed by
// dropping every combining mark, then recomposing. IAST letters lose their
// marks but keep their base Latin letter: "kṛṣṇa" becomes "krsna".
func StripDiacritics(s string) string {
	out, _, err := transform.String(stripper, s)
	if err != nil {
		// The chained transforms never fail on well-formed input; keep the
		// original text rather than dropping it.
		return s
	}
	return out
}
