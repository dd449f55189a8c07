package text

import "strings"

// asciiMap maps IAST diacritic letters to plain ASCII approximations,
// both cases. Long vowels map to their short base letter (ā→a), retroflex
// and palatal consonants to their dental base (ṣ→s), visarga to h.
var asciiMap = map[rune]rune{
	'ā': 'a', 'ī': 'i', 'ū': 'u', 'ṛ': 'r', 'ṝ': 'r',
	'ḷ': 'l', 'ḹ': 'l',
	'ṅ': 'n', 'ñ': 'n', 'ṇ': 'n', 'ṣ': 's', 'ś': 's', 'ḥ': 'h',
	'ḍ': 'd', 'ṭ': 't', 'ṁ': 'm',
	'Ā': 'A', 'Ī': 'I', 'Ū': 'U', 'Ṛ': 'R', 'Ṝ': 'R',
	'Ḷ': 'L', 'Ḹ': 'L',
	'Ṅ': 'N', 'Ñ': 'N', 'Ṇ': 'N', 'Ṣ': 'S', 'Ś': 'S', 'Ḥ': 'H',
	'Ḍ': 'D', 'Ṭ': 'T', 'Ṁ': 'M',
}

// TransliterateASCII maps IAST letters to ASCII approximations using a fixed
// one-to-one table; runes without a mapping pass through unchanged. The
// function is driven by the table alone, so it is valid on text that still
// carries diacritics as well as on stripped text. When combined with
// StripDiacritics the stripping runs first, which leaves this step with
// little to do for most letters; callers keep that order anyway because the
// table also covers letters that do not decompose to a base-plus-mark pair.
func TransliterateASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if mapped, ok := asciiMap[r]; ok {
			b.WriteRune(mapped)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
