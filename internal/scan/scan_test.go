package scan

import (
	"reflect"
	"strings"
	"testing"
	"unicode"
)

func TestScan_Tokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "words and sentence punctuation",
			input: "aham vande gurūn.",
			want:  []string{"aham", "vande", "gurūn", "."},
		},
		{
			name:  "numbers keep internal separators",
			input: "3.14 and 1,234 guys",
			want:  []string{"3.14", "and", "1,234", "guys"},
		},
		{
			name:  "trailing separator not absorbed into number",
			input: "3. 1,",
			want:  []string{"3", ".", "1", ","},
		},
		{
			name:  "grouped thousands",
			input: "1,234,567",
			want:  []string{"1,234,567"},
		},
		{
			name:  "hyphenated word is one token",
			input: "śiva-līlā at the temple.",
			want:  []string{"śiva-līlā", "at", "the", "temple", "."},
		},
		{
			name:  "apostrophe word is one token",
			input: "so'ham asmi",
			want:  []string{"so'ham", "asmi"},
		},
		{
			name:  "trailing hyphen not absorbed into word",
			input: "rāma- ca",
			want:  []string{"rāma", "-", "ca"},
		},
		{
			name:  "digits never absorbed into words",
			input: "guru2guru",
			want:  []string{"guru", "2", "guru"},
		},
		{
			name:  "leading digit starts a number token",
			input: "2guru",
			want:  []string{"2", "guru"},
		},
		{
			name:  "mixed punctuation",
			input: "namaste! (dharma, karma)",
			want:  []string{"namaste", "!", "(", "dharma", ",", "karma", ")"},
		},
		{
			name:  "underscore falls through to single token",
			input: "a_b",
			want:  []string{"a", "_", "b"},
		},
		{
			name:  "whitespace only",
			input: " \t\n ",
			want:  nil,
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Scan(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Scan(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Concatenated tokens must reproduce the input with every whitespace rune
// removed: the scanner loses nothing else.
func TestScan_Lossless(t *testing.T) {
	inputs := []string{
		"aham vande gurūn. kṛṣṇaḥ paṭhan.",
		"namaste! this is a mixed english-sanskrit sentence: dharma, karma, mokṣa.",
		"rāmaś candramāsaḥ -> rāma ś candramāsaḥ (example with visarga).",
		"3.14 and 1,234 guys",
		"tabs\tand\nnewlines",
		"__weird__ 12,34.56.x",
		"",
	}

	for _, s := range inputs {
		tokens := Scan(s)
		joined := strings.Join(tokens, "")

		var stripped strings.Builder
		for _, r := range s {
			if !unicode.IsSpace(r) {
				stripped.WriteRune(r)
			}
		}

		if joined != stripped.String() {
			t.Errorf("Scan(%q) lossy: rejoined %q, want %q", s, joined, stripped.String())
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		token string
		want  Kind
	}{
		{"3.14", Number},
		{"1,234,567", Number},
		{"7", Number},
		{"gurūn", Word},
		{"śiva-līlā", Word},
		{"so'ham", Word},
		{".", Punct},
		{"(", Punct},
		{"_", Fallback},
		{"", Fallback},
		{"3.", Fallback}, // never produced by Scan, but classifiable
	}

	var s Scanner
	for _, tt := range tests {
		if got := s.Classify(tt.token); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}

// The two word-class policies diverge only on letters outside the word
// pattern's ranges: Latin-1 é is a fallback under PolicyUnicode but
// punctuation under PolicyASCII. Scan output is identical either way.
func TestPolicy_Divergence(t *testing.T) {
	const tok = "é"

	if got := (Scanner{Policy: PolicyUnicode}).Classify(tok); got != Fallback {
		t.Errorf("PolicyUnicode Classify(%q) = %v, want %v", tok, got, Fallback)
	}
	if got := (Scanner{Policy: PolicyASCII}).Classify(tok); got != Punct {
		t.Errorf("PolicyASCII Classify(%q) = %v, want %v", tok, got, Punct)
	}

	input := "café 42!"
	a := Scanner{Policy: PolicyUnicode}.Scan(input)
	b := Scanner{Policy: PolicyASCII}.Scan(input)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("policies changed scan output: %q vs %q", a, b)
	}
}

func TestIsWord(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"gurūn", true},
		{"śiva-līlā", true},
		{"so'ham", true},
		{"3.14", false},
		{"rāma-", false},
		{"", false},
		{".", false},
	}

	for _, tt := range tests {
		if got := IsWord(tt.token); got != tt.want {
			t.Errorf("IsWord(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}
