// Package token defines the normalized word unit consumed by the syllable
// counter, the frequency table and the statistics aggregator.
package token

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Token is a normalized word surface form: lower-cased, NFC-composed, with
// punctuation removed except apostrophes inside a word ("flamingo's").
type Token string

// String returns the token text.
func (t Token) String() string {
	return string(t)
}

// IsEmpty reports whether normalization left nothing behind.
func (t Token) IsEmpty() bool {
	return t == ""
}

// IsLexical reports whether the token contains at least one letter.
// Numerals and symbol-only tokens are non-lexical.
func (t Token) IsLexical() bool {
	for _, r := range string(t) {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// CharacterCount counts letters and digits, ignoring inner apostrophes.
func (t Token) CharacterCount() int {
	n := 0
	for _, r := range string(t) {
		if isWordRune(r) {
			n++
		}
	}
	return n
}

// Normalize turns a raw surface form into a Token.
func Normalize(raw string) Token {
	s := strings.ToLower(norm.NFC.String(raw))
	rs := []rune(s)

	var b strings.Builder
	b.Grow(len(s))
	for i, r := range rs {
		switch {
		case isWordRune(r):
			b.WriteRune(r)
		case isApostrophe(r):
			// kept only between two word characters
			if i > 0 && i < len(rs)-1 && isWordRune(rs[i-1]) && isWordRune(rs[i+1]) {
				b.WriteRune('\'')
			}
		}
	}
	return Token(b.String())
}

// NormalizeAll normalizes every surface form and drops the ones that end up
// empty (pure punctuation).
func NormalizeAll(raw []string) []Token {
	out := make([]Token, 0, len(raw))
	for _, r := range raw {
		if t := Normalize(r); !t.IsEmpty() {
			out = append(out, t)
		}
	}
	return out
}

// Sentences normalizes a pre-segmented document. Sentences that contain no
// tokens after normalization are kept as empty slices so sentence order is
// preserved; the aggregator decides whether they count.
func Sentences(raw [][]string) [][]Token {
	out := make([][]Token, len(raw))
	for i, s := range raw {
		out[i] = NormalizeAll(s)
	}
	return out
}

// Fold is the lookup key used by the word tables: trimmed, NFC-composed and
// lower-cased. Unlike Normalize it keeps punctuation, so multi-word table
// entries stay distinct.
func Fold(s string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(s)))
}

// StripAccents removes combining marks, folding "ruïne" to "ruine".
func StripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '’' || r == '`'
}
