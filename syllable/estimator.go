package syllable

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// diaeresis is the combining mark Dutch uses to force a vowel into a new
// syllable (ruïne, beëindigen, coördinatie).
const diaeresis = '\u0308'

// Vowel graphemes that are pronounced as a single nucleus. Any other run of
// adjacent vowels is split into one nucleus per vowel.
var (
	dutchTrigraphs = []string{"aai", "ooi", "oei", "eeu", "ieu"}
	dutchDigraphs  = []string{
		"aa", "ee", "oo", "uu",
		"ie", "ei", "ij", "ui", "ou", "eu", "oe", "au",
		"ey", "uy", "ay", "oy",
	}
)

// Estimate is the result of the vowel-cluster heuristic.
type Estimate struct {
	Syllables int
	// NonLexical marks tokens without a single letter (numerals, symbols).
	NonLexical bool
}

// Estimator approximates syllable counts for words the dictionary does not
// know. It holds no mutable state; one value can serve any number of
// goroutines.
type Estimator struct {
	graphemes map[string]struct{}
	longest   int
}

// NewEstimator returns an estimator loaded with the Dutch vowel graphemes.
func NewEstimator() *Estimator {
	e := &Estimator{graphemes: make(map[string]struct{})}
	for _, g := range append(append([]string{}, dutchTrigraphs...), dutchDigraphs...) {
		e.graphemes[g] = struct{}{}
		if len(g) > e.longest {
			e.longest = len(g)
		}
	}
	return e
}

// Estimate counts the syllables of word:
//
//  1. split the word into vowel clusters (maximal runs of a, e, i, o, u, y
//     and their accented forms, plus the j of "ij");
//  2. within a cluster, known digraphs and trigraphs ("ij", "ei", "ui", "ou",
//     "eu", "oe", "ie", "aai", ...) merge into one nucleus, other adjacent
//     vowels and any vowel carrying a diaeresis start a new one, so a
//     cluster is not always one syllable (ra-di-o, the-a-ter);
//  3. a word without nuclei counts as 1.
//
// A trailing e is not treated as silent. Tokens without letters return 1 and
// are flagged NonLexical.
func (e *Estimator) Estimate(word string) Estimate {
	letters := decompose(word)
	lexical := false
	for _, l := range letters {
		if l.letter {
			lexical = true
			break
		}
	}
	if !lexical {
		return Estimate{Syllables: 1, NonLexical: true}
	}

	n := e.nuclei(letters)
	if n < 1 {
		n = 1
	}
	return Estimate{Syllables: n}
}

// Nuclei returns the raw number of vowel nuclei without the floor of one.
// Compound tails such as "'s" or "t" legitimately contribute nothing.
func (e *Estimator) Nuclei(word string) int {
	return e.nuclei(decompose(word))
}

func (e *Estimator) nuclei(letters []letter) int {
	count := 0
	for _, cluster := range vowelClusters(letters) {
		count += e.segment(cluster)
	}
	return count
}

// segment counts the nuclei of one vowel cluster with a greedy longest match
// over the known graphemes.
func (e *Estimator) segment(cluster []letter) int {
	n := 0
	for i := 0; i < len(cluster); {
		i += e.graphemeLen(cluster[i:])
		n++
	}
	return n
}

func (e *Estimator) graphemeLen(rest []letter) int {
	for size := min(e.longest, len(rest)); size > 1; size-- {
		if breaksAt(rest[:size]) {
			continue
		}
		var b strings.Builder
		for _, l := range rest[:size] {
			b.WriteRune(l.base)
		}
		if _, ok := e.graphemes[b.String()]; ok {
			return size
		}
	}
	return 1
}

// breaksAt reports whether a diaeresis inside the candidate forces a split.
func breaksAt(candidate []letter) bool {
	for _, l := range candidate[1:] {
		if l.diaeresis {
			return true
		}
	}
	return false
}

type letter struct {
	base      rune
	diaeresis bool
	letter    bool
}

// decompose lower-cases word and reduces every rune to its base letter,
// remembering whether it carried a diaeresis.
func decompose(word string) []letter {
	out := make([]letter, 0, len(word))
	for _, r := range norm.NFC.String(strings.ToLower(word)) {
		d := []rune(norm.NFD.String(string(r)))
		l := letter{base: d[0], letter: unicode.IsLetter(r)}
		for _, m := range d[1:] {
			if m == diaeresis {
				l.diaeresis = true
			}
		}
		out = append(out, l)
	}
	return out
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// vowelClusters returns the maximal vowel runs of letters. A word-initial y
// before a vowel is a consonant (yoghurt), and a j directly after an i
// belongs to the "ij" vowel.
func vowelClusters(letters []letter) [][]letter {
	var clusters [][]letter
	start := -1
	for i, l := range letters {
		vowel := isVowel(l.base)
		switch {
		case l.base == 'y' && i == 0 && i+1 < len(letters) && isVowel(letters[i+1].base):
			vowel = false
		case l.base == 'j' && i > 0 && letters[i-1].base == 'i' && start >= 0:
			vowel = true
		}

		if vowel && start < 0 {
			start = i
		}
		if !vowel && start >= 0 {
			clusters = append(clusters, letters[start:i])
			start = -1
		}
	}
	if start >= 0 {
		clusters = append(clusters, letters[start:])
	}
	return clusters
}
