// Package translit converts runs of text between transliteration schemes
// through a canonical phoneme representation. Each scheme contributes one
// phoneme-indexed table of surface encodings instead of pairwise
// conversion tables; converting A→B is decode-to-phonemes under A's table
// followed by re-encoding under B's.
package translit

import "github.com/akshara/lipi/scheme"

// Phoneme classes. Indices within a class are shared across every scheme
// table: consonant 0 is always k, vowel 1 is always ā, and so on.
type class int

const (
	clsVowel class = iota
	clsMark  // Brahmic dependent vowel sign for vowels[idx]
	clsConsonant
	clsYoga // anusvara, visarga, candrabindu
	clsVirama
	clsSymbol
	clsRaw // unmapped input carried through verbatim
)

const (
	nVowels     = 14 // a ā i ī u ū ṛ ṝ ḷ ḹ e ai o au
	nConsonants = 33 // k..ṅ c..ñ ṭ..ṇ t..n p..m y r l v ś ṣ s h
	nYogas      = 3  // ṃ ḥ m̐
	nSymbols    = 14 // oṃ avagraha danda double-danda digits 0-9
)

const (
	symOM = iota
	symAvagraha
	symDanda
	symDoubleDanda
	symDigit0 // symDigit0+d for digit d
)

// Canonical positions referenced by name outside the tables.
const (
	vowO         = 12 // o in the vowel order a ā i ī u ū ṛ ṝ ḷ ḹ e ai o au
	yogaAnusvara = 0
)

// unit is one element of the canonical phoneme stream.
type unit struct {
	cls class
	idx int
	raw string // only for clsRaw
}

// token is a decodable surface string's meaning within one scheme.
type token struct {
	cls class
	idx int
}

// table holds one scheme's surface encodings, indexed by canonical
// phoneme position. Element 0 of each slice is the primary (emitted)
// form; the rest are accepted on decode only.
type table struct {
	scheme   scheme.Scheme
	roman    bool
	foldCase bool // lowercase before decoding (IAST, Velthuis)

	vowels     [nVowels][]string
	marks      [nVowels - 1]string // marks[i] encodes vowels[i+1]; Brahmic only
	consonants [nConsonants][]string
	yogas      [nYogas][]string
	virama     string // Brahmic only
	symbols    [nSymbols][]string

	decode   map[string]token
	maxToken int // longest surface form in bytes
}

// build populates the decode map. Registration order resolves surface
// collisions: the first class/index to claim a form keeps it (Bengali ব
// decodes as b, never v).
func (t *table) build() {
	t.decode = make(map[string]token)
	reg := func(form string, tok token) {
		if form == "" {
			return
		}
		if _, taken := t.decode[form]; taken {
			return
		}
		t.decode[form] = tok
		if len(form) > t.maxToken {
			t.maxToken = len(form)
		}
	}
	for i, forms := range t.consonants {
		for _, f := range forms {
			reg(f, token{clsConsonant, i})
		}
	}
	for i, forms := range t.vowels {
		for _, f := range forms {
			reg(f, token{clsVowel, i})
		}
	}
	for i, forms := range t.yogas {
		for _, f := range forms {
			reg(f, token{clsYoga, i})
		}
	}
	for i, forms := range t.symbols {
		for _, f := range forms {
			reg(f, token{clsSymbol, i})
		}
	}
	if !t.roman {
		for i, f := range t.marks {
			reg(f, token{clsMark, i})
		}
		reg(t.virama, token{clsVirama, 0})
	}
}

// next returns the longest token matching the head of s, or ok=false when
// no surface form matches.
func (t *table) next(s string) (tok token, n int, ok bool) {
	max := t.maxToken
	if max > len(s) {
		max = len(s)
	}
	for n = max; n > 0; n-- {
		if tok, ok = t.decode[s[:n]]; ok {
			return tok, n, true
		}
	}
	return token{}, 0, false
}

// surface returns the primary encoding of a canonical unit, with ok=false
// when the scheme has no equivalent.
func (t *table) surface(u unit) (string, bool) {
	pick := func(forms []string) (string, bool) {
		if len(forms) == 0 || forms[0] == "" {
			return "", false
		}
		return forms[0], true
	}
	switch u.cls {
	case clsVowel:
		return pick(t.vowels[u.idx])
	case clsConsonant:
		return pick(t.consonants[u.idx])
	case clsYoga:
		return pick(t.yogas[u.idx])
	case clsSymbol:
		return pick(t.symbols[u.idx])
	}
	return "", false
}
