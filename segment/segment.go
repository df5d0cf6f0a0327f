// Package segment splits mixed-content text into maximal runs of a
// single script/scheme category. Runs partition the input exactly: no
// gaps, no overlaps, original order. Digits, punctuation, whitespace,
// and unrecognized scripts form literal runs that pass through
// conversion unchanged.
package segment

import (
	"strings"

	"github.com/akshara/lipi/scheme"
	"github.com/akshara/lipi/script"
)

// Category classifies one run: a concrete scheme or the literal class.
type Category int

const (
	Literal Category = iota
	Devanagari
	Bengali
	IAST
	ITRANS
	SLP1
	HarvardKyoto
	Velthuis
)

var categoryNames = map[Category]string{
	Literal:      "Literal",
	Devanagari:   "Devanagari",
	Bengali:      "Bengali",
	IAST:         "IAST",
	ITRANS:       "ITRANS",
	SLP1:         "SLP1",
	HarvardKyoto: "HarvardKyoto",
	Velthuis:     "Velthuis",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "Literal"
}

// Scheme maps a category onto the scheme it converts under. Literal has
// no scheme and reports Unknown.
func (c Category) Scheme() scheme.Scheme {
	switch c {
	case Devanagari:
		return scheme.Devanagari
	case Bengali:
		return scheme.Bengali
	case IAST:
		return scheme.IAST
	case ITRANS:
		return scheme.ITRANS
	case SLP1:
		return scheme.SLP1
	case HarvardKyoto:
		return scheme.HarvardKyoto
	case Velthuis:
		return scheme.Velthuis
	}
	return scheme.Unknown
}

// CategoryOf is the inverse of Category.Scheme.
func CategoryOf(s scheme.Scheme) Category {
	switch s {
	case scheme.Devanagari:
		return Devanagari
	case scheme.Bengali:
		return Bengali
	case scheme.IAST:
		return IAST
	case scheme.ITRANS:
		return ITRANS
	case scheme.SLP1:
		return SLP1
	case scheme.HarvardKyoto:
		return HarvardKyoto
	case scheme.Velthuis:
		return Velthuis
	}
	return Literal
}

// Run is a maximal contiguous substring sharing one category. Offsets are
// byte positions into the original text; Text == original[Start:End].
type Run struct {
	Start, End int
	Category   Category
	Text       string
	// LowConfidence marks Latin runs whose scheme came from a fallback
	// rather than signature evidence.
	LowConfidence bool
}

// markerRunes are ASCII punctuation with scheme-level meaning in the
// romanizations (Velthuis dot prefixes, ITRANS tildes, avagraha
// apostrophes). They join a Latin run when a Latin letter is adjacent;
// otherwise they stay literal.
const markerRunes = ".~\"^'"

// runClass is the per-rune grouping key used before scheme sniffing.
type runClass int

const (
	classLiteral runClass = iota
	classLatin
	classDevanagari
	classBengali
	classOther // recognized non-target script; becomes Literal
)

// Segmenter converts text into runs. The zero value uses the package
// defaults (IAST fallback, minimum sniff length from package scheme).
type Segmenter struct {
	// Default is the scheme assumed for Latin spans with no detectable
	// signatures. Zero value means scheme.DefaultRoman.
	Default scheme.Scheme
}

// Segment splits text into its complete ordered run sequence.
func Segment(text string) []Run {
	return Segmenter{}.Segment(text)
}

// Segment walks the input once, grouping consecutive runes of the same
// class, then classifies each Latin group with the scheme sniffer. The
// sniffer runs once per group: a single run is assumed internally
// consistent, so the scheme cannot change mid-run.
func (sg Segmenter) Segment(text string) []Run {
	if text == "" {
		return nil
	}

	type span struct {
		start, end int
		class      runClass
	}
	var spans []span
	runes := []rune(text)
	offs := runeOffsets(text)

	latinLetter := func(i int) bool {
		if i < 0 || i >= len(runes) {
			return false
		}
		r := runes[i]
		return !strings.ContainsRune(markerRunes, r) && classOfRune(r) == classLatin
	}
	classAt := func(i int) runClass {
		r := runes[i]
		if strings.ContainsRune(markerRunes, r) {
			if markerAttaches(r, latinLetter(i-1), latinLetter(i+1)) {
				return classLatin
			}
			return classLiteral
		}
		return classOfRune(r)
	}

	cur := span{0, 0, classAt(0)}
	for i := 1; i < len(runes); i++ {
		c := classAt(i)
		if c == cur.class {
			continue
		}
		cur.end = offs[i]
		spans = append(spans, cur)
		cur = span{offs[i], 0, c}
	}
	cur.end = len(text)
	spans = append(spans, cur)

	runs := make([]Run, 0, len(spans))
	previous := scheme.Unknown
	for _, sp := range spans {
		sub := text[sp.start:sp.end]
		run := Run{Start: sp.start, End: sp.end, Text: sub}
		switch sp.class {
		case classDevanagari:
			run.Category = Devanagari
		case classBengali:
			run.Category = Bengali
		case classLatin:
			detected, det := scheme.SniffWithPrevious(sub, previous)
			if detected == scheme.DefaultRoman && det.LowConfidence && sg.Default.Roman() {
				detected = sg.Default
			}
			run.Category = CategoryOf(detected)
			run.LowConfidence = det.LowConfidence
			previous = detected
		default:
			run.Category = Literal
		}
		runs = append(runs, run)
	}
	return runs
}

// markerAttaches decides whether a marker rune joins the neighboring
// Latin run. Prefix markers (Velthuis dots and quotes, ITRANS tildes)
// need a following letter; "^" only ever follows one (ITRANS R^i); the
// avagraha apostrophe binds to a word on either side.
func markerAttaches(r rune, prevLatin, nextLatin bool) bool {
	switch r {
	case '.', '"', '~':
		return nextLatin
	case '^':
		return prevLatin
	case '\'':
		return prevLatin || nextLatin
	}
	return false
}

func classOfRune(r rune) runClass {
	switch script.Of(r) {
	case script.Latin:
		return classLatin
	case script.Devanagari:
		return classDevanagari
	case script.Bengali:
		return classBengali
	case script.Other:
		return classLiteral
	default:
		// Recognized script with no conversion table: keep the run
		// intact but pass it through untouched.
		return classOther
	}
}

// runeOffsets returns the byte offset of each rune in s.
func runeOffsets(s string) []int {
	offs := make([]int, 0, len(s))
	for i := range s {
		offs = append(offs, i)
	}
	return offs
}
