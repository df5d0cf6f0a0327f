// Package script identifies the dominant Unicode script of a text span
// using code-point range heuristics. Classification is a pure function of
// the input; no detection state is carried between calls.
package script

import "unicode"

// Script identifies a writing system recognized by the classifier.
type Script int

const (
	// Other covers spans with no alphabetic characters or with a dominant
	// script outside the recognized set. Upstream treats such spans as
	// literal passthrough.
	Other Script = iota
	Devanagari
	Bengali
	Gujarati
	Oriya
	Tamil
	Telugu
	Kannada
	Malayalam
	Arabic
	Hebrew
	Latin
)

var scriptNames = map[Script]string{
	Other:      "Other",
	Devanagari: "Devanagari",
	Bengali:    "Bengali",
	Gujarati:   "Gujarati",
	Oriya:      "Oriya",
	Tamil:      "Tamil",
	Telugu:     "Telugu",
	Kannada:    "Kannada",
	Malayalam:  "Malayalam",
	Arabic:     "Arabic",
	Hebrew:     "Hebrew",
	Latin:      "Latin",
}

func (s Script) String() string {
	if name, ok := scriptNames[s]; ok {
		return name
	}
	return "Other"
}

// blockRange is an inclusive Unicode code-point interval.
type blockRange struct {
	script Script
	lo, hi rune
}

// Tie-break priority follows declaration order: the first listed script
// wins when counts are equal.
var blocks = []blockRange{
	{Devanagari, 0x0900, 0x097F},
	{Bengali, 0x0980, 0x09FF},
	{Gujarati, 0x0A80, 0x0AFF},
	{Oriya, 0x0B00, 0x0B7F},
	{Tamil, 0x0B80, 0x0BFF},
	{Telugu, 0x0C00, 0x0C7F},
	{Kannada, 0x0C80, 0x0CFF},
	{Malayalam, 0x0D00, 0x0D7F},
	{Arabic, 0x0600, 0x06FF},
	{Hebrew, 0x0590, 0x05FF},
}

// Of returns the script of a single code point, or Other when the rune
// falls outside every recognized block. Combining diacritical marks
// (U+0300..U+036F) report Latin so that decomposed romanization input
// stays inside its Latin run.
func Of(r rune) Script {
	for _, b := range blocks {
		if r >= b.lo && r <= b.hi {
			return b.script
		}
	}
	if isLatin(r) {
		return Latin
	}
	return Other
}

func isLatin(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		return true
	case r >= 0x00C0 && r <= 0x024F && unicode.IsLetter(r): // Latin-1 Supplement through Latin Extended-B
		return true
	case r >= 0x1E00 && r <= 0x1EFF: // Latin Extended Additional (IAST underdot letters)
		return true
	case r >= 0x0300 && r <= 0x036F: // combining marks used by decomposed IAST
		return true
	}
	return false
}

// Alphabetic reports whether the rune counts toward script plurality.
// Digits, punctuation, and whitespace never do; Brahmic dependent signs
// (matras, virama, anusvara) do, since they only occur inside words.
func Alphabetic(r rune) bool {
	s := Of(r)
	if s == Other {
		return false
	}
	if s == Latin {
		return true
	}
	// Inside a Brahmic block, script-local digits and dandas are not
	// alphabetic; they ride along as symbols of the surrounding run.
	return unicode.IsLetter(r) || unicode.IsMark(r)
}

// Classify returns the plurality script among the span's alphabetic code
// points. Ties resolve in block-declaration priority order (Devanagari
// first, Latin last). A span with no alphabetic characters is Other.
func Classify(span string) Script {
	var counts [Latin + 1]int
	for _, r := range span {
		if !Alphabetic(r) {
			continue
		}
		counts[Of(r)]++
	}
	best := Other
	bestCount := 0
	for _, b := range blocks {
		if counts[b.script] > bestCount {
			best = b.script
			bestCount = counts[b.script]
		}
	}
	if counts[Latin] > bestCount {
		best = Latin
		bestCount = counts[Latin]
	}
	if bestCount == 0 {
		return Other
	}
	return best
}
