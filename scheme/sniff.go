package scheme

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/akshara/lipi/script"
)

// Score is the per-candidate confidence produced by one sniff: weighted
// signature hits normalized by the span's alphabetic length.
type Score map[Scheme]float64

// Detection qualifies a sniff result. LowConfidence is set when the span
// produced no usable signal and the result came from a fallback, so the
// caller can report ambiguity instead of silently mis-converting.
type Detection struct {
	Scores        Score
	LowConfidence bool
}

// signature is a token characteristic of one romanization, with a weight
// reflecting how exclusive the token is to that scheme.
type signature struct {
	token  string
	weight float64
}

// Signature inventories. Overlapping tokens (shared capitals, shared
// double vowels) carry low weights; tokens near-unique to a scheme carry
// high ones. Tuned by hand against short sample spans, not a corpus.
var signatures = map[Scheme][]signature{
	IAST: {
		{"ā", 4}, {"ī", 4}, {"ū", 4}, {"ṛ", 4}, {"ṝ", 4}, {"ḷ", 4}, {"ḹ", 4},
		{"ṅ", 4}, {"ñ", 3}, {"ṭ", 4}, {"ḍ", 4}, {"ṇ", 4},
		{"ś", 4}, {"ṣ", 4}, {"ḥ", 4}, {"ṃ", 4}, {"m̐", 4},
	},
	ITRANS: {
		{"aa", 2}, {"ii", 2}, {"uu", 2},
		{"RRi", 8}, {"RRI", 8}, {"LLi", 8}, {"LLI", 8},
		{"R^i", 8}, {"L^i", 8},
		{"~N", 4}, {"~n", 3}, {"N^", 4}, {"JN", 4},
		{"chh", 4}, {"Ch", 3}, {"sh", 2}, {"Sh", 3},
		{"kSh", 4}, {"GY", 4}, {".n", 2}, {".m", 2},
	},
	SLP1: {
		{"f", 4}, {"F", 5}, {"x", 4}, {"X", 5},
		{"w", 4}, {"W", 5}, {"q", 4}, {"Q", 5},
		{"E", 2}, {"O", 2}, {"Y", 2}, {"K", 1}, {"G", 1}, {"C", 2},
		{"J", 1}, {"B", 1}, {"P", 2}, {"z", 1},
		{"A", 1}, {"I", 1}, {"U", 1},
	},
	HarvardKyoto: {
		{"z", 3}, {"S", 2}, {"T", 1}, {"D", 1}, {"N", 1},
		{"G", 1}, {"J", 1}, {"M", 1}, {"H", 1},
		{"RR", 4}, {"lR", 5}, {"ai", 1}, {"au", 1},
		{"A", 1.5}, {"I", 1.5}, {"U", 1.5}, {"R", 1},
	},
	Velthuis: {
		{".t", 5}, {".d", 5}, {".n", 4}, {".r", 5}, {".s", 5},
		{".m", 4}, {".h", 4}, {".a", 3}, {".l", 4},
		{"\"n", 5}, {"\"s", 5}, {"~n", 2},
		{"aa", 1}, {"ii", 1}, {"uu", 1},
	},
}

// foldedSniff marks the case-insensitive romanizations: their signatures
// are counted against a lowercased span, so all-caps input (OCR'd
// headings, title lines) still scores. The case-sensitive schemes keep
// the original span; capitals carry meaning there.
var foldedSniff = map[Scheme]bool{
	IAST:     true,
	Velthuis: true,
}

// romanPriority breaks nonzero score ties deterministically. IAST is the
// configured default and wins outright ties; Harvard-Kyoto outranks SLP1
// because shared capital-vowel signatures are more often Harvard-Kyoto in
// the wild.
var romanPriority = []Scheme{IAST, ITRANS, HarvardKyoto, SLP1, Velthuis}

const (
	// MinSniffLen is the alphabetic-rune count below which scoring is
	// skipped and the span inherits the previous run's scheme.
	MinSniffLen = 3
	epsilon     = 1e-9
)

// Sniff returns the most likely romanization of a Latin-script span. A
// span with no signature hits falls back to DefaultRoman with
// Detection.LowConfidence set; ties within epsilon resolve by fixed
// priority order and are likewise flagged.
func Sniff(span string) (Scheme, Detection) {
	return SniffWithPrevious(span, Unknown)
}

// SniffWithPrevious behaves like Sniff but lets short spans inherit the
// scheme of the preceding contiguous run, when the caller has one.
func SniffWithPrevious(span string, previous Scheme) (Scheme, Detection) {
	// All IAST signatures are precomposed; recompose the span so
	// decomposed input (common in OCR output) still matches.
	span = norm.NFC.String(span)
	length := alphabeticLen(span)
	if length < MinSniffLen {
		if previous.Roman() {
			return previous, Detection{LowConfidence: true}
		}
		return DefaultRoman, Detection{LowConfidence: true}
	}

	folded := strings.ToLower(span)
	scores := make(Score, len(signatures))
	for cand, sigs := range signatures {
		hay := span
		if foldedSniff[cand] {
			hay = folded
		}
		total := 0.0
		for _, sig := range sigs {
			total += float64(countOccurrences(hay, sig.token)) * sig.weight
		}
		scores[cand] = total / float64(length)
	}

	best := Unknown
	bestScore := 0.0
	tied := false
	for _, cand := range romanPriority {
		s := scores[cand]
		switch {
		case s > bestScore+epsilon:
			best, bestScore, tied = cand, s, false
		case s > bestScore-epsilon && s > epsilon && best != Unknown:
			tied = true
		}
	}
	if bestScore <= epsilon {
		return DefaultRoman, Detection{Scores: scores, LowConfidence: true}
	}
	return best, Detection{Scores: scores, LowConfidence: tied}
}

func alphabeticLen(span string) int {
	n := 0
	for _, r := range span {
		if script.Alphabetic(r) {
			n++
		}
	}
	return n
}

// countOccurrences counts non-overlapping occurrences without allocating.
func countOccurrences(s, token string) int {
	if token == "" {
		return 0
	}
	n := 0
	for i := 0; i+len(token) <= len(s); {
		if s[i:i+len(token)] == token {
			n++
			i += len(token)
			continue
		}
		i++
	}
	return n
}
