package translit

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/akshara/lipi/scheme"
	"github.com/akshara/lipi/segment"
)

// Flag describes how a run's conversion went.
type Flag int

const (
	// FlagPassthrough marks literal runs and runs with no conversion
	// table; the text is preserved byte for byte.
	FlagPassthrough Flag = iota
	// FlagExact marks runs already in the target scheme.
	FlagExact
	// FlagConverted marks runs mapped to the target with every phoneme
	// accounted for.
	FlagConverted
	// FlagApproximate marks runs with unmapped spans left inline, or
	// whose source scheme came from a low-confidence fallback.
	FlagApproximate
)

func (f Flag) String() string {
	switch f {
	case FlagExact:
		return "exact"
	case FlagConverted:
		return "converted"
	case FlagApproximate:
		return "approximate"
	}
	return "passthrough"
}

// Result is the outcome of converting one run.
type Result struct {
	Text string
	Flag Flag
	// Unmapped counts contiguous spans the target scheme could not
	// express; their original form is kept inline in Text.
	Unmapped int
}

// Convert maps one run into the target scheme. The function is pure:
// identical input and target always produce identical output, and
// converting a run already in the target scheme is the identity.
func Convert(run segment.Run, target scheme.Scheme) Result {
	if run.Category == segment.Literal {
		return Result{Text: run.Text, Flag: FlagPassthrough}
	}
	src := run.Category.Scheme()
	srcTable, ok := tables[src]
	if !ok {
		return Result{Text: run.Text, Flag: FlagPassthrough}
	}
	dstTable, ok := tables[target]
	if !ok {
		return Result{Text: run.Text, Flag: FlagPassthrough}
	}
	if src == target {
		if !utf8.ValidString(run.Text) {
			return Result{Text: strings.ToValidUTF8(run.Text, string(utf8.RuneError)), Flag: FlagApproximate, Unmapped: 1}
		}
		return Result{Text: run.Text, Flag: FlagExact}
	}

	units := decode(srcTable, run.Text)
	out, unmapped := encode(dstTable, units)
	flag := FlagConverted
	if unmapped > 0 || run.LowConfidence {
		flag = FlagApproximate
	}
	return Result{Text: out, Flag: flag, Unmapped: unmapped}
}

// ConvertText converts a whole span known to be in a single scheme,
// bypassing segmentation. Used for source-scheme overrides.
func ConvertText(text string, source, target scheme.Scheme) Result {
	return Convert(segment.Run{
		End:      len(text),
		Category: segment.CategoryOf(source),
		Text:     text,
	}, target)
}

// decode tokenizes text under the source table into the canonical
// phoneme stream. Unrecognized input becomes raw units preserved
// verbatim. Brahmic sources insert the inherent a and fold matras and
// viramas into explicit vowels.
func decode(t *table, text string) []unit {
	if t.foldCase {
		text = strings.ToLower(text)
	}
	text = norm.NFC.String(text)

	var units []unit
	i := 0
	for i < len(text) {
		tok, n, ok := t.next(text[i:])
		if !ok {
			r, size := utf8.DecodeRuneInString(text[i:])
			units = append(units, unit{cls: clsRaw, raw: string(r)})
			i += size
			continue
		}
		matched := text[i : i+n]
		i += n

		if !t.roman {
			switch tok.cls {
			case clsConsonant:
				units = append(units, unit{cls: clsConsonant, idx: tok.idx, raw: matched})
				next, n2, ok2 := t.next(text[i:])
				switch {
				case ok2 && next.cls == clsMark:
					units = append(units, unit{cls: clsVowel, idx: next.idx + 1})
					i += n2
				case ok2 && next.cls == clsVirama:
					i += n2
				default:
					units = append(units, unit{cls: clsVowel, idx: 0})
				}
			case clsMark, clsVirama:
				// Orphaned dependent sign; nothing to attach it to.
				units = append(units, unit{cls: clsRaw, raw: matched})
			default:
				units = append(units, unit{cls: tok.cls, idx: tok.idx, raw: matched})
			}
			continue
		}
		units = append(units, unit{cls: tok.cls, idx: tok.idx, raw: matched})
	}
	return units
}

// encode renders the canonical stream under the target table. Brahmic
// targets re-introduce matras and viramas around consonants. Unmappable
// units keep their original surface; each maximal unmappable span counts
// once.
func encode(t *table, units []unit) (string, int) {
	var sb strings.Builder
	unmapped := 0
	inGap := false

	emitRaw := func(s string) {
		sb.WriteString(s)
		if !inGap {
			unmapped++
			inGap = true
		}
	}
	emit := func(s string) {
		sb.WriteString(s)
		inGap = false
	}

	for i := 0; i < len(units); i++ {
		u := units[i]
		if u.cls == clsRaw {
			emitRaw(u.raw)
			continue
		}
		surface, ok := t.surface(u)
		if !ok {
			if u.cls == clsSymbol && u.idx == symOM {
				// Compose o + anusvara when the scheme has no om sign.
				emit(t.vowels[vowO][0])
				emit(t.yogas[yogaAnusvara][0])
				continue
			}
			emitRaw(u.raw)
			continue
		}

		if !t.roman && u.cls == clsConsonant {
			emit(surface)
			if i+1 < len(units) && units[i+1].cls == clsVowel {
				v := units[i+1]
				if v.idx != 0 {
					emit(t.marks[v.idx-1])
				}
				i++
			} else {
				emit(t.virama)
			}
			continue
		}
		emit(surface)
	}
	return sb.String(), unmapped
}
