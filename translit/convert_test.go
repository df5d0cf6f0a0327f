package translit

import (
	"testing"

	"github.com/akshara/lipi/scheme"
	"github.com/akshara/lipi/segment"
)

func run(text string, cat segment.Category) segment.Run {
	return segment.Run{End: len(text), Category: cat, Text: text}
}

func TestConvertScenarios(t *testing.T) {
	tests := []struct {
		name   string
		in     segment.Run
		target scheme.Scheme
		want   string
		flag   Flag
	}{
		{"iast to itrans", run("rāma", segment.IAST), scheme.ITRANS, "raama", FlagConverted},
		{"devanagari to iast", run("राम", segment.Devanagari), scheme.IAST, "rāma", FlagConverted},
		{"harvard kyoto to devanagari", run("rAma", segment.HarvardKyoto), scheme.Devanagari, "राम", FlagConverted},
		{"velthuis to devanagari", run("k.r.s.na", segment.Velthuis), scheme.Devanagari, "कृष्ण", FlagConverted},
		{"slp1 to iast", run("kfzRa", segment.SLP1), scheme.IAST, "kṛṣṇa", FlagConverted},
		{"itrans to bengali", run("raama", segment.ITRANS), scheme.Bengali, "রাম", FlagConverted},
		{"devanagari to bengali", run("राम", segment.Devanagari), scheme.Bengali, "রাম", FlagConverted},
		{"conjunct with virama", run("क्ष", segment.Devanagari), scheme.IAST, "kṣa", FlagConverted},
		{"anusvara and vocalic r", run("संस्कृत", segment.Devanagari), scheme.IAST, "saṃskṛta", FlagConverted},
		{"visarga", run("rāmaḥ", segment.IAST), scheme.HarvardKyoto, "rAmaH", FlagConverted},
		{"om sign composes on roman", run("ॐ", segment.Devanagari), scheme.IAST, "oṃ", FlagConverted},
		{"double danda", run("॥", segment.Devanagari), scheme.IAST, "||", FlagConverted},
		{"devanagari digits", run("०१२", segment.Devanagari), scheme.IAST, "012", FlagConverted},
		{"bengali digits", run("৯৯", segment.Bengali), scheme.IAST, "99", FlagConverted},
		{"final bare consonant", run("rām", segment.IAST), scheme.Devanagari, "राम्", FlagConverted},
		{"literal passthrough", run(" 123 ", segment.Literal), scheme.Devanagari, " 123 ", FlagPassthrough},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Convert(tt.in, tt.target)
			if got.Text != tt.want {
				t.Fatalf("Convert(%q) = %q, want %q", tt.in.Text, got.Text, tt.want)
			}
			if got.Flag != tt.flag {
				t.Fatalf("Convert(%q) flag = %v, want %v", tt.in.Text, got.Flag, tt.flag)
			}
			if got.Flag == FlagConverted && got.Unmapped != 0 {
				t.Fatalf("clean conversion reported %d unmapped spans", got.Unmapped)
			}
		})
	}
}

func TestConvertExactIsFixpoint(t *testing.T) {
	for _, text := range []string{"rāma", "राम", "রাম", "raama"} {
		for _, s := range scheme.All() {
			r := run(text, segment.CategoryOf(s))
			got := Convert(r, s)
			if got.Flag != FlagExact {
				t.Fatalf("same-scheme conversion of %q under %v flagged %v", text, s, got.Flag)
			}
			if got.Text != text {
				t.Fatalf("same-scheme conversion changed %q to %q", text, got.Text)
			}
		}
	}
}

func TestConvertRoundTrip(t *testing.T) {
	// Devanagari ↔ IAST is lossless for consonant-vowel sequences.
	texts := []string{"राम", "सीता", "कृष्ण", "संस्कृत", "गुरुभ्यः"}
	for _, text := range texts {
		iast := Convert(run(text, segment.Devanagari), scheme.IAST)
		back := Convert(run(iast.Text, segment.IAST), scheme.Devanagari)
		if back.Text != text {
			t.Fatalf("round trip %q → %q → %q", text, iast.Text, back.Text)
		}
	}
}

func TestConvertDeterministic(t *testing.T) {
	r := run("rāmāyaṇa", segment.IAST)
	first := Convert(r, scheme.Devanagari)
	second := Convert(r, scheme.Devanagari)
	if first != second {
		t.Fatalf("conversion is not deterministic: %+v vs %+v", first, second)
	}
}

func TestConvertUnmappablePhoneme(t *testing.T) {
	// Retroflex ḷa and the Bengali khanda-ta have no table entry; the
	// original glyph stays inline and the run degrades to approximate.
	got := Convert(run("बाळ", segment.Devanagari), scheme.IAST)
	if got.Flag != FlagApproximate {
		t.Fatalf("flag = %v, want approximate", got.Flag)
	}
	if got.Unmapped != 1 {
		t.Fatalf("unmapped = %d, want 1", got.Unmapped)
	}
	if got.Text != "bāळ" {
		t.Fatalf("unexpected text %q", got.Text)
	}

	got = Convert(run("হঠাৎ", segment.Bengali), scheme.IAST)
	if got.Flag != FlagApproximate || got.Unmapped != 1 {
		t.Fatalf("khanda-ta should be one unmapped span: %+v", got)
	}
}

func TestConvertLowConfidenceIsApproximate(t *testing.T) {
	r := run("gentle", segment.IAST)
	r.LowConfidence = true
	got := Convert(r, scheme.Devanagari)
	if got.Flag != FlagApproximate {
		t.Fatalf("low-confidence run flagged %v, want approximate", got.Flag)
	}
}

func TestConvertFoldsCaseAndNormalizes(t *testing.T) {
	// Capitalized IAST and NFD-decomposed diacritics both decode.
	got := Convert(run("Rāma", segment.IAST), scheme.Devanagari)
	if got.Text != "राम" {
		t.Fatalf("case fold failed: %q", got.Text)
	}
	decomposed := "rāma" // a + combining macron
	got = Convert(run(decomposed, segment.IAST), scheme.Devanagari)
	if got.Text != "राम" {
		t.Fatalf("NFC normalization failed: %q", got.Text)
	}
}

func TestConvertTextBypassesDetection(t *testing.T) {
	got := ConvertText("rAma", scheme.HarvardKyoto, scheme.Devanagari)
	if got.Text != "राम" || got.Flag != FlagConverted {
		t.Fatalf("forced-scheme conversion = %+v", got)
	}
}

func TestITRANSAlternatesDecode(t *testing.T) {
	tests := []struct{ in, want string }{
		{"rAma", "राम"},     // capital alternates
		{"raama", "राम"},    // primary double vowels
		{"shiva", "शिव"},    // sh = ś
		{"R^igveda", "ऋग्वेद"},
		{"RRigveda", "ऋग्वेद"},
	}
	for _, tt := range tests {
		got := Convert(run(tt.in, segment.ITRANS), scheme.Devanagari)
		if got.Text != tt.want {
			t.Fatalf("ITRANS %q = %q, want %q", tt.in, got.Text, tt.want)
		}
	}
}
