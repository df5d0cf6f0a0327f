package translit

import (
	"testing"

	"github.com/akshara/lipi/scheme"
)

func TestTablesCoverCanonicalInventory(t *testing.T) {
	for s, tab := range tables {
		for i, forms := range tab.vowels {
			if len(forms) == 0 || forms[0] == "" {
				t.Fatalf("%v: vowel %d has no primary form", s, i)
			}
		}
		for i, forms := range tab.consonants {
			if len(forms) == 0 || forms[0] == "" {
				t.Fatalf("%v: consonant %d has no primary form", s, i)
			}
		}
		for i, forms := range tab.yogas {
			if len(forms) == 0 || forms[0] == "" {
				t.Fatalf("%v: yogavaha %d has no primary form", s, i)
			}
		}
		// Every symbol except om must encode everywhere; roman om is
		// composed from o + anusvara instead.
		for i, forms := range tab.symbols {
			if i == symOM && tab.roman {
				continue
			}
			if len(forms) == 0 || forms[0] == "" {
				t.Fatalf("%v: symbol %d has no primary form", s, i)
			}
		}
		if !tab.roman {
			if tab.virama == "" {
				t.Fatalf("%v: brahmic table missing virama", s)
			}
			for i, m := range tab.marks {
				if m == "" {
					t.Fatalf("%v: missing vowel sign %d", s, i)
				}
			}
		}
	}
}

func TestTableSchemeKeysMatch(t *testing.T) {
	for s, tab := range tables {
		if tab.scheme != s {
			t.Fatalf("table registered under %v claims %v", s, tab.scheme)
		}
	}
	for _, s := range scheme.All() {
		if _, ok := tables[s]; !ok {
			t.Fatalf("no table for %v", s)
		}
	}
}

func TestNamedCanonicalPositions(t *testing.T) {
	// The om composition in encode relies on these anchors.
	if got := iastTable.vowels[vowO][0]; got != "o" {
		t.Fatalf("vowO points at %q, want o", got)
	}
	if got := devanagariTable.vowels[vowO][0]; got != "ओ" {
		t.Fatalf("vowO points at %q, want ओ", got)
	}
	if got := iastTable.yogas[yogaAnusvara][0]; got != "ṃ" {
		t.Fatalf("yogaAnusvara points at %q, want anusvara", got)
	}
}

func TestDecodeMapPrefersPrimaryOnCollision(t *testing.T) {
	// Bengali writes b and v identically; decoding must yield b.
	tok, ok := bengaliTable.decode["ব"]
	if !ok {
		t.Fatalf("ব missing from bengali decode map")
	}
	if tok.cls != clsConsonant || tok.idx != 22 { // b
		t.Fatalf("ব decodes to %+v, want consonant b", tok)
	}
}

func TestLongestMatchWins(t *testing.T) {
	tok, n, ok := iastTable.next("khara")
	if !ok || n != 2 || tok.cls != clsConsonant || tok.idx != 1 {
		t.Fatalf("kh should decode as one aspirate: %+v n=%d ok=%v", tok, n, ok)
	}
	tok, n, ok = velthuisTable.next(".tha")
	if !ok || n != 3 || tok.idx != 11 { // ṭh
		t.Fatalf(".th should outrank .t: %+v n=%d ok=%v", tok, n, ok)
	}
}
