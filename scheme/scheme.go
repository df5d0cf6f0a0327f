// Package scheme enumerates the supported transliteration schemes and
// detects which romanization scheme a Latin-script span uses.
package scheme

import (
	"fmt"
	"strings"
)

// Scheme is a character-encoding convention for the Sanskrit phoneme
// inventory: a Brahmic script or a Latin romanization. The set is closed;
// adding a scheme means adding a conversion table and a signature set.
type Scheme int

const (
	Unknown Scheme = iota
	Devanagari
	Bengali
	IAST
	ITRANS
	SLP1
	HarvardKyoto
	Velthuis
)

// DefaultRoman is the fallback when a Latin span carries no recognizable
// scheme signatures.
const DefaultRoman = IAST

var names = map[Scheme]string{
	Unknown:      "Unknown",
	Devanagari:   "Devanagari",
	Bengali:      "Bengali",
	IAST:         "IAST",
	ITRANS:       "ITRANS",
	SLP1:         "SLP1",
	HarvardKyoto: "HarvardKyoto",
	Velthuis:     "Velthuis",
}

func (s Scheme) String() string {
	if name, ok := names[s]; ok {
		return name
	}
	return "Unknown"
}

// Roman reports whether the scheme writes in the Latin alphabet.
func (s Scheme) Roman() bool {
	switch s {
	case IAST, ITRANS, SLP1, HarvardKyoto, Velthuis:
		return true
	}
	return false
}

// All lists every concrete scheme in priority order.
func All() []Scheme {
	return []Scheme{Devanagari, Bengali, IAST, ITRANS, SLP1, HarvardKyoto, Velthuis}
}

// Parse resolves a case-insensitive scheme name. Common aliases from the
// upstream ecosystem ("hk", "deva") are accepted.
func Parse(name string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "devanagari", "deva":
		return Devanagari, nil
	case "bengali", "bangla":
		return Bengali, nil
	case "iast":
		return IAST, nil
	case "itrans":
		return ITRANS, nil
	case "slp1", "slp":
		return SLP1, nil
	case "harvardkyoto", "harvard-kyoto", "hk":
		return HarvardKyoto, nil
	case "velthuis":
		return Velthuis, nil
	}
	return Unknown, fmt.Errorf("unknown scheme %q", name)
}
