package translit

import "github.com/akshara/lipi/scheme"

// Scheme tables. Canonical order everywhere:
//
//	vowels:     a ā i ī u ū ṛ ṝ ḷ ḹ e ai o au
//	consonants: k kh g gh ṅ | c ch j jh ñ | ṭ ṭh ḍ ḍh ṇ |
//	            t th d dh n | p ph b bh m | y r l v | ś ṣ s h
//	yogas:      anusvara visarga candrabindu
//	symbols:    oṃ avagraha danda double-danda digits 0-9

var devanagariTable = &table{
	scheme: scheme.Devanagari,
	vowels: [nVowels][]string{
		{"अ"}, {"आ"}, {"इ"}, {"ई"}, {"उ"}, {"ऊ"},
		{"ऋ"}, {"ॠ"}, {"ऌ"}, {"ॡ"}, {"ए"}, {"ऐ"}, {"ओ"}, {"औ"},
	},
	marks: [nVowels - 1]string{
		"ा", "ि", "ी", "ु", "ू", "ृ", "ॄ", "ॢ", "ॣ", "े", "ै", "ो", "ौ",
	},
	consonants: [nConsonants][]string{
		{"क"}, {"ख"}, {"ग"}, {"घ"}, {"ङ"},
		{"च"}, {"छ"}, {"ज"}, {"झ"}, {"ञ"},
		{"ट"}, {"ठ"}, {"ड"}, {"ढ"}, {"ण"},
		{"त"}, {"थ"}, {"द"}, {"ध"}, {"न"},
		{"प"}, {"फ"}, {"ब"}, {"भ"}, {"म"},
		{"य"}, {"र"}, {"ल"}, {"व"},
		{"श"}, {"ष"}, {"स"}, {"ह"},
	},
	yogas:  [nYogas][]string{{"ं"}, {"ः"}, {"ँ"}},
	virama: "्",
	symbols: [nSymbols][]string{
		{"ॐ"}, {"ऽ"}, {"।"}, {"॥"},
		{"०"}, {"१"}, {"२"}, {"३"}, {"४"}, {"५"}, {"६"}, {"७"}, {"८"}, {"९"},
	},
}

var bengaliTable = &table{
	scheme: scheme.Bengali,
	vowels: [nVowels][]string{
		{"অ"}, {"আ"}, {"ই"}, {"ঈ"}, {"উ"}, {"ঊ"},
		{"ঋ"}, {"ৠ"}, {"ঌ"}, {"ৡ"}, {"এ"}, {"ঐ"}, {"ও"}, {"ঔ"},
	},
	marks: [nVowels - 1]string{
		"া", "ি", "ী", "ু", "ূ", "ৃ", "ৄ", "ৢ", "ৣ", "ে", "ৈ", "ো", "ৌ",
	},
	// Bengali writes b and v with the same letter; ব decodes as b.
	consonants: [nConsonants][]string{
		{"ক"}, {"খ"}, {"গ"}, {"ঘ"}, {"ঙ"},
		{"চ"}, {"ছ"}, {"জ"}, {"ঝ"}, {"ঞ"},
		{"ট"}, {"ঠ"}, {"ড"}, {"ঢ"}, {"ণ"},
		{"ত"}, {"থ"}, {"দ"}, {"ধ"}, {"ন"},
		{"প"}, {"ফ"}, {"ব"}, {"ভ"}, {"ম"},
		{"য"}, {"র"}, {"ল"}, {"ব"},
		{"শ"}, {"ষ"}, {"স"}, {"হ"},
	},
	yogas:  [nYogas][]string{{"ং"}, {"ঃ"}, {"ঁ"}},
	virama: "্",
	symbols: [nSymbols][]string{
		{"ওঁ"}, {"ঽ"}, {"।"}, {"॥"},
		{"০"}, {"১"}, {"২"}, {"৩"}, {"৪"}, {"৫"}, {"৬"}, {"৭"}, {"৮"}, {"৯"},
	},
}

var iastTable = &table{
	scheme:   scheme.IAST,
	roman:    true,
	foldCase: true,
	vowels: [nVowels][]string{
		{"a"}, {"ā"}, {"i"}, {"ī"}, {"u"}, {"ū"},
		{"ṛ"}, {"ṝ"}, {"ḷ"}, {"ḹ"}, {"e"}, {"ai"}, {"o"}, {"au"},
	},
	consonants: [nConsonants][]string{
		{"k"}, {"kh"}, {"g"}, {"gh"}, {"ṅ"},
		{"c"}, {"ch"}, {"j"}, {"jh"}, {"ñ"},
		{"ṭ"}, {"ṭh"}, {"ḍ"}, {"ḍh"}, {"ṇ"},
		{"t"}, {"th"}, {"d"}, {"dh"}, {"n"},
		{"p"}, {"ph"}, {"b"}, {"bh"}, {"m"},
		{"y"}, {"r"}, {"l"}, {"v"},
		{"ś"}, {"ṣ"}, {"s"}, {"h"},
	},
	yogas: [nYogas][]string{{"ṃ"}, {"ḥ"}, {"m̐"}},
	// Roman schemes carry no dedicated om surface: "oṃ" mid-word would
	// shadow o + anusvara on decode. The encoder composes o + anusvara
	// instead; only ITRANS keeps its capital-safe "OM".
	symbols: [nSymbols][]string{
		{}, {"'"}, {"|"}, {"||"},
		{"0"}, {"1"}, {"2"}, {"3"}, {"4"}, {"5"}, {"6"}, {"7"}, {"8"}, {"9"},
	},
}

var itransTable = &table{
	scheme: scheme.ITRANS,
	roman:  true,
	vowels: [nVowels][]string{
		{"a"}, {"aa", "A"}, {"i"}, {"ii", "I"}, {"u"}, {"uu", "U"},
		{"RRi", "R^i"}, {"RRI", "R^I"}, {"LLi", "L^i"}, {"LLI", "L^I"},
		{"e"}, {"ai"}, {"o"}, {"au"},
	},
	consonants: [nConsonants][]string{
		{"k"}, {"kh"}, {"g"}, {"gh"}, {"~N", "N^"},
		{"ch", "c"}, {"Ch", "chh", "C"}, {"j"}, {"jh"}, {"~n", "JN"},
		{"T"}, {"Th"}, {"D"}, {"Dh"}, {"N"},
		{"t"}, {"th"}, {"d"}, {"dh"}, {"n"},
		{"p"}, {"ph"}, {"b"}, {"bh"}, {"m"},
		{"y"}, {"r"}, {"l"}, {"v", "w"},
		{"sh"}, {"Sh", "S"}, {"s"}, {"h"},
	},
	yogas: [nYogas][]string{{"M", ".m", ".n"}, {"H"}, {".N"}},
	symbols: [nSymbols][]string{
		{"OM", "AUM"}, {".a"}, {"|"}, {"||"},
		{"0"}, {"1"}, {"2"}, {"3"}, {"4"}, {"5"}, {"6"}, {"7"}, {"8"}, {"9"},
	},
}

var slp1Table = &table{
	scheme: scheme.SLP1,
	roman:  true,
	vowels: [nVowels][]string{
		{"a"}, {"A"}, {"i"}, {"I"}, {"u"}, {"U"},
		{"f"}, {"F"}, {"x"}, {"X"}, {"e"}, {"E"}, {"o"}, {"O"},
	},
	consonants: [nConsonants][]string{
		{"k"}, {"K"}, {"g"}, {"G"}, {"N"},
		{"c"}, {"C"}, {"j"}, {"J"}, {"Y"},
		{"w"}, {"W"}, {"q"}, {"Q"}, {"R"},
		{"t"}, {"T"}, {"d"}, {"D"}, {"n"},
		{"p"}, {"P"}, {"b"}, {"B"}, {"m"},
		{"y"}, {"r"}, {"l"}, {"v"},
		{"S"}, {"z"}, {"s"}, {"h"},
	},
	yogas: [nYogas][]string{{"M"}, {"H"}, {"~"}},
	symbols: [nSymbols][]string{
		{}, {"'"}, {"|"}, {"||"},
		{"0"}, {"1"}, {"2"}, {"3"}, {"4"}, {"5"}, {"6"}, {"7"}, {"8"}, {"9"},
	},
}

var harvardKyotoTable = &table{
	scheme: scheme.HarvardKyoto,
	roman:  true,
	vowels: [nVowels][]string{
		{"a"}, {"A"}, {"i"}, {"I"}, {"u"}, {"U"},
		{"R"}, {"RR"}, {"lR"}, {"lRR"}, {"e"}, {"ai"}, {"o"}, {"au"},
	},
	consonants: [nConsonants][]string{
		{"k"}, {"kh"}, {"g"}, {"gh"}, {"G"},
		{"c"}, {"ch"}, {"j"}, {"jh"}, {"J"},
		{"T"}, {"Th"}, {"D"}, {"Dh"}, {"N"},
		{"t"}, {"th"}, {"d"}, {"dh"}, {"n"},
		{"p"}, {"ph"}, {"b"}, {"bh"}, {"m"},
		{"y"}, {"r"}, {"l"}, {"v"},
		{"z"}, {"S"}, {"s"}, {"h"},
	},
	yogas: [nYogas][]string{{"M"}, {"H"}, {"~"}},
	symbols: [nSymbols][]string{
		{}, {"'"}, {"|"}, {"||"},
		{"0"}, {"1"}, {"2"}, {"3"}, {"4"}, {"5"}, {"6"}, {"7"}, {"8"}, {"9"},
	},
}

var velthuisTable = &table{
	scheme:   scheme.Velthuis,
	roman:    true,
	foldCase: true,
	vowels: [nVowels][]string{
		{"a"}, {"aa"}, {"i"}, {"ii"}, {"u"}, {"uu"},
		{".r"}, {".rr"}, {".l"}, {".ll"}, {"e"}, {"ai"}, {"o"}, {"au"},
	},
	consonants: [nConsonants][]string{
		{"k"}, {"kh"}, {"g"}, {"gh"}, {"\"n"},
		{"c"}, {"ch"}, {"j"}, {"jh"}, {"~n"},
		{".t"}, {".th"}, {".d"}, {".dh"}, {".n"},
		{"t"}, {"th"}, {"d"}, {"dh"}, {"n"},
		{"p"}, {"ph"}, {"b"}, {"bh"}, {"m"},
		{"y"}, {"r"}, {"l"}, {"v"},
		{"\"s"}, {".s"}, {"s"}, {"h"},
	},
	yogas: [nYogas][]string{{".m"}, {".h"}, {"~m"}},
	symbols: [nSymbols][]string{
		{}, {".a"}, {"|"}, {"||"},
		{"0"}, {"1"}, {"2"}, {"3"}, {"4"}, {"5"}, {"6"}, {"7"}, {"8"}, {"9"},
	},
}

var tables = map[scheme.Scheme]*table{
	scheme.Devanagari:   devanagariTable,
	scheme.Bengali:      bengaliTable,
	scheme.IAST:         iastTable,
	scheme.ITRANS:       itransTable,
	scheme.SLP1:         slp1Table,
	scheme.HarvardKyoto: harvardKyotoTable,
	scheme.Velthuis:     velthuisTable,
}

func init() {
	for _, t := range tables {
		t.build()
	}
}
