package repair

import (
	"sort"
	"strings"
)

// BinaryMarker is the literal placeholder the extraction step wrote in
// place of each byte it failed to decode.
const BinaryMarker = "<binary data, 1 bytes>"

const (
	virama = "්" // sinhala al-lakuna
	zwj    = "‍"
)

// Replacement is one entry of the corruption table: a corrupted
// substring and the text it must become.
type Replacement struct {
	From string
	To   string
}

var (
	marker2 = strings.Repeat(BinaryMarker, 2)
	marker3 = strings.Repeat(BinaryMarker, 3)
)

// binaryReplacements restores Sinhala conjunct clusters whose joiner
// bytes were flattened into placeholder markers. Three markers stand
// where virama+ZWJ+ra (rakaransaya) was dropped after the consonant;
// two markers stand where only virama+ZWJ (yansaya and similar) was
// dropped between two surviving consonants. The table is data, not
// control flow: new corruption patterns are new rows.
var binaryReplacements = []Replacement{
	// consonant + 3 markers -> consonant + rakaransaya
	{"ප" + marker3, "ප" + virama + zwj + "ර"},
	{"ක" + marker3, "ක" + virama + zwj + "ර"},
	{"ග" + marker3, "ග" + virama + zwj + "ර"},
	{"ත" + marker3, "ත" + virama + zwj + "ර"},
	{"ද" + marker3, "ද" + virama + zwj + "ර"},
	{"බ" + marker3, "බ" + virama + zwj + "ර"},
	{"භ" + marker3, "භ" + virama + zwj + "ර"},
	{"ශ" + marker3, "ශ" + virama + zwj + "ර"},
	{"ස" + marker3, "ස" + virama + zwj + "ර"},

	// consonant + 2 markers + consonant -> joined cluster
	{"ව" + marker2 + "ය", "ව" + virama + zwj + "ය"},
	{"ද" + marker2 + "ය", "ද" + virama + zwj + "ය"},
	{"ත" + marker2 + "ය", "ත" + virama + zwj + "ය"},
	{"ඛ" + marker2 + "ය", "ඛ" + virama + zwj + "ය"},
	{"න" + marker2 + "ද", "න" + virama + zwj + "ද"},
}

func init() {
	// Longest corrupted fragment first: a 2-marker run is a prefix of a
	// 3-marker run, and matching the short row inside a longer fragment
	// would leave stray markers behind.
	sort.SliceStable(binaryReplacements, func(i, j int) bool {
		return len(binaryReplacements[i].From) > len(binaryReplacements[j].From)
	})
}
