package segment

import (
	"strings"
	"unicode/utf8"
)

const defaultMaxHeadingRunes = 60

// Pali heading endings: discourse, story, commentary, teaching, verse,
// exposition. The list is a heuristic baseline, not a grammar.
var defaultHeadingSuffixes = []string{
	"kathā",
	"suttaṃ",
	"sutta",
	"vatthu",
	"vaṇṇanā",
	"desanā",
	"gāthā",
	"niddeso",
	"uddeso",
	"pañho",
}

// sentence-level punctuation disqualifies a line from being a heading
const headingStopChars = ",;:!?\"'“”‘’"

// HeadingDetector decides whether a line immediately preceding a section
// marker is a section heading (paliTitle) rather than body text.
type HeadingDetector struct {
	maxRunes int
	suffixes []string
}

// NewHeadingDetector builds a detector. Zero maxRunes or a nil suffix
// list selects the defaults.
func NewHeadingDetector(maxRunes int, suffixes []string) *HeadingDetector {
	if maxRunes <= 0 {
		maxRunes = defaultMaxHeadingRunes
	}
	if len(suffixes) == 0 {
		suffixes = defaultHeadingSuffixes
	}
	return &HeadingDetector{
		maxRunes: maxRunes,
		suffixes: suffixes,
	}
}

func (d *HeadingDetector) IsHeading(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	if utf8.RuneCountInString(line) >= d.maxRunes {
		return false
	}
	if strings.ContainsAny(line, headingStopChars) {
		return false
	}
	for _, suffix := range d.suffixes {
		if strings.HasSuffix(line, suffix) {
			return true
		}
	}
	return false
}
