package repair

import (
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/pquerna/ffjson/ffjson"

	"github.com/DishanH/Pali-sub002/chapter"
)

// literal escape-sequence text: Sinhala block (U+0D80..U+0DFF) plus the
// zero-width joiners. The scan is deliberately range-restricted so a
// legitimate backslash-u elsewhere in the text is never touched.
var escapePattern = regexp.MustCompile(`\\[uU]0[dD][8-9a-fA-F][0-9a-fA-F]|\\[uU]200[cdCD]`)

// RepairBinaryMarkers applies the conjunct table as ordered substring
// replacement, longest fragment first. Returns the repaired text and
// whether anything matched. Marker runs with no table row are left in
// place for the verification pass to report.
func RepairBinaryMarkers(s string) (string, bool) {
	if !strings.Contains(s, BinaryMarker) {
		return s, false
	}
	changed := false
	for _, r := range binaryReplacements {
		if !strings.Contains(s, r.From) {
			continue
		}
		s = strings.ReplaceAll(s, r.From, r.To)
		changed = true
	}
	return s, changed
}

// RepairEscapes replaces literal escape-sequence text with the rune it
// names. It must see the raw text representation: the defect is that
// sequences like \u0DCA were stored as six characters of text instead
// of being interpreted, so running this after a JSON decode would find
// nothing.
func RepairEscapes(s string) (string, bool) {
	changed := false
	s = escapePattern.ReplaceAllStringFunc(s, func(m string) string {
		code, err := strconv.ParseUint(m[2:], 16, 32)
		if err != nil {
			return m
		}
		changed = true
		return string(rune(code))
	})
	return s, changed
}

// Repair runs both repairs on one text field. The two defect classes
// share no substrings, so the order is fixed only for determinism.
// Repairing already-clean text returns it unchanged with changed=false,
// which makes the whole pass idempotent.
func Repair(s string) (string, bool) {
	s, a := RepairBinaryMarkers(s)
	s, b := RepairEscapes(s)
	return s, a || b
}

// RepairFile repairs a chapter file in place, operating on the raw file
// bytes. Reports whether the file was rewritten. A repaired result that
// no longer parses as a chapter is an error and the file is left as it
// was.
func RepairFile(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, errors.Wrap(err, "read chapter file")
	}

	repaired, changed := Repair(string(data))
	if !changed {
		return false, nil
	}

	var ch chapter.Chapter
	if err := ffjson.Unmarshal([]byte(repaired), &ch); err != nil {
		return false, errors.Wrapf(err, "repaired %s is no longer valid chapter JSON", path)
	}

	if err := os.WriteFile(path, []byte(repaired), 0644); err != nil {
		return false, errors.Wrapf(err, "write repaired %s", path)
	}
	return true, nil
}
