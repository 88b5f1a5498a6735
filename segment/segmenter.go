package segment

import (
	"regexp"
	"strconv"
	"strings"
)

// Section is one continuous-numbered unit of a collection. Number is
// global across chapters and never resets.
type Section struct {
	Number    int
	Text      string
	PaliTitle string
}

// a marker line is solely a number, with an optional trailing period
var markerPattern = regexp.MustCompile(`^(\d+)\.?$`)

type Segmenter struct {
	detector *HeadingDetector
}

func NewSegmenter(detector *HeadingDetector) *Segmenter {
	if detector == nil {
		detector = NewHeadingDetector(0, nil)
	}
	return &Segmenter{detector: detector}
}

// Segment splits cleaned lines into sections. start is the number the
// first marker must carry; each following marker must be the previous
// number plus one. A standalone number that is not the next expected
// number is a page number and is dropped, which is what keeps page
// footers from opening phantom sections.
//
// Returns ErrNoSectionMarkers when no marker is found, so callers can
// tell malformed input apart from an empty result.
func (s *Segmenter) Segment(lines []string, start int) ([]Section, error) {
	var sections []Section
	var body []string
	var preamble []string
	next := start

	flush := func() {
		if len(sections) == 0 {
			return
		}
		sections[len(sections)-1].Text = strings.Join(body, " ")
		body = body[:0]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if n, ok := markerNumber(line); ok {
			if n != next {
				// out-of-sequence standalone number: page footer
				continue
			}
			title := s.takeHeading(&preamble, &body, len(sections) == 0)
			flush()
			sections = append(sections, Section{Number: n, PaliTitle: title})
			next++
			continue
		}

		if len(sections) == 0 {
			preamble = append(preamble, line)
			continue
		}
		body = append(body, line)
	}
	flush()

	if len(sections) == 0 {
		return nil, ErrNoSectionMarkers
	}
	return sections, nil
}

// takeHeading inspects the line just before a marker. If it qualifies as
// a heading it is removed from the buffer it came from and returned;
// otherwise it stays (preamble lines before the first marker are front
// matter and are discarded wholesale, never body text).
func (s *Segmenter) takeHeading(preamble, body *[]string, first bool) string {
	buf := body
	if first {
		buf = preamble
	}
	if len(*buf) == 0 {
		return ""
	}
	last := (*buf)[len(*buf)-1]
	if !s.detector.IsHeading(last) {
		return ""
	}
	*buf = (*buf)[:len(*buf)-1]
	return last
}

func markerNumber(line string) (int, bool) {
	m := markerPattern.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
