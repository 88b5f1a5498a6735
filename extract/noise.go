package extract

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// noise the scanned sources carry on every page
var (
	urlPattern        = regexp.MustCompile(`(?i)(https?://|www\.)\S+`)
	pageLabelPattern  = regexp.MustCompile(`(?i)^[-–\s]*page\s+\d+[-–\s]*$`)
	defaultNoiseNames = []string{
		"Dhamma Publications",
	}
)

// NoiseFilter drops known non-content lines: URLs, the publishing
// organization's name, and "Page N" style footers. Bare page numbers
// are not handled here; the segmenter drops them by sequence position.
type NoiseFilter struct {
	names    []string
	patterns []*regexp.Regexp
}

// NewNoiseFilter compiles extra source-specific patterns on top of the
// defaults.
func NewNoiseFilter(extraPatterns []string) (*NoiseFilter, error) {
	f := &NoiseFilter{names: defaultNoiseNames}
	for _, p := range extraPatterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, errors.Wrapf(err, "compile noise pattern %q", p)
		}
		f.patterns = append(f.patterns, re)
	}
	return f, nil
}

func (f *NoiseFilter) IsNoise(line string) bool {
	if urlPattern.MatchString(line) {
		return true
	}
	if pageLabelPattern.MatchString(line) {
		return true
	}
	for _, name := range f.names {
		if strings.Contains(line, name) {
			return true
		}
	}
	for _, re := range f.patterns {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}
