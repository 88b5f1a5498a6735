package extract

import (
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pkg/errors"
)

// PageLines reads every page of the PDF at path and returns its text as
// trimmed, noise-filtered lines in page order. Empty pages are skipped.
func PageLines(path string, filter *NoiseFilter) ([]string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open pdf %s", path)
	}
	defer f.Close()

	var lines []string
	totalPage := r.NumPage()
	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		p := r.Page(pageIndex)
		if p.V.IsNull() {
			continue
		}
		content, err := p.GetPlainText(nil)
		if err != nil {
			return nil, errors.Wrapf(err, "extract text from page %d", pageIndex)
		}
		lines = append(lines, CleanLines(content, filter)...)
	}

	return lines, nil
}

// CleanLines splits raw page text into lines, trims them, and drops
// blanks and noise.
func CleanLines(text string, filter *NoiseFilter) []string {
	var cleaned []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if filter != nil && filter.IsNoise(line) {
			continue
		}
		cleaned = append(cleaned, line)
	}
	return cleaned
}
