package chapter

import (
	"github.com/DishanH/Pali-sub002/segment"
)

// Title holds the source-script title plus translation slots. Absent
// translations are empty strings, never omitted keys.
type Title struct {
	Pali    string `json:"pali"`
	English string `json:"english"`
	Sinhala string `json:"sinhala"`
}

// Section mirrors the chapter file template. English and Sinhala stay
// empty here; a separate translation workflow fills them in later.
type Section struct {
	Number    int    `json:"number"`
	Pali      string `json:"pali"`
	English   string `json:"english"`
	Sinhala   string `json:"sinhala"`
	PaliTitle string `json:"paliTitle"`
}

// Chapter is immutable after write except for translation fill-in.
type Chapter struct {
	ID       string    `json:"id"`
	Title    Title     `json:"title"`
	Sections []Section `json:"sections"`
}

// New packages segmented sections into the chapter template with empty
// translation fields.
func New(id, paliTitle string, sections []segment.Section) Chapter {
	ch := Chapter{
		ID:       id,
		Title:    Title{Pali: paliTitle},
		Sections: make([]Section, 0, len(sections)),
	}
	for _, s := range sections {
		ch.Sections = append(ch.Sections, Section{
			Number:    s.Number,
			Pali:      s.Text,
			PaliTitle: s.PaliTitle,
		})
	}
	return ch
}

// Range returns the first and last section numbers, or (0, 0) for a
// chapter with no sections.
func (c Chapter) Range() (int, int) {
	if len(c.Sections) == 0 {
		return 0, 0
	}
	return c.Sections[0].Number, c.Sections[len(c.Sections)-1].Number
}
