package remote

import (
	"github.com/DishanH/Pali-sub002/chapter"
)

// ChapterRow is the chapters table: one row per chapter, keyed by id.
type ChapterRow struct {
	ID           string `json:"id" gorm:"primaryKey;size:64"`
	PaliTitle    string `json:"pali_title"`
	EnglishTitle string `json:"english_title"`
	SinhalaTitle string `json:"sinhala_title"`
}

func (ChapterRow) TableName() string { return "chapters" }

// SectionRow is the sections table, keyed by chapter id plus the
// collection-wide section number.
type SectionRow struct {
	ChapterID string `json:"chapter_id" gorm:"primaryKey;size:64"`
	Number    int    `json:"number" gorm:"primaryKey"`
	Pali      string `json:"pali"`
	English   string `json:"english"`
	Sinhala   string `json:"sinhala"`
	PaliTitle string `json:"pali_title"`
}

func (SectionRow) TableName() string { return "sections" }

func rowsFromChapter(ch chapter.Chapter) (ChapterRow, []SectionRow) {
	row := ChapterRow{
		ID:           ch.ID,
		PaliTitle:    ch.Title.Pali,
		EnglishTitle: ch.Title.English,
		SinhalaTitle: ch.Title.Sinhala,
	}

	sections := make([]SectionRow, 0, len(ch.Sections))
	for _, s := range ch.Sections {
		sections = append(sections, SectionRow{
			ChapterID: ch.ID,
			Number:    s.Number,
			Pali:      s.Pali,
			English:   s.English,
			Sinhala:   s.Sinhala,
			PaliTitle: s.PaliTitle,
		})
	}
	return row, sections
}
