package chapter

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

var (
	ErrNoChapters = errors.New("book has no chapters")
)

// ChapterRef records one chapter's place in the collection-wide
// continuous numbering.
type ChapterRef struct {
	ID    string `json:"id"`
	Title Title  `json:"title"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Book is the collection metadata file.
type Book struct {
	ID       string       `json:"id"`
	Chapters []ChapterRef `json:"chapters"`
}

// NewBook builds book metadata from written chapters, in order. It
// validates before returning so a range violation never reaches disk.
func NewBook(id string, chapters []Chapter) (Book, error) {
	b := Book{ID: id, Chapters: make([]ChapterRef, 0, len(chapters))}
	for _, ch := range chapters {
		start, end := ch.Range()
		b.Chapters = append(b.Chapters, ChapterRef{
			ID:    ch.ID,
			Title: ch.Title,
			Start: start,
			End:   end,
		})
	}
	if err := b.Validate(); err != nil {
		return Book{}, err
	}
	return b, nil
}

// Validate enforces the partition invariant: chapter ranges must tile
// the full section-number range with no gaps or overlaps. Continuous
// numbering across chapters is easy to re-break silently, so this is an
// explicit check rather than a side effect of loop counters.
func (b Book) Validate() error {
	if len(b.Chapters) == 0 {
		return ErrNoChapters
	}
	for i, ref := range b.Chapters {
		if ref.Start > ref.End {
			return errors.Errorf("chapter %s has inverted range [%d,%d]", ref.ID, ref.Start, ref.End)
		}
		if i == 0 {
			continue
		}
		prev := b.Chapters[i-1]
		if ref.Start <= prev.End {
			return errors.Errorf("chapter %s range [%d,%d] overlaps %s range [%d,%d]",
				ref.ID, ref.Start, ref.End, prev.ID, prev.Start, prev.End)
		}
		if ref.Start != prev.End+1 {
			return errors.Errorf("numbering gap between chapter %s (ends %d) and %s (starts %d)",
				prev.ID, prev.End, ref.ID, ref.Start)
		}
	}
	return nil
}

// WriteBook stores book metadata as <dir>/<id>.book.json. Same literal
// UTF-8 contract as chapter files.
func WriteBook(dir string, b Book) (string, error) {
	if err := b.Validate(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return "", errors.Wrapf(err, "encode book %s", b.ID)
	}

	path := filepath.Join(dir, b.ID+".book.json")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", errors.Wrapf(err, "write book %s", b.ID)
	}
	return path, nil
}
