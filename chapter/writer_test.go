package chapter

import (
	"os"
	"strings"
	"testing"

	"github.com/DishanH/Pali-sub002/segment"
)

func TestNewFillsTemplate(t *testing.T) {
	ch := New("dn22", "Mahāsatipaṭṭhānasuttaṃ", []segment.Section{
		{Number: 95, Text: "ekāyano ayaṃ bhikkhave maggo", PaliTitle: "Uddeso"},
		{Number: 96, Text: "kathañca bhikkhave"},
	})

	if ch.ID != "dn22" {
		t.Errorf("Expected id dn22, got %s", ch.ID)
	}
	if ch.Title.Pali != "Mahāsatipaṭṭhānasuttaṃ" || ch.Title.English != "" || ch.Title.Sinhala != "" {
		t.Errorf("Unexpected title %+v", ch.Title)
	}
	if len(ch.Sections) != 2 {
		t.Fatalf("Expected 2 sections, got %d", len(ch.Sections))
	}
	s := ch.Sections[0]
	if s.Number != 95 || s.Pali != "ekāyano ayaṃ bhikkhave maggo" || s.PaliTitle != "Uddeso" {
		t.Errorf("Unexpected section %+v", s)
	}
	if s.English != "" || s.Sinhala != "" {
		t.Errorf("Translation fields must start empty, got %+v", s)
	}
}

func TestWriteLiteralUTF8(t *testing.T) {
	dir := t.TempDir()
	ch := New("dn22", "Mahāsatipaṭṭhānasuttaṃ", []segment.Section{
		{Number: 1, Text: "ප්‍රතිසංඛ"},
	})

	path, err := Write(dir, ch)
	if err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}
	raw := string(data)

	// the hard external contract: non-ASCII stored literally
	if !strings.Contains(raw, "ප්‍රතිසංඛ") {
		t.Errorf("Sinhala text not stored literally:\n%s", raw)
	}
	if !strings.Contains(raw, "Mahāsatipaṭṭhānasuttaṃ") {
		t.Errorf("Pali title not stored literally:\n%s", raw)
	}
	if strings.Contains(raw, `\u`) {
		t.Errorf("Found escape sequences in output:\n%s", raw)
	}
}

func TestWriteKeepsAngleBrackets(t *testing.T) {
	// residual corruption markers must stay scannable as written
	dir := t.TempDir()
	ch := New("dn22", "", []segment.Section{
		{Number: 1, Text: "ළ<binary data, 1 bytes>ක"},
	})

	path, err := Write(dir, ch)
	if err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}
	if !strings.Contains(string(data), "<binary data, 1 bytes>") {
		t.Errorf("Marker text was escaped in output:\n%s", data)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ch := New("mn10", "Satipaṭṭhānasuttaṃ", []segment.Section{
		{Number: 131, Text: "evaṃ me sutaṃ", PaliTitle: "Nidānaṃ"},
	})

	path, err := Write(dir, ch)
	if err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}

	if got.ID != ch.ID || got.Title != ch.Title {
		t.Errorf("Round trip changed chapter: %+v", got)
	}
	if len(got.Sections) != 1 || got.Sections[0] != ch.Sections[0] {
		t.Errorf("Round trip changed sections: %+v", got.Sections)
	}
}

func TestChapterRange(t *testing.T) {
	ch := New("x", "", []segment.Section{{Number: 95}, {Number: 96}, {Number: 130}})
	start, end := ch.Range()
	if start != 95 || end != 130 {
		t.Errorf("Expected range 95..130, got %d..%d", start, end)
	}

	start, end = Chapter{}.Range()
	if start != 0 || end != 0 {
		t.Errorf("Expected empty range 0,0, got %d,%d", start, end)
	}
}
