package repair

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DishanH/Pali-sub002/chapter"
)

func TestRepairBinaryMarkers(t *testing.T) {
	corrupted := "ප<binary data, 1 bytes><binary data, 1 bytes><binary data, 1 bytes>තිසංඛ"
	want := "ප්‍රතිසංඛ"

	got, changed := RepairBinaryMarkers(corrupted)
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if !changed {
		t.Errorf("Expected changed to be true")
	}
}

func TestRepairBinaryMarkersTwoMarkerCluster(t *testing.T) {
	corrupted := "ව<binary data, 1 bytes><binary data, 1 bytes>ය"
	want := "ව්‍ය"

	got, changed := RepairBinaryMarkers(corrupted)
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if !changed {
		t.Errorf("Expected changed to be true")
	}
}

func TestRepairBinaryMarkersUnknownPatternKept(t *testing.T) {
	// marker run with no table row must survive untouched for verify
	corrupted := "ළ<binary data, 1 bytes>කය"

	got, changed := RepairBinaryMarkers(corrupted)
	if got != corrupted {
		t.Errorf("Expected unknown pattern untouched, got %q", got)
	}
	if changed {
		t.Errorf("Expected changed to be false")
	}
}

func TestRepairEscapes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`ස\u0DCAථ`, "ස්ථ"},
		{`ක\u200Dෂ`, "ක‍ෂ"},
		{`ප\u0dca\u200dර`, "ප්‍ර"},
	}

	for _, test := range tests {
		got, changed := RepairEscapes(test.in)
		if got != test.want {
			t.Errorf("RepairEscapes(%q) = %q, want %q", test.in, got, test.want)
		}
		if !changed {
			t.Errorf("RepairEscapes(%q) should report a change", test.in)
		}
	}
}

func TestRepairEscapesOutsideSinhalaBlockKept(t *testing.T) {
	// a backslash-u naming a non-Sinhala code point is not our defect
	in := `path \u0041 stays`

	got, changed := RepairEscapes(in)
	if got != in {
		t.Errorf("Expected input unchanged, got %q", got)
	}
	if changed {
		t.Errorf("Expected changed to be false")
	}
}

func TestRepairCleanInputNoOp(t *testing.T) {
	clean := "ප්‍රතිසංඛ්‍යානබලං නිස්සරණඤ්ච"

	got, changed := Repair(clean)
	if got != clean {
		t.Errorf("Expected clean input unchanged, got %q", got)
	}
	if changed {
		t.Errorf("Expected changed to be false on clean input")
	}
}

func TestRepairIdempotent(t *testing.T) {
	inputs := []string{
		"ප<binary data, 1 bytes><binary data, 1 bytes><binary data, 1 bytes>තිසංඛ",
		`ස\u0DCAථවිර`,
		"already clean text",
		"",
	}

	for _, in := range inputs {
		once, _ := Repair(in)
		twice, changed := Repair(once)
		if twice != once {
			t.Errorf("Repair not idempotent for %q: %q != %q", in, once, twice)
		}
		if changed {
			t.Errorf("Second repair of %q reported a change", in)
		}
	}
}

func TestRepairFile(t *testing.T) {
	dir := t.TempDir()
	ch := chapter.Chapter{
		ID:    "dn22",
		Title: chapter.Title{Pali: "Mahāsatipaṭṭhānasuttaṃ"},
		Sections: []chapter.Section{
			{Number: 1, Pali: "ප<binary data, 1 bytes><binary data, 1 bytes><binary data, 1 bytes>තිසංඛ"},
		},
	}
	path, err := chapter.Write(dir, ch)
	if err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	changed, err := RepairFile(path)
	if err != nil {
		t.Fatalf("RepairFile returned error: %v", err)
	}
	if !changed {
		t.Errorf("Expected file to be rewritten")
	}

	repaired, err := chapter.Read(path)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if repaired.Sections[0].Pali != "ප්‍රතිසංඛ" {
		t.Errorf("Expected repaired text, got %q", repaired.Sections[0].Pali)
	}

	// second pass is a no-op
	changed, err = RepairFile(path)
	if err != nil {
		t.Fatalf("RepairFile second pass returned error: %v", err)
	}
	if changed {
		t.Errorf("Expected no change on second pass")
	}
}

func TestRepairFileRawEscapes(t *testing.T) {
	// the defect lives in the raw bytes: a literal \u sequence inside a
	// JSON string that a decode would silently interpret
	dir := t.TempDir()
	path := filepath.Join(dir, "mn10.json")
	raw := `{
  "id": "mn10",
  "title": {"pali": "", "english": "", "sinhala": ""},
  "sections": [
    {"number": 1, "pali": "", "english": "", "sinhala": "ස\u0DCAථවිර", "paliTitle": ""}
  ]
}`
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	changed, err := RepairFile(path)
	if err != nil {
		t.Fatalf("RepairFile returned error: %v", err)
	}
	if !changed {
		t.Errorf("Expected file to be rewritten")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}
	if strings.Contains(string(data), `\u0DCA`) {
		t.Errorf("Escape text still present in raw file")
	}
	if !strings.Contains(string(data), "ස්ථවිර") {
		t.Errorf("Expected literal virama in raw file, got %s", data)
	}
}
