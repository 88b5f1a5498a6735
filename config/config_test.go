package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "palitext.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
source:
  pdfPath: source/dn.pdf
  noisePatterns:
    - "^ධර්ම දානයකි$"
book:
  id: dn
  chapters:
    - id: dn01
      paliTitle: Brahmajālasuttaṃ
      start: 1
    - id: dn02
      start: 95
remote:
  url: https://example.supabase.co/rest/v1
  token: secret
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Source.PDFPath != "source/dn.pdf" {
		t.Errorf("Unexpected pdfPath %q", cfg.Source.PDFPath)
	}
	if cfg.Source.OutputDir != "." {
		t.Errorf("Expected default outputDir, got %q", cfg.Source.OutputDir)
	}
	if len(cfg.Source.NoisePatterns) != 1 {
		t.Errorf("Unexpected noise patterns %v", cfg.Source.NoisePatterns)
	}
	if cfg.Book.ID != "dn" || len(cfg.Book.Chapters) != 2 {
		t.Errorf("Unexpected book %+v", cfg.Book)
	}
	if cfg.Book.Chapters[0].PaliTitle != "Brahmajālasuttaṃ" {
		t.Errorf("Unexpected chapter plan %+v", cfg.Book.Chapters[0])
	}
	if cfg.Remote.URL == "" || cfg.Remote.Token != "secret" {
		t.Errorf("Unexpected remote %+v", cfg.Remote)
	}
}

func TestLoadNoChapters(t *testing.T) {
	path := writeConfig(t, `
source:
  pdfPath: source/dn.pdf
book:
  id: dn
`)
	if _, err := Load(path); !errors.Is(err, ErrNoChapterPlan) {
		t.Errorf("Expected ErrNoChapterPlan, got %v", err)
	}
}

func TestLoadChapterOrder(t *testing.T) {
	path := writeConfig(t, `
book:
  id: dn
  chapters:
    - id: dn01
      start: 95
    - id: dn02
      start: 1
`)
	if _, err := Load(path); err == nil {
		t.Errorf("Expected out-of-order chapter starts to be an error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("Expected missing file to be an error")
	}
}
