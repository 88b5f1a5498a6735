package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoChapterPlan = errors.New("config has no chapter plan")
)

// PipelineConfig drives one batch run end to end.
type PipelineConfig struct {
	Source  SourceConfig  `yaml:"source"`
	Book    BookConfig    `yaml:"book"`
	Heading HeadingConfig `yaml:"heading"`
	Remote  RemoteConfig  `yaml:"remote"`
}

type SourceConfig struct {
	PDFPath       string   `yaml:"pdfPath"`
	OutputDir     string   `yaml:"outputDir"`
	NoisePatterns []string `yaml:"noisePatterns"`
}

type BookConfig struct {
	ID       string        `yaml:"id"`
	Chapters []ChapterPlan `yaml:"chapters"`
}

// ChapterPlan names a chapter and the first section number it owns in
// the collection's continuous numbering. A chapter ends where the next
// one starts.
type ChapterPlan struct {
	ID        string `yaml:"id"`
	PaliTitle string `yaml:"paliTitle"`
	Start     int    `yaml:"start"`
}

type HeadingConfig struct {
	MaxRunes int      `yaml:"maxRunes"`
	Suffixes []string `yaml:"suffixes"`
}

// RemoteConfig selects the sync backend: URL+Token for the REST store,
// MySQLDSN for direct SQL. RedisAddr enables the resume checkpoint.
type RemoteConfig struct {
	URL       string `yaml:"url"`
	Token     string `yaml:"token"`
	MySQLDSN  string `yaml:"mysqlDSN"`
	RedisAddr string `yaml:"redisAddr"`
}

// Load reads and validates a pipeline config file.
func Load(path string) (PipelineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PipelineConfig{}, errors.Wrap(err, "read config file")
	}

	var cfg PipelineConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PipelineConfig{}, errors.Wrap(err, "parse config file")
	}

	if cfg.Source.OutputDir == "" {
		cfg.Source.OutputDir = "."
	}
	if err := cfg.validate(); err != nil {
		return PipelineConfig{}, err
	}
	return cfg, nil
}

func (c PipelineConfig) validate() error {
	if len(c.Book.Chapters) == 0 {
		return ErrNoChapterPlan
	}
	for i, ch := range c.Book.Chapters {
		if ch.ID == "" {
			return errors.Errorf("chapter plan %d has no id", i)
		}
		if ch.Start < 1 {
			return errors.Errorf("chapter %s starts below 1", ch.ID)
		}
		if i > 0 && ch.Start <= c.Book.Chapters[i-1].Start {
			return errors.Errorf("chapter %s start %d does not follow %s start %d",
				ch.ID, ch.Start, c.Book.Chapters[i-1].ID, c.Book.Chapters[i-1].Start)
		}
	}
	return nil
}
