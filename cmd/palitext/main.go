package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/DishanH/Pali-sub002/chapter"
	"github.com/DishanH/Pali-sub002/config"
	"github.com/DishanH/Pali-sub002/extract"
	"github.com/DishanH/Pali-sub002/remote"
	"github.com/DishanH/Pali-sub002/repair"
	"github.com/DishanH/Pali-sub002/segment"
	"github.com/DishanH/Pali-sub002/utils/log"
	"github.com/DishanH/Pali-sub002/utils/retry"
)

const usage = `usage: palitext <command> [-config path]

commands:
  extract   read the source PDF and write chapter + book JSON files
  repair    fix known corruption in written chapter files, in place
  verify    scan chapter files for remaining corruption
  sync      push chapter files to the remote store
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	command := os.Args[1]

	fs := flag.NewFlagSet(command, flag.ExitOnError)
	configPath := fs.String("config", "palitext.yaml", "pipeline config file")
	fs.Parse(os.Args[2:])

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "palitext: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	switch command {
	case "extract":
		err = runExtract(ctx, cfg)
	case "repair":
		err = runRepair(ctx, cfg)
	case "verify":
		err = runVerify(ctx, cfg)
	case "sync":
		err = runSync(ctx, cfg)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "palitext: %v\n", err)
		os.Exit(1)
	}
}

func runExtract(ctx context.Context, cfg config.PipelineConfig) error {
	filter, err := extract.NewNoiseFilter(cfg.Source.NoisePatterns)
	if err != nil {
		return err
	}

	lines, err := extract.PageLines(cfg.Source.PDFPath, filter)
	if err != nil {
		return err
	}
	log.Info(ctx, "extracted source lines",
		zap.String("pdf", cfg.Source.PDFPath), zap.Int("lines", len(lines)))

	detector := segment.NewHeadingDetector(cfg.Heading.MaxRunes, cfg.Heading.Suffixes)
	sections, err := segment.NewSegmenter(detector).Segment(lines, cfg.Book.Chapters[0].Start)
	if err != nil {
		return err
	}
	log.Info(ctx, "segmented sections", zap.Int("sections", len(sections)))

	plans := make([]chapter.Plan, 0, len(cfg.Book.Chapters))
	for _, p := range cfg.Book.Chapters {
		plans = append(plans, chapter.Plan{ID: p.ID, PaliTitle: p.PaliTitle, Start: p.Start})
	}
	chapters, err := chapter.SplitByPlan(sections, plans)
	if err != nil {
		return err
	}

	for _, ch := range chapters {
		path, err := chapter.Write(cfg.Source.OutputDir, ch)
		if err != nil {
			return err
		}
		start, end := ch.Range()
		log.Info(ctx, "wrote chapter", zap.String("path", path),
			zap.Int("start", start), zap.Int("end", end))
	}

	book, err := chapter.NewBook(cfg.Book.ID, chapters)
	if err != nil {
		return err
	}
	path, err := chapter.WriteBook(cfg.Source.OutputDir, book)
	if err != nil {
		return err
	}
	log.Info(ctx, "wrote book metadata", zap.String("path", path))
	return nil
}

func runRepair(ctx context.Context, cfg config.PipelineConfig) error {
	paths, err := chapterFiles(cfg.Source.OutputDir)
	if err != nil {
		return err
	}

	repaired := 0
	for _, path := range paths {
		changed, err := repair.RepairFile(path)
		if err != nil {
			return err
		}
		if changed {
			repaired++
			log.Info(ctx, "repaired chapter file", zap.String("path", path))
		}
	}
	log.Info(ctx, "repair pass finished",
		zap.Int("files", len(paths)), zap.Int("repaired", repaired))
	return nil
}

func runVerify(ctx context.Context, cfg config.PipelineConfig) error {
	reports, err := repair.VerifyDir(cfg.Source.OutputDir)
	if err != nil {
		return err
	}

	dirty := 0
	for _, report := range reports {
		if report.Clean {
			continue
		}
		dirty++
		for _, issue := range report.Offending {
			log.Warn(ctx, "unresolved corruption",
				zap.String("path", report.Path), zap.String("issue", issue.String()))
		}
	}
	log.Info(ctx, "verify pass finished",
		zap.Int("files", len(reports)), zap.Int("dirty", dirty))
	if dirty > 0 {
		os.Exit(1)
	}
	return nil
}

func runSync(ctx context.Context, cfg config.PipelineConfig) error {
	store, err := buildStore(cfg.Remote)
	if err != nil {
		return err
	}

	var checkpoint *remote.Checkpoint
	if cfg.Remote.RedisAddr != "" {
		checkpoint = remote.NewCheckpoint(cfg.Remote.RedisAddr, "palitext:synced:"+cfg.Book.ID)
	}

	paths, err := chapterFiles(cfg.Source.OutputDir)
	if err != nil {
		return err
	}
	chapters := make([]chapter.Chapter, 0, len(paths))
	for _, path := range paths {
		ch, err := chapter.Read(path)
		if err != nil {
			return err
		}
		chapters = append(chapters, ch)
	}

	syncer := remote.NewSyncer(store, checkpoint, retry.DefaultOptions)
	failed := 0
	for _, report := range syncer.SyncAll(ctx, chapters) {
		if report.Err != nil || len(report.FailedSections) > 0 {
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
	return nil
}

func buildStore(cfg config.RemoteConfig) (remote.ChapterStore, error) {
	switch {
	case cfg.URL != "":
		return remote.NewRESTStore(cfg.URL, cfg.Token), nil
	case cfg.MySQLDSN != "":
		store, err := remote.NewSQLStore(cfg.MySQLDSN)
		if err != nil {
			return nil, err
		}
		if err := store.Migrate(); err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("remote store not configured: set remote.url or remote.mysqlDSN")
	}
}

func chapterFiles(dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}
	var files []string
	for _, path := range paths {
		if strings.HasSuffix(path, ".book.json") {
			continue
		}
		files = append(files, path)
	}
	return files, nil
}
