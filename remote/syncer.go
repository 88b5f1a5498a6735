package remote

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/DishanH/Pali-sub002/chapter"
	"github.com/DishanH/Pali-sub002/utils/log"
	"github.com/DishanH/Pali-sub002/utils/retry"
)

// ChapterStore is the remote side of a sync: two logical tables,
// chapters by id and sections by chapter id plus number.
type ChapterStore interface {
	UpsertChapter(ctx context.Context, row ChapterRow) error
	UpsertSection(ctx context.Context, row SectionRow) error
}

// ChapterReport is the outcome for one chapter. The remote store is not
// transactional across sections, so section failures are reported
// individually instead of rolling anything back.
type ChapterReport struct {
	ChapterID      string
	Synced         bool
	Skipped        bool
	FailedSections []int
	Err            error
}

type Syncer struct {
	store      ChapterStore
	checkpoint *Checkpoint
	retryOpts  retry.Options
	runID      string
}

// runTagger is implemented by stores that can carry the run id on the
// wire, like the REST store's idempotency header.
type runTagger interface {
	TagRun(id string)
}

// NewSyncer builds a syncer over the given store. checkpoint may be
// nil. Zero retryOpts selects the retry defaults.
func NewSyncer(store ChapterStore, checkpoint *Checkpoint, retryOpts retry.Options) *Syncer {
	if retryOpts.MaxAttempts <= 0 {
		retryOpts = retry.DefaultOptions
	}
	s := &Syncer{
		store:      store,
		checkpoint: checkpoint,
		retryOpts:  retryOpts,
		runID:      uuid.New().String()[:8],
	}
	if tagger, ok := store.(runTagger); ok {
		tagger.TagRun(s.runID)
	}
	return s
}

// SyncChapter pushes one chapter. The chapter row goes first; if it
// fails after all retries no section is touched, so a failed chapter is
// never half-created. Section upserts then run one by one, each with
// its own retry budget, and a section failure does not stop the rest.
func (s *Syncer) SyncChapter(ctx context.Context, ch chapter.Chapter) ChapterReport {
	report := ChapterReport{ChapterID: ch.ID}

	done, err := s.checkpoint.Done(ctx, ch.ID)
	if err != nil {
		log.Warn(ctx, "checkpoint lookup failed, syncing anyway",
			zap.String("run", s.runID), zap.String("chapter", ch.ID), zap.Error(err))
	}
	if done {
		report.Skipped = true
		return report
	}

	row, sections := rowsFromChapter(ch)

	err = retry.Do(ctx, func() error {
		return s.store.UpsertChapter(ctx, row)
	}, s.retryOpts)
	if err != nil {
		report.Err = errors.Wrapf(err, "sync chapter %s", ch.ID)
		return report
	}

	for _, sec := range sections {
		sec := sec
		err := retry.Do(ctx, func() error {
			return s.store.UpsertSection(ctx, sec)
		}, s.retryOpts)
		if err != nil {
			report.FailedSections = append(report.FailedSections, sec.Number)
			log.Error(ctx, "section sync failed",
				zap.String("run", s.runID), zap.String("chapter", ch.ID),
				zap.Int("section", sec.Number), zap.Error(err))
		}
	}

	if len(report.FailedSections) == 0 {
		report.Synced = true
		if err := s.checkpoint.MarkDone(ctx, ch.ID); err != nil {
			log.Warn(ctx, "checkpoint update failed",
				zap.String("run", s.runID), zap.String("chapter", ch.ID), zap.Error(err))
		}
	}
	return report
}

// SyncAll pushes chapters in order. A chapter failing after retry
// exhaustion is reported and the batch moves on to the next one.
func (s *Syncer) SyncAll(ctx context.Context, chapters []chapter.Chapter) []ChapterReport {
	reports := make([]ChapterReport, 0, len(chapters))
	for _, ch := range chapters {
		report := s.SyncChapter(ctx, ch)
		switch {
		case report.Skipped:
			log.Info(ctx, "chapter already synced, skipped",
				zap.String("run", s.runID), zap.String("chapter", ch.ID))
		case report.Err != nil:
			log.Error(ctx, "chapter sync failed",
				zap.String("run", s.runID), zap.String("chapter", ch.ID), zap.Error(report.Err))
		default:
			log.Info(ctx, "chapter synced",
				zap.String("run", s.runID), zap.String("chapter", ch.ID),
				zap.Int("failedSections", len(report.FailedSections)))
		}
		reports = append(reports, report)
	}
	return reports
}
