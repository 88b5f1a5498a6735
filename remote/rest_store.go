package remote

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// RESTStore talks to a PostgREST-style endpoint: POST to the table path
// with merge-duplicates upsert semantics, bearer token auth. Retries
// belong to the Syncer, so the resty client carries none of its own.
type RESTStore struct {
	client *resty.Client
}

func NewRESTStore(baseURL, token string) *RESTStore {
	return &RESTStore{
		client: resty.New().
			SetBaseURL(baseURL).
			SetAuthToken(token).
			SetHeader("Prefer", "resolution=merge-duplicates").
			SetTimeout(30 * time.Second),
	}
}

// TagRun stamps every request of this sync run with an idempotency
// header carrying the run id.
func (s *RESTStore) TagRun(id string) {
	s.client.SetHeader("X-Run-Id", id)
}

func (s *RESTStore) UpsertChapter(ctx context.Context, row ChapterRow) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(row).
		Post("/chapters")
	if err != nil {
		return errors.Wrapf(err, "upsert chapter %s", row.ID)
	}
	if resp.IsError() {
		return errors.Errorf("upsert chapter %s: status %d: %s", row.ID, resp.StatusCode(), resp.String())
	}
	return nil
}

func (s *RESTStore) UpsertSection(ctx context.Context, row SectionRow) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(row).
		Post("/sections")
	if err != nil {
		return errors.Wrapf(err, "upsert section %d of %s", row.Number, row.ChapterID)
	}
	if resp.IsError() {
		return errors.Errorf("upsert section %d of %s: status %d: %s",
			row.Number, row.ChapterID, resp.StatusCode(), resp.String())
	}
	return nil
}
