package remote

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Checkpoint remembers which chapters a sync batch already pushed, so a
// rerun after a partial failure skips finished work. A nil Checkpoint
// is valid and remembers nothing.
type Checkpoint struct {
	client *redis.Client
	key    string
}

func NewCheckpoint(addr, key string) *Checkpoint {
	return &Checkpoint{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		key:    key,
	}
}

func (c *Checkpoint) Done(ctx context.Context, chapterID string) (bool, error) {
	if c == nil {
		return false, nil
	}
	return c.client.SIsMember(ctx, c.key, chapterID).Result()
}

func (c *Checkpoint) MarkDone(ctx context.Context, chapterID string) error {
	if c == nil {
		return nil
	}
	return c.client.SAdd(ctx, c.key, chapterID).Err()
}
