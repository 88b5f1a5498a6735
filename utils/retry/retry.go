package retry

import (
	"context"
	"math/rand"
	"time"
)

type Options struct {
	// MaxAttempts bounds the total number of tries, not just retries
	MaxAttempts int
	// InitialBackoff the backoff before the first retry
	InitialBackoff time.Duration
	// MaxBackoff caps the grown backoff interval
	MaxBackoff time.Duration
}

var DefaultOptions = Options{
	MaxAttempts:    3,
	InitialBackoff: time.Second,
	MaxBackoff:     30 * time.Second,
}

// Do runs operation until it succeeds, attempts run out, or the context
// is done. The last operation error is returned on exhaustion; a
// context error is returned as-is so callers can tell cancellation
// apart from upstream failure.
func Do(ctx context.Context, operation func() error, options Options) error {
	if options.MaxAttempts <= 0 {
		options = DefaultOptions
	}

	var err error
	for attempt := 0; attempt < options.MaxAttempts; attempt++ {
		err = operation()
		if err == nil {
			return nil
		}

		if attempt == options.MaxAttempts-1 {
			break
		}

		backoff := jitterBackoff(attempt, options.InitialBackoff)
		if backoff > options.MaxBackoff {
			backoff = options.MaxBackoff
		}

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return err
}

// exponential growth with full jitter on top
func jitterBackoff(attempt int, base time.Duration) time.Duration {
	if base <= 0 {
		base = time.Second
	}
	backoff := base * time.Duration(1<<uint(attempt))
	jitter := time.Duration(rand.Int63n(int64(backoff)))

	return backoff + jitter
}
