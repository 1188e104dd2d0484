package submit

import (
	"context"
	"log/slog"
	"time"

	"github.com/rmendoza/pluma/internal/models"
)

// RetrySubmitter wraps another Submitter and retries failed deliveries
// with exponential backoff. It is designed for submissions where eventual
// delivery is acceptable but immediate failure should not be surfaced to
// the user on the first hiccup.
type RetrySubmitter struct {
	inner      Submitter
	maxRetries int
	baseDelay  time.Duration
}

// WithRetry wraps inner so every delivery is attempted up to maxRetries
// times. The delay between attempts doubles each time, starting at 50ms.
func WithRetry(inner Submitter, maxRetries int) *RetrySubmitter {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &RetrySubmitter{
		inner:      inner,
		maxRetries: maxRetries,
		baseDelay:  50 * time.Millisecond,
	}
}

// SubmitPost delivers the post, retrying on failure.
func (s *RetrySubmitter) SubmitPost(ctx context.Context, post models.Post) error {
	return s.retry(ctx, "post", func() error {
		return s.inner.SubmitPost(ctx, post)
	})
}

// SubmitComment delivers the comment, retrying on failure.
func (s *RetrySubmitter) SubmitComment(ctx context.Context, comment models.Comment) error {
	return s.retry(ctx, "comment", func() error {
		return s.inner.SubmitComment(ctx, comment)
	})
}

func (s *RetrySubmitter) retry(ctx context.Context, kind string, deliver func() error) error {
	var lastErr error

	for attempt := 0; attempt < s.maxRetries; attempt++ {
		err := deliver()
		if err == nil {
			if attempt > 0 {
				slog.Debug("submission delivered after retry",
					"kind", kind,
					"attempt", attempt+1)
			}
			return nil
		}

		lastErr = err

		// Don't sleep after the last attempt
		if attempt < s.maxRetries-1 {
			delay := s.baseDelay * (1 << attempt)
			slog.Debug("submission failed, retrying",
				"kind", kind,
				"attempt", attempt+1,
				"max_retries", s.maxRetries,
				"retry_delay", delay,
				"error", err)

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	slog.Warn("submission failed after all retries",
		"kind", kind,
		"attempts", s.maxRetries,
		"error", lastErr)

	return lastErr
}
