package submit

import (
	"context"
	"log/slog"
	"os"
	"os/user"

	"github.com/rmendoza/pluma/internal/models"
)

// LogSubmitter is the default Submitter. It emits one structured log
// event per submission and performs no other I/O, standing in for a
// real backend integration.
type LogSubmitter struct {
	logger *slog.Logger
	author string
}

// NewLogSubmitter creates a LogSubmitter writing through logger.
// A nil logger falls back to slog.Default(). Events are attributed to
// the local system user.
func NewLogSubmitter(logger *slog.Logger) *LogSubmitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSubmitter{
		logger: logger,
		author: currentUsername(),
	}
}

// SubmitPost emits a "post created" event with the post's fields.
func (s *LogSubmitter) SubmitPost(ctx context.Context, post models.Post) error {
	s.logger.InfoContext(ctx, "post created",
		"post_id", post.ID.String(),
		"title", post.Title,
		"content", post.Content,
		"author", s.author,
		"timestamp", post.TimestampString())
	return nil
}

// SubmitComment emits a "comment added" event with the comment's fields.
func (s *LogSubmitter) SubmitComment(ctx context.Context, comment models.Comment) error {
	s.logger.InfoContext(ctx, "comment added",
		"comment_id", comment.ID.String(),
		"comment", comment.Message,
		"author", s.author,
		"timestamp", comment.TimestampString())
	return nil
}

// currentUsername resolves who to attribute events to, falling back to
// the USER environment variable and then "unknown" in restricted
// environments where user.Current fails.
func currentUsername() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "unknown"
}
