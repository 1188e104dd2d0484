package submit

import (
	"context"

	"github.com/rmendoza/pluma/internal/models"
)

// Submitter delivers completed submissions to a backend.
// This interface allows for loose coupling and easier testing by depending
// on behavior rather than concrete implementation: the TUI only knows that
// a submission is accepted or rejected, not where it goes.
type Submitter interface {
	// SubmitPost delivers a newly created post
	SubmitPost(ctx context.Context, post models.Post) error

	// SubmitComment delivers a newly added comment
	SubmitComment(ctx context.Context, comment models.Comment) error
}

// Compile-time verification that the provided implementations satisfy Submitter
var (
	_ Submitter = (*LogSubmitter)(nil)
	_ Submitter = (*RetrySubmitter)(nil)
)
