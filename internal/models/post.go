package models

import (
	"time"

	"github.com/google/uuid"
)

// Post is the payload of a completed post submission.
// It only exists for the duration of the hand-off to the Submitter;
// nothing is persisted.
type Post struct {
	ID        uuid.UUID
	Title     string
	Content   string
	Timestamp time.Time
}

// NewPost builds a Post with a fresh ID and the given submission time.
func NewPost(title, content string, ts time.Time) Post {
	return Post{
		ID:        uuid.New(),
		Title:     title,
		Content:   content,
		Timestamp: ts,
	}
}

// TimestampString returns the submission time in RFC 3339 form,
// the format used in emitted events.
func (p Post) TimestampString() string {
	return p.Timestamp.Format(time.RFC3339)
}
