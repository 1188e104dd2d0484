package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment is the payload of a completed comment submission.
type Comment struct {
	ID        uuid.UUID
	Message   string
	Timestamp time.Time
}

// NewComment builds a Comment with a fresh ID and the given submission time.
func NewComment(message string, ts time.Time) Comment {
	return Comment{
		ID:        uuid.New(),
		Message:   message,
		Timestamp: ts,
	}
}

// TimestampString returns the submission time in RFC 3339 form.
func (c Comment) TimestampString() string {
	return c.Timestamp.Format(time.RFC3339)
}
