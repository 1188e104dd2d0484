package submit

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/rmendoza/pluma/internal/models"
)

// recorder is a Submitter that records every delivery and returns a
// scripted error for the first failUntil attempts.
type recorder struct {
	posts     []models.Post
	comments  []models.Comment
	calls     int
	failUntil int
	err       error
}

func (r *recorder) SubmitPost(_ context.Context, post models.Post) error {
	r.calls++
	if r.calls <= r.failUntil {
		return r.err
	}
	r.posts = append(r.posts, post)
	return nil
}

func (r *recorder) SubmitComment(_ context.Context, comment models.Comment) error {
	r.calls++
	if r.calls <= r.failUntil {
		return r.err
	}
	r.comments = append(r.comments, comment)
	return nil
}

func TestLogSubmitter_EmitsPostEvent(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	s := NewLogSubmitter(logger)

	post := models.NewPost("Hello", "World", time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	if err := s.SubmitPost(context.Background(), post); err != nil {
		t.Fatalf("SubmitPost() error = %v, want nil", err)
	}

	out := buf.String()
	for _, want := range []string{"post created", "title=Hello", "content=World", "timestamp=2026-01-02T03:04:05Z"} {
		if !bytes.Contains([]byte(out), []byte(want)) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}

func TestLogSubmitter_EmitsCommentEvent(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	s := NewLogSubmitter(logger)

	comment := models.NewComment("Nice post!", time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	if err := s.SubmitComment(context.Background(), comment); err != nil {
		t.Fatalf("SubmitComment() error = %v, want nil", err)
	}

	out := buf.String()
	if !bytes.Contains([]byte(out), []byte("comment added")) {
		t.Errorf("log output missing comment event: %s", out)
	}
	if !bytes.Contains([]byte(out), []byte(`comment="Nice post!"`)) {
		t.Errorf("log output missing comment text: %s", out)
	}
}

func TestWithRetry_FirstAttemptSucceeds(t *testing.T) {
	rec := &recorder{}
	s := WithRetry(rec, 3)

	err := s.SubmitPost(context.Background(), models.NewPost("a", "b", time.Now()))
	if err != nil {
		t.Fatalf("SubmitPost() error = %v, want nil", err)
	}
	if rec.calls != 1 {
		t.Errorf("delivery attempts = %d, want 1", rec.calls)
	}
}

func TestWithRetry_RecoversAfterFailures(t *testing.T) {
	rec := &recorder{failUntil: 2, err: errors.New("backend down")}
	s := WithRetry(rec, 3)
	s.baseDelay = time.Millisecond

	err := s.SubmitComment(context.Background(), models.NewComment("hi", time.Now()))
	if err != nil {
		t.Fatalf("SubmitComment() error = %v, want nil after recovery", err)
	}
	if rec.calls != 3 {
		t.Errorf("delivery attempts = %d, want 3", rec.calls)
	}
	if len(rec.comments) != 1 {
		t.Errorf("delivered comments = %d, want 1", len(rec.comments))
	}
}

func TestWithRetry_ExhaustsRetries(t *testing.T) {
	wantErr := errors.New("backend down")
	rec := &recorder{failUntil: 10, err: wantErr}
	s := WithRetry(rec, 3)
	s.baseDelay = time.Millisecond

	err := s.SubmitPost(context.Background(), models.NewPost("a", "b", time.Now()))
	if !errors.Is(err, wantErr) {
		t.Fatalf("SubmitPost() error = %v, want %v", err, wantErr)
	}
	if rec.calls != 3 {
		t.Errorf("delivery attempts = %d, want 3", rec.calls)
	}
}

func TestWithRetry_ContextCancelled(t *testing.T) {
	rec := &recorder{failUntil: 10, err: errors.New("backend down")}
	s := WithRetry(rec, 3)
	s.baseDelay = time.Hour // would block forever without cancellation

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.SubmitPost(ctx, models.NewPost("a", "b", time.Now()))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("SubmitPost() error = %v, want context.Canceled", err)
	}
}
