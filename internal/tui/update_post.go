package tui

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rmendoza/pluma/internal/models"
	"github.com/rmendoza/pluma/internal/tui/state"
)

// postSubmittedMsg signals that the simulated backend round-trip for a
// post finished and the Submitter was invoked.
type postSubmittedMsg struct {
	post models.Post
	err  error
}

// submitPost runs the post sub-form's submission state machine:
// validate {postTitle, postContent}; on failure stay idle with the
// errors visible; on success flag the submission and schedule the
// single delayed completion.
func (m Model) submitPost() (tea.Model, tea.Cmd) {
	if !m.ErrorState.Validate(m.FormState, state.PostFields()...) {
		return m, nil
	}

	if !m.SubmitState.Begin(state.TargetPost) {
		return m, nil
	}

	cmd := m.deliverPostCmd(m.FormState.PostTitle(), m.FormState.PostContent())
	return m, tea.Batch(m.spinner.Tick, cmd)
}

// deliverPostCmd performs the create-post side effect after the
// simulated latency elapses. The timestamp is read when the delay
// fires, not when the submission was requested.
func (m Model) deliverPostCmd(title, content string) tea.Cmd {
	submitter, now := m.submitter, m.now
	return tea.Tick(m.latency, func(time.Time) tea.Msg {
		post := models.NewPost(title, content, now())
		err := submitter.SubmitPost(context.Background(), post)
		return postSubmittedMsg{post: post, err: err}
	})
}

// handlePostSubmitted resets the post fields and releases the shared
// submission flag. The comment field is untouched. There is no abort
// path: a scheduled completion always lands here.
func (m Model) handlePostSubmitted(msg postSubmittedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		slog.Error("post delivery failed", "post_id", msg.post.ID.String(), "error", msg.err)
	}

	m.FormState.ResetPost()
	m.fieldFor(state.FieldPostTitle).SetValue("")
	m.fieldFor(state.FieldPostContent).SetValue("")
	m.SubmitState.Finish()

	return m, nil
}
