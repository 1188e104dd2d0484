package tui

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rmendoza/pluma/internal/models"
	"github.com/rmendoza/pluma/internal/tui/state"
)

// commentSubmittedMsg signals that the simulated round-trip for a
// comment finished and the Submitter was invoked.
type commentSubmittedMsg struct {
	comment models.Comment
	err     error
}

// submitComment mirrors the post flow restricted to the comment field.
func (m Model) submitComment() (tea.Model, tea.Cmd) {
	if !m.ErrorState.Validate(m.FormState, state.CommentFields()...) {
		return m, nil
	}

	if !m.SubmitState.Begin(state.TargetComment) {
		return m, nil
	}

	cmd := m.deliverCommentCmd(m.FormState.Comment())
	return m, tea.Batch(m.spinner.Tick, cmd)
}

// deliverCommentCmd performs the add-comment side effect after the
// simulated latency elapses.
func (m Model) deliverCommentCmd(message string) tea.Cmd {
	submitter, now := m.submitter, m.now
	return tea.Tick(m.latency, func(time.Time) tea.Msg {
		comment := models.NewComment(message, now())
		err := submitter.SubmitComment(context.Background(), comment)
		return commentSubmittedMsg{comment: comment, err: err}
	})
}

// handleCommentSubmitted resets the comment field and releases the
// shared submission flag; the post fields are unaffected.
func (m Model) handleCommentSubmitted(msg commentSubmittedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		slog.Error("comment delivery failed", "comment_id", msg.comment.ID.String(), "error", msg.err)
	}

	m.FormState.ResetComment()
	m.fieldFor(state.FieldComment).SetValue("")
	m.SubmitState.Finish()

	return m, nil
}
