package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rmendoza/pluma/internal/tui/state"
)

func sized(t *testing.T, m Model, width int) Model {
	t.Helper()
	m, _ = update(t, m, tea.WindowSizeMsg{Width: width, Height: 40})
	return m
}

func TestView_ShowsBothPanelsAndButtons(t *testing.T) {
	m, _ := newTestModel(t)
	m = sized(t, m, 120)

	view := m.View()

	for _, want := range []string{"New Post", "Add Comment", "Create Post", "Title", "Content", "Comment"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestView_ShowsValidationMessagesBeneathFields(t *testing.T) {
	m, _ := newTestModel(t)
	m = sized(t, m, 120)

	m, _ = update(t, m, submitKey())
	view := m.View()

	if !strings.Contains(view, "Post title is required") {
		t.Error("View() missing the title validation message")
	}
	if !strings.Contains(view, "Post content is required") {
		t.Error("View() missing the content validation message")
	}
	if strings.Contains(view, "Comment is required") {
		t.Error("View() shows a comment error the post submit must not create")
	}
}

func TestView_BusyIndicatorWhileSubmitting(t *testing.T) {
	m, _ := newTestModel(t)
	m = sized(t, m, 120)
	m.FormState.SetPostTitle("Hello")
	m.FormState.SetPostContent("World")

	m, cmd := update(t, m, submitKey())
	if cmd == nil {
		t.Fatal("submission not scheduled")
	}

	view := m.View()
	if !strings.Contains(view, "Submitting...") {
		t.Error("View() missing the busy indicator while in flight")
	}

	m = deliver(t, m, cmd)
	if strings.Contains(m.View(), "Submitting...") {
		t.Error("busy indicator still shown after completion")
	}
}

func TestView_PreviewReplacesCommentPanel(t *testing.T) {
	m, _ := newTestModel(t)
	m = sized(t, m, 120)
	m.FormState.SetPostTitle("Hello")
	m.FormState.SetPostContent("Some *markdown* body")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
	view := m.View()

	if !strings.Contains(view, "Preview") {
		t.Error("View() missing the preview panel")
	}
	if strings.Contains(view, "Add Comment") {
		t.Error("comment panel still rendered while preview is active")
	}
}

func TestView_PreviewEmptyDraft(t *testing.T) {
	m, _ := newTestModel(t)
	m = sized(t, m, 120)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})

	if !strings.Contains(m.View(), "Nothing to preview yet.") {
		t.Error("empty draft preview missing its placeholder")
	}
}

func TestView_NarrowLayoutStillRendersEverything(t *testing.T) {
	m, _ := newTestModel(t)
	m = sized(t, m, 50)

	view := m.View()
	for _, want := range []string{"New Post", "Add Comment"} {
		if !strings.Contains(view, want) {
			t.Errorf("narrow View() missing %q", want)
		}
	}
}

func TestView_StatusBarShowsKeyHints(t *testing.T) {
	m, _ := newTestModel(t)
	m = sized(t, m, 120)

	view := m.View()
	if !strings.Contains(view, "ctrl+s: submit") {
		t.Error("status bar missing the submit hint")
	}
}

func TestView_ErroredFieldKeepsMessageUntilEdited(t *testing.T) {
	m, _ := newTestModel(t)
	m = sized(t, m, 120)

	m, _ = update(t, m, submitKey())
	if !m.ErrorState.Has(state.FieldPostTitle) {
		t.Fatal("setup: post errors not recorded")
	}

	m = typeString(t, m, "H")
	view := m.View()

	if strings.Contains(view, "Post title is required") {
		t.Error("title error still rendered after edit")
	}
	if !strings.Contains(view, "Post content is required") {
		t.Error("content error vanished without an edit")
	}
}
