package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rmendoza/pluma/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeFields()
		return m, nil

	case spinner.TickMsg:
		// Keep the busy indicator animated only while a submission
		// is actually in flight
		if !m.SubmitState.Submitting() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case postSubmittedMsg:
		return m.handlePostSubmitted(msg)

	case commentSubmittedMsg:
		return m.handleCommentSubmitted(msg)
	}

	return m, nil
}

// handleKey routes keyboard input to navigation, submission, or the
// focused widget
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	keys := m.config.KeyMappings

	if key == keys.Quit {
		return m, tea.Quit
	}

	// While a submission is in flight every control is disabled: no
	// focus moves, no edits, and no second submit intent. This is what
	// keeps at most one delayed completion scheduled system-wide.
	if m.SubmitState.Submitting() {
		return m, nil
	}

	switch key {
	case keys.NextField:
		cmd := m.focusField((m.focused + 1) % len(m.fields))
		return m, cmd

	case keys.PrevField:
		cmd := m.focusField((m.focused - 1 + len(m.fields)) % len(m.fields))
		return m, cmd

	case keys.TogglePreview:
		m.showPreview = !m.showPreview
		return m, nil

	case keys.Submit:
		// The submit intent goes to the sub-form owning the focused field
		if m.focused == commentIdx {
			return m.submitComment()
		}
		return m.submitPost()
	}

	return m.handleFieldInput(msg)
}

// handleFieldInput forwards a key to the focused widget. When the
// widget's value actually changes, the form state is overwritten and
// that field's error entry is optimistically cleared, whatever the new
// value looks like. Cursor movement and other non-edits clear nothing.
func (m Model) handleFieldInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	widget := m.fields[m.focused]
	before := widget.Value()

	updated, cmd := widget.Update(msg)
	m.fields[m.focused] = updated

	if after := updated.Value(); after != before {
		field := state.Field(updated.Key())
		m.FormState.SetValue(field, after)
		m.ErrorState.ClearField(field)
	}

	return m, cmd
}

// resizeFields fits the widgets to the current panel layout
func (m *Model) resizeFields() {
	inner := m.panelWidth() - 6
	if inner < 20 {
		inner = 20
	}
	for _, f := range m.fields {
		f.SetWidth(inner)
	}
}
