package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/rmendoza/pluma/internal/tui/components"
	"github.com/rmendoza/pluma/internal/tui/state"
)

// wideLayoutMin is the terminal width at which the two panels sit side
// by side; anything narrower stacks them.
const wideLayoutMin = 100

// panelWidth returns the outer width of one sub-form panel for the
// current layout
func (m Model) panelWidth() int {
	if m.width >= wideLayoutMin {
		return (m.width - 3) / 2
	}
	if m.width > 0 {
		return m.width - 1
	}
	return 60
}

// View renders the whole compose screen
// Required by tea.Model interface
func (m Model) View() string {
	post := m.renderPostPanel()

	second := m.renderCommentPanel()
	if m.showPreview {
		second = m.renderPreviewPanel()
	}

	var body string
	if m.width >= wideLayoutMin {
		body = lipgloss.JoinHorizontal(lipgloss.Top, post, " ", second)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, post, second)
	}

	width := m.width
	if width < 1 {
		width = lipgloss.Width(body)
	}
	status := components.RenderStatusBar(components.StatusBarProps{
		Width:  width,
		Subtle: m.config.ColorScheme.Subtle,
		Help:   m.helpText(),
	})

	return lipgloss.JoinVertical(lipgloss.Left, body, status)
}

// renderPostPanel renders the post sub-form: title, content, button
func (m Model) renderPostPanel() string {
	parts := []string{
		m.styles.panelTitle.Render("New Post"),
		m.renderField("Title", state.FieldPostTitle),
		m.renderField("Content", state.FieldPostContent),
		m.renderButton("Create Post", state.TargetPost),
	}

	return m.styles.panel.Width(m.panelWidth()).Render(strings.Join(parts, "\n"))
}

// renderCommentPanel renders the comment sub-form: body, button
func (m Model) renderCommentPanel() string {
	parts := []string{
		m.styles.panelTitle.Render("Add Comment"),
		m.renderField("Comment", state.FieldComment),
		m.renderButton("Add Comment", state.TargetComment),
	}

	return m.styles.panel.Width(m.panelWidth()).Render(strings.Join(parts, "\n"))
}

// renderField renders one labelled input. The box border reflects the
// field's status: error beats focus, focus beats idle. The validation
// message, when present, sits directly beneath the box.
func (m Model) renderField(label string, field state.Field) string {
	widget := m.fieldFor(field)

	box := m.styles.fieldBox
	switch {
	case m.ErrorState.Has(field):
		box = m.styles.fieldBoxError
	case widget.Focused() && !m.SubmitState.Submitting():
		box = m.styles.fieldBoxFocused
	}

	parts := []string{
		m.styles.label.Render(label),
		box.Render(widget.View()),
	}

	if m.ErrorState.Has(field) {
		msg := wordwrap.String(m.ErrorState.Message(field), m.panelWidth()-6)
		parts = append(parts, m.styles.errText.Render(msg))
	}

	return strings.Join(parts, "\n")
}

// renderButton renders a sub-form's submit button. Buttons are enabled
// whenever no submission is in flight, independent of field validity;
// while one is, both show disabled styling and the in-flight one gets
// the busy indicator.
func (m Model) renderButton(label string, target state.Target) string {
	if !m.SubmitState.Submitting() {
		return m.styles.button.Render(label)
	}

	text := label
	if m.SubmitState.Target() == target {
		text = fmt.Sprintf("%s Submitting...", m.spinner.View())
	}
	return m.styles.buttonDisabled.Render(text)
}

// helpText builds the status bar key hints from the active mappings
func (m Model) helpText() string {
	keys := m.config.KeyMappings
	return fmt.Sprintf("%s: next field  %s: submit  %s: preview  %s: quit",
		keys.NextField, keys.Submit, keys.TogglePreview, keys.Quit)
}
