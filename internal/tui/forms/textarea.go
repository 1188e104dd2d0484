package forms

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// TextArea is a multi-line text input field
type TextArea struct {
	key      string
	textarea textarea.Model
}

// NewTextArea creates a new text area field
func NewTextArea(key, placeholder string, charLimit, height int) *TextArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.CharLimit = charLimit
	ta.SetHeight(height)
	ta.ShowLineNumbers = false

	return &TextArea{
		key:      key,
		textarea: ta,
	}
}

// Update handles messages
func (t *TextArea) Update(msg tea.Msg) (Field, tea.Cmd) {
	var cmd tea.Cmd
	t.textarea, cmd = t.textarea.Update(msg)
	return t, cmd
}

// View renders the text area
func (t *TextArea) View() string {
	return t.textarea.View()
}

// Focus focuses the text area
func (t *TextArea) Focus() tea.Cmd {
	return t.textarea.Focus()
}

// Blur removes focus
func (t *TextArea) Blur() {
	t.textarea.Blur()
}

// Focused returns whether the textarea is focused
func (t *TextArea) Focused() bool {
	return t.textarea.Focused()
}

// Key returns the field key
func (t *TextArea) Key() string {
	return t.key
}

// Value returns the current value
func (t *TextArea) Value() string {
	return t.textarea.Value()
}

// SetValue overwrites the current value
func (t *TextArea) SetValue(value string) {
	t.textarea.SetValue(value)
}

// SetWidth resizes the textarea
func (t *TextArea) SetWidth(width int) {
	t.textarea.SetWidth(width)
}
