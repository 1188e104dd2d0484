package forms

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TextInput is a single-line text input field
type TextInput struct {
	key   string
	input textinput.Model
}

// NewTextInput creates a new text input field
func NewTextInput(key, placeholder string, charLimit int) *TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = charLimit

	return &TextInput{
		key:   key,
		input: ti,
	}
}

// Update handles messages
func (t *TextInput) Update(msg tea.Msg) (Field, tea.Cmd) {
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return t, cmd
}

// View renders the text input
func (t *TextInput) View() string {
	return t.input.View()
}

// Focus focuses the text input
func (t *TextInput) Focus() tea.Cmd {
	return t.input.Focus()
}

// Blur removes focus
func (t *TextInput) Blur() {
	t.input.Blur()
}

// Focused returns whether the input is focused
func (t *TextInput) Focused() bool {
	return t.input.Focused()
}

// Key returns the field key
func (t *TextInput) Key() string {
	return t.key
}

// Value returns the current value
func (t *TextInput) Value() string {
	return t.input.Value()
}

// SetValue overwrites the current value
func (t *TextInput) SetValue(value string) {
	t.input.SetValue(value)
}

// SetWidth resizes the input
func (t *TextInput) SetWidth(width int) {
	t.input.Width = width
}
