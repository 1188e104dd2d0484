package forms

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTextInput_TypingUpdatesValue(t *testing.T) {
	ti := NewTextInput("title", "Enter a title...", 100)
	ti.Focus()

	var f Field = ti
	for _, r := range "Hi" {
		f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	if got := f.Value(); got != "Hi" {
		t.Errorf("Value() after typing = %q, want %q", got, "Hi")
	}
}

func TestTextInput_IgnoresInputWhenBlurred(t *testing.T) {
	ti := NewTextInput("title", "", 100)
	ti.Blur()

	var f Field = ti
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	if got := f.Value(); got != "" {
		t.Errorf("Value() after typing while blurred = %q, want empty", got)
	}
}

func TestTextArea_MultilineValue(t *testing.T) {
	ta := NewTextArea("content", "", 500, 5)
	ta.Focus()

	var f Field = ta
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})

	if got := f.Value(); got != "a\nb" {
		t.Errorf("Value() = %q, want %q", got, "a\nb")
	}
}

func TestFields_KeyIdentity(t *testing.T) {
	ti := NewTextInput("postTitle", "", 0)
	ta := NewTextArea("comment", "", 0, 3)

	if ti.Key() != "postTitle" {
		t.Errorf("TextInput.Key() = %q, want %q", ti.Key(), "postTitle")
	}
	if ta.Key() != "comment" {
		t.Errorf("TextArea.Key() = %q, want %q", ta.Key(), "comment")
	}
}

func TestFields_FocusRoundTrip(t *testing.T) {
	fields := []Field{
		NewTextInput("a", "", 0),
		NewTextArea("b", "", 0, 3),
	}

	for _, f := range fields {
		f.Focus()
		if !f.Focused() {
			t.Errorf("field %q not focused after Focus()", f.Key())
		}
		f.Blur()
		if f.Focused() {
			t.Errorf("field %q still focused after Blur()", f.Key())
		}
	}
}
