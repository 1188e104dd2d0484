package forms

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Field is the interface that all form fields implement. The model owns
// field ordering and focus; fields only know how to render themselves
// and consume input while focused.
type Field interface {
	// Update handles messages and updates the field
	Update(tea.Msg) (Field, tea.Cmd)

	// View renders the field
	View() string

	// Focus focuses the field
	Focus() tea.Cmd

	// Blur removes focus from the field
	Blur()

	// Focused returns whether the field is focused
	Focused() bool

	// Key returns the field's identity (used to route values and errors)
	Key() string

	// Value returns the current text value
	Value() string

	// SetValue overwrites the current text value
	SetValue(value string)

	// SetWidth resizes the field to fit the current layout
	SetWidth(width int)
}
