package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rmendoza/pluma/internal/config/colors"
)

// styles holds the lipgloss styles for the compose screen, derived from
// the configured color scheme
type styles struct {
	panel      lipgloss.Style
	panelTitle lipgloss.Style
	label      lipgloss.Style
	subtle     lipgloss.Style
	errText    lipgloss.Style

	fieldBox        lipgloss.Style
	fieldBoxFocused lipgloss.Style
	fieldBoxError   lipgloss.Style

	button         lipgloss.Style
	buttonDisabled lipgloss.Style
}

func newStyles(scheme colors.ColorScheme) styles {
	accent := lipgloss.Color(scheme.Accent)
	errColor := lipgloss.Color(scheme.Error)
	subtle := lipgloss.Color(scheme.Subtle)
	normal := lipgloss.Color(scheme.Normal)

	fieldBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.FieldBorder)).
		Padding(0, 1)

	button := lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.ButtonFg)).
		Background(accent).
		Bold(true).
		Padding(0, 2).
		MarginTop(1)

	return styles{
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(scheme.PanelBorder)).
			Padding(1, 2),
		panelTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Title)).
			Bold(true),
		label: lipgloss.NewStyle().
			Foreground(normal).
			Bold(true).
			MarginTop(1),
		subtle: lipgloss.NewStyle().
			Foreground(subtle),
		errText: lipgloss.NewStyle().
			Foreground(errColor),

		fieldBox: fieldBox,
		fieldBoxFocused: fieldBox.
			BorderForeground(lipgloss.Color(scheme.FocusBorder)),
		fieldBoxError: fieldBox.
			BorderForeground(errColor),

		button: button,
		buttonDisabled: button.
			Foreground(normal).
			Background(subtle).
			Bold(false),
	}
}
