package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type StatusBarProps struct {
	Width  int
	Subtle string // hex color for the bar text
	Help   string // right-aligned key hints
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: application name
// Right side: key hints for the current screen
func RenderStatusBar(props StatusBarProps) string {
	leftText := "Pluma - Compose"

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(props.Subtle))

	leftRendered := style.Render(leftText)
	rightRendered := style.Render(props.Help)

	// Calculate space between left and right text
	leftWidth := lipgloss.Width(leftRendered)
	rightWidth := lipgloss.Width(rightRendered)
	gapWidth := props.Width - leftWidth - rightWidth
	if gapWidth < 1 {
		gapWidth = 1
	}

	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}
