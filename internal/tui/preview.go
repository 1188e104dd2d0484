package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// renderPreviewPanel renders the drafted post as markdown in place of
// the comment panel. Purely presentational: toggling it never touches
// the form state machine.
func (m Model) renderPreviewPanel() string {
	parts := []string{
		m.styles.panelTitle.Render("Preview"),
		m.renderMarkdown(),
	}

	return m.styles.panel.Width(m.panelWidth()).Render(strings.Join(parts, "\n"))
}

func (m Model) renderMarkdown() string {
	title := m.FormState.PostTitle()
	content := m.FormState.PostContent()

	if strings.TrimSpace(title) == "" && strings.TrimSpace(content) == "" {
		return m.styles.subtle.Render("Nothing to preview yet.")
	}

	var doc strings.Builder
	if strings.TrimSpace(title) != "" {
		doc.WriteString("# " + title + "\n\n")
	}
	doc.WriteString(content)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(m.panelWidth()-6),
	)
	if err != nil {
		return doc.String()
	}

	out, err := renderer.Render(doc.String())
	if err != nil {
		// Fall back to the raw draft rather than hiding it
		return doc.String()
	}
	return strings.TrimRight(out, "\n")
}
