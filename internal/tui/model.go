package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rmendoza/pluma/internal/config"
	"github.com/rmendoza/pluma/internal/submit"
	"github.com/rmendoza/pluma/internal/tui/forms"
	"github.com/rmendoza/pluma/internal/tui/state"
)

// submitLatency is the simulated backend round-trip. The Submitter is
// only invoked once this delay elapses.
const submitLatency = 500 * time.Millisecond

// Field order on screen. The post sub-form owns the first two slots,
// the comment sub-form the last.
const (
	titleIdx = iota
	contentIdx
	commentIdx
)

// Model represents the application state for the compose screen
type Model struct {
	config *config.Config
	styles styles

	// Form state machine
	FormState   *state.FormState
	ErrorState  *state.ErrorState
	SubmitState *state.SubmitState

	// Input widgets, ordered by focus cycle
	fields  []forms.Field
	focused int

	// Submission plumbing; clock and latency are injectable so tests
	// control timing deterministically
	submitter submit.Submitter
	now       func() time.Time
	latency   time.Duration

	spinner     spinner.Model
	width       int
	height      int
	showPreview bool
}

// InitialModel creates and initializes the compose model
func InitialModel(cfg *config.Config, opts ...Option) Model {
	st := newStyles(cfg.ColorScheme)

	title := forms.NewTextInput(string(state.FieldPostTitle), "Enter post title...", 200)
	content := forms.NewTextArea(string(state.FieldPostContent), "Write your post...", 4000, 6)
	comment := forms.NewTextArea(string(state.FieldComment), "Write a comment...", 1000, 4)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.ColorScheme.Accent))

	m := Model{
		config:      cfg,
		styles:      st,
		FormState:   state.NewFormState(),
		ErrorState:  state.NewErrorState(),
		SubmitState: state.NewSubmitState(),
		fields:      []forms.Field{title, content, comment},
		focused:     titleIdx,
		submitter:   submit.NewLogSubmitter(nil),
		now:         time.Now,
		latency:     submitLatency,
		spinner:     sp,
	}

	for _, opt := range opts {
		opt(&m)
	}

	return m
}

// Init focuses the first field
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return m.fields[m.focused].Focus()
}

// fieldFor returns the widget bound to the named form field,
// or nil if no widget carries that key.
func (m Model) fieldFor(field state.Field) forms.Field {
	for _, f := range m.fields {
		if f.Key() == string(field) {
			return f
		}
	}
	return nil
}

// focusField blurs the current widget and focuses the one at idx
func (m *Model) focusField(idx int) tea.Cmd {
	if idx == m.focused {
		return nil
	}
	m.fields[m.focused].Blur()
	m.focused = idx
	return m.fields[m.focused].Focus()
}
