package tui

import (
	"time"

	"github.com/rmendoza/pluma/internal/submit"
)

// Option is a functional option for configuring the initial model
type Option func(*Model)

// WithSubmitter sets the collaborator receiving completed submissions.
// The default is a log-only submitter.
func WithSubmitter(s submit.Submitter) Option {
	return func(m *Model) {
		m.submitter = s
	}
}

// WithClock sets the clock used to timestamp submissions.
// Tests use this to make emitted timestamps deterministic.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

// WithLatency overrides the simulated backend delay.
func WithLatency(d time.Duration) Option {
	return func(m *Model) {
		m.latency = d
	}
}
