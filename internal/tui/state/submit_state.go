package state

// Target identifies which sub-form owns an in-flight submission.
type Target string

const (
	TargetNone    Target = ""
	TargetPost    Target = "post"
	TargetComment Target = "comment"
)

// SubmitState holds the single isSubmitting flag shared by both
// sub-forms. While a submission is in flight every input and both
// submit actions are disabled, so at most one delayed completion can
// ever be scheduled system-wide.
type SubmitState struct {
	submitting bool
	target     Target
}

// NewSubmitState creates a new SubmitState with no submission in flight.
func NewSubmitState() *SubmitState {
	return &SubmitState{
		submitting: false,
		target:     TargetNone,
	}
}

// Begin marks a submission as in flight for the given target.
// Returns false without changing state if one is already in flight.
func (s *SubmitState) Begin(target Target) bool {
	if s.submitting {
		return false
	}
	s.submitting = true
	s.target = target
	return true
}

// Finish clears the in-flight flag. Safe to call when idle.
func (s *SubmitState) Finish() {
	s.submitting = false
	s.target = TargetNone
}

// Submitting returns true while a submission is in flight.
func (s *SubmitState) Submitting() bool {
	return s.submitting
}

// Target returns which sub-form is currently in flight,
// or TargetNone when idle.
func (s *SubmitState) Target() Target {
	return s.target
}
