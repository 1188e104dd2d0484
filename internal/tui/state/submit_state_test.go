package state

import "testing"

// TestBegin_SecondCallRefused ensures only one submission can be in
// flight system-wide, regardless of which sub-form asks.
// Edge case: Comment submit attempted while a post submission is pending.
func TestBegin_SecondCallRefused(t *testing.T) {
	s := NewSubmitState()

	if !s.Begin(TargetPost) {
		t.Fatal("Begin(post) on idle state returned false, want true")
	}
	if s.Begin(TargetComment) {
		t.Error("Begin(comment) while post in flight returned true, want false")
	}
	if s.Target() != TargetPost {
		t.Errorf("Target() = %q, want post (refused Begin must not change it)", s.Target())
	}
}

func TestFinish_AllowsNextSubmission(t *testing.T) {
	s := NewSubmitState()
	s.Begin(TargetPost)
	s.Finish()

	if s.Submitting() {
		t.Error("Submitting() after Finish() = true, want false")
	}
	if s.Target() != TargetNone {
		t.Errorf("Target() after Finish() = %q, want none", s.Target())
	}
	if !s.Begin(TargetComment) {
		t.Error("Begin(comment) after Finish() returned false, want true")
	}
}

// TestFinish_IdleIsSafe ensures a stray Finish on an idle state is a no-op.
func TestFinish_IdleIsSafe(t *testing.T) {
	s := NewSubmitState()
	s.Finish()

	if s.Submitting() {
		t.Error("Finish() on idle state set the flag")
	}
}
