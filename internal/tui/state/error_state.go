package state

// ErrorState manages the per-field validation messages shown beneath
// the form fields. An entry is present for a field exactly when that
// field was last validated and found empty after trimming; editing a
// field clears its entry without revalidating.
type ErrorState struct {
	messages map[Field]string
}

// NewErrorState creates a new ErrorState with no errors.
func NewErrorState() *ErrorState {
	return &ErrorState{
		messages: make(map[Field]string),
	}
}

// Validate checks that each targeted field has a non-empty trimmed value.
// Fields that fail get their fixed required-field message merged into the
// existing error set; fields outside the target list are never touched, so
// errors from a prior validation of a different subset survive until the
// user edits those fields. When no fields are given, all fields are checked.
//
// Returns true iff no targeted field produced an error.
func (s *ErrorState) Validate(form *FormState, fields ...Field) bool {
	if len(fields) == 0 {
		fields = AllFields()
	}

	ok := true
	for _, field := range fields {
		if form.TrimmedValue(field) == "" {
			s.messages[field] = RequiredMessage(field)
			ok = false
		}
	}
	return ok
}

// ClearField removes the error entry for a single field.
// Called on every edit of that field, regardless of the new value.
func (s *ErrorState) ClearField(field Field) {
	delete(s.messages, field)
}

// Has returns true if the field currently has an error recorded.
func (s *ErrorState) Has(field Field) bool {
	_, ok := s.messages[field]
	return ok
}

// Message returns the error message for a field, or an empty string
// if the field has no error.
func (s *ErrorState) Message(field Field) string {
	return s.messages[field]
}

// HasAny returns true if any field currently has an error.
func (s *ErrorState) HasAny() bool {
	return len(s.messages) > 0
}

// Clear removes all error entries.
func (s *ErrorState) Clear() {
	s.messages = make(map[Field]string)
}
