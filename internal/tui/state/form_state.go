package state

import "strings"

// FormState manages the values of the three text fields on the compose
// screen: the post title, the post content, and the comment. Values are
// overwritten on every change event and never persisted anywhere.
type FormState struct {
	postTitle   string
	postContent string
	comment     string
}

// NewFormState creates a new FormState with all fields empty.
func NewFormState() *FormState {
	return &FormState{
		postTitle:   "",
		postContent: "",
		comment:     "",
	}
}

// PostTitle returns the current post title value.
func (s *FormState) PostTitle() string {
	return s.postTitle
}

// SetPostTitle sets the post title value.
func (s *FormState) SetPostTitle(title string) {
	s.postTitle = title
}

// PostContent returns the current post content value.
func (s *FormState) PostContent() string {
	return s.postContent
}

// SetPostContent sets the post content value.
func (s *FormState) SetPostContent(content string) {
	s.postContent = content
}

// Comment returns the current comment value.
func (s *FormState) Comment() string {
	return s.comment
}

// SetComment sets the comment value.
func (s *FormState) SetComment(comment string) {
	s.comment = comment
}

// Value returns the current value of the named field.
// Returns an empty string for unknown fields.
func (s *FormState) Value(field Field) string {
	switch field {
	case FieldPostTitle:
		return s.postTitle
	case FieldPostContent:
		return s.postContent
	case FieldComment:
		return s.comment
	}
	return ""
}

// SetValue overwrites the value of the named field.
// Unknown fields are ignored.
func (s *FormState) SetValue(field Field, value string) {
	switch field {
	case FieldPostTitle:
		s.postTitle = value
	case FieldPostContent:
		s.postContent = value
	case FieldComment:
		s.comment = value
	}
}

// TrimmedValue returns the named field's value with surrounding
// whitespace removed. Validation operates on trimmed values.
func (s *FormState) TrimmedValue(field Field) string {
	return strings.TrimSpace(s.Value(field))
}

// ResetPost clears the post title and content, leaving the comment alone.
// Called after a successful post submission.
func (s *FormState) ResetPost() {
	s.postTitle = ""
	s.postContent = ""
}

// ResetComment clears the comment, leaving the post fields alone.
// Called after a successful comment submission.
func (s *FormState) ResetComment() {
	s.comment = ""
}
