package state

// Field identifies one of the three text fields on the compose screen.
type Field string

const (
	FieldPostTitle   Field = "postTitle"
	FieldPostContent Field = "postContent"
	FieldComment     Field = "comment"
)

// PostFields returns the fields belonging to the post sub-form.
func PostFields() []Field {
	return []Field{FieldPostTitle, FieldPostContent}
}

// CommentFields returns the fields belonging to the comment sub-form.
func CommentFields() []Field {
	return []Field{FieldComment}
}

// AllFields returns every form field, post fields first.
func AllFields() []Field {
	return []Field{FieldPostTitle, FieldPostContent, FieldComment}
}

// requiredMessages maps each field to its fixed validation message.
// These strings are user-facing and must not change casually.
var requiredMessages = map[Field]string{
	FieldPostTitle:   "Post title is required",
	FieldPostContent: "Post content is required",
	FieldComment:     "Comment is required",
}

// RequiredMessage returns the fixed required-field message for a field.
// Returns an empty string for unknown fields.
func RequiredMessage(field Field) string {
	return requiredMessages[field]
}
