package form

type QuestionType string

const (
	QuestionTypeText     QuestionType = "text"
	QuestionTypeCheckbox QuestionType = "checkbox"
	QuestionTypeGrid     QuestionType = "grid"
)

// Known reports whether t is one of the three supported question kinds.
// Renderers skip unknown kinds instead of failing.
func (t QuestionType) Known() bool {
	switch t {
	case QuestionTypeText, QuestionTypeCheckbox, QuestionTypeGrid:
		return true
	}
	return false
}
