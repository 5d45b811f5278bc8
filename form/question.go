package form

// QuestionID identifies a question within a form. IDs are assigned at
// creation time and stay stable for the question's lifetime.
type QuestionID = string

// Question is one form field, tagged by Type. Options is populated only
// for checkbox questions; Rows and Columns only for grid questions; text
// questions carry neither. Type is immutable after creation.
type Question struct {
	ID       QuestionID   `json:"id"`
	Type     QuestionType `json:"type"`
	Title    string       `json:"title"`
	Required bool         `json:"required"`
	Options  []string     `json:"options,omitempty"`
	Rows     []string     `json:"rows,omitempty"`
	Columns  []string     `json:"columns,omitempty"`
}

// QuestionUpdate is a partial update merged shallowly into a question:
// nil fields are left untouched, non-nil slice fields replace the whole
// sequence.
type QuestionUpdate struct {
	Title    *string
	Required *bool
	Options  *[]string
	Rows     *[]string
	Columns  *[]string
}

func (q *Question) apply(update QuestionUpdate) {
	if update.Title != nil {
		q.Title = *update.Title
	}
	if update.Required != nil {
		q.Required = *update.Required
	}
	if update.Options != nil {
		q.Options = append([]string{}, (*update.Options)...)
	}
	if update.Rows != nil {
		q.Rows = append([]string{}, (*update.Rows)...)
	}
	if update.Columns != nil {
		q.Columns = append([]string{}, (*update.Columns)...)
	}
}
