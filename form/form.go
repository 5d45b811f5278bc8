package form

import (
	"time"

	"github.com/google/uuid"
)

// FormID identifies a persisted form. Forms that have not been saved yet
// have an empty ID; the backend assigns one on creation.
type FormID = string

// Form is the editable document: title, description, header image
// reference and an ordered question list. The whole document is sent on
// every save (replace-whole-document semantics, last write wins).
type Form struct {
	ID            FormID     `json:"_id,omitempty"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	HeaderImage   string     `json:"headerImage,omitempty"`
	ShareableLink string     `json:"shareableLink,omitempty"`
	Questions     []Question `json:"questions"`
	CreatedBy     string     `json:"createdBy,omitempty"`
	CreatedAt     time.Time  `json:"createdAt,omitzero"`
}

// New creates a blank form, the state the editor starts from.
func New() *Form {
	return &Form{Questions: []Question{}}
}

func (f *Form) SetTitle(title string) *Form {
	f.Title = title
	return f
}

func (f *Form) SetDescription(description string) *Form {
	f.Description = description
	return f
}

func (f *Form) SetHeaderImage(headerImage string) *Form {
	f.HeaderImage = headerImage
	return f
}

// Savable reports whether the form passes the editor's save gate:
// a non-empty title. No other validation is performed; empty option,
// row and column labels are persisted as-is.
func (f *Form) Savable() bool {
	return f.Title != ""
}

// AddQuestion appends a new question of the given type with an empty
// title and type-appropriate empty auxiliary sequences, and returns its
// generated ID. Append order is the display and answer order.
func (f *Form) AddQuestion(t QuestionType) QuestionID {
	q := Question{
		ID:   uuid.NewString(),
		Type: t,
	}
	switch t {
	case QuestionTypeCheckbox:
		q.Options = []string{""}
	case QuestionTypeGrid:
		q.Rows = []string{""}
		q.Columns = []string{""}
	}
	f.Questions = append(f.Questions, q)
	return q.ID
}

// UpdateQuestion merges a partial update into the question with the
// given ID. An unknown ID is a silent no-op.
func (f *Form) UpdateQuestion(id QuestionID, update QuestionUpdate) *Form {
	if q := f.lookup(id); q != nil {
		q.apply(update)
	}
	return f
}

// RemoveQuestion deletes the question with the given ID, preserving the
// order of the remaining questions. Idempotent on unknown IDs.
func (f *Form) RemoveQuestion(id QuestionID) *Form {
	questions := make([]Question, 0, len(f.Questions))
	for _, q := range f.Questions {
		if q.ID != id {
			questions = append(questions, q)
		}
	}
	f.Questions = questions
	return f
}

// Question returns the question with the given ID.
func (f *Form) Question(id QuestionID) (question Question, ok bool) {
	if q := f.lookup(id); q != nil {
		return *q, true
	}
	return Question{}, false
}

// AddOption appends an empty option to a checkbox question.
// No-op for unknown IDs and non-checkbox questions.
func (f *Form) AddOption(id QuestionID) *Form {
	if q := f.lookup(id); q != nil && q.Type == QuestionTypeCheckbox {
		q.Options = appendEntry(q.Options)
	}
	return f
}

// UpdateOption replaces the option at index. Out-of-range indices are
// silently ignored.
func (f *Form) UpdateOption(id QuestionID, index int, value string) *Form {
	if q := f.lookup(id); q != nil && q.Type == QuestionTypeCheckbox {
		q.Options = updateEntry(q.Options, index, value)
	}
	return f
}

// RemoveOption deletes the option at index, shifting subsequent indices
// down. Callers must not hold stale indices across a removal.
func (f *Form) RemoveOption(id QuestionID, index int) *Form {
	if q := f.lookup(id); q != nil && q.Type == QuestionTypeCheckbox {
		q.Options = removeEntry(q.Options, index)
	}
	return f
}

// AddRow appends an empty row label to a grid question. Rows and columns
// are independent sequences; their lengths are not required to match.
func (f *Form) AddRow(id QuestionID) *Form {
	if q := f.lookup(id); q != nil && q.Type == QuestionTypeGrid {
		q.Rows = appendEntry(q.Rows)
	}
	return f
}

func (f *Form) UpdateRow(id QuestionID, index int, value string) *Form {
	if q := f.lookup(id); q != nil && q.Type == QuestionTypeGrid {
		q.Rows = updateEntry(q.Rows, index, value)
	}
	return f
}

func (f *Form) RemoveRow(id QuestionID, index int) *Form {
	if q := f.lookup(id); q != nil && q.Type == QuestionTypeGrid {
		q.Rows = removeEntry(q.Rows, index)
	}
	return f
}

// AddColumn appends an empty column label to a grid question.
func (f *Form) AddColumn(id QuestionID) *Form {
	if q := f.lookup(id); q != nil && q.Type == QuestionTypeGrid {
		q.Columns = appendEntry(q.Columns)
	}
	return f
}

func (f *Form) UpdateColumn(id QuestionID, index int, value string) *Form {
	if q := f.lookup(id); q != nil && q.Type == QuestionTypeGrid {
		q.Columns = updateEntry(q.Columns, index, value)
	}
	return f
}

func (f *Form) RemoveColumn(id QuestionID, index int) *Form {
	if q := f.lookup(id); q != nil && q.Type == QuestionTypeGrid {
		q.Columns = removeEntry(q.Columns, index)
	}
	return f
}

func (f *Form) lookup(id QuestionID) *Question {
	for i := range f.Questions {
		if f.Questions[i].ID == id {
			return &f.Questions[i]
		}
	}
	return nil
}

func appendEntry(entries []string) []string {
	return append(append([]string{}, entries...), "")
}

func updateEntry(entries []string, index int, value string) []string {
	if index < 0 || index >= len(entries) {
		return entries
	}
	updated := append([]string{}, entries...)
	updated[index] = value
	return updated
}

func removeEntry(entries []string, index int) []string {
	if index < 0 || index >= len(entries) {
		return entries
	}
	return append(append([]string{}, entries[:index]...), entries[index+1:]...)
}
