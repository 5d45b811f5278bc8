package form

import (
	"bytes"
	"encoding/json"
	"strings"
)

// AnswerValue is the polymorphic answer payload: a scalar string for
// text questions, an ordered list of selected strings for checkbox
// questions. The zero value marshals as "" and is what unanswered
// questions submit.
type AnswerValue struct {
	text   string
	list   []string
	isList bool
}

// TextAnswer creates a scalar answer value.
func TextAnswer(text string) AnswerValue {
	return AnswerValue{text: text}
}

// ListAnswer creates a list answer value preserving the given order.
func ListAnswer(items ...string) AnswerValue {
	return AnswerValue{list: append([]string{}, items...), isList: true}
}

func (v AnswerValue) IsList() bool {
	return v.isList
}

// Selections returns the list items of a list answer, or nil for a
// scalar answer.
func (v AnswerValue) Selections() (items []string) {
	if !v.isList {
		return nil
	}
	return append([]string{}, v.list...)
}

// String renders the value for display: list answers are joined with
// ", ", matching how the responses screen formats checkbox answers.
func (v AnswerValue) String() string {
	if v.isList {
		return strings.Join(v.list, ", ")
	}
	return v.text
}

func (v AnswerValue) MarshalJSON() ([]byte, error) {
	if v.isList {
		if v.list == nil {
			return json.Marshal([]string{})
		}
		return json.Marshal(v.list)
	}
	return json.Marshal(v.text)
}

func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*v = AnswerValue{}
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []string
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		*v = ListAnswer(items...)
		return nil
	}
	var text string
	if err := json.Unmarshal(trimmed, &text); err != nil {
		return err
	}
	*v = TextAnswer(text)
	return nil
}

// AnswerSet accumulates a respondent's in-progress answers as a flat map
// keyed by question ID. Grid selections are stored under composite
// GridKey entries, one per answered row.
type AnswerSet map[string]AnswerValue

func NewAnswerSet() AnswerSet {
	return AnswerSet{}
}

// GridKey is the composite key under which the column selected for one
// grid row is stored.
func GridKey(id QuestionID, row string) string {
	return id + "_" + row
}

// SetText records the answer to a text question, replacing any previous
// value.
func (s AnswerSet) SetText(id QuestionID, text string) {
	s[id] = TextAnswer(text)
}

// ToggleOption adds the option to a checkbox question's selection, or
// removes it when already selected. Selection order is the toggle order.
func (s AnswerSet) ToggleOption(id QuestionID, option string) {
	current := s[id].Selections()
	selected := make([]string, 0, len(current)+1)
	removed := false
	for _, item := range current {
		if item == option {
			removed = true
			continue
		}
		selected = append(selected, item)
	}
	if !removed {
		selected = append(selected, option)
	}
	s[id] = ListAnswer(selected...)
}

// SelectGridCell records the column selected for one row of a grid
// question. One column per row; a later selection replaces the earlier.
func (s AnswerSet) SelectGridCell(id QuestionID, row, column string) {
	s[GridKey(id, row)] = TextAnswer(column)
}

// GridSelection returns the column currently selected for a grid row.
func (s AnswerSet) GridSelection(id QuestionID, row string) (column string, ok bool) {
	v, ok := s[GridKey(id, row)]
	if !ok {
		return "", false
	}
	return v.String(), true
}

// Project builds the submission payload: one Answer per question in form
// order. Questions with no recorded answer yield an empty-string answer
// rather than being omitted. Grid answers aggregate the answered rows in
// row order as "row: column" entries, so partial selections survive the
// projection; a grid with no selections at all yields "".
func (s AnswerSet) Project(f *Form) []Answer {
	answers := make([]Answer, 0, len(f.Questions))
	for _, q := range f.Questions {
		value, ok := s[q.ID]
		if q.Type == QuestionTypeGrid {
			value, ok = s.projectGrid(q)
		}
		if !ok {
			value = AnswerValue{}
		}
		answers = append(answers, Answer{
			QuestionID:    q.ID,
			QuestionTitle: q.Title,
			Answer:        value,
			QuestionType:  q.Type,
		})
	}
	return answers
}

func (s AnswerSet) projectGrid(q Question) (AnswerValue, bool) {
	entries := []string{}
	for _, row := range q.Rows {
		if column, ok := s.GridSelection(q.ID, row); ok && column != "" {
			entries = append(entries, row+": "+column)
		}
	}
	if len(entries) == 0 {
		return AnswerValue{}, false
	}
	return ListAnswer(entries...), true
}
