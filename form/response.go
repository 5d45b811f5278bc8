package form

import "time"

// Answer is one answered question inside a submitted response.
type Answer struct {
	QuestionID    QuestionID   `json:"questionId"`
	QuestionTitle string       `json:"questionTitle"`
	Answer        AnswerValue  `json:"answer"`
	QuestionType  QuestionType `json:"questionType"`
}

// Response is one respondent's submission for a form: the ordered answer
// records plus the server-assigned submission timestamp.
type Response struct {
	ID          string    `json:"_id,omitempty"`
	FormID      FormID    `json:"formId"`
	Answers     []Answer  `json:"answers"`
	SubmittedAt time.Time `json:"submittedAt,omitzero"`
}
