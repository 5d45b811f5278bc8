package main

import (
	"fmt"
	"strings"

	"github.com/formgenius/go-formgenius/form"
)

// renderQuestionEditor builds the edit-mode rendition of one question.
// Questions of an unknown type render nothing.
func renderQuestionEditor(index int, q form.Question) string {
	if !q.Type.Known() {
		return ""
	}

	var b strings.Builder
	title := q.Title
	if title == "" {
		title = "(untitled)"
	}
	fmt.Fprintf(&b, "%d. [%s] %s", index+1, q.Type, title)
	if q.Required {
		b.WriteString(" *")
	}
	b.WriteString("\n")

	switch q.Type {
	case form.QuestionTypeCheckbox:
		for i, option := range q.Options {
			fmt.Fprintf(&b, "     option %d: %s\n", i+1, option)
		}
	case form.QuestionTypeGrid:
		for i, row := range q.Rows {
			fmt.Fprintf(&b, "     row %d: %s\n", i+1, row)
		}
		for i, column := range q.Columns {
			fmt.Fprintf(&b, "     column %d: %s\n", i+1, column)
		}
	}
	return b.String()
}

// renderQuestionPreview builds the fill-mode rendition of one question,
// marking current selections from the answer set. Questions of an
// unknown type render nothing. The required flag is a visual marker
// only; nothing blocks submission.
func renderQuestionPreview(q form.Question, answers form.AnswerSet) string {
	if !q.Type.Known() {
		return ""
	}

	var b strings.Builder
	b.WriteString(q.Title)
	if q.Required {
		b.WriteString(" *")
	}
	b.WriteString("\n")

	switch q.Type {
	case form.QuestionTypeText:
		fmt.Fprintf(&b, "  answer: %s\n", answers[q.ID].String())
	case form.QuestionTypeCheckbox:
		selected := map[string]bool{}
		for _, item := range answers[q.ID].Selections() {
			selected[item] = true
		}
		for i, option := range q.Options {
			mark := " "
			if selected[option] {
				mark = "x"
			}
			fmt.Fprintf(&b, "  %d) [%s] %s\n", i+1, mark, option)
		}
	case form.QuestionTypeGrid:
		fmt.Fprintf(&b, "  columns: %s\n", strings.Join(q.Columns, " | "))
		for _, row := range q.Rows {
			column, _ := answers.GridSelection(q.ID, row)
			fmt.Fprintf(&b, "  %s: %s\n", row, column)
		}
	}
	return b.String()
}

// renderResponse formats one submitted response for the responses
// screen.
func renderResponse(index int, r form.Response) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- response %d", index+1)
	if !r.SubmittedAt.IsZero() {
		fmt.Fprintf(&b, " (submitted %s)", r.SubmittedAt.Format("2006-01-02 15:04"))
	}
	b.WriteString(" ---\n")
	for i, answer := range r.Answers {
		title := answer.QuestionTitle
		if title == "" {
			title = fmt.Sprintf("Question %d", i+1)
		}
		value := answer.Answer.String()
		if value == "" {
			value = "No answer"
		}
		fmt.Fprintf(&b, "%s: %s\n", title, value)
	}
	return b.String()
}
