package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	formgenius "github.com/formgenius/go-formgenius"
	"github.com/formgenius/go-formgenius/errors"
	"github.com/formgenius/go-formgenius/form"
	"github.com/formgenius/go-formgenius/logger"
	"go.uber.org/zap"
)

// app holds the collaborators shared by all screens. Each screen runs on
// a single flow of control: a remote call suspends the screen until the
// response arrives, failures are reduced to one inline message and the
// screen returns to an idle prompt.
type app struct {
	api   *formgenius.API
	forms *form.Client
	in    *bufio.Scanner
	out   io.Writer
}

func (a *app) prompt(label string) string {
	fmt.Fprintf(a.out, "%s: ", label)
	if !a.in.Scan() {
		return ""
	}
	return strings.TrimSpace(a.in.Text())
}

func (a *app) printErr(err error) {
	fmt.Fprintln(a.out, "Error:", errors.UserMessage(err))
}

func (a *app) loginScreen(ctx context.Context) error {
	email := a.prompt("Email")
	password := a.prompt("Password")
	sess, err := a.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	logger.Log.Info("logged in", zap.String("email", sess.User.Email))
	fmt.Fprintf(a.out, "Welcome back, %s\n", sess.User.Name)
	return nil
}

func (a *app) registerScreen(ctx context.Context) error {
	name := a.prompt("Name")
	email := a.prompt("Email")
	password := a.prompt("Password")
	sess, err := a.api.Register(ctx, name, email, password)
	if err != nil {
		return err
	}
	logger.Log.Info("registered", zap.String("email", sess.User.Email))
	fmt.Fprintf(a.out, "Account created for %s\n", sess.User.Name)
	return nil
}

func (a *app) logoutScreen() error {
	if err := a.api.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *app) listScreen(ctx context.Context) error {
	forms, err := a.forms.List(ctx)
	if err != nil {
		return err
	}
	if len(forms) == 0 {
		fmt.Fprintln(a.out, "No forms yet")
		return nil
	}
	for _, f := range forms {
		fmt.Fprintf(a.out, "%s  %s (%d questions)\n", f.ID, f.Title, len(f.Questions))
	}
	return nil
}

// editScreen is the form builder: it loads an existing form (or starts a
// blank one), mutates the in-memory document in response to commands and
// sends the whole document on save.
func (a *app) editScreen(ctx context.Context, id form.FormID) error {
	f := form.New()
	if id != "" {
		loaded, err := a.forms.Get(ctx, id)
		if err != nil {
			return err
		}
		f = loaded
	}

	fmt.Fprintln(a.out, "Commands: title | desc | image | add <text|checkbox|grid> | edit <n> | show | save | quit")
	for {
		input := a.prompt("edit>")
		command, arg, _ := strings.Cut(input, " ")
		switch command {
		case "title":
			f.SetTitle(a.prompt("Title"))
		case "desc":
			f.SetDescription(a.prompt("Description"))
		case "image":
			f.SetHeaderImage(a.prompt("Header image URI"))
		case "add":
			kind := form.QuestionType(arg)
			if !kind.Known() {
				fmt.Fprintln(a.out, "Usage: add <text|checkbox|grid>")
				continue
			}
			f.AddQuestion(kind)
			fmt.Fprintf(a.out, "Added %s question %d\n", kind, len(f.Questions))
		case "edit":
			index, err := strconv.Atoi(arg)
			if err != nil || index < 1 || index > len(f.Questions) {
				fmt.Fprintln(a.out, "Usage: edit <question number>")
				continue
			}
			a.questionEditor(f, f.Questions[index-1].ID)
		case "show":
			a.showForm(f)
		case "save":
			if !f.Savable() {
				fmt.Fprintln(a.out, "A title is required before saving")
				continue
			}
			saved, err := a.forms.Save(ctx, f)
			if err != nil {
				a.printErr(err)
				continue
			}
			f = saved
			logger.Log.Info("form saved", zap.String("form_id", saved.ID))
			fmt.Fprintf(a.out, "Saved form %s\n", saved.ID)
			return nil
		case "quit", "":
			return nil
		default:
			fmt.Fprintln(a.out, "Unknown command")
		}
	}
}

func (a *app) showForm(f *form.Form) {
	title := f.Title
	if title == "" {
		title = "(untitled form)"
	}
	fmt.Fprintln(a.out, title)
	if f.Description != "" {
		fmt.Fprintln(a.out, f.Description)
	}
	for i, q := range f.Questions {
		if rendition := renderQuestionEditor(i, q); rendition != "" {
			fmt.Fprint(a.out, rendition)
		}
	}
}

// questionEditor dispatches per-question commands by question type. All
// mutations go through the form's editor operations.
func (a *app) questionEditor(f *form.Form, id form.QuestionID) {
	for {
		q, ok := f.Question(id)
		if !ok {
			return
		}
		fmt.Fprint(a.out, renderQuestionEditor(0, q))

		commands := "title | required | done"
		switch q.Type {
		case form.QuestionTypeCheckbox:
			commands = "title | required | opt add | opt set <n> | opt rm <n> | done"
		case form.QuestionTypeGrid:
			commands = "title | required | row add | row set <n> | row rm <n> | col add | col set <n> | col rm <n> | done"
		}
		fmt.Fprintln(a.out, "Commands:", commands)

		input := a.prompt("question>")
		command, arg, _ := strings.Cut(input, " ")
		switch command {
		case "title":
			title := a.prompt("Question title")
			f.UpdateQuestion(id, form.QuestionUpdate{Title: &title})
		case "required":
			required := !q.Required
			f.UpdateQuestion(id, form.QuestionUpdate{Required: &required})
		case "opt":
			a.sequenceCommand(arg, func() { f.AddOption(id) },
				func(i int) { f.UpdateOption(id, i, a.prompt("Option value")) },
				func(i int) { f.RemoveOption(id, i) })
		case "row":
			a.sequenceCommand(arg, func() { f.AddRow(id) },
				func(i int) { f.UpdateRow(id, i, a.prompt("Row label")) },
				func(i int) { f.RemoveRow(id, i) })
		case "col":
			a.sequenceCommand(arg, func() { f.AddColumn(id) },
				func(i int) { f.UpdateColumn(id, i, a.prompt("Column label")) },
				func(i int) { f.RemoveColumn(id, i) })
		case "done", "":
			return
		default:
			fmt.Fprintln(a.out, "Unknown command")
		}
	}
}

// sequenceCommand parses "add", "set <n>" and "rm <n>" for the option,
// row and column sequences. Entries are numbered from 1 on screen.
func (a *app) sequenceCommand(arg string, add func(), set func(int), remove func(int)) {
	action, number, _ := strings.Cut(arg, " ")
	switch action {
	case "add":
		add()
		return
	case "set", "rm":
		index, err := strconv.Atoi(number)
		if err != nil || index < 1 {
			fmt.Fprintln(a.out, "An entry number is required")
			return
		}
		if action == "set" {
			set(index - 1)
		} else {
			remove(index - 1)
		}
	default:
		fmt.Fprintln(a.out, "Usage: add | set <n> | rm <n>")
	}
}

// fillScreen renders the read-only preview of a form, collects answers
// into a flat answer set and submits them in one request. Required
// questions carry a visual marker only; nothing blocks submission.
func (a *app) fillScreen(ctx context.Context, id form.FormID) error {
	f, err := a.forms.Get(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, f.Title)
	if f.Description != "" {
		fmt.Fprintln(a.out, f.Description)
	}
	if f.HeaderImage != "" {
		fmt.Fprintln(a.out, "[header image]", f.HeaderImage)
	}

	answers := form.NewAnswerSet()
	for _, q := range f.Questions {
		if !q.Type.Known() {
			continue
		}
		fmt.Fprintln(a.out)
		fmt.Fprint(a.out, renderQuestionPreview(q, answers))
		a.collectAnswer(q, answers)
	}

	response, err := a.forms.Submit(ctx, f.ID, answers.Project(f))
	if err != nil {
		return err
	}
	logger.Log.Info("response submitted", zap.String("form_id", f.ID))
	fmt.Fprintln(a.out, "Response submitted", response.ID)
	return nil
}

func (a *app) collectAnswer(q form.Question, answers form.AnswerSet) {
	switch q.Type {
	case form.QuestionTypeText:
		answers.SetText(q.ID, a.prompt("Answer"))
	case form.QuestionTypeCheckbox:
		input := a.prompt("Toggle options (numbers, comma separated, empty to skip)")
		for _, field := range strings.Split(input, ",") {
			index, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil || index < 1 || index > len(q.Options) {
				continue
			}
			answers.ToggleOption(q.ID, q.Options[index-1])
		}
	case form.QuestionTypeGrid:
		for _, row := range q.Rows {
			input := a.prompt(fmt.Sprintf("Column for %q (number, empty to skip)", row))
			index, err := strconv.Atoi(input)
			if err != nil || index < 1 || index > len(q.Columns) {
				continue
			}
			answers.SelectGridCell(q.ID, row, q.Columns[index-1])
		}
	}
}

func (a *app) responsesScreen(ctx context.Context, id form.FormID) error {
	responses, err := a.forms.Responses(ctx, id)
	if err != nil {
		return err
	}
	if len(responses) == 0 {
		fmt.Fprintln(a.out, "No responses yet")
		return nil
	}
	for i, r := range responses {
		fmt.Fprint(a.out, renderResponse(i, r))
	}
	return nil
}

func (a *app) deleteScreen(ctx context.Context, id form.FormID) error {
	if a.prompt("Delete form "+id+"? (yes/no)") != "yes" {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}
	if err := a.forms.Delete(ctx, id); err != nil {
		return err
	}
	logger.Log.Info("form deleted", zap.String("form_id", id))
	fmt.Fprintln(a.out, "Deleted")
	return nil
}

func (a *app) shareScreen(ctx context.Context, id form.FormID) error {
	f, err := a.forms.Get(ctx, id)
	if err != nil {
		return err
	}
	if f.ShareableLink == "" {
		fmt.Fprintln(a.out, "This form has no shareable link yet")
		return nil
	}
	fmt.Fprintf(a.out, "Please fill out my form: formgenius://form/%s\n", f.ShareableLink)
	return nil
}
