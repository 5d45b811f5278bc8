package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	formgenius "github.com/formgenius/go-formgenius"
	"github.com/formgenius/go-formgenius/form"
	"github.com/formgenius/go-formgenius/formgeniusmust"
	"github.com/formgenius/go-formgenius/session"
)

func newAPI() *formgeniusmust.API {
	base := os.Getenv("FORMGENIUS_SERVER")
	if base == "" {
		base = "https://formgenius-backend.onrender.com/api"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return formgeniusmust.New(formgenius.New(base, session.NewFileStore(home+"/.formgenius")))
}

var sc = func() *bufio.Scanner {
	sc := bufio.NewScanner(os.Stdin)
	sc.Split(bufio.ScanLines)
	return sc
}()

func step() {
	sc.Scan()
}

func main() {
	ctx := context.Background()
	api := newAPI()

	// Log in (register first if the account does not exist yet)
	sess := api.Login(ctx, "alice@example.com", "secret")
	fmt.Println("Logged in as", sess.User.Name)

	// Build a form in memory
	step()
	f := form.New().
		SetTitle("Team lunch survey").
		SetDescription("Pick what works for you")

	nameID := f.AddQuestion(form.QuestionTypeText)
	f.UpdateQuestion(nameID, form.QuestionUpdate{Title: ptr("Your name"), Required: ptr(true)})

	colorID := f.AddQuestion(form.QuestionTypeCheckbox)
	f.UpdateQuestion(colorID, form.QuestionUpdate{Title: ptr("Dietary preferences")})
	f.UpdateOption(colorID, 0, "Vegetarian")
	f.AddOption(colorID)
	f.UpdateOption(colorID, 1, "Vegan")

	gridID := f.AddQuestion(form.QuestionTypeGrid)
	f.UpdateQuestion(gridID, form.QuestionUpdate{Title: ptr("Availability")})
	f.UpdateRow(gridID, 0, "Monday")
	f.AddRow(gridID)
	f.UpdateRow(gridID, 1, "Tuesday")
	f.UpdateColumn(gridID, 0, "Lunch")
	f.AddColumn(gridID)
	f.UpdateColumn(gridID, 1, "Dinner")

	// Save it (whole document; the server assigns the ID)
	step()
	saved := api.SaveForm(ctx, f)
	fmt.Println("Saved form", saved.ID)

	// Fill it out and submit a response
	step()
	answers := form.NewAnswerSet()
	answers.SetText(nameID, "Alice")
	answers.ToggleOption(colorID, "Vegan")
	answers.SelectGridCell(gridID, "Monday", "Lunch")
	response := api.SubmitResponse(ctx, saved.ID, answers.Project(saved))
	fmt.Println("Submitted response", response.ID)

	// List the responses collected so far
	step()
	for _, r := range api.ListResponses(ctx, saved.ID) {
		for _, answer := range r.Answers {
			fmt.Printf("%s: %s\n", answer.QuestionTitle, answer.Answer)
		}
	}

	// Clean up
	step()
	api.DeleteForm(ctx, saved.ID)
	fmt.Println("Deleted form", saved.ID)
}

func ptr[T any](v T) *T {
	return &v
}
