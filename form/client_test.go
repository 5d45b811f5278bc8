package form_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	formgenius "github.com/formgenius/go-formgenius"
	"github.com/formgenius/go-formgenius/errors"
	"github.com/formgenius/go-formgenius/form"
	"github.com/formgenius/go-formgenius/session"
)

const testToken = "test-token"

// fakeBackend is an in-memory rendition of the REST API the client
// speaks to, just enough for the contract under test.
type fakeBackend struct {
	forms     map[string]form.Form
	responses map[string][]form.Response
	nextID    int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		forms:     map[string]form.Form{},
		responses: map[string][]form.Response{},
	}
}

func (b *fakeBackend) router() http.Handler {
	r := mux.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if req.Header.Get("Authorization") != "Bearer "+testToken {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
				return
			}
			next.ServeHTTP(w, req)
		})
	})
	r.HandleFunc("/forms", b.listForms).Methods(http.MethodGet)
	r.HandleFunc("/forms", b.createForm).Methods(http.MethodPost)
	r.HandleFunc("/forms/{id}", b.getForm).Methods(http.MethodGet)
	r.HandleFunc("/forms/{id}", b.updateForm).Methods(http.MethodPut)
	r.HandleFunc("/forms/{id}", b.deleteForm).Methods(http.MethodDelete)
	r.HandleFunc("/responses", b.submitResponse).Methods(http.MethodPost)
	r.HandleFunc("/responses/{id}/responses", b.listResponses).Methods(http.MethodGet)
	return r
}

func (b *fakeBackend) listForms(w http.ResponseWriter, _ *http.Request) {
	forms := []form.Form{}
	for _, f := range b.forms {
		forms = append(forms, f)
	}
	writeJSON(w, http.StatusOK, forms)
}

func (b *fakeBackend) createForm(w http.ResponseWriter, req *http.Request) {
	var f form.Form
	if err := json.NewDecoder(req.Body).Decode(&f); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid form"})
		return
	}
	b.nextID++
	f.ID = fmt.Sprintf("form-%d", b.nextID)
	f.CreatedBy = "user-1"
	f.CreatedAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	f.ShareableLink = "share-" + f.ID
	b.forms[f.ID] = f
	writeJSON(w, http.StatusCreated, f)
}

func (b *fakeBackend) getForm(w http.ResponseWriter, req *http.Request) {
	f, ok := b.forms[mux.Vars(req)["id"]]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "form not found"})
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (b *fakeBackend) updateForm(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	stored, ok := b.forms[id]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "form not found"})
		return
	}
	var f form.Form
	if err := json.NewDecoder(req.Body).Decode(&f); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid form"})
		return
	}
	f.ID = id
	f.CreatedBy = stored.CreatedBy
	f.CreatedAt = stored.CreatedAt
	f.ShareableLink = stored.ShareableLink
	b.forms[id] = f
	writeJSON(w, http.StatusOK, f)
}

func (b *fakeBackend) deleteForm(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	if _, ok := b.forms[id]; !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "form not found"})
		return
	}
	delete(b.forms, id)
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}

func (b *fakeBackend) submitResponse(w http.ResponseWriter, req *http.Request) {
	var r form.Response
	if err := json.NewDecoder(req.Body).Decode(&r); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid response"})
		return
	}
	r.ID = fmt.Sprintf("response-%d", len(b.responses[r.FormID])+1)
	r.SubmittedAt = time.Date(2024, 5, 2, 9, 30, 0, 0, time.UTC)
	b.responses[r.FormID] = append(b.responses[r.FormID], r)
	writeJSON(w, http.StatusCreated, r)
}

func (b *fakeBackend) listResponses(w http.ResponseWriter, req *http.Request) {
	responses := b.responses[mux.Vars(req)["id"]]
	if responses == nil {
		responses = []form.Response{}
	}
	writeJSON(w, http.StatusOK, responses)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func newTestClient(t *testing.T) (*form.Client, *fakeBackend) {
	t.Helper()
	backend := newFakeBackend()
	server := httptest.NewServer(backend.router())
	t.Cleanup(server.Close)

	store := session.NewMemStore()
	require.NoError(t, store.Save(&formgenius.Session{
		User:  formgenius.User{ID: "user-1", Email: "alice@example.com", Name: "Alice"},
		Token: testToken,
	}))
	return form.NewClient(formgenius.New(server.URL, store)), backend
}

func buildSurvey() *form.Form {
	f := form.New().SetTitle("Team survey").SetDescription("Weekly check-in")
	textID := f.AddQuestion(form.QuestionTypeText)
	f.UpdateQuestion(textID, form.QuestionUpdate{Title: ptr("Name"), Required: ptr(true)})
	checkboxID := f.AddQuestion(form.QuestionTypeCheckbox)
	options := []string{"Red", "Blue"}
	f.UpdateQuestion(checkboxID, form.QuestionUpdate{Title: ptr("Color"), Options: &options})
	return f
}

// Saving a fresh form and reloading it yields the same document except
// for the server-assigned metadata.
func TestClient_SaveRoundTrip(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	built := buildSurvey()
	saved, err := client.Save(ctx, built)
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.NotEmpty(t, saved.CreatedBy)
	assert.False(t, saved.CreatedAt.IsZero())

	loaded, err := client.Get(ctx, saved.ID)
	require.NoError(t, err)

	stripped := *loaded
	stripped.ID = ""
	stripped.CreatedBy = ""
	stripped.CreatedAt = time.Time{}
	stripped.ShareableLink = ""
	assert.Equal(t, *built, stripped)
}

func TestClient_SaveReplacesWholeDocument(t *testing.T) {
	client, backend := newTestClient(t)
	ctx := context.Background()

	saved, err := client.Save(ctx, buildSurvey())
	require.NoError(t, err)

	saved.SetTitle("Renamed survey")
	saved.RemoveQuestion(saved.Questions[1].ID)
	updated, err := client.Save(ctx, saved)
	require.NoError(t, err)

	assert.Equal(t, saved.ID, updated.ID)
	assert.Equal(t, "Renamed survey", backend.forms[saved.ID].Title)
	assert.Len(t, backend.forms[saved.ID].Questions, 1)
}

func TestClient_List(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	forms, err := client.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, forms)

	_, err = client.Save(ctx, buildSurvey())
	require.NoError(t, err)

	forms, err = client.List(ctx)
	require.NoError(t, err)
	assert.Len(t, forms, 1)
}

func TestClient_Delete(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	saved, err := client.Save(ctx, buildSurvey())
	require.NoError(t, err)
	require.NoError(t, client.Delete(ctx, saved.ID))

	_, err = client.Get(ctx, saved.ID)
	assert.ErrorIs(t, err, errors.ErrNotFound)
	assert.Equal(t, "form not found", errors.UserMessage(err))
}

func TestClient_SubmitAndListResponses(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	saved, err := client.Save(ctx, buildSurvey())
	require.NoError(t, err)

	answers := form.NewAnswerSet()
	answers.SetText(saved.Questions[0].ID, "Alice")
	answers.ToggleOption(saved.Questions[1].ID, "Red")

	response, err := client.Submit(ctx, saved.ID, answers.Project(saved))
	require.NoError(t, err)
	assert.NotEmpty(t, response.ID)
	assert.False(t, response.SubmittedAt.IsZero())

	responses, err := client.Responses(ctx, saved.ID)
	require.NoError(t, err)
	require.Len(t, responses, 1)
	require.Len(t, responses[0].Answers, 2)
	assert.Equal(t, "Alice", responses[0].Answers[0].Answer.String())
	assert.Equal(t, []string{"Red"}, responses[0].Answers[1].Answer.Selections())
}

func TestClient_UnauthorizedWithoutSession(t *testing.T) {
	backend := newFakeBackend()
	server := httptest.NewServer(backend.router())
	t.Cleanup(server.Close)

	client := form.NewClient(formgenius.New(server.URL, session.NewMemStore()))
	_, err := client.List(context.Background())
	assert.ErrorIs(t, err, errors.ErrUnauthorized)
	assert.Equal(t, "unauthorized", errors.UserMessage(err))
}
