// Package formgeniusmust wraps the formgenius packages with panic-based
// error handling.
//
// It provides the same remote operations as the formgenius and form
// packages, but instead of returning errors, all exported methods panic
// on failure. Intended for scripts and examples where any failure is
// fatal anyway.
package formgeniusmust

import (
	"context"

	formgenius "github.com/formgenius/go-formgenius"
	"github.com/formgenius/go-formgenius/form"
)

// API wraps a formgenius.API and its form client.
//
// All methods of API panic on error instead of returning an error value.
type API struct {
	api   *formgenius.API
	forms *form.Client
}

// New creates a new API instance around the given formgenius.API.
func New(api *formgenius.API) *API {
	return &API{api: api, forms: form.NewClient(api)}
}

// Login establishes and persists a session.
//
// It panics if the request or the session store fails.
func (a *API) Login(ctx context.Context, email, password string) (session *formgenius.Session) {
	return must1(a.api.Login(ctx, email, password))
}

// Register creates an account and persists the resulting session.
//
// It panics if the request or the session store fails.
func (a *API) Register(ctx context.Context, name, email, password string) (session *formgenius.Session) {
	return must1(a.api.Register(ctx, name, email, password))
}

// Logout clears the persisted session.
//
// It panics if the session store fails.
func (a *API) Logout() {
	must0(a.api.Logout())
}

// Session returns the current session, or nil when logged out.
func (a *API) Session() (session *formgenius.Session) {
	return must1(a.api.Session())
}

// ListForms fetches all forms owned by the current user.
//
// It panics if the request fails.
func (a *API) ListForms(ctx context.Context) (forms []form.Form) {
	return must1(a.forms.List(ctx))
}

// GetForm fetches one form by ID.
//
// It panics if the request fails.
func (a *API) GetForm(ctx context.Context, id form.FormID) (f *form.Form) {
	return must1(a.forms.Get(ctx, id))
}

// SaveForm creates or replaces a form and returns it as the server now
// holds it.
//
// It panics if the request fails.
func (a *API) SaveForm(ctx context.Context, f *form.Form) (saved *form.Form) {
	return must1(a.forms.Save(ctx, f))
}

// DeleteForm removes a form.
//
// It panics if the request fails.
func (a *API) DeleteForm(ctx context.Context, id form.FormID) {
	must0(a.forms.Delete(ctx, id))
}

// SubmitResponse sends one complete response for a form.
//
// It panics if the request fails.
func (a *API) SubmitResponse(ctx context.Context, formID form.FormID, answers []form.Answer) (response *form.Response) {
	return must1(a.forms.Submit(ctx, formID, answers))
}

// ListResponses lists the submitted responses for a form.
//
// It panics if the request fails.
func (a *API) ListResponses(ctx context.Context, id form.FormID) (responses []form.Response) {
	return must1(a.forms.Responses(ctx, id))
}
