package form

import (
	"context"
	"fmt"

	formgenius "github.com/formgenius/go-formgenius"
)

// Client wraps the REST endpoints for form persistence and response
// collection. It is stateless: every call is one request, with no
// retries and no caching.
type Client struct {
	api *formgenius.API
}

func NewClient(api *formgenius.API) *Client {
	return &Client{api: api}
}

// List fetches all forms owned by the current session's user.
func (c *Client) List(ctx context.Context) (forms []Form, err error) {
	if err := c.api.Get(ctx, "/forms", &forms); err != nil {
		return nil, fmt.Errorf("failed to list forms: %w", err)
	}
	return forms, nil
}

// Get fetches one form by ID.
func (c *Client) Get(ctx context.Context, id FormID) (form *Form, err error) {
	var f Form
	if err := c.api.Get(ctx, "/forms/"+id, &f); err != nil {
		return nil, fmt.Errorf("failed to get form: %w", err)
	}
	return &f, nil
}

// Save transmits the whole form. A form without an ID is created via
// POST /forms and the server assigns its ID; otherwise the stored
// document is replaced in full via PUT /forms/:id. The saved form as the
// server now holds it is returned.
func (c *Client) Save(ctx context.Context, f *Form) (saved *Form, err error) {
	var result Form
	if f.ID == "" {
		if err := c.api.Post(ctx, "/forms", f, &result); err != nil {
			return nil, fmt.Errorf("failed to create form: %w", err)
		}
	} else {
		if err := c.api.Put(ctx, "/forms/"+f.ID, f, &result); err != nil {
			return nil, fmt.Errorf("failed to update form: %w", err)
		}
	}
	return &result, nil
}

// Delete removes a form. There is no local soft-delete state; the
// server's acknowledgement body is discarded.
func (c *Client) Delete(ctx context.Context, id FormID) error {
	if err := c.api.Delete(ctx, "/forms/"+id, nil); err != nil {
		return fmt.Errorf("failed to delete form: %w", err)
	}
	return nil
}

type submitRequest struct {
	FormID  FormID   `json:"formId"`
	Answers []Answer `json:"answers"`
}

// Submit sends one complete response for a form. There is no partial or
// incremental submission.
func (c *Client) Submit(ctx context.Context, formID FormID, answers []Answer) (response *Response, err error) {
	var r Response
	if err := c.api.Post(ctx, "/responses", submitRequest{FormID: formID, Answers: answers}, &r); err != nil {
		return nil, fmt.Errorf("failed to submit response: %w", err)
	}
	return &r, nil
}

// Responses lists the submitted responses for a form.
func (c *Client) Responses(ctx context.Context, id FormID) (responses []Response, err error) {
	if err := c.api.Get(ctx, "/responses/"+id+"/responses", &responses); err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}
	return responses, nil
}
