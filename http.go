package formgenius

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/formgenius/go-formgenius/errors"
)

// Get performs GET on path relative to the base URL and decodes the JSON
// response into out.
func (a *API) Get(ctx context.Context, path string, out any) error {
	return a.do(ctx, http.MethodGet, path, nil, out)
}

// Post performs POST with a JSON-encoded body.
func (a *API) Post(ctx context.Context, path string, body, out any) error {
	return a.do(ctx, http.MethodPost, path, body, out)
}

// Put performs PUT with a JSON-encoded body.
func (a *API) Put(ctx context.Context, path string, body, out any) error {
	return a.do(ctx, http.MethodPut, path, body, out)
}

// Delete performs DELETE on path.
func (a *API) Delete(ctx context.Context, path string, out any) error {
	return a.do(ctx, http.MethodDelete, path, nil, out)
}

func (a *API) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.NewIOError("failed to encode request body", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.base+path, reader)
	if err != nil {
		return errors.NewTransportError("failed to build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if sess, err := a.sessions.Load(); err == nil && sess != nil && sess.Token != "" {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return errors.NewTransportError("request failed", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.NewTransportError("failed to read response", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.NewStatusError(resp.StatusCode, serverMessage(resp.StatusCode, data))
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.NewAPIError("failed to decode response", err)
	}
	return nil
}

// serverMessage extracts the backend's {"error": "..."} payload, falling
// back to a generic status line when the body is not in that shape.
func serverMessage(status int, body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return fmt.Sprintf("server returned status %d", status)
}
