package formgenius

import (
	"context"
	"net/http"
	"strings"

	"github.com/formgenius/go-formgenius/errors"
)

// API is a stateless wrapper around the FormGenius REST backend.
// It owns the base URL and the session store consulted for the bearer
// credential attached to every outgoing request. It performs no retries
// and no caching; cancellation and deadlines come from the caller's
// context and the injected http.Client.
type API struct {
	base     string
	client   *http.Client
	sessions SessionStore
}

// New creates a new API instance for the given base URL (e.g.
// "https://formgenius-backend.onrender.com/api"). The session store may
// be empty but must not be nil.
func New(baseURL string, sessions SessionStore) *API {
	return &API{
		base:     strings.TrimRight(baseURL, "/"),
		client:   http.DefaultClient,
		sessions: sessions,
	}
}

// WithHTTPClient replaces the transport used for outgoing requests.
func (a *API) WithHTTPClient(client *http.Client) *API {
	a.client = client
	return a
}

// BaseURL returns the configured base URL without a trailing slash.
func (a *API) BaseURL() (baseURL string) {
	return a.base
}

// Session returns the currently persisted session, or nil if none exists.
func (a *API) Session() (session *Session, err error) {
	return a.sessions.Load()
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login establishes a session via POST /auth/login and persists it.
// Nothing is persisted unless the server returned both a user and a token.
func (a *API) Login(ctx context.Context, email, password string) (session *Session, err error) {
	var sess Session
	if err := a.Post(ctx, "/auth/login", loginRequest{Email: email, Password: password}, &sess); err != nil {
		return nil, err
	}
	return a.establish(&sess)
}

// Register creates an account via POST /auth/register and persists the
// resulting session, following the same rules as Login.
func (a *API) Register(ctx context.Context, name, email, password string) (session *Session, err error) {
	var sess Session
	if err := a.Post(ctx, "/auth/register", registerRequest{Name: name, Email: email, Password: password}, &sess); err != nil {
		return nil, err
	}
	return a.establish(&sess)
}

func (a *API) establish(sess *Session) (*Session, error) {
	if sess.Token == "" || sess.User.ID == "" {
		return nil, errors.NewAPIError("auth response missing user or token", nil)
	}
	if err := a.sessions.Save(sess); err != nil {
		return nil, errors.NewIOError("failed to persist session", err)
	}
	return sess, nil
}

// Logout clears the persisted session. The backend keeps no server-side
// session state, so no request is sent.
func (a *API) Logout() error {
	if err := a.sessions.Clear(); err != nil {
		return errors.NewIOError("failed to clear session", err)
	}
	return nil
}
