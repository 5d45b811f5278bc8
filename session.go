package formgenius

// User is the account identity returned by the auth endpoints.
type User struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Session is the opaque credential bag persisted after login or register
// and attached to authenticated requests as a bearer token.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// SessionStore persists at most one session record.
// Load returns (nil, nil) when no session is stored.
type SessionStore interface {
	Load() (*Session, error)
	Save(*Session) error
	Clear() error
}
