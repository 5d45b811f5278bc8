package errors

import (
	"errors"
	"net/http"
)

var (
	ErrTransport    = errors.New("transport error")
	ErrAPIError     = errors.New("api error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrIOError      = errors.New("io error")
)

type wrapError struct {
	underlying error
	msg        string
	cause      error
}

var _ error = (*wrapError)(nil)

func NewTransportError(msg string, cause error) error {
	return &wrapError{
		underlying: ErrTransport,
		msg:        msg,
		cause:      cause,
	}
}

func NewAPIError(msg string, cause error) error {
	return &wrapError{
		underlying: ErrAPIError,
		msg:        msg,
		cause:      cause,
	}
}

func NewIOError(msg string, cause error) error {
	return &wrapError{
		underlying: ErrIOError,
		msg:        msg,
		cause:      cause,
	}
}

// NewStatusError converts a non-2xx HTTP status and the server's error
// message into an error value. 401 and 404 map to their dedicated
// sentinels; everything else is a plain API error.
func NewStatusError(status int, msg string) error {
	underlying := ErrAPIError
	switch status {
	case http.StatusUnauthorized:
		underlying = ErrUnauthorized
	case http.StatusNotFound:
		underlying = ErrNotFound
	}
	return &wrapError{
		underlying: underlying,
		msg:        msg,
	}
}

func (err *wrapError) Error() string {
	if err == nil {
		return "(*wrapError)(nil)"
	}
	message := err.underlying.Error() + ": " + err.msg
	if err.cause != nil {
		message += ": " + err.cause.Error()
	}
	return message
}

func (err *wrapError) Unwrap() []error {
	if err.cause == nil {
		return []error{err.underlying}
	}
	return []error{err.underlying, err.cause}
}

// UserMessage reduces an error to the single inline string a screen shows.
// Server-reported messages are preferred over wrapper noise.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var w *wrapError
	if errors.As(err, &w) && w.msg != "" {
		return w.msg
	}
	return err.Error()
}
