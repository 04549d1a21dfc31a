package errors

import (
	"errors"
	"net/http"
)

// Exception is a stable, machine-oriented error the HTTP layer maps to
// a status code and a `{success:false, error}` payload.
type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// UserMessage returns the stable message for known exceptions and the
// fallback for anything else, so raw collaborator errors never reach a
// response body unless deliberately passed through.
func UserMessage(err error, fallback string) string {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return fallback
}

// IsException reports whether err is one of the stable sentinel values.
func IsException(err error) bool {
	var appErr *Exception
	return errors.As(err, &appErr)
}
