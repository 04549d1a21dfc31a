package errors

import "net/http"

var ErrPasswordTooShort = &Exception{
	Message:    "Password must be at least 6 characters long",
	StatusCode: http.StatusBadRequest,
}
