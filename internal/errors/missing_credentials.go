package errors

import "net/http"

var ErrMissingCredentials = &Exception{
	Message:    "Missing email or password",
	StatusCode: http.StatusBadRequest,
}
