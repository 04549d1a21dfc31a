package errors

import "net/http"

var ErrInvalidEmail = &Exception{
	Message:    "Invalid email format",
	StatusCode: http.StatusBadRequest,
}
