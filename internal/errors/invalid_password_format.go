package errors

import "net/http"

var ErrInvalidPasswordFormat = &Exception{
	Message:    "Invalid password format",
	StatusCode: http.StatusBadRequest,
}
