package errors

import "net/http"

var ErrInvalidRole = &Exception{
	Message:    "Invalid user role",
	StatusCode: http.StatusBadRequest,
}
