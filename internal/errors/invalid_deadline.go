package errors

import "net/http"

var ErrInvalidDeadline = &Exception{
	Message:    "Invalid deadline date",
	StatusCode: http.StatusBadRequest,
}
