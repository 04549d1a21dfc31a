package errors

import "net/http"

var ErrDeadlineInPast = &Exception{
	Message:    "Deadline cannot be in the past",
	StatusCode: http.StatusBadRequest,
}
