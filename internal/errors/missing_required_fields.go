package errors

import "net/http"

var ErrMissingRequiredFields = &Exception{
	Message:    "Missing required fields",
	StatusCode: http.StatusBadRequest,
}
