package errors

import "net/http"

var ErrInvalidEstimatedHours = &Exception{
	Message:    "Estimated hours must be a positive number",
	StatusCode: http.StatusBadRequest,
}
