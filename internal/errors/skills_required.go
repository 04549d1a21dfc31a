package errors

import "net/http"

var ErrSkillsRequired = &Exception{
	Message:    "At least one required skill must be specified",
	StatusCode: http.StatusBadRequest,
}
