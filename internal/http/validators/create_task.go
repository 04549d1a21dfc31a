package validators

import (
	"strconv"
	"strings"
	"time"

	dto "task-allocator.com/task-allocator/internal/data_models"
	apperrors "task-allocator.com/task-allocator/internal/errors"
	"task-allocator.com/task-allocator/internal/forms"
)

// ValidateCreateTaskRequest is the authoritative gate for task
// submission. Unlike the form validator it fails fast: the first
// structural problem wins and is returned as its stable exception.
// The order is fixed: required fields, deadline shape, deadline bound,
// estimated hours, skill set.
//
// On success it returns the parsed deadline and the coerced hours so
// the service persists normalized values, never the raw payload.
func ValidateCreateTaskRequest(r *dto.CreateTaskRequest, now time.Time) (time.Time, float64, error) {
	if strings.TrimSpace(r.Title) == "" ||
		strings.TrimSpace(r.Description) == "" ||
		strings.TrimSpace(r.Project) == "" {
		return time.Time{}, 0, apperrors.ErrMissingRequiredFields
	}

	deadline, ok := forms.ParseDeadline(r.Deadline)
	if !ok {
		return time.Time{}, 0, apperrors.ErrInvalidDeadline
	}

	if deadline.Before(now) {
		return time.Time{}, 0, apperrors.ErrDeadlineInPast
	}

	hours, err := strconv.ParseFloat(r.EstimatedHours.String(), 64)
	if err != nil || hours <= 0 {
		return time.Time{}, 0, apperrors.ErrInvalidEstimatedHours
	}

	if len(r.RequiredSkills) == 0 {
		return time.Time{}, 0, apperrors.ErrSkillsRequired
	}

	return deadline, hours, nil
}
