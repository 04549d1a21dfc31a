package dto

import (
	"encoding/json"
	"strings"
)

// StringOrNumber keeps loosely-typed numeric fields textual across the
// untrusted boundary. Form payloads may carry estimatedHours either as
// a JSON number or as a quoted string; coercion happens later, inside
// the submission validator, so a malformed value fails with its own
// stable message instead of a generic bind error.
type StringOrNumber string

func (s *StringOrNumber) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*s = ""
		return nil
	}
	if len(raw) >= 2 && raw[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = StringOrNumber(strings.TrimSpace(v))
		return nil
	}
	*s = StringOrNumber(raw)
	return nil
}

func (s StringOrNumber) String() string {
	return string(s)
}

// RequiredSkillData mirrors one entry of the form's skill selector.
type RequiredSkillData struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	MinimumLevel int    `json:"minimumLevel"`
}

// CreateTaskRequest is the untrusted task payload. No field is assumed
// well-typed; the submission validator is the enforcement point.
type CreateTaskRequest struct {
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	Priority       string              `json:"priority"`
	EstimatedHours StringOrNumber      `json:"estimatedHours"`
	Project        string              `json:"project"`
	Status         string              `json:"status"`
	Deadline       string              `json:"deadline"`
	RequiredSkills []RequiredSkillData `json:"requiredSkills"`
}

type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	UserRole string `json:"userRole"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
