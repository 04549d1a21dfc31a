package forms

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"task-allocator.com/task-allocator/internal/constants"
	model "task-allocator.com/task-allocator/internal/models"
)

// TaskForm is the candidate task as collected from form controls.
// Numeric and date fields stay textual until validation; the form is a
// UX gate, not a trust boundary — the submission handler revalidates
// everything on its own.
type TaskForm struct {
	Title          string
	Description    string
	Priority       string
	EstimatedHours string
	Project        string
	Status         string
	Deadline       string
	RequiredSkills []model.RequiredSkill
}

var deadlineLayouts = []string{"2006-01-02", time.RFC3339}

// Validate checks every rule independently and reports all failing
// fields at once. The returned map is empty exactly when the form may
// be submitted.
func (f *TaskForm) Validate(now time.Time) (bool, map[string]string) {
	errs := make(map[string]string)

	switch {
	case strings.TrimSpace(f.Title) == "":
		errs["title"] = "Title is required"
	case utf8.RuneCountInString(f.Title) < 3:
		errs["title"] = "Title must be at least 3 characters"
	}

	switch {
	case strings.TrimSpace(f.Description) == "":
		errs["description"] = "Description is required"
	case utf8.RuneCountInString(f.Description) < 10:
		errs["description"] = "Description must be at least 10 characters"
	}

	switch {
	case f.Priority == "":
		errs["priority"] = "Priority is required"
	case !constants.IsValidPriority(f.Priority):
		errs["priority"] = "Priority must be low, medium or high"
	}

	if f.EstimatedHours == "" {
		errs["estimatedHours"] = "Estimated hours are required"
	} else if hours, err := strconv.ParseFloat(strings.TrimSpace(f.EstimatedHours), 64); err != nil || hours <= 0 {
		errs["estimatedHours"] = "Must be a positive number"
	}

	if strings.TrimSpace(f.Project) == "" {
		errs["project"] = "Project is required"
	}

	switch {
	case f.Status == "":
		errs["status"] = "Status is required"
	case !constants.IsValidStatus(f.Status):
		errs["status"] = "Status is not a known value"
	}

	if f.Deadline == "" {
		errs["deadline"] = "Deadline is required"
	} else if deadline, ok := ParseDeadline(f.Deadline); !ok {
		errs["deadline"] = "Deadline is not a valid date"
	} else if deadline.Before(now) {
		errs["deadline"] = "Deadline cannot be in the past"
	}

	if msg := validateSkills(f.RequiredSkills); msg != "" {
		errs["requiredSkills"] = msg
	}

	return len(errs) == 0, errs
}

func validateSkills(skills []model.RequiredSkill) string {
	if len(skills) == 0 {
		return "At least one skill is required"
	}

	for _, s := range skills {
		if !constants.IsKnownSkill(s.ID) {
			return "Unknown skill selected"
		}
		if s.MinimumLevel < constants.MinSkillLevel {
			return "Minimum level is 1"
		}
		if s.MinimumLevel > constants.MaxSkillLevel {
			return "Maximum level is 5"
		}
	}

	return ""
}

// ToggleSkill sets or clears a skill's membership in the required set.
// Selecting an already-selected skill (or deselecting an absent one) is
// a no-op; fresh selections join at the minimum level.
func (f *TaskForm) ToggleSkill(id string, selected bool) {
	idx := -1
	for i, s := range f.RequiredSkills {
		if s.ID == id {
			idx = i
			break
		}
	}

	if selected {
		if idx >= 0 {
			return
		}
		for _, s := range constants.SkillCatalog {
			if s.ID == id {
				f.RequiredSkills = append(f.RequiredSkills, model.RequiredSkill{
					ID:           s.ID,
					Name:         s.Name,
					MinimumLevel: constants.MinSkillLevel,
				})
				return
			}
		}
		return
	}

	if idx >= 0 {
		f.RequiredSkills = append(f.RequiredSkills[:idx], f.RequiredSkills[idx+1:]...)
	}
}

// SetSkillLevel rewrites one skill's minimum level, leaving every other
// entry untouched. Unknown ids are ignored.
func (f *TaskForm) SetSkillLevel(id string, level int) {
	for i := range f.RequiredSkills {
		if f.RequiredSkills[i].ID == id {
			f.RequiredSkills[i].MinimumLevel = level
			return
		}
	}
}

// ParseDeadline accepts the date formats form controls emit: a plain
// calendar date or an RFC 3339 timestamp.
func ParseDeadline(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
