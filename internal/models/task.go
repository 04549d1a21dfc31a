package model

import (
	"time"

	"task-allocator.com/task-allocator/internal/constants"
)

// RequiredSkill pairs a catalog skill with the minimum proficiency
// level (1-5) an assignee must have.
type RequiredSkill struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	MinimumLevel int    `json:"minimumLevel"`
}

type Comment struct {
	Author    string    `json:"author"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Task is a persisted task document. Every field below the system
// block is validated by the submission handler before the document is
// written; CreatedAt, UpdatedAt, AssignedTo, Comments and
// CompletionPercentage are assigned server-side and never client-supplied.
type Task struct {
	ID             string                 `gorm:"primaryKey;size:36" json:"id"`
	Title          string                 `gorm:"not null" json:"title"`
	Description    string                 `gorm:"not null" json:"description"`
	Priority       constants.TaskPriority `gorm:"type:varchar(10);not null" json:"priority"`
	EstimatedHours float64                `gorm:"not null" json:"estimatedHours"`
	Project        string                 `gorm:"not null" json:"project"`
	Status         constants.TaskStatus   `gorm:"type:varchar(20);not null" json:"status"`
	Deadline       time.Time              `gorm:"not null" json:"deadline"`
	RequiredSkills []RequiredSkill        `gorm:"serializer:json" json:"requiredSkills"`

	AssignedTo           *string   `json:"assignedTo"`
	Comments             []Comment `gorm:"serializer:json" json:"comments"`
	CompletionPercentage int       `gorm:"not null;default:0" json:"completionPercentage"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}
