package constants

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

type TaskStatus string

const (
	StatusUnassigned TaskStatus = "unassigned"
	StatusAssigned   TaskStatus = "assigned"
	StatusInProgress TaskStatus = "in-progress"
	StatusCompleted  TaskStatus = "completed"
)

type UserRole string

const (
	RoleAllocator UserRole = "allocator"
	RoleEmployee  UserRole = "employee"
	RoleEditor    UserRole = "editor"
)

func IsValidPriority(p string) bool {
	switch TaskPriority(p) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

func IsValidStatus(s string) bool {
	switch TaskStatus(s) {
	case StatusUnassigned, StatusAssigned, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

func IsValidRole(r string) bool {
	switch UserRole(r) {
	case RoleAllocator, RoleEmployee, RoleEditor:
		return true
	}
	return false
}
