package model

import (
	"time"

	"task-allocator.com/task-allocator/internal/constants"
)

// User is a profile document keyed by the normalized (trimmed,
// lower-cased) email address.
type User struct {
	Email     string             `gorm:"primaryKey" json:"email"`
	UID       string             `gorm:"size:36;not null" json:"uid"`
	Name      string             `gorm:"not null" json:"name"`
	Role      constants.UserRole `gorm:"type:varchar(20);not null" json:"userRole"`
	CreatedAt time.Time          `json:"createdAt"`
}

// Credential is a row of the local credential backend. The profile
// document above never carries the hash.
type Credential struct {
	Email        string `gorm:"primaryKey"`
	UID          string `gorm:"size:36;not null"`
	PasswordHash []byte `gorm:"not null"`
	CreatedAt    time.Time
}
