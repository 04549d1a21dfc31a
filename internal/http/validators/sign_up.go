package validators

import (
	"regexp"
	"strings"

	"task-allocator.com/task-allocator/internal/constants"
	dto "task-allocator.com/task-allocator/internal/data_models"
	apperrors "task-allocator.com/task-allocator/internal/errors"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NormalizeEmail is the canonical account key: trimmed, lower-cased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidateSignUpRequest checks shape only; the duplicate-account probe
// and credential creation belong to the auth service.
func ValidateSignUpRequest(r *dto.SignUpRequest) error {
	if r.Email == "" || r.Password == "" || r.Name == "" || r.UserRole == "" {
		return apperrors.ErrMissingRequiredFields
	}

	if !IsValidEmail(NormalizeEmail(r.Email)) {
		return apperrors.ErrInvalidEmail
	}

	if len(r.Password) < 6 {
		return apperrors.ErrPasswordTooShort
	}

	if !constants.IsValidRole(r.UserRole) {
		return apperrors.ErrInvalidRole
	}

	return nil
}

// ValidateSignInRequest checks shape only; credential verification is
// delegated entirely to the auth provider.
func ValidateSignInRequest(r *dto.SignInRequest) error {
	if r.Email == "" || r.Password == "" {
		return apperrors.ErrMissingCredentials
	}

	if !IsValidEmail(NormalizeEmail(r.Email)) {
		return apperrors.ErrInvalidEmail
	}

	if len(r.Password) < 6 {
		return apperrors.ErrInvalidPasswordFormat
	}

	return nil
}
