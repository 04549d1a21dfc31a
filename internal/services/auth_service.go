package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"task-allocator.com/task-allocator/internal/auth"
	"task-allocator.com/task-allocator/internal/constants"
	apperrors "task-allocator.com/task-allocator/internal/errors"
	model "task-allocator.com/task-allocator/internal/models"
	repository "task-allocator.com/task-allocator/internal/repositories"
)

type AuthService struct {
	users    *repository.UserRepository
	provider auth.Provider
}

func NewAuthService(users *repository.UserRepository, provider auth.Provider) *AuthService {
	return &AuthService{users: users, provider: provider}
}

// Register creates the credential with the auth provider and writes the
// profile document keyed by the normalized email. The duplicate probe
// runs first so a colliding registration never reaches the provider.
func (s *AuthService) Register(ctx context.Context, email, password, name string, role constants.UserRole) (string, error) {
	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return "", apperrors.ErrUserExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		slog.ErrorContext(ctx, "duplicate probe failed", slog.String("email", email), slog.Any("error", err))
		return "", err
	}

	credential, err := s.provider.CreateAccount(ctx, email, password)
	if err != nil {
		if errors.Is(err, auth.ErrAccountExists) {
			return "", apperrors.ErrUserExists
		}
		slog.ErrorContext(ctx, "provider account creation failed", slog.Any("error", err))
		return "", err
	}

	user := &model.User{
		Email: email,
		UID:   credential.UID,
		Name:  name,
		Role:  role,
	}

	if err := s.users.Save(ctx, user); err != nil {
		slog.ErrorContext(ctx, "profile write failed", slog.String("email", email), slog.Any("error", err))
		return "", err
	}

	return credential.UID, nil
}

// Authenticate delegates credential verification entirely to the
// provider; there is no local password comparison. The profile is
// looked up for session data and may be nil for provider-only accounts.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*auth.Credential, *model.User, error) {
	credential, err := s.provider.VerifyCredentials(ctx, email, password)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			slog.WarnContext(ctx, "profile lookup failed after sign-in", slog.String("email", email), slog.Any("error", err))
		}
		return credential, nil, nil
	}

	return credential, user, nil
}

// UserExists reports whether a profile document exists for the email.
func (s *AuthService) UserExists(ctx context.Context, email string) (bool, error) {
	_, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// UpsertOAuthUser backs the federated callback: a first federated
// sign-in creates an employee profile, later ones reuse it.
func (s *AuthService) UpsertOAuthUser(ctx context.Context, email, name string) (*model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	user = &model.User{
		Email: email,
		UID:   uuid.NewString(),
		Name:  name,
		Role:  constants.RoleEmployee,
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
