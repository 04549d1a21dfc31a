package auth

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	model "task-allocator.com/task-allocator/internal/models"
)

// LocalProvider is a credential backend storing bcrypt hashes in the
// application database. It stands in for the managed auth service and
// satisfies the same contract.
type LocalProvider struct {
	db *gorm.DB
}

func NewLocalProvider(db *gorm.DB) *LocalProvider {
	return &LocalProvider{db: db}
}

// CreateAccount implements Provider. Email is expected pre-normalized
// by the caller.
func (p *LocalProvider) CreateAccount(ctx context.Context, email, password string) (*Credential, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	credential := &model.Credential{
		Email:        email,
		UID:          uuid.NewString(),
		PasswordHash: hash,
	}

	if err := p.db.WithContext(ctx).Create(credential).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAccountExists
		}
		return nil, errors.WithStack(err)
	}

	return &Credential{UID: credential.UID, Email: credential.Email}, nil
}

// VerifyCredentials implements Provider. A missing account and a wrong
// password are indistinguishable to the caller.
func (p *LocalProvider) VerifyCredentials(ctx context.Context, email, password string) (*Credential, error) {
	var credential model.Credential
	err := p.db.WithContext(ctx).First(&credential, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errors.WithStack(err)
	}

	if err := bcrypt.CompareHashAndPassword(credential.PasswordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &Credential{UID: credential.UID, Email: credential.Email}, nil
}

var _ Provider = &LocalProvider{}
