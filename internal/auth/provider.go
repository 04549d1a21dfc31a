package auth

import (
	"context"
	"errors"
)

// Credential is what a provider returns for a verified or newly created
// account.
type Credential struct {
	UID   string
	Email string
}

// Provider is the credential-management collaborator. It owns password
// handling end to end; nothing else in the system compares passwords.
// Constructed once at process start and injected into the services that
// need it.
type Provider interface {
	CreateAccount(ctx context.Context, email, password string) (*Credential, error)
	VerifyCredentials(ctx context.Context, email, password string) (*Credential, error)
}

var (
	ErrAccountExists      = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("Invalid email or password")
)
