package users

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the provider's admin account API.
type Repository interface {
	// GetUserByEmail returns common.ErrNotFound when no account matches.
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	// Create makes an account whose email is already confirmed.
	Create(ctx context.Context, email, password string) (*User, error)
	ConfirmEmail(ctx context.Context, id uuid.UUID) error
}
