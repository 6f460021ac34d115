package users

import (
	"time"

	"github.com/google/uuid"
)

// User is an account as held by the provider's auth service.
type User struct {
	ID               uuid.UUID  `json:"id"`
	Email            string     `json:"email"`
	EmailConfirmedAt *time.Time `json:"email_confirmed_at,omitempty"`
}
