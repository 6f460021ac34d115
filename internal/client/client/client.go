package client

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wandersonmk/sistemasCadastro/internal/client/models"
)

// User is the identity record owned by the provider's auth service.
type User struct {
	ID               uuid.UUID  `json:"id"`
	Email            string     `json:"email"`
	EmailConfirmedAt *time.Time `json:"email_confirmed_at,omitempty"`
}

// Confirmed reports whether the provider has marked the email as verified.
func (u *User) Confirmed() bool {
	return u != nil && u.EmailConfirmedAt != nil
}

// Session pairs a User with the credentials the provider issued for it.
type Session struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	User         *User     `json:"user"`
}

// Expired reports whether the access token is past (or within leeway of) its
// expiry. A zero ExpiresAt never expires.
func (s *Session) Expired(now time.Time, leeway time.Duration) bool {
	if s == nil {
		return true
	}
	if s.ExpiresAt.IsZero() {
		return false
	}
	return !now.Add(leeway).Before(s.ExpiresAt)
}

// SignUpResult mirrors the provider's sign-up answer: a user is returned even
// when no session is issued (email confirmation pending).
type SignUpResult struct {
	User    *User
	Session *Session
}

// Auth is the authentication half of the provider.
type Auth interface {
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignUp(ctx context.Context, email, password string) (*SignUpResult, error)
	SignOut(ctx context.Context) error
	// GetSession returns the active session, or (nil, nil) when there is none.
	GetSession(ctx context.Context) (*Session, error)
}

// EmployeeStore is the data half of the provider, bound to the funcionarios
// table. Every mutation returns the canonical row as stored.
type EmployeeStore interface {
	Query(ctx context.Context) ([]models.Employee, error)
	// QueryByID returns ErrNoRows when nothing matches.
	QueryByID(ctx context.Context, id models.ID) (*models.Employee, error)
	Insert(ctx context.Context, p models.EmployeePayload) (*models.Employee, error)
	// Update returns ErrNoRows when nothing matches.
	Update(ctx context.Context, id models.ID, p models.EmployeePayload) (*models.Employee, error)
	Delete(ctx context.Context, id models.ID) error
}

// Client is the full provider surface used by the controllers.
type Client interface {
	Auth
	EmployeeStore
}

// EmailConfirmer force-confirms an account through the server-side admin
// endpoint.
type EmailConfirmer interface {
	ConfirmEmail(ctx context.Context, email string) error
}
