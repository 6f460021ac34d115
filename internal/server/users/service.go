// Package users implements the privileged account operations behind the
// admin endpoints: sign-up that skips email verification and forced email
// confirmation.
package users

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/wandersonmk/sistemasCadastro/internal/common"
	"github.com/wandersonmk/sistemasCadastro/internal/logging"
)

const (
	MsgInvalidEmail  = "E-mail inválido."
	MsgShortPassword = "Senha deve ter ao menos 6 caracteres."
	MsgNotConfigured = "Configuração do Supabase ausente no servidor."
	MsgAlreadyExists = "E-mail já cadastrado."
	MsgSignupFailed  = "Falha no cadastro."
	MsgConfirmFailed = "Falha ao confirmar e-mail."
	MsgUserNotFound  = "Usuário não encontrado."
)

const minPasswordLength = 6

var emailPattern = regexp.MustCompile(`[^\s@]+@[^\s@]+\.[^\s@]+`)

type Service struct {
	repo Repository
	log  logging.Logger
}

// NewService returns a Service backed by repo. A nil repo means the provider
// credentials are missing; every operation then fails with a configuration
// error after input validation.
func NewService(repo Repository, log logging.Logger) *Service {
	if log == nil {
		log = logging.Nop()
	}
	return &Service{repo: repo, log: log}
}

func validEmail(email string) bool {
	return email != "" && emailPattern.MatchString(email)
}

// Signup creates a confirmed account and returns its id.
func (s *Service) Signup(ctx context.Context, email, password string) (uuid.UUID, error) {
	email = strings.TrimSpace(email)
	if !validEmail(email) {
		return uuid.Nil, common.Validation(MsgInvalidEmail)
	}
	if len(password) < minPasswordLength {
		return uuid.Nil, common.Validation(MsgShortPassword)
	}
	if s.repo == nil {
		return uuid.Nil, common.Configuration(MsgNotConfigured)
	}

	// A lookup failure is not fatal: the provider may answer "not found"
	// with an error.
	existing, err := s.repo.GetUserByEmail(ctx, email)
	if err == nil && existing != nil {
		return uuid.Nil, common.Conflict(MsgAlreadyExists, nil)
	}
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		s.log.Warn(ctx, "user lookup failed", "email", email, "error", err)
	}

	u, err := s.repo.Create(ctx, email, password)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "already") {
			return uuid.Nil, common.Conflict(MsgAlreadyExists, err)
		}
		s.log.Error(ctx, "create user failed", "email", email, "error", err)
		return uuid.Nil, common.Remote(MsgSignupFailed, err)
	}
	if u == nil {
		return uuid.Nil, nil
	}

	if u.ID != uuid.Nil {
		if err := s.repo.ConfirmEmail(ctx, u.ID); err != nil {
			s.log.Warn(ctx, "confirm after create failed", "id", u.ID, "error", err)
		}
	}

	s.log.Info(ctx, "user created", "id", u.ID)
	return u.ID, nil
}

// ConfirmEmail marks the account registered under email as confirmed.
func (s *Service) ConfirmEmail(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if !validEmail(email) {
		return common.Validation(MsgInvalidEmail)
	}
	if s.repo == nil {
		return common.Configuration(MsgNotConfigured)
	}

	u, err := s.repo.GetUserByEmail(ctx, email)
	if errors.Is(err, common.ErrNotFound) || (err == nil && (u == nil || u.ID == uuid.Nil)) {
		return common.NotFound(MsgUserNotFound, err)
	}
	if err != nil {
		s.log.Error(ctx, "user lookup failed", "email", email, "error", err)
		return common.Remote(MsgConfirmFailed, err)
	}

	if err := s.repo.ConfirmEmail(ctx, u.ID); err != nil {
		s.log.Error(ctx, "confirm email failed", "id", u.ID, "error", err)
		return common.Remote(MsgConfirmFailed, err)
	}
	s.log.Info(ctx, "email confirmed", "id", u.ID)
	return nil
}
