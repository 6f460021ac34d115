// Package services contains the client's controllers: authentication and the
// employee collection. Both keep a loading flag and the last user-facing
// error message for the presentation layer to read.
package services

import (
	"context"
	"errors"
	"sync"

	"github.com/wandersonmk/sistemasCadastro/internal/client/client"
	"github.com/wandersonmk/sistemasCadastro/internal/client/session"
	"github.com/wandersonmk/sistemasCadastro/internal/client/translate"
	"github.com/wandersonmk/sistemasCadastro/internal/common"
	"github.com/wandersonmk/sistemasCadastro/internal/logging"
)

// SignupResult carries the provider's answer to a sign-up. Session is nil
// when the provider requires email confirmation.
type SignupResult struct {
	User    *client.User
	Session *client.Session
}

// AuthService defines authentication operations for the client.
//
// Contract:
//   - Login: sign in; an unconfirmed email is confirmed through the admin
//     endpoint and the sign-in retried once.
//   - Signup: create the account; a returned user counts as signed in.
//   - Logout: sign out; never fails.
//   - Restore: adopt the provider's persisted session, if any.
//
// Failures are *common.Error values whose text is already translated.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*client.User, error)
	Signup(ctx context.Context, email, password string) (*SignupResult, error)
	Logout(ctx context.Context)
	Restore(ctx context.Context) (*client.User, error)

	Loading() bool
	ErrorMessage() string
}

type status struct {
	mu      sync.Mutex
	loading bool
	errMsg  string
}

func (s *status) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.errMsg = ""
}

func (s *status) end() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
}

func (s *status) fail(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = msg
}

func (s *status) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *status) ErrorMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// errNoUser marks a sign-in answer that carried no user.
var errNoUser = errors.New("sign-in returned no user")

type authService struct {
	status
	auth      client.Auth
	confirmer client.EmailConfirmer
	state     *session.State
	log       logging.Logger
}

// NewAuthService wires the controller. confirmer may be nil, in which case
// an unconfirmed email is reported without a retry.
func NewAuthService(auth client.Auth, confirmer client.EmailConfirmer, state *session.State, log logging.Logger) AuthService {
	if log == nil {
		log = logging.Nop()
	}
	return &authService{auth: auth, confirmer: confirmer, state: state, log: log}
}

func (a *authService) Login(ctx context.Context, email, password string) (*client.User, error) {
	a.begin()
	defer a.end()

	s, err := a.auth.SignIn(ctx, email, password)
	if err != nil && translate.IsEmailNotConfirmed(err) && a.confirmer != nil {
		s = a.confirmAndRetry(ctx, email, password)
	}
	if s != nil && s.User == nil {
		s, err = nil, errNoUser
	}
	if s == nil {
		msg := translate.Error(err, translate.Login)
		a.fail(msg)
		a.log.Info(ctx, "login failed", "email", email, "error", err)
		return nil, common.Remote(msg, err)
	}

	a.state.SetUser(s.User)
	return s.User, nil
}

// confirmAndRetry returns nil when either step fails; the caller then
// reports the original sign-in failure.
func (a *authService) confirmAndRetry(ctx context.Context, email, password string) *client.Session {
	if err := a.confirmer.ConfirmEmail(ctx, email); err != nil {
		a.log.Warn(ctx, "confirm email failed", "email", email, "error", err)
		return nil
	}
	s, err := a.auth.SignIn(ctx, email, password)
	if err != nil {
		a.log.Warn(ctx, "login retry after confirmation failed", "email", email, "error", err)
		return nil
	}
	if s == nil || s.User == nil {
		a.log.Warn(ctx, "login retry after confirmation returned no user", "email", email)
		return nil
	}
	return s
}

func (a *authService) Signup(ctx context.Context, email, password string) (*SignupResult, error) {
	a.begin()
	defer a.end()

	res, err := a.auth.SignUp(ctx, email, password)
	if err != nil {
		msg := translate.Error(err, translate.Signup)
		a.fail(msg)
		a.log.Info(ctx, "signup failed", "email", email, "error", err)
		return nil, common.Remote(msg, err)
	}

	if res.User != nil {
		a.state.SetUser(res.User)
	}
	return &SignupResult{User: res.User, Session: res.Session}, nil
}

func (a *authService) Logout(ctx context.Context) {
	a.begin()
	defer a.end()

	if err := a.auth.SignOut(ctx); err != nil {
		a.log.Warn(ctx, "logout failed", "error", err)
	}
	a.state.Clear()
}

func (a *authService) Restore(ctx context.Context) (*client.User, error) {
	s, err := a.auth.GetSession(ctx)
	if err != nil {
		return nil, err
	}
	if s == nil || s.User == nil {
		return nil, nil
	}
	a.state.SetUser(s.User)
	return s.User, nil
}
