package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wandersonmk/sistemasCadastro/internal/common"
	"github.com/wandersonmk/sistemasCadastro/internal/server/users"
)

type fakeAccounts struct {
	signupID   uuid.UUID
	signupErr  error
	confirmErr error

	gotEmail    string
	gotPassword string
}

func (f *fakeAccounts) Signup(ctx context.Context, email, password string) (uuid.UUID, error) {
	f.gotEmail, f.gotPassword = email, password
	return f.signupID, f.signupErr
}

func (f *fakeAccounts) ConfirmEmail(ctx context.Context, email string) error {
	f.gotEmail = email
	return f.confirmErr
}

func doJSON(t *testing.T, accounts AccountService, method, path, body string) (int, map[string]any) {
	t.Helper()
	app := NewApp(accounts, "http://localhost:3000", nil)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func TestHealth(t *testing.T) {
	status, body := doJSON(t, &fakeAccounts{}, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}

func TestSignup_OK(t *testing.T) {
	id := uuid.New()
	fa := &fakeAccounts{signupID: id}

	status, body := doJSON(t, fa, http.MethodPost, "/api/auth/signup", `{"email":"ana@example.com","password":"secret"}`)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, id.String(), body["userId"])
	assert.Equal(t, "ana@example.com", fa.gotEmail)
	assert.Equal(t, "secret", fa.gotPassword)
}

func TestConfirmEmail_OK(t *testing.T) {
	fa := &fakeAccounts{}

	status, body := doJSON(t, fa, http.MethodPost, "/api/auth/confirm-email", `{"email":"ana@example.com"}`)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, map[string]any{"ok": true}, body)
	assert.Equal(t, "ana@example.com", fa.gotEmail)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"validation", common.Validation(users.MsgInvalidEmail), http.StatusBadRequest, users.MsgInvalidEmail},
		{"not found", common.NotFound(users.MsgUserNotFound, nil), http.StatusNotFound, users.MsgUserNotFound},
		{"conflict", common.Conflict(users.MsgAlreadyExists, nil), http.StatusConflict, users.MsgAlreadyExists},
		{"remote", common.Remote(users.MsgSignupFailed, errors.New("boom")), http.StatusInternalServerError, users.MsgSignupFailed},
		{"configuration", common.Configuration(users.MsgNotConfigured), http.StatusInternalServerError, users.MsgNotConfigured},
		{"unclassified", errors.New("secret detail"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fa := &fakeAccounts{signupErr: tt.err, confirmErr: tt.err}

			for _, path := range []string{"/api/auth/signup", "/api/auth/confirm-email"} {
				status, body := doJSON(t, fa, http.MethodPost, path, `{"email":"ana@example.com","password":"secret"}`)
				assert.Equal(t, tt.status, status, path)
				assert.Equal(t, float64(tt.status), body["statusCode"], path)
				assert.Equal(t, tt.msg, body["statusMessage"], path)
			}
		})
	}
}

func TestSignup_WithService(t *testing.T) {
	t.Run("missing body is an invalid email", func(t *testing.T) {
		status, body := doJSON(t, users.NewService(nil, nil), http.MethodPost, "/api/auth/signup", "")
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, users.MsgInvalidEmail, body["statusMessage"])
	})

	t.Run("short password", func(t *testing.T) {
		status, body := doJSON(t, users.NewService(nil, nil), http.MethodPost, "/api/auth/signup", `{"email":"ana@example.com","password":"123"}`)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, users.MsgShortPassword, body["statusMessage"])
	})

	t.Run("missing provider configuration", func(t *testing.T) {
		status, body := doJSON(t, users.NewService(nil, nil), http.MethodPost, "/api/auth/signup", `{"email":"ana@example.com","password":"secret"}`)
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, users.MsgNotConfigured, body["statusMessage"])
	})
}

func TestUnknownRoute(t *testing.T) {
	status, body := doJSON(t, &fakeAccounts{}, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, float64(http.StatusNotFound), body["statusCode"])
}
