package client

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/wandersonmk/sistemasCadastro/internal/netx"
)

// AdminEndpoint calls the server-side admin endpoints of this project, which
// hold the provider's elevated credentials.
type AdminEndpoint struct {
	baseURL string
	hc      *http.Client
}

func NewAdminEndpoint(baseURL string, timeout time.Duration) *AdminEndpoint {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &AdminEndpoint{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
	}
}

// ConfirmEmail marks the account's email as confirmed.
func (a *AdminEndpoint) ConfirmEmail(ctx context.Context, email string) error {
	return netx.DoJSON(ctx, a.hc, netx.Request{
		Method: http.MethodPost,
		URL:    a.baseURL + "/api/auth/confirm-email",
		Body:   map[string]string{"email": email},
	}, nil)
}
