// Package admin talks to the provider's admin account API with the service
// role key. It backs the users.Repository used by the admin endpoints.
package admin

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wandersonmk/sistemasCadastro/internal/common"
	"github.com/wandersonmk/sistemasCadastro/internal/netx"
	"github.com/wandersonmk/sistemasCadastro/internal/server/users"
)

const (
	usersPath      = "/auth/v1/admin/users"
	defaultPerPage = 1000
	// maxPages bounds the email scan at maxPages*perPage accounts.
	maxPages = 100
)

// Client implements users.Repository over the provider's REST admin API.
type Client struct {
	baseURL string
	key     string
	hc      *http.Client
	perPage int
}

var _ users.Repository = (*Client)(nil)

// New fails with a configuration error when either the URL or the key is
// empty.
func New(baseURL, serviceRoleKey string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" || strings.TrimSpace(serviceRoleKey) == "" {
		return nil, common.Configuration(users.MsgNotConfigured)
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		key:     serviceRoleKey,
		hc:      &http.Client{Timeout: timeout},
		perPage: defaultPerPage,
	}, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	return netx.DoJSON(ctx, c.hc, netx.Request{
		Method: method,
		URL:    c.baseURL + path,
		Headers: map[string]string{
			common.APIKeyHeaderName:        c.key,
			common.AuthorizationHeaderName: "Bearer " + c.key,
		},
		Body: body,
	}, out)
}

type userPage struct {
	Users []users.User `json:"users"`
}

// GetUserByEmail pages through the account list; the admin API has no
// lookup by email. A page that starts with the previous page's first account
// means the provider ignored paging, and the scan ends there.
func (c *Client) GetUserByEmail(ctx context.Context, email string) (*users.User, error) {
	var prevFirst uuid.UUID
	for page := 1; page <= maxPages; page++ {
		q := url.Values{}
		q.Set("page", fmt.Sprint(page))
		q.Set("per_page", fmt.Sprint(c.perPage))

		var p userPage
		if err := c.do(ctx, http.MethodGet, usersPath+"?"+q.Encode(), nil, &p); err != nil {
			return nil, err
		}
		if len(p.Users) > 0 {
			if page > 1 && p.Users[0].ID == prevFirst {
				return nil, common.NotFound("user not found", nil)
			}
			prevFirst = p.Users[0].ID
		}
		for _, u := range p.Users {
			if strings.EqualFold(u.Email, email) {
				return &u, nil
			}
		}
		if len(p.Users) < c.perPage {
			return nil, common.NotFound("user not found", nil)
		}
	}
	return nil, fmt.Errorf("user list exceeds %d pages of %d", maxPages, c.perPage)
}

type createUserRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	EmailConfirm bool   `json:"email_confirm"`
}

func (c *Client) Create(ctx context.Context, email, password string) (*users.User, error) {
	var u users.User
	err := c.do(ctx, http.MethodPost, usersPath, createUserRequest{
		Email:        email,
		Password:     password,
		EmailConfirm: true,
	}, &u)
	if err != nil {
		return nil, err
	}
	if u.ID == uuid.Nil {
		return nil, errors.New("provider returned no user id")
	}
	return &u, nil
}

func (c *Client) ConfirmEmail(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodPut, usersPath+"/"+id.String(), map[string]bool{"email_confirm": true}, nil)
}
