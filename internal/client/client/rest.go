package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wandersonmk/sistemasCadastro/internal/client/models"
	"github.com/wandersonmk/sistemasCadastro/internal/common"
	"github.com/wandersonmk/sistemasCadastro/internal/netx"
)

const (
	employeesPath = "/rest/v1/funcionarios"
	refreshLeeway = 10 * time.Second
)

// RESTConfig configures a RESTClient. URL and Key are required; the rest
// have defaults.
type RESTConfig struct {
	URL        string
	Key        string
	Timeout    time.Duration
	Store      SessionStore
	HTTPClient *http.Client
}

// RESTClient implements Client against the provider's auth and data gateways.
type RESTClient struct {
	baseURL string
	key     string
	hc      *http.Client
	store   SessionStore
	now     func() time.Time
}

// NewRESTClient fails with a configuration error when the provider URL or
// the public key is missing.
func NewRESTClient(cfg RESTConfig) (*RESTClient, error) {
	if strings.TrimSpace(cfg.URL) == "" || strings.TrimSpace(cfg.Key) == "" {
		return nil, common.Configuration(NotConfiguredMessage)
	}

	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}

	store := cfg.Store
	if store == nil {
		store = NewMemorySessionStore()
	}

	return &RESTClient{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		key:     cfg.Key,
		hc:      hc,
		store:   store,
		now:     time.Now,
	}, nil
}

type call struct {
	method string
	path   string
	token  string
	prefer string
	body   any
}

func (c *RESTClient) do(ctx context.Context, r call, out any) error {
	token := r.token
	if token == "" {
		token = c.key
	}
	headers := map[string]string{
		common.APIKeyHeaderName:        c.key,
		common.AuthorizationHeaderName: "Bearer " + token,
	}
	if r.prefer != "" {
		headers[common.PreferHeaderName] = r.prefer
	}

	return netx.DoJSON(ctx, c.hc, netx.Request{
		Method:  r.method,
		URL:     c.baseURL + r.path,
		Headers: headers,
		Body:    r.body,
	}, out)
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	ExpiresAt    int64  `json:"expires_at"`
	User         *User  `json:"user"`
}

func (c *RESTClient) sessionFrom(tr tokenResponse) *Session {
	return &Session{
		AccessToken:  tr.AccessToken,
		RefreshToken: tr.RefreshToken,
		ExpiresAt:    sessionExpiry(tr.AccessToken, tr.ExpiresAt, tr.ExpiresIn, c.now()),
		User:         tr.User,
	}
}

func (c *RESTClient) saveSession(tr tokenResponse) (*Session, error) {
	s := c.sessionFrom(tr)
	if err := c.store.Save(s); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return s, nil
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *RESTClient) SignIn(ctx context.Context, email, password string) (*Session, error) {
	var tr tokenResponse
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/auth/v1/token?grant_type=password",
		body:   credentials{Email: email, Password: password},
	}, &tr)
	if err != nil {
		return nil, err
	}
	return c.saveSession(tr)
}

// SignUp returns a session only when the provider issued one (auto-confirm
// enabled); otherwise the provider answers with the bare user.
func (c *RESTClient) SignUp(ctx context.Context, email, password string) (*SignUpResult, error) {
	var raw json.RawMessage
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/auth/v1/signup",
		body:   credentials{Email: email, Password: password},
	}, &raw)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return &SignUpResult{}, nil
	}

	var tr tokenResponse
	if err := json.Unmarshal(raw, &tr); err != nil {
		return nil, fmt.Errorf("decode signup: %w", err)
	}
	if tr.AccessToken != "" {
		s, err := c.saveSession(tr)
		if err != nil {
			return nil, err
		}
		return &SignUpResult{User: s.User, Session: s}, nil
	}

	var u User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("decode signup user: %w", err)
	}
	if u.ID == uuid.Nil {
		return &SignUpResult{}, nil
	}
	return &SignUpResult{User: &u}, nil
}

// SignOut revokes the session remotely and always drops it locally.
func (c *RESTClient) SignOut(ctx context.Context) error {
	var err error
	if s, _ := c.store.Load(); s != nil && s.AccessToken != "" {
		err = c.do(ctx, call{method: http.MethodPost, path: "/auth/v1/logout", token: s.AccessToken}, nil)
	}
	if cerr := c.store.Clear(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// GetSession returns the stored session, refreshing it first when the access
// token has expired. A failed refresh drops the stored session.
func (c *RESTClient) GetSession(ctx context.Context) (*Session, error) {
	s, err := c.store.Load()
	if err != nil || s == nil {
		return nil, err
	}
	if !s.Expired(c.now(), refreshLeeway) {
		return s, nil
	}
	if s.RefreshToken == "" {
		return nil, c.store.Clear()
	}

	var tr tokenResponse
	err = c.do(ctx, call{
		method: http.MethodPost,
		path:   "/auth/v1/token?grant_type=refresh_token",
		body:   map[string]string{"refresh_token": s.RefreshToken},
	}, &tr)
	if err != nil {
		_ = c.store.Clear()
		return nil, err
	}
	if tr.User == nil {
		tr.User = s.User
	}
	return c.saveSession(tr)
}

// dataToken is the bearer for data calls: the user's access token when
// signed in, the public key otherwise.
func (c *RESTClient) dataToken(ctx context.Context) string {
	if s, err := c.GetSession(ctx); err == nil && s != nil {
		return s.AccessToken
	}
	return c.key
}

func byID(id models.ID) string {
	return "?id=eq." + id.String()
}

func (c *RESTClient) Query(ctx context.Context) ([]models.Employee, error) {
	var rows []models.Employee
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   employeesPath + "?select=*&order=id.asc",
		token:  c.dataToken(ctx),
	}, &rows)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *RESTClient) QueryByID(ctx context.Context, id models.ID) (*models.Employee, error) {
	var rows []models.Employee
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   employeesPath + byID(id) + "&select=*",
		token:  c.dataToken(ctx),
	}, &rows)
	if err != nil {
		return nil, err
	}
	return first(rows)
}

func (c *RESTClient) Insert(ctx context.Context, p models.EmployeePayload) (*models.Employee, error) {
	var rows []models.Employee
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   employeesPath + "?select=*",
		token:  c.dataToken(ctx),
		prefer: "return=representation",
		body:   p,
	}, &rows)
	if err != nil {
		return nil, err
	}
	return first(rows)
}

func (c *RESTClient) Update(ctx context.Context, id models.ID, p models.EmployeePayload) (*models.Employee, error) {
	var rows []models.Employee
	err := c.do(ctx, call{
		method: http.MethodPatch,
		path:   employeesPath + byID(id) + "&select=*",
		token:  c.dataToken(ctx),
		prefer: "return=representation",
		body:   p,
	}, &rows)
	if err != nil {
		return nil, err
	}
	return first(rows)
}

func (c *RESTClient) Delete(ctx context.Context, id models.ID) error {
	return c.do(ctx, call{
		method: http.MethodDelete,
		path:   employeesPath + byID(id),
		token:  c.dataToken(ctx),
		prefer: "return=minimal",
	}, nil)
}

func first(rows []models.Employee) (*models.Employee, error) {
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	row := rows[0]
	return &row, nil
}
