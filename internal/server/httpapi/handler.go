package httpapi

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/wandersonmk/sistemasCadastro/internal/logging"
)

// AccountService is the account logic behind the auth endpoints.
type AccountService interface {
	Signup(ctx context.Context, email, password string) (uuid.UUID, error)
	ConfirmEmail(ctx context.Context, email string) error
}

// AuthHandler serves the privileged auth endpoints.
type AuthHandler struct {
	accounts AccountService
	log      logging.Logger
}

func NewAuthHandler(accounts AccountService, log logging.Logger) *AuthHandler {
	if log == nil {
		log = logging.Nop()
	}
	return &AuthHandler{accounts: accounts, log: log}
}

// Register sets up auth routes.
func (h *AuthHandler) Register(app *fiber.App) {
	auth := app.Group("/api/auth")
	auth.Post("/signup", h.Signup)
	auth.Post("/confirm-email", h.ConfirmEmail)
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupResponse struct {
	OK     bool      `json:"ok"`
	UserID uuid.UUID `json:"userId"`
}

type confirmRequest struct {
	Email string `json:"email"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

// bind decodes the JSON body into v. A missing or malformed body leaves v
// zero-valued so that field validation reports the problem.
func (h *AuthHandler) bind(c fiber.Ctx, v any) {
	if err := c.Bind().JSON(v); err != nil {
		h.log.Debug(c.Context(), "request body ignored", "path", c.Path(), "error", err)
	}
}

// Signup creates an account whose email is already confirmed.
func (h *AuthHandler) Signup(c fiber.Ctx) error {
	var body signupRequest
	h.bind(c, &body)

	id, err := h.accounts.Signup(c.Context(), body.Email, body.Password)
	if err != nil {
		return err
	}
	return c.JSON(signupResponse{OK: true, UserID: id})
}

// ConfirmEmail force-confirms the account registered under the given email.
func (h *AuthHandler) ConfirmEmail(c fiber.Ctx) error {
	var body confirmRequest
	h.bind(c, &body)

	if err := h.accounts.ConfirmEmail(c.Context(), body.Email); err != nil {
		return err
	}
	return c.JSON(okResponse{OK: true})
}
