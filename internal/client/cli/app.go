package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/wandersonmk/sistemasCadastro/internal/client/client"
	"github.com/wandersonmk/sistemasCadastro/internal/client/config"
	"github.com/wandersonmk/sistemasCadastro/internal/client/guard"
	"github.com/wandersonmk/sistemasCadastro/internal/client/repositories/employees"
	"github.com/wandersonmk/sistemasCadastro/internal/client/services"
	"github.com/wandersonmk/sistemasCadastro/internal/client/session"
	"github.com/wandersonmk/sistemasCadastro/internal/client/toast"
	"github.com/wandersonmk/sistemasCadastro/internal/logging"
)

// App is the composition root of the client: it owns the session state and
// the controllers and hands them to the REPL.
type App struct {
	config *config.Config
	logger logging.Logger

	state           *session.State
	authService     services.AuthService
	employeeService services.EmployeeService
	guard           *guard.Guard
	notifier        toast.Notifier
	route           string
	reader          *bufio.Reader
	out             io.Writer
	closers         []io.Closer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(os.Stderr, "text", c.LogLevel)

	var store client.SessionStore
	switch {
	case c.SessionFile != "" && c.SessionKey != "":
		store = client.NewEncryptedFileSessionStore(c.SessionFile, c.SessionKey)
	case c.SessionFile != "":
		store = client.NewFileSessionStore(c.SessionFile)
	}

	rc, err := client.NewRESTClient(client.RESTConfig{
		URL:     c.ProviderURL,
		Key:     c.ProviderKey,
		Timeout: c.RequestTimeout,
		Store:   store,
	})
	if err != nil {
		return nil, err
	}

	var (
		employeeStore client.EmployeeStore = rc
		closers       []io.Closer
	)
	if c.DatabaseDSN != "" {
		db, err := employees.Open(ctx, c.DatabaseDSN, c.RunMigrations)
		if err != nil {
			return nil, err
		}
		employeeStore = employees.NewPostgresRepository(db)
		closers = append(closers, db)
		logger.Info(ctx, "using direct database store")
	}

	state := session.New()
	admin := client.NewAdminEndpoint(c.AdminEndpointURL, c.RequestTimeout)

	return &App{
		config:          c,
		logger:          logger,
		state:           state,
		authService:     services.NewAuthService(rc, admin, state, logger),
		employeeService: services.NewEmployeeService(employeeStore, logger),
		guard:           guard.New(rc, state, logger),
		notifier:        toast.NewTerminal(os.Stdout),
		reader:          bufio.NewReader(os.Stdin),
		out:             os.Stdout,
		closers:         closers,
	}, nil
}

func (a *App) Close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.logger.Warn(context.Background(), "close failed", "error", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.state.IsAuthenticated()
}

func (a *App) getStatus() string {
	s := a.route
	if u := a.state.User(); u != nil {
		s = u.Email + " " + s
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Run restores a persisted session, opens the home page and starts the REPL.
// It blocks until the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if _, err := a.authService.Restore(ctx); err != nil {
		a.logger.Warn(ctx, "session restore failed", "error", err)
	}

	fmt.Fprintln(a.out, "Cadastro de funcionários (digite 'help' para ver os comandos)")
	_ = a.List(ctx)

	runREPL(ctx, a, a.getStatus, a.reader)
}
