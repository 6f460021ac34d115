// Package server wires the admin endpoints server: configuration, the
// provider admin client, the account service and the HTTP layer. It handles
// OS signals and shuts the listener down gracefully.
package server

import (
	"context"
	"errors"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"github.com/wandersonmk/sistemasCadastro/internal/logging"
	"github.com/wandersonmk/sistemasCadastro/internal/server/admin"
	"github.com/wandersonmk/sistemasCadastro/internal/server/config"
	"github.com/wandersonmk/sistemasCadastro/internal/server/httpapi"
	"github.com/wandersonmk/sistemasCadastro/internal/server/users"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	userService *users.Service
	http        *fiber.App
}

// NewApp builds the server. Missing provider credentials do not stop it:
// every account request then answers with a configuration error.
func NewApp(c *config.Config) (*App, error) {
	logger := logging.New(os.Stdout, "json", c.LogLevel)

	var repo users.Repository
	ac, err := admin.New(c.ProviderURL, c.ServiceRoleKey, 0)
	if err != nil {
		logger.Warn(context.Background(), "provider admin client disabled", "error", err)
	} else {
		repo = ac
	}

	us := users.NewService(repo, logger)

	return &App{
		config:      c,
		logger:      logger,
		userService: us,
		http:        httpapi.NewApp(us, c.FrontendURL, logger),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, ln net.Listener, cancelFunc context.CancelFunc) {
	app.logger.Info(ctx, "listening", "addr", ln.Addr().String())
	err := app.http.Listener(ln, fiber.ListenConfig{DisableStartupMessage: true})
	if err != nil && ctx.Err() == nil {
		app.logger.Error(ctx, err.Error())
	}
	cancelFunc()
}

func (app *App) shutdown(ctx context.Context, ln net.Listener) {
	sctx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
	defer cancel()

	if err := app.http.ShutdownWithContext(sctx); err != nil {
		app.logger.Error(ctx, "shutdown failed", "error", err)
	}
	// Unblocks the server if it had not started serving yet.
	if err := ln.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		app.logger.Warn(ctx, "close listener", "error", err)
	}
}

// Run serves until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	ln, err := net.Listen("tcp", app.config.ListenAddr)
	if err != nil {
		return err
	}

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, ln, cancelFunc)
	}()

	<-ctx.Done()
	app.shutdown(ctx, ln)
	wg.Wait()

	app.logger.Info(ctx, "Stopped")
	return nil
}
