package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aussiebroadwan/hirejoy/internal/pipeline/domain"
	httpapi "github.com/aussiebroadwan/hirejoy/internal/pipeline/http"
	"github.com/aussiebroadwan/hirejoy/internal/pipeline/service"
	"github.com/aussiebroadwan/hirejoy/internal/pipeline/store"
	"github.com/aussiebroadwan/hirejoy/internal/pipeline/store/drivers/memory"
	"github.com/aussiebroadwan/hirejoy/pkg/idx"
	"github.com/aussiebroadwan/hirejoy/pkg/jwtx"
	"github.com/aussiebroadwan/hirejoy/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the pipeline service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	store store.Store
	key   *jwtx.EdDSAKey

	// Services
	viewStateService *service.ViewStateService
	sessionService   *service.SessionService
	candidateService *service.CandidateService
	boardService     *service.BoardService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "pipeline-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	app.initStore()

	// Keys live only as long as the process, like the candidates
	key, err := jwtx.NewEdDSAKey("", cfg.SessionIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session key: %w", err)
	}
	app.key = key

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler exposes the router, mostly for tests.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("pipeline service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down pipeline service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.store.Close(); err != nil {
		app.logger.Error("error closing store", "error", err)
		return err
	}

	app.logger.Info("pipeline service stopped")
	return nil
}

func (app *Application) initStore() {
	opts := []memory.Option{memory.WithIDGenerator(idx.Default())}
	if app.cfg.SeedCandidates {
		opts = append(opts, memory.WithCandidates(domain.SeedCandidates()))
	}
	app.store = memory.NewStore(opts...)

	app.logger.Info("candidate store ready", "candidates", app.store.Candidates().Len(context.Background()))
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.viewStateService = service.NewViewStateService()

	app.sessionService = &service.SessionService{
		Signer: app.key,
		IDs:    idx.Default(),
		Views:  app.viewStateService,
		Issuer: app.cfg.SessionIssuer,
		TTL:    app.cfg.SessionTTL,
		Delay:  app.cfg.LoginDelay,
	}
	app.candidateService = &service.CandidateService{Store: app.store}
	app.boardService = &service.BoardService{
		Store: app.store,
		Views: app.viewStateService,
	}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.key,
		BuildVersion,
		app.store,
		app.logger,
	)

	// Wire services to router
	router.SessionService = app.sessionService
	router.CandidateService = app.candidateService
	router.BoardService = app.boardService
	router.ViewStateService = app.viewStateService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
