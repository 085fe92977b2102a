package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/joho/godotenv"

	"staticframework/pkg/banner"
	"staticframework/pkg/config"
	"staticframework/pkg/logger"
	"staticframework/pkg/web"
)

// App encapsulates the demo server components and lifecycle.
type App struct {
	cfg     *config.Config
	sources string
	version string

	dispatcher *web.Dispatcher
	srv        *http.Server
}

// New validates the configuration, seeds the demo template and static files
// and builds the dispatcher. It does not start the HTTP server; call Run to
// start it and block until shutdown.
func New(cfg *config.Config, sources, version string) (*App, error) {
	_ = godotenv.Load(".env")

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if err := EnsureDemoFiles(cfg.StaticDir(), cfg.TemplateDir()); err != nil {
		return nil, fmt.Errorf("seed demo files: %w", err)
	}

	return &App{
		cfg:        cfg,
		sources:    sources,
		version:    version,
		dispatcher: BuildDispatcher(cfg),
	}, nil
}

// Run prints the banner, starts the HTTP server and blocks until ctx is
// canceled or a fatal server error occurs.
func (a *App) Run(ctx context.Context) error {
	banner.Print(a.cfg, a.sources, a.version)

	errCh := a.startHTTP(ctx)

	select {
	case <-ctx.Done():
		logger.Info("shutting_down")
		return a.srv.Shutdown(context.Background())
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

// BuildDispatcher wires the framework dispatcher: static server, template
// renderer, request-logging middleware and the demo routes. Registration
// completes here, before serving starts.
func BuildDispatcher(cfg *config.Config) *web.Dispatcher {
	static := web.NewStaticServer(cfg.StaticDir(), cfg.StaticPrefix())
	templates := web.NewRenderer(cfg.TemplateDir())

	d := web.NewDispatcher(static, templates)
	d.Use(web.NewRequestLogger(logger.Log))
	registerRoutes(d)
	return d
}

// validateConfig rejects configuration the dispatcher cannot serve with.
func validateConfig(cfg *config.Config) error {
	p := cfg.StaticPrefix()
	if !strings.HasPrefix(p, "/") || !strings.HasSuffix(p, "/") {
		return fmt.Errorf("static prefix must start and end with '/': %q", p)
	}
	return nil
}
