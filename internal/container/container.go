package container

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"gopaired/adapters/excel"
	"gopaired/adapters/stats/distribution"
	"gopaired/app"
	"gopaired/internal"
	"gopaired/internal/api"
	"gopaired/internal/config"
	"gopaired/internal/narrative"
	"gopaired/ui"

	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *internal.Logger

	Loader       *excel.Loader
	Distribution *distribution.StudentT
	Service      *app.AnalysisService
}

// New creates a new dependency injection container
func New(cfg *config.Config, logger *internal.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = internal.NewLogger(cfg.LogLevel)
	}

	loader := excel.NewLoader(excel.LoaderConfig{
		Sheet:   cfg.Upload.Sheet,
		MaxRows: cfg.Upload.MaxRows,
	}, logger)
	dist := distribution.NewStudentT()

	c := &Container{
		Config:       cfg,
		Logger:       logger,
		Loader:       loader,
		Distribution: dist,
		Service: app.NewAnalysisService(
			loader,
			dist,
			narrative.RandomChooser(cfg.Analysis.Seed),
			cfg.Analysis.Options(),
			logger,
		),
	}
	return c, nil
}

// APIHandler builds the JSON API
func (c *Container) APIHandler() http.Handler {
	return api.NewRouter(c.Service, api.Config{MaxUploadBytes: c.Config.Upload.MaxBytes()}, c.Logger)
}

// UIHandler builds the browser UI
func (c *Container) UIHandler() (http.Handler, error) {
	server, err := ui.NewServer(c.Service, ui.Config{
		GinMode:        c.Config.Server.GinMode,
		MaxUploadBytes: c.Config.Upload.MaxBytes(),
	}, c.Logger)
	if err != nil {
		return nil, err
	}
	return server.Handler(), nil
}

// Serve runs the API and UI servers until ctx is cancelled or one of them
// fails, then shuts both down.
func (c *Container) Serve(ctx context.Context) error {
	uiHandler, err := c.UIHandler()
	if err != nil {
		return fmt.Errorf("failed to build UI: %w", err)
	}

	servers := []*http.Server{
		{Addr: net.JoinHostPort("", c.Config.Server.APIPort), Handler: c.APIHandler(), ReadHeaderTimeout: 10 * time.Second},
		{Addr: net.JoinHostPort("", c.Config.Server.UIPort), Handler: uiHandler, ReadHeaderTimeout: 10 * time.Second},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		srv := srv
		g.Go(func() error {
			c.Logger.Info("[Server] Listening on %s", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return fmt.Errorf("server %s failed: %w", srv.Addr, err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		c.Logger.Info("[Server] Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		var firstErr error
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		return firstErr
	})

	return g.Wait()
}
