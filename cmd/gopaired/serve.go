package main

import (
	"os/signal"
	"syscall"

	"gopaired/internal"
	"gopaired/internal/config"
	"gopaired/internal/container"

	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the JSON API and the browser UI",
		Long: `Start the JSON API on API_PORT and the browser UI on UI_PORT.

Both servers stop gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := internal.NewLoggerTo(cmd.ErrOrStderr(), cfg.LogLevel)
			c, err := container.New(cfg, logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return c.Serve(ctx)
		},
	}
}
