package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/intl/internal/app"
	"github.com/dmitrymomot/intl/internal/config"
	"github.com/dmitrymomot/intl/internal/server"
	"github.com/dmitrymomot/intl/middlewares"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the formatting API over HTTP",
		Long: `serve exposes every formatting command as a JSON endpoint under /v1 and
health probes under /health. Configuration is read from INTL_* environment
variables; catalogs are reloaded on INTL_CATALOG_RELOAD.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
				cfg.Server.Addr = addr
			}

			ctx := cmd.Context()
			a, err := app.New(ctx, cfg)
			if err != nil {
				return err
			}
			a.Start()

			router := server.NewRouter(server.RouterConfig{
				Provider:       a.Provider,
				Logger:         a.Log,
				Checks:         a.Checks,
				RequestTimeout: cfg.Server.RequestTimeout,
				MaxBodyBytes:   cfg.Server.MaxBodyBytes,
				LocaleOptions:  []middlewares.LocaleOption{middlewares.WithLocaleRemember(cfg.Server.LocaleCookieTTL)},
			})

			closed := false
			err = server.Run(ctx, router,
				server.Address(cfg.Server.Addr),
				server.Logger(a.Log),
				server.ShutdownTimeout(cfg.Server.ShutdownTimeout),
				server.ShutdownHook(func(ctx context.Context) error {
					closed = true
					return a.Close(ctx)
				}),
			)
			if !closed {
				err = errors.Join(err, a.Close(context.WithoutCancel(ctx)))
			}
			return err
		},
	}
	cmd.Flags().String("addr", "", "listen address, overrides INTL_HTTP_ADDR")
	return cmd
}
