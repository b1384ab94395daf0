package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/intl/internal/app"
	"github.com/dmitrymomot/intl/internal/config"
	"github.com/dmitrymomot/intl/pkg/catalog"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and publish message catalogs",
	}
	cmd.AddCommand(newCatalogListCmd(), newCatalogSyncCmd())
	return cmd
}

// withApp runs fn with an App built from the environment and adjusted by
// configure. Scheduled reloads are disabled, a command only needs one
// snapshot.
func withApp(cmd *cobra.Command, configure func(*config.Config), fn func(*app.App) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg.Catalog.Reload = ""
	if configure != nil {
		configure(&cfg)
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	return errors.Join(fn(a), a.Close(context.WithoutCancel(ctx)))
}

func newCatalogListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the locales of the configured catalog sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return withApp(cmd, nil, func(a *app.App) error {
				c := a.Store.Catalog()
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "LOCALE\tMESSAGES\tDEFAULT")
				for _, locale := range a.Provider.Locales() {
					def := ""
					if locale == c.DefaultLocale() {
						def = "*"
					}
					fmt.Fprintf(w, "%s\t%d\t%s\n", locale, c.Len(locale), def)
				}
				return w.Flush()
			})
		},
	}
}

func newCatalogSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync DIR",
		Short: "Copy catalog files into Redis or Postgres",
		Long: `sync reads {locale}.json|yaml|toml files from DIR and replaces the
locales they contain in the backend named by --to. The backend connection is
read from INTL_REDIS_URL or INTL_DATABASE_URL.`,
		Example: "  INTL_REDIS_URL=redis://localhost:6379 intlfmt catalog sync ./locales --to redis",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			to, _ := cmd.Flags().GetString("to")

			set, err := catalog.NewFSSource(os.DirFS(args[0])).Load(cmd.Context())
			if err != nil {
				return err
			}

			// Load from the target itself so unrelated sources need not be
			// reachable.
			target := func(cfg *config.Config) { cfg.Catalog.Sources = []string{to} }
			return withApp(cmd, target, func(a *app.App) error {
				w, err := a.Writer(to)
				if err != nil {
					return err
				}
				if err := w.Save(cmd.Context(), set); err != nil {
					return err
				}
				total := 0
				for _, msgs := range set {
					total += len(msgs)
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "synced %d messages in %d locales to %s\n", total, len(set), to)
				return err
			})
		},
	}
	cmd.Flags().String("to", config.SourceRedis, "target backend: redis or postgres")
	return cmd
}
