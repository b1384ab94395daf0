// Command intlfmt formats messages, dates, numbers and plurals from the
// command line and serves the same operations over HTTP.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X main.version=...".
var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "intlfmt",
		Short:   "Locale-aware message, date and number formatting",
		Long:    `intlfmt formats ICU messages, dates, times, relative times, numbers and plural categories for a locale.`,
		Version: version,
	}

	root.PersistentFlags().StringP("locale", "l", "en", "BCP 47 locale to format in")
	root.PersistentFlags().String("tz", "", "IANA time zone for dates and times (default: the value's own)")
	root.PersistentFlags().String("formats", "", "YAML or JSON file with named formats")
	root.PersistentFlags().Bool("production", false, "do not log formatting errors")

	root.AddCommand(
		newMessageCmd(),
		newHTMLCmd(),
		newDateCmd(),
		newTimeCmd(),
		newRelativeCmd(),
		newNumberCmd(),
		newPluralCmd(),
		newServeCmd(),
		newCatalogCmd(),
	)
	return root
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}
