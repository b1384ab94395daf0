package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/intl"
	"github.com/dmitrymomot/intl/pkg/catalog"
)

var errNoMessage = errors.New("a message id or --default is required")

func addMessageFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.String("default", "", "default message, used when the catalog has no translation")
	fs.String("catalog", "", "directory with {locale}.json|yaml|toml catalog files")
	fs.String("default-locale", intl.DefaultLocale, "locale default messages are written in")
	addValuesFlags(fs)
}

// newMessageIntl binds the messages of the locale from --catalog, falling
// back from region to base language to the default locale.
func newMessageIntl(cmd *cobra.Command) (*intl.Intl, error) {
	fs := cmd.Flags()
	dir, _ := fs.GetString("catalog")
	defaultLocale, _ := fs.GetString("default-locale")
	locale, _ := fs.GetString("locale")

	opts := []intl.Option{intl.WithDefaultLocale(defaultLocale)}
	if dir != "" {
		c, err := catalog.Load(cmd.Context(), defaultLocale, catalog.NewFSSource(os.DirFS(dir)))
		if err != nil {
			return nil, err
		}
		_, messages := c.Resolve(locale)
		opts = append(opts, intl.WithMessages(messages))
	}
	return newIntl(cmd, opts...)
}

func readDescriptor(cmd *cobra.Command, args []string) (intl.MessageDescriptor, error) {
	def, _ := cmd.Flags().GetString("default")
	d := intl.MessageDescriptor{DefaultMessage: def}
	switch {
	case len(args) > 0:
		d.ID = args[0]
	case def != "":
		d.ID = def
	default:
		return d, errNoMessage
	}
	return d, nil
}

func runMessage(cmd *cobra.Command, args []string, html bool) error {
	d, err := readDescriptor(cmd, args)
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	values, err := readValues(cmd.Flags())
	if err != nil {
		return err
	}
	i, err := newMessageIntl(cmd)
	if err != nil {
		return err
	}

	if html {
		return printResult(cmd, i.FormatHTMLMessage(d, values))
	}
	return printResult(cmd, i.FormatMessage(d, values))
}

func newMessageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "message [ID]",
		Short: "Format an ICU message",
		Example: `  intlfmt message --catalog ./locales -l de inbox.count --set count=3
  intlfmt message --default "{n, plural, one {# file} other {# files}}" --values '{"n": 2}'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMessage(cmd, args, false)
		},
	}
	addMessageFlags(cmd)
	return cmd
}

func newHTMLCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "html [ID]",
		Short:   "Format an ICU message with HTML escaped values",
		Example: `  intlfmt html --default "<b>{name}</b>" --set name="<script>"`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMessage(cmd, args, true)
		},
	}
	addMessageFlags(cmd)
	return cmd
}
