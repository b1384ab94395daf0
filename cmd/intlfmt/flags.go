package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dmitrymomot/intl"
	"github.com/dmitrymomot/intl/internal/app"
	"github.com/dmitrymomot/intl/pkg/logger"
)

// newIntl builds an Intl from the persistent flags. Formatting errors are
// logged as text to stderr.
func newIntl(cmd *cobra.Command, extra ...intl.Option) (*intl.Intl, error) {
	flags := cmd.Flags()
	locale, _ := flags.GetString("locale")
	tz, _ := flags.GetString("tz")
	formatsFile, _ := flags.GetString("formats")
	production, _ := flags.GetBool("production")

	opts := []intl.Option{
		intl.WithLocale(locale),
		intl.WithTimeZone(tz),
		intl.WithProduction(production),
		intl.WithLogger(logger.New(logger.Config{
			Format: logger.FormatText,
			Output: cmd.ErrOrStderr(),
		})),
	}
	if formatsFile != "" {
		formats, err := app.LoadFormats(formatsFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, intl.WithFormats(formats))
	}
	return intl.New(append(opts, extra...)...), nil
}

func addValuesFlags(fs *pflag.FlagSet) {
	fs.String("values", "", `message values as a JSON object, e.g. '{"count": 3}'`)
	fs.StringToString("set", nil, "message value as name=value, repeatable")
}

// readValues merges --values and --set; --set wins on conflicts.
func readValues(fs *pflag.FlagSet) (intl.Values, error) {
	values := intl.Values{}

	if raw, _ := fs.GetString("values"); strings.TrimSpace(raw) != "" {
		dec := json.NewDecoder(strings.NewReader(raw))
		dec.UseNumber()
		if err := dec.Decode(&values); err != nil {
			return nil, fmt.Errorf("--values: %w", err)
		}
	}

	set, _ := fs.GetStringToString("set")
	for k, v := range set {
		values[k] = v
	}
	return values, nil
}

// intFlag returns a pointer to the flag value when the flag was given.
func intFlag(fs *pflag.FlagSet, name string) *int {
	if !fs.Changed(name) {
		return nil
	}
	v, _ := fs.GetInt(name)
	return &v
}

func boolFlag(fs *pflag.FlagSet, name string) *bool {
	if !fs.Changed(name) {
		return nil
	}
	v, _ := fs.GetBool(name)
	return &v
}

func printResult(cmd *cobra.Command, s string) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), s)
	return err
}

