package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dmitrymomot/intl"
	"github.com/dmitrymomot/intl/pkg/datetime"
	"github.com/dmitrymomot/intl/pkg/numfmt"
	"github.com/dmitrymomot/intl/pkg/plural"
	"github.com/dmitrymomot/intl/pkg/relative"
)

func addDateFlags(fs *pflag.FlagSet) {
	fs.String("format", "", "named format from --formats")
	fs.String("weekday", "", "narrow, short or long")
	fs.String("era", "", "narrow, short or long")
	fs.String("year", "", "numeric or 2-digit")
	fs.String("month", "", "numeric, 2-digit, narrow, short or long")
	fs.String("day", "", "numeric or 2-digit")
	fs.String("hour", "", "numeric or 2-digit")
	fs.String("minute", "", "numeric or 2-digit")
	fs.String("second", "", "numeric or 2-digit")
	fs.String("time-zone-name", "", "short or long")
	fs.String("time-zone", "", "IANA zone of this value, overrides --tz")
	fs.Bool("hour12", false, "use a 12 hour clock")
}

func readDateOptions(fs *pflag.FlagSet) intl.DateOptions {
	get := func(name string) string {
		v, _ := fs.GetString(name)
		return v
	}
	return intl.DateOptions{
		Format: get("format"),
		Options: datetime.Options{
			Hour12:       boolFlag(fs, "hour12"),
			Weekday:      get("weekday"),
			Era:          get("era"),
			Year:         get("year"),
			Month:        get("month"),
			Day:          get("day"),
			Hour:         get("hour"),
			Minute:       get("minute"),
			Second:       get("second"),
			TimeZoneName: get("time-zone-name"),
			TimeZone:     get("time-zone"),
		},
	}
}

func newDateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "date VALUE",
		Short:   "Format a date",
		Long:    "VALUE is an RFC 3339 timestamp, a 2006-01-02 date or milliseconds since the Unix epoch (at most 8.64e15 either way).",
		Example: "  intlfmt date -l de --month long --day numeric 2026-10-16",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			i, err := newIntl(cmd)
			if err != nil {
				return err
			}
			return printResult(cmd, i.FormatDate(args[0], readDateOptions(cmd.Flags())))
		},
	}
	addDateFlags(cmd.Flags())
	return cmd
}

func newTimeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "time VALUE",
		Short:   "Format a time of day",
		Long:    "VALUE is read like in the date command. Without options hours and minutes are shown.",
		Example: "  intlfmt time --tz Europe/Berlin 2026-10-16T14:05:09Z",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			i, err := newIntl(cmd)
			if err != nil {
				return err
			}
			return printResult(cmd, i.FormatTime(args[0], readDateOptions(cmd.Flags())))
		},
	}
	addDateFlags(cmd.Flags())
	return cmd
}

func newRelativeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "relative VALUE",
		Short:   `Format a date relative to now, e.g. "3 hours ago"`,
		Example: "  intlfmt relative --now 2026-10-16T14:05:09Z 2026-10-16T11:05:09Z",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			i, err := newIntl(cmd)
			if err != nil {
				return err
			}

			fs := cmd.Flags()
			format, _ := fs.GetString("format")
			style, _ := fs.GetString("style")
			units, _ := fs.GetString("units")
			opts := intl.RelativeOptions{
				Format:  format,
				Options: relative.Options{Style: style, Units: units},
			}
			if now, _ := fs.GetString("now"); now != "" {
				opts.Now = now
			}
			return printResult(cmd, i.FormatRelative(args[0], opts))
		},
	}
	cmd.Flags().String("format", "", "named format from --formats")
	cmd.Flags().String("style", "", `"best fit" or numeric`)
	cmd.Flags().String("units", "", "second, minute, hour, day, month or year")
	cmd.Flags().String("now", "", "reference point instead of the current time")
	return cmd
}

func newNumberCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "number VALUE",
		Short:   "Format a number, percentage or amount of money",
		Example: "  intlfmt number -l de --style currency --currency EUR 1234.5",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			i, err := newIntl(cmd)
			if err != nil {
				return err
			}

			fs := cmd.Flags()
			format, _ := fs.GetString("format")
			style, _ := fs.GetString("style")
			currency, _ := fs.GetString("currency")
			display, _ := fs.GetString("currency-display")
			opts := intl.NumberOptions{
				Format: format,
				Options: numfmt.Options{
					Style:                    style,
					Currency:                 currency,
					CurrencyDisplay:          display,
					UseGrouping:              boolFlag(fs, "grouping"),
					MinimumIntegerDigits:     intFlag(fs, "min-integer-digits"),
					MinimumFractionDigits:    intFlag(fs, "min-fraction-digits"),
					MaximumFractionDigits:    intFlag(fs, "max-fraction-digits"),
					MinimumSignificantDigits: intFlag(fs, "min-significant-digits"),
					MaximumSignificantDigits: intFlag(fs, "max-significant-digits"),
				},
			}
			return printResult(cmd, i.FormatNumber(args[0], opts))
		},
	}
	fs := cmd.Flags()
	fs.String("format", "", "named format from --formats")
	fs.String("style", "", "decimal, percent or currency")
	fs.String("currency", "", "ISO 4217 code, required by the currency style")
	fs.String("currency-display", "", "symbol, code or name")
	fs.Bool("grouping", true, "use grouping separators")
	fs.Int("min-integer-digits", 1, "pad the integer part with zeros")
	fs.Int("min-fraction-digits", 0, "minimum fraction digits")
	fs.Int("max-fraction-digits", 3, "maximum fraction digits")
	fs.Int("min-significant-digits", 1, "minimum significant digits")
	fs.Int("max-significant-digits", 21, "maximum significant digits")
	return cmd
}

func newPluralCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "plural VALUE",
		Short:   "Print the plural category of a number",
		Example: "  intlfmt plural -l ru 3",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			i, err := newIntl(cmd)
			if err != nil {
				return err
			}
			style, _ := cmd.Flags().GetString("style")
			return printResult(cmd, i.FormatPlural(args[0], intl.PluralOptions{Options: plural.Options{Style: style}}))
		},
	}
	cmd.Flags().String("style", "", "cardinal or ordinal")
	return cmd
}
