package intl

import (
	"log/slog"

	"github.com/microcosm-cc/bluemonday"

	"github.com/dmitrymomot/intl/pkg/datetime"
	"github.com/dmitrymomot/intl/pkg/logger"
	"github.com/dmitrymomot/intl/pkg/messageformat"
	"github.com/dmitrymomot/intl/pkg/numfmt"
	"github.com/dmitrymomot/intl/pkg/plural"
	"github.com/dmitrymomot/intl/pkg/relative"
)

// DefaultLocale is the locale of default messages when Config does not
// name one.
const DefaultLocale = "en"

// Formats holds named formats, e.g. the "short" in
// FormatDate(cfg, state, t, DateOptions{Format: "short"}). Date, Time and
// Number styles are also visible to messages as {d, date, short}.
type Formats struct {
	Date     map[string]datetime.Options `json:"date,omitempty" yaml:"date,omitempty"`
	Time     map[string]datetime.Options `json:"time,omitempty" yaml:"time,omitempty"`
	Number   map[string]numfmt.Options   `json:"number,omitempty" yaml:"number,omitempty"`
	Relative map[string]relative.Options `json:"relative,omitempty" yaml:"relative,omitempty"`
}

func (f Formats) messageFormats() messageformat.Formats {
	return messageformat.Formats{Number: f.Number, Date: f.Date, Time: f.Time}
}

// Config is the formatting context of one locale. It is read only; build a
// new Config to change anything.
type Config struct {
	// Locale is the BCP 47 tag formatting happens in.
	Locale string
	// TimeZone is the IANA zone used for dates and times unless a call
	// names its own. Empty keeps each value's own location.
	TimeZone string
	Formats  Formats
	// Messages maps message ids to ICU patterns for Locale.
	Messages map[string]string
	// DefaultLocale is the locale default messages are written in.
	DefaultLocale  string
	DefaultFormats Formats
	// Production skips error logging and returns messages without values
	// as they are, without parsing them.
	Production bool
	// Logger receives formatting errors. Nil discards them.
	Logger *slog.Logger
	// HTMLPolicy, when set, sanitizes the output of FormatHTMLMessage.
	HTMLPolicy *bluemonday.Policy
}

func (c Config) defaultLocale() string {
	if c.DefaultLocale == "" {
		return DefaultLocale
	}
	return c.DefaultLocale
}

func (c Config) log() *slog.Logger {
	if c.Production || c.Logger == nil {
		return logger.NewNope()
	}
	return c.Logger
}

// MessageDescriptor identifies a message and carries its source text.
type MessageDescriptor struct {
	ID             string `json:"id" yaml:"id"`
	DefaultMessage string `json:"defaultMessage,omitempty" yaml:"defaultMessage,omitempty"`
	// Description is context for translators and is not rendered.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Values are ICU message arguments by name.
type Values map[string]any

// DateOptions configures FormatDate and FormatTime. Format names an entry
// of Config.Formats; fields set here override that entry.
type DateOptions struct {
	Format string `json:"format,omitempty"`
	datetime.Options
}

// NumberOptions configures FormatNumber.
type NumberOptions struct {
	Format string `json:"format,omitempty"`
	numfmt.Options
}

// RelativeOptions configures FormatRelative. Now is the reference point in
// any form accepted as a date; nil or an invalid value means State.Now.
type RelativeOptions struct {
	Format string `json:"format,omitempty"`
	Now    any    `json:"now,omitempty"`
	relative.Options
}

// PluralOptions configures FormatPlural.
type PluralOptions struct {
	plural.Options
}
