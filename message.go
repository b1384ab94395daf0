package intl

import (
	"fmt"
	"log/slog"
	"strings"
)

// FormatMessage formats the message descriptor.ID from cfg.Messages with
// values. When the message is missing or fails to format, the default
// message is formatted in cfg.DefaultLocale instead. When that fails too,
// the raw message, the raw default message or the id is returned, in that
// order.
func FormatMessage(cfg Config, state *State, descriptor MessageDescriptor, values Values) string {
	id, defaultMessage := descriptor.ID, descriptor.DefaultMessage
	if id == "" {
		logError(cfg, "An id must be provided to format a message", ErrMissingMessageID)
		return defaultMessage
	}

	message := cfg.Messages[id]
	if cfg.Production && len(values) == 0 {
		return firstNonEmpty(message, defaultMessage, id)
	}

	idAttr := slog.String("id", id)
	var formatted string

	if message != "" {
		var err error
		formatted, err = formatPattern(state, message, cfg.Locale, cfg.Formats, values)
		if err != nil {
			msg := "Error formatting message"
			if defaultMessage != "" {
				msg += ", using default message as fallback"
			}
			logError(cfg, msg, err, idAttr)
		}
	} else if defaultMessage == "" || !strings.EqualFold(cfg.Locale, cfg.defaultLocale()) {
		msg := "Missing message"
		if defaultMessage != "" {
			msg += ", using default message as fallback"
		}
		logError(cfg, msg, fmt.Errorf("%w: %q", ErrMissingMessage, id), idAttr)
	}

	if formatted == "" && defaultMessage != "" {
		var err error
		formatted, err = formatPattern(state, defaultMessage, cfg.defaultLocale(), cfg.DefaultFormats, values)
		if err != nil {
			logError(cfg, "Error formatting the default message", err, idAttr)
		}
	}

	if formatted == "" {
		source := "id"
		if message != "" || defaultMessage != "" {
			source = "source"
		}
		logError(cfg, "Cannot format message, using message "+source+" as fallback",
			fmt.Errorf("%w: %q", ErrMissingMessage, id), idAttr)
	}

	return firstNonEmpty(formatted, message, defaultMessage, id)
}

// FormatHTMLMessage is FormatMessage with every string value HTML-escaped
// first. Other values are passed through. The result is sanitized with
// cfg.HTMLPolicy when one is set.
func FormatHTMLMessage(cfg Config, state *State, descriptor MessageDescriptor, values Values) string {
	escaped := make(Values, len(values))
	for name, v := range values {
		if s, isString := v.(string); isString {
			v = EscapeHTML(s)
		}
		escaped[name] = v
	}

	out := FormatMessage(cfg, state, descriptor, escaped)
	if cfg.HTMLPolicy != nil {
		out = cfg.HTMLPolicy.Sanitize(out)
	}
	return out
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	">", "&gt;",
	"<", "&lt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

// EscapeHTML replaces & > < " and ' with HTML entities.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

func formatPattern(state *State, pattern, locale string, formats Formats, values Values) (string, error) {
	mf, err := state.MessageFormat(pattern, locale, formats.messageFormats())
	if err != nil {
		return "", err
	}
	return mf.Format(values)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
