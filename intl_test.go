package intl_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intl"
	"github.com/dmitrymomot/intl/pkg/datetime"
	"github.com/dmitrymomot/intl/pkg/logger"
	"github.com/dmitrymomot/intl/pkg/plural"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		i := intl.New()
		t.Cleanup(func() { _ = i.Close() })

		assert.Equal(t, intl.DefaultLocale, i.Locale())
		assert.NotNil(t, i.State())
		assert.Equal(t, "1,234.5", i.FormatNumber(1234.5, intl.NumberOptions{}))
	})

	t.Run("options", func(t *testing.T) {
		t.Parallel()
		var logs bytes.Buffer
		state := newState(t, intl.WithClock(func() time.Time { return sample }))

		i := intl.New(
			intl.WithLocale("de"),
			intl.WithTimeZone("Europe/Berlin"),
			intl.WithMessages(map[string]string{"hello": "Hallo {name}"}),
			intl.WithFormats(intl.Formats{Date: map[string]datetime.Options{
				"long": {Day: datetime.Numeric, Month: datetime.Long, Year: datetime.Numeric},
			}}),
			intl.WithDefaultLocale("en"),
			intl.WithLogger(logger.New(logger.Config{Output: &logs})),
			intl.WithHTMLPolicy(bluemonday.StrictPolicy()),
			intl.WithState(state),
		)
		require.NoError(t, i.Close())

		assert.Equal(t, "de", i.Locale())
		assert.Same(t, state, i.State())
		assert.Equal(t, "Hallo Ana", i.T("hello", intl.Values{"name": "Ana"}))
		assert.Equal(t, "Hallo &lt;Ana&gt;", i.FormatHTMLMessage(intl.MessageDescriptor{ID: "hello"}, intl.Values{"name": "<Ana>"}))
		assert.Equal(t, "16. Oktober 2026", i.FormatDate(sample, intl.DateOptions{Format: "long"}))
		assert.Equal(t, "16:05", i.FormatTime(sample, intl.DateOptions{}))
		assert.Equal(t, "vor 3 Stunden", i.FormatRelative(sample.Add(-3*time.Hour), intl.RelativeOptions{}))
		assert.Equal(t, plural.One, i.FormatPlural(1, intl.PluralOptions{}))
		assert.Equal(t, "Hi", i.FormatMessage(intl.MessageDescriptor{ID: "missing", DefaultMessage: "Hi"}, nil))
		assert.Contains(t, logs.String(), "Missing message")
	})

	t.Run("config is a copy", func(t *testing.T) {
		t.Parallel()
		i := intl.New(intl.WithMessages(map[string]string{"a": "A"}), intl.WithProduction(true))
		t.Cleanup(func() { _ = i.Close() })

		cfg := i.Config()
		assert.True(t, cfg.Production)
		cfg.Messages["a"] = "changed"
		assert.Equal(t, "A", i.T("a", nil))
	})

	t.Run("with shares the state", func(t *testing.T) {
		t.Parallel()
		base := intl.New(intl.WithMessages(map[string]string{"a": "{n, number}"}))
		t.Cleanup(func() { _ = base.Close() })

		fr := base.With(intl.WithLocale("fr"))
		assert.Same(t, base.State(), fr.State())
		assert.Equal(t, "fr", fr.Locale())
		assert.Equal(t, "1,5", fr.T("a", intl.Values{"n": 1.5}))
		assert.Equal(t, "1.5", base.T("a", intl.Values{"n": 1.5}))
		require.NoError(t, fr.Close())
	})

	t.Run("close stops an owned state", func(t *testing.T) {
		t.Parallel()
		i := intl.New()

		i.FormatNumber(1, intl.NumberOptions{})
		i.FormatNumber(2, intl.NumberOptions{})
		require.Equal(t, uint64(1), i.State().Stats().Hits)

		require.NoError(t, i.Close())
		assert.Equal(t, "3", i.FormatNumber(3, intl.NumberOptions{}))
		assert.Equal(t, uint64(1), i.State().Stats().Hits)
	})

	t.Run("close leaves a shared state running", func(t *testing.T) {
		t.Parallel()
		state := newState(t)
		i := intl.New(intl.WithState(state))
		require.NoError(t, i.Close())

		i.FormatNumber(1, intl.NumberOptions{})
		i.FormatNumber(2, intl.NumberOptions{})
		assert.Equal(t, uint64(1), state.Stats().Hits)
	})
}
