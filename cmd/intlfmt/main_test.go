package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestFormatCommands(t *testing.T) {
	t.Parallel()

	const sample = "2026-10-16T14:05:09Z"

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"date", []string{"date", "--tz", "UTC", sample}, "10/16/2026"},
		{"long date", []string{"date", "--tz", "UTC", "--year", "numeric", "--month", "long", "--day", "numeric", sample}, "October 16, 2026"},
		{"time", []string{"time", "--tz", "UTC", sample}, "2:05 PM"},
		{"24 hour time", []string{"time", "--tz", "UTC", "--hour12=false", sample}, "14:05"},
		{"date from epoch millis", []string{"date", "--tz", "UTC", "1792159509000"}, "10/16/2026"},
		{"time from epoch millis", []string{"time", "--tz", "UTC", "1792159509000"}, "2:05 PM"},
		{"relative", []string{"relative", "--now", sample, "2026-10-16T11:05:09Z"}, "3 hours ago"},
		{"relative from epoch millis", []string{"relative", "--now", "1792159509000", "1792148709000"}, "3 hours ago"},
		{"relative in german", []string{"relative", "-l", "de", "--now", sample, "2026-10-16T11:05:09Z"}, "vor 3 Stunden"},
		{"number", []string{"number", "1234.5"}, "1,234.5"},
		{"german number", []string{"number", "-l", "de", "1234.5"}, "1.234,5"},
		{"currency", []string{"number", "--style", "currency", "--currency", "USD", "1234.5"}, "$1,234.50"},
		{"percent", []string{"number", "--style", "percent", "0.256"}, "26%"},
		{"plural", []string{"plural", "1"}, "one"},
		{"russian plural", []string{"plural", "-l", "ru", "3"}, "few"},
		{"ordinal", []string{"plural", "--style", "ordinal", "2"}, "two"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out, errOut, err := run(t, tc.args...)
			require.NoError(t, err, errOut)
			assert.Equal(t, tc.want+"\n", out)
			assert.Empty(t, errOut)
		})
	}
}

func TestInvalidInputIsLogged(t *testing.T) {
	t.Parallel()

	out, errOut, err := run(t, "date", "someday")
	require.NoError(t, err)
	assert.Equal(t, "Invalid Date\n", out)
	assert.Contains(t, errOut, "Error formatting date")

	out, errOut, err = run(t, "date", "1e300")
	require.NoError(t, err)
	assert.Equal(t, "Invalid Date\n", out)
	assert.Contains(t, errOut, "Error formatting date")

	out, errOut, err = run(t, "--production", "date", "someday")
	require.NoError(t, err)
	assert.Equal(t, "Invalid Date\n", out)
	assert.Empty(t, errOut)
}

func TestUsageOnArgumentErrors(t *testing.T) {
	t.Parallel()

	_, errOut, err := run(t, "date")
	require.Error(t, err)
	assert.Contains(t, errOut, "Usage:")

	_, errOut, err = run(t, "message", "--values", "{oops", "--default", "Hi")
	require.Error(t, err)
	assert.Contains(t, errOut, "--values")
	assert.NotContains(t, errOut, "Usage:")

	out, _, err := run(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "intlfmt version dev")
}

func TestMessageCommands(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.json"), []byte(`{"inbox": "You have {count, plural, one {# message} other {# messages}}"}`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "de.yaml"), []byte("inbox: \"Sie haben {count} Nachrichten\"\n"), 0o600))

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default message", []string{"message", "--default", "{n, plural, one {# file} other {# files}}", "--values", `{"n": 2}`}, "2 files"},
		{"catalog message", []string{"message", "--catalog", dir, "inbox", "--set", "count=1"}, "You have 1 message"},
		{"catalog message in german", []string{"message", "--catalog", dir, "-l", "de", "inbox", "--set", "count=3"}, "Sie haben 3 Nachrichten"},
		{"regional locale uses base language", []string{"message", "--catalog", dir, "-l", "de-AT", "inbox", "--set", "count=3"}, "Sie haben 3 Nachrichten"},
		{"set wins over values", []string{"message", "--default", "Hi {name}", "--values", `{"name": "Ana"}`, "--set", "name=Bo"}, "Hi Bo"},
		{"html escapes values", []string{"html", "--default", "<b>{name}</b>", "--set", "name=<i>x</i>"}, "<b>&lt;i&gt;x&lt;/i&gt;</b>"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out, errOut, err := run(t, tc.args...)
			require.NoError(t, err, errOut)
			assert.Equal(t, tc.want+"\n", out)
		})
	}

	t.Run("missing id", func(t *testing.T) {
		t.Parallel()
		_, _, err := run(t, "message")
		require.ErrorIs(t, err, errNoMessage)
	})

	t.Run("bad values", func(t *testing.T) {
		t.Parallel()
		_, _, err := run(t, "message", "--default", "x", "--values", "{")
		require.Error(t, err)
	})
}

func TestFormatsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "formats.yaml")
	require.NoError(t, os.WriteFile(path, []byte("number:\n  eur:\n    style: currency\n    currency: EUR\n"), 0o600))

	out, errOut, err := run(t, "--formats", path, "number", "--format", "eur", "-l", "de", "9.5")
	require.NoError(t, err, errOut)
	assert.Equal(t, "9,50\u00a0€\n", out)
}
