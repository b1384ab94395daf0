package intl_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intl"
)

func TestParseAcceptLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		header    string
		available []string
		expected  string
	}{
		{"empty header returns first available", "", []string{"en", "pl", "de"}, "en"},
		{"nothing available", "en-US,en;q=0.9", nil, ""},
		{"exact match", "pl", []string{"en", "pl", "de"}, "pl"},
		{"quality values", "de;q=0.5,pl;q=0.9,en;q=0.8", []string{"en", "pl", "de"}, "pl"},
		{"region matches base", "en-US", []string{"en", "pl", "de"}, "en"},
		{"base matches region", "en", []string{"en-US", "pl", "de"}, "en-US"},
		{"exact beats partial at equal quality", "en-GB,en", []string{"en-US", "en"}, "en"},
		{"decreasing quality", "fr,en-US;q=0.9,en;q=0.8,pl;q=0.7", []string{"pl", "en"}, "en"},
		{"no match returns first available", "fr,es,it", []string{"en", "pl", "de"}, "en"},
		{"case insensitive", "EN-us,PL;q=0.9", []string{"pl", "en"}, "en"},
		{"underscore locales", "pt-BR", []string{"en", "pt_BR"}, "pt_BR"},
		{"zero quality is ignored", "de;q=0,fr", []string{"de", "fr"}, "fr"},
		{"wildcard", "*", []string{"en", "de"}, "en"},
		{"malformed header", "en;q=abc", []string{"de", "en"}, "de"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, intl.ParseAcceptLanguage(tt.header, tt.available))
		})
	}

	t.Run("oversized header is truncated", func(t *testing.T) {
		t.Parallel()
		header := "de," + strings.Repeat("fr-FR;q=0.1,", 1000)
		require.Equal(t, "de", intl.ParseAcceptLanguage(header, []string{"en", "de"}))
	})
}

func TestMatchLocale(t *testing.T) {
	t.Parallel()

	available := []string{"en", "de", "de-AT", "pt_BR"}

	tests := []struct {
		requested string
		expected  string
		ok        bool
	}{
		{"de-AT", "de-AT", true},
		{"de_at", "de-AT", true},
		{"de-CH", "de", true},
		{"pt", "pt_BR", true},
		{"en-GB", "en", true},
		{"fr", "", false},
		{"", "", false},
		{"%%", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.requested, func(t *testing.T) {
			t.Parallel()
			got, ok := intl.MatchLocale(tt.requested, available)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.expected, got)
		})
	}
}
