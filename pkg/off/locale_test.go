package off

import "testing"

func TestLocaleString(t *testing.T) {
	tests := []struct {
		name   string
		locale Locale
		want   string
	}{
		{"default", DefaultLocale(), "world"},
		{"country only", NewLocale("gr"), "gr"},
		{"country and language", NewLocaleWithLanguage("fr", "ca"), "fr-ca"},
		{"uppercase input", NewLocaleWithLanguage("FR", "CA"), "fr-ca"},
		{"padded input", NewLocale(" de "), "de"},
		{"zero value", Locale{}, "world"},
		{"direct fields uppercase", Locale{Country: "IT", Language: "DE"}, "it-de"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.locale.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseLocale(t *testing.T) {
	tests := []struct {
		in   string
		want Locale
	}{
		{"gr", Locale{Country: "gr"}},
		{"fr-ca", Locale{Country: "fr", Language: "ca"}},
		{"FR-CA", Locale{Country: "fr", Language: "ca"}},
		{"", DefaultLocale()},
		{"world", Locale{Country: "world"}},
		{"fr-ca-extra", Locale{Country: "fr", Language: "ca"}},
	}

	for _, tt := range tests {
		if got := ParseLocale(tt.in); got != tt.want {
			t.Errorf("ParseLocale(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseLocaleRoundTrip(t *testing.T) {
	for _, s := range []string{"world", "gr", "fr-ca"} {
		if got := ParseLocale(s).String(); got != s {
			t.Errorf("ParseLocale(%q).String() = %q", s, got)
		}
	}
}
