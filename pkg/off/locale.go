package off

import "strings"

// Locale selects the subdomain a request is routed to: a lowercase
// ISO 3166-1 alpha-2 country code (or "world" for the global catalog),
// optionally combined with a lowercase ISO 639-1 language code.
//
// A Locale is an immutable value; copy it freely.
type Locale struct {
	Country  string
	Language string
}

// DefaultLocale returns the "world" locale with no language.
func DefaultLocale() Locale {
	return Locale{Country: "world"}
}

// NewLocale creates a locale from a country code.
func NewLocale(country string) Locale {
	return Locale{Country: normalizeCode(country)}
}

// NewLocaleWithLanguage creates a locale from a country and language code.
func NewLocaleWithLanguage(country, language string) Locale {
	return Locale{Country: normalizeCode(country), Language: normalizeCode(language)}
}

// ParseLocale parses "cc" or "cc-lc" into a Locale. Input is lowercased
// and trimmed; an empty string yields [DefaultLocale]. Anything after a
// second hyphen is ignored.
func ParseLocale(s string) Locale {
	s = normalizeCode(s)
	if s == "" {
		return DefaultLocale()
	}
	country, language, _ := strings.Cut(s, "-")
	language, _, _ = strings.Cut(language, "-")
	return Locale{Country: country, Language: language}
}

// String renders the subdomain segment: "cc", or "cc-lc" when a language
// is set. The result is always lowercase and hyphen-separated. The zero
// value renders as "world".
func (l Locale) String() string {
	country := normalizeCode(l.Country)
	if country == "" {
		country = "world"
	}
	if l.Language == "" {
		return country
	}
	return country + "-" + normalizeCode(l.Language)
}

func normalizeCode(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
