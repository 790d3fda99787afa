package off

import (
	"fmt"
	"net/url"
)

// URL derivation. All functions are pure in the client's version and the
// given locale: calling twice with the same inputs yields byte-identical
// URLs. Failures only come from malformed URL composition, e.g. a country
// code carrying characters illegal in a host segment.

// hostURL returns https://{locale}.openfoodfacts.org/ using the given
// locale, or the client default when locale is nil.
func (c *Client) hostURL(locale *Locale) (*url.URL, error) {
	l := c.locale
	if locale != nil {
		l = *locale
	}
	u, err := url.Parse(fmt.Sprintf("https://%s.%s/", l, apiDomain))
	if err != nil {
		return nil, fmt.Errorf("host url: %w", err)
	}
	return u, nil
}

// hostURLWorld returns the host URL forced to the "world" locale,
// ignoring both the client default and any caller locale.
func (c *Client) hostURLWorld() (*url.URL, error) {
	l := DefaultLocale()
	return c.hostURL(&l)
}

// cgiURL returns the host URL extended with the cgi/ segment.
func (c *Client) cgiURL(locale *Locale) (*url.URL, error) {
	base, err := c.hostURL(locale)
	if err != nil {
		return nil, err
	}
	return base.Parse("cgi/")
}

// apiURL returns the host URL extended with api/{version}/.
func (c *Client) apiURL(locale *Locale) (*url.URL, error) {
	base, err := c.hostURL(locale)
	if err != nil {
		return nil, err
	}
	return base.Parse("api/" + c.version.String() + "/")
}

// searchURL returns the versioned search endpoint. This is the one URL
// whose path shape differs per generation: V0 searches through the CGI
// script, V2 through the versioned API.
func (c *Client) searchURL(locale *Locale) (*url.URL, error) {
	switch c.version {
	case V2:
		base, err := c.apiURL(locale)
		if err != nil {
			return nil, err
		}
		return base.Parse("search")
	default:
		base, err := c.cgiURL(locale)
		if err != nil {
			return nil, err
		}
		return base.Parse("search.pl")
	}
}
