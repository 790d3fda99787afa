package off

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"runtime"

	"github.com/matzehuels/foodfacts/pkg/buildinfo"
)

// apiDomain is the fixed host every locale subdomain hangs off.
const apiDomain = "openfoodfacts.org"

// projectURL identifies this client in the default User-Agent.
const projectURL = "https://github.com/matzehuels/foodfacts"

// ErrVersionMismatch is returned when a search query or endpoint requires
// a different API version than the one the client was built with.
var ErrVersionMismatch = errors.New("api version mismatch")

// Doer issues a single HTTP request. It is the transport boundary of this
// package: *http.Client implements it, and tests substitute a fake.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a versioned Open Food Facts API client.
//
// All state (version, default locale, credentials, transport) is read-only
// after construction, so a single Client is safe for concurrent use by
// multiple goroutines. One Client per application is the intended shape.
type Client struct {
	version   Version
	locale    Locale
	http      Doer
	userAgent string
	username  string
	password  string
}

// Option configures a Client during construction.
type Option func(*Client)

// WithLocale sets the default locale used when a call provides none.
func WithLocale(l Locale) Option {
	return func(c *Client) { c.locale = l }
}

// WithAuth sets basic-auth credentials sent on every request. Only needed
// for write operations on the upstream API.
func WithAuth(username, password string) Option {
	return func(c *Client) {
		c.username = username
		c.password = password
	}
}

// WithUserAgent replaces the default User-Agent header value.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithHTTPClient replaces the underlying transport. Timeouts and
// cancellation policy belong to the transport, not to this layer.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) { c.http = d }
}

// NewClient creates a client bound to the given API version. Defaults:
// locale "world", a plain [net/http.Client] transport, no credentials,
// and a User-Agent composed of the product name, host OS, build version
// and project URL.
func NewClient(v Version, opts ...Option) *Client {
	c := &Client{
		version:   v,
		locale:    DefaultLocale(),
		http:      &http.Client{},
		userAgent: defaultUserAgent(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func defaultUserAgent() string {
	return fmt.Sprintf("foodfacts - %s - Version %s - %s", runtime.GOOS, buildinfo.Version, projectURL)
}

// Version reports the API version the client is bound to.
func (c *Client) Version() Version {
	return c.version
}

// Taxonomy fetches a static taxonomy JSON document.
//
//	GET https://world.openfoodfacts.org/data/taxonomies/{taxonomy}.json
//
// Taxonomies exist only under the "world" locale; the client default and
// any caller locale are ignored by protocol rule.
func (c *Client) Taxonomy(ctx context.Context, taxonomy string) (*http.Response, error) {
	base, err := c.hostURLWorld()
	if err != nil {
		return nil, err
	}
	u, err := base.Parse(fmt.Sprintf("data/taxonomies/%s.json", taxonomy))
	if err != nil {
		return nil, fmt.Errorf("taxonomy url: %w", err)
	}
	return c.get(ctx, u, nil)
}

// Facet fetches a facet listing (brands, labels, stores, ...).
//
//	GET https://{locale}.openfoodfacts.org/{facet}.json
//
// Supported output options: locale, page, page_size, fields, nocache.
func (c *Client) Facet(ctx context.Context, facet string, output *Output) (*http.Response, error) {
	base, err := c.hostURL(output.loc())
	if err != nil {
		return nil, err
	}
	u, err := base.Parse(facet + ".json")
	if err != nil {
		return nil, fmt.Errorf("facet url: %w", err)
	}
	return c.get(ctx, u, output.params(optPage, optPageSize, optFields, optNocache))
}

// Categories fetches the category listing.
//
//	GET https://{locale}.openfoodfacts.org/categories.json
//
// Supported output options: locale only.
func (c *Client) Categories(ctx context.Context, output *Output) (*http.Response, error) {
	base, err := c.hostURL(output.loc())
	if err != nil {
		return nil, err
	}
	u, err := base.Parse("categories.json")
	if err != nil {
		return nil, fmt.Errorf("categories url: %w", err)
	}
	return c.get(ctx, u, nil)
}

// Nutrients fetches the nutrient listing for a country.
//
//	GET https://{locale}.openfoodfacts.org/cgi/nutrients.pl
//
// Supported output options: locale only.
func (c *Client) Nutrients(ctx context.Context, output *Output) (*http.Response, error) {
	base, err := c.cgiURL(output.loc())
	if err != nil {
		return nil, err
	}
	u, err := base.Parse("nutrients.pl")
	if err != nil {
		return nil, fmt.Errorf("nutrients url: %w", err)
	}
	return c.get(ctx, u, nil)
}

// ProductsBy fetches all products under a facet value or category.
//
//	GET https://{locale}.openfoodfacts.org/{what}/{id}.json
//
// what is the singular facet name or the "category" literal, either in
// english or localized (additive/additif, category/categorie); id is the
// localized facet or category ID as returned by [Client.Facet] or
// [Client.Categories]. Supported output options: locale, page, page_size,
// fields.
func (c *Client) ProductsBy(ctx context.Context, what, id string, output *Output) (*http.Response, error) {
	base, err := c.hostURL(output.loc())
	if err != nil {
		return nil, err
	}
	u, err := base.Parse(fmt.Sprintf("%s/%s.json", what, id))
	if err != nil {
		return nil, fmt.Errorf("products-by url: %w", err)
	}
	return c.get(ctx, u, output.params(optPage, optPageSize, optFields))
}

// Product fetches a single product by barcode.
//
//	GET https://{locale}.openfoodfacts.org/api/{version}/product/{barcode}
//
// Supported output options: locale, fields. A 404 for an unknown barcode
// comes back as a raw response, not an error.
func (c *Client) Product(ctx context.Context, barcode string, output *Output) (*http.Response, error) {
	base, err := c.apiURL(output.loc())
	if err != nil {
		return nil, err
	}
	u, err := base.Parse("product/" + barcode)
	if err != nil {
		return nil, fmt.Errorf("product url: %w", err)
	}
	return c.get(ctx, u, output.params(optFields))
}

// Search sends a search query built with [NewQueryV0] or [NewQueryV2].
// The query's generation must match the client's version; otherwise
// [ErrVersionMismatch] is returned.
//
// Supported output options: locale, page, page_size, fields. The query's
// own parameters come first, in build order, followed by the output
// options. The query is consumed by this call and must not be reused.
func (c *Client) Search(ctx context.Context, query Query, output *Output) (*http.Response, error) {
	if query.queryVersion() != c.version {
		return nil, fmt.Errorf("%w: query targets %s, client is bound to %s",
			ErrVersionMismatch, query.queryVersion(), c.version)
	}
	u, err := c.searchURL(output.loc())
	if err != nil {
		return nil, err
	}
	params := query.queryParams()
	params = append(params, output.params(optPage, optPageSize, optFields)...)
	return c.get(ctx, u, params)
}

// Products fetches several products at once by comma-separated barcodes.
// Only the V2 API supports batch fetches.
//
//	GET https://{locale}.openfoodfacts.org/api/v2/search?code=<code>,<code>,...
//
// Supported output options: locale, fields.
func (c *Client) Products(ctx context.Context, barcodes string, output *Output) (*http.Response, error) {
	if c.version != V2 {
		return nil, fmt.Errorf("%w: batch product fetch requires %s", ErrVersionMismatch, V2)
	}
	u, err := c.searchURL(output.loc())
	if err != nil {
		return nil, err
	}
	params := Params{{Name: "code", Value: barcodes}}
	params = append(params, output.params(optFields)...)
	return c.get(ctx, u, params)
}

// get attaches params to u and issues the request through the transport.
// Transport errors propagate wrapped; response status is never inspected.
func (c *Client) get(ctx context.Context, u *url.URL, params Params) (*http.Response, error) {
	if len(params) > 0 {
		u.RawQuery = params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", u, err)
	}
	return resp, nil
}
