// Package off provides a typed HTTP client for the Open Food Facts API.
//
// # Overview
//
// Open Food Facts exposes a read-only REST surface partitioned by locale
// (country subdomain) and API version. This package translates typed calls
// into correctly-shaped GET requests and returns the raw [net/http.Response]
// for the caller to deserialize. It deliberately does not interpret response
// bodies, retry, paginate, or cache: every method is a single independent
// round trip.
//
// # Versions
//
// Two search API generations are supported, selected once at construction:
//
//   - [V0]: the legacy CGI search (cgi/search.pl) with indexed triplet
//     parameters and the trailing action/json constants
//   - [V2]: the versioned search (api/v2/search) with tag-suffix parameters
//
// A client is bound to its version for its whole lifetime; [Client.Search]
// rejects a query built for the other generation.
//
// # Client Pattern
//
//	client := off.NewClient(off.V2, off.WithLocale(off.NewLocale("fr")))
//	query := off.NewQueryV2().
//		Criteria("brands", "Nestlé", "fr").
//		Nutrient100g("fiber", "<", 500)
//	resp, err := client.Search(ctx, query, nil)
//
// Endpoint methods accept an optional [Output] carrying the recognized
// output options (locale, pagination, field selection, cache bypass); each
// endpoint applies its own whitelist and silently drops the rest.
//
// # Status Codes
//
// Non-2xx responses are not errors. A 404 for an unknown barcode is domain
// information and is returned raw for the caller to inspect.
package off
