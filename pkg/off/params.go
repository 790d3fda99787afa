package off

import (
	"net/url"
	"strings"
)

// Param is a single query parameter pair.
type Param struct {
	Name  string
	Value string
}

// Params is an ordered list of query parameters.
//
// Order is significant: the V0 search encoding disambiguates repeated
// semantic fields with numeric suffixes assigned in emission order, so a
// map-backed container such as [net/url.Values] cannot carry these.
type Params []Param

// Encode serializes the parameters as a query string in list order,
// percent-escaping names and values. An empty value renders as "name=".
func (p Params) Encode() string {
	var b strings.Builder
	for i, q := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(q.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(q.Value))
	}
	return b.String()
}
