package off

import (
	"strconv"
	"strings"
)

// Recognized output option names. Endpoints pass a subset of these to
// params as their whitelist.
const (
	optPage     = "page"
	optPageSize = "page_size"
	optFields   = "fields"
	optNocache  = "nocache"
)

// Output is an optional bag of output options accepted by endpoint
// methods: locale selection, pagination, field selection and cache bypass.
//
// Each endpoint declares its own whitelist; options outside it are
// silently dropped. The locale is only ever used to pick the request URL
// and never becomes a query parameter.
//
// The zero value carries no options. Setters mutate in place and return
// the receiver for chaining; a nil *Output is a valid "no options"
// argument everywhere one is accepted.
type Output struct {
	locale      *Locale
	page        uint
	hasPage     bool
	pageSize    uint
	hasPageSize bool
	fields      string
	hasFields   bool
	nocache     bool
	hasNocache  bool
}

// NewOutput creates an empty output option bag.
func NewOutput() *Output {
	return &Output{}
}

// Locale sets the locale used to derive the request URL.
func (o *Output) Locale(l Locale) *Output {
	o.locale = &l
	return o
}

// Page sets the result page number.
func (o *Output) Page(page uint) *Output {
	o.page = page
	o.hasPage = true
	return o
}

// PageSize sets the number of results per page.
func (o *Output) PageSize(size uint) *Output {
	o.pageSize = size
	o.hasPageSize = true
	return o
}

// Pagination sets the page number and page size together.
func (o *Output) Pagination(page, size uint) *Output {
	return o.Page(page).PageSize(size)
}

// Fields restricts the response to the given field names, comma-joined on
// the wire.
func (o *Output) Fields(fields ...string) *Output {
	o.fields = strings.Join(fields, ",")
	o.hasFields = true
	return o
}

// Nocache sets the cache-bypass flag, serialized as "true"/"false".
func (o *Output) Nocache(nocache bool) *Output {
	o.nocache = nocache
	o.hasNocache = true
	return o
}

// loc returns the locale option, or nil when unset. Nil-safe.
func (o *Output) loc() *Locale {
	if o == nil {
		return nil
	}
	return o.locale
}

// params emits one pair per option that is both set and whitelisted, in
// the canonical order page, page_size, fields, nocache. Nil-safe.
func (o *Output) params(allowed ...string) Params {
	if o == nil {
		return nil
	}
	ok := make(map[string]bool, len(allowed))
	for _, name := range allowed {
		ok[name] = true
	}

	var out Params
	if ok[optPage] && o.hasPage {
		out = append(out, Param{optPage, strconv.FormatUint(uint64(o.page), 10)})
	}
	if ok[optPageSize] && o.hasPageSize {
		out = append(out, Param{optPageSize, strconv.FormatUint(uint64(o.pageSize), 10)})
	}
	if ok[optFields] && o.hasFields {
		out = append(out, Param{optFields, o.fields})
	}
	if ok[optNocache] && o.hasNocache {
		out = append(out, Param{optNocache, strconv.FormatBool(o.nocache)})
	}
	return out
}
