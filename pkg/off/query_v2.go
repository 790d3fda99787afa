package off

import "strconv"

// Nutrient units accepted by the V2 search API.
const (
	// Per100g scopes a nutrient condition to 100 grams of product.
	Per100g = "100g"
	// PerServing scopes a nutrient condition to one serving.
	PerServing = "serving"
)

// QueryV2 builds a search query for the V2 API (api/v2/search).
//
// V2 needs no index bookkeeping: repeated fields are distinguished by tag
// suffix (name and language code), not by position. Repeated Criteria
// calls with the same name simply append more pairs; combining values
// inside one pair (comma for AND, colon for OR, tilde for NOT) is the
// upstream grammar and is not interpreted here.
//
//	query := off.NewQueryV2().
//		Criteria("brands", "Nestlé", "fr").
//		Nutrient100g("fiber", "<", 500)
type QueryV2 struct {
	params Params
	sortBy *SortBy
}

// NewQueryV2 creates an empty V2 search query.
func NewQueryV2() *QueryV2 {
	return &QueryV2{}
}

// Criteria adds a tag clause, producing the pair
//
//	<criteria>_tags=<value>
//
// or, when lc is a non-empty language code,
//
//	<criteria>_tags_<lc>=<value>
func (q *QueryV2) Criteria(criteria, value, lc string) *QueryV2 {
	name := criteria + "_tags"
	if lc != "" {
		name += "_" + lc
	}
	q.params = append(q.params, Param{name, value})
	return q
}

// Nutrient adds a nutrient condition. unit is [Per100g] or [PerServing].
// When op is "=", the condition produces
//
//	<nutrient>_<unit>=<value>
//
// For any other comparison operator the operator and value fold into the
// parameter name and the value is empty:
//
//	<nutrient>_<unit><op><value>=
//
// This comparison-in-key convention is the upstream API's own; no
// normalization is applied beyond standard percent-escaping.
func (q *QueryV2) Nutrient(nutrient, unit, op string, value uint) *QueryV2 {
	v := strconv.FormatUint(uint64(value), 10)
	if op == "=" {
		q.params = append(q.params, Param{nutrient + "_" + unit, v})
	} else {
		q.params = append(q.params, Param{nutrient + "_" + unit + op + v, ""})
	}
	return q
}

// Nutrient100g adds a nutrient condition per 100 grams.
func (q *QueryV2) Nutrient100g(nutrient, op string, value uint) *QueryV2 {
	return q.Nutrient(nutrient, Per100g, op, value)
}

// NutrientServing adds a nutrient condition per serving.
func (q *QueryV2) NutrientServing(nutrient, op string, value uint) *QueryV2 {
	return q.Nutrient(nutrient, PerServing, op, value)
}

// SortBy sets the result ordering, emitted after all clause parameters.
// V2 appends no trailing constants.
func (q *QueryV2) SortBy(s SortBy) *QueryV2 {
	q.sortBy = &s
	return q
}

func (q *QueryV2) queryVersion() Version {
	return V2
}

func (q *QueryV2) queryParams() Params {
	out := make(Params, 0, len(q.params)+1)
	out = append(out, q.params...)
	if q.sortBy != nil {
		out = append(out, Param{"sort_by", q.sortBy.String()})
	}
	return out
}
