package off

import (
	"fmt"
	"strconv"
)

// QueryV0 builds a search query for the legacy V0 API (cgi/search.pl).
//
// Criteria and nutrient clauses serialize as indexed triplets; the two
// counters are independent and each advances once per corresponding call,
// so the Nth Criteria call always carries suffix N no matter what else is
// interleaved. Serialization always ends with the constant pairs
// action=process and json=true.
//
//	query := off.NewQueryV0().
//		Criteria("brands", "contains", "Nestlé").
//		Ingredient("additives", "without").
//		Nutrient("fiber", "lt", 500).
//		Terms("cereal")
type QueryV0 struct {
	params        Params
	sortBy        *SortBy
	criteriaIndex int
	nutrientIndex int
}

// NewQueryV0 creates an empty V0 search query.
func NewQueryV0() *QueryV0 {
	return &QueryV0{}
}

// Criteria adds a criteria clause, producing the triplet
//
//	tagtype_N=<criteria>
//	tag_contains_N=<op>
//	tag_N=<value>
//
// op is normally "contains" or "does_not_contain" but is passed through
// unvalidated, matching the upstream API's tolerance.
func (q *QueryV0) Criteria(criteria, op, value string) *QueryV0 {
	q.criteriaIndex++
	n := q.criteriaIndex
	q.params = append(q.params,
		Param{fmt.Sprintf("tagtype_%d", n), criteria},
		Param{fmt.Sprintf("tag_contains_%d", n), op},
		Param{fmt.Sprintf("tag_%d", n), value},
	)
	return q
}

// Ingredient adds an ingredient clause, producing the pair
//
//	<ingredient>=<value>
//
// ingredient is one of "additives", "ingredients_from_palm_oil",
// "ingredients_that_may_be_from_palm_oil" or
// "ingredients_from_or_that_may_be_from_palm_oil"; value is "with",
// "without" or "indifferent". For "additives" the upstream API overloads
// the value vocabulary, so the value is rewritten to "<value>_additives".
func (q *QueryV0) Ingredient(ingredient, value string) *QueryV0 {
	if ingredient == "additives" {
		value += "_additives"
	}
	q.params = append(q.params, Param{ingredient, value})
	return q
}

// Nutrient adds a nutrient clause, producing the triplet
//
//	nutriment_N=<nutrient>
//	nutriment_compare_N=<op>
//	nutriment_value_N=<value>
//
// "nutriment" is the upstream field name, not a typo. op is one of "lt",
// "lte", "gt", "gte" or "eq", passed through unvalidated.
func (q *QueryV0) Nutrient(nutrient, op string, value uint) *QueryV0 {
	q.nutrientIndex++
	n := q.nutrientIndex
	q.params = append(q.params,
		Param{fmt.Sprintf("nutriment_%d", n), nutrient},
		Param{fmt.Sprintf("nutriment_compare_%d", n), op},
		Param{fmt.Sprintf("nutriment_value_%d", n), strconv.FormatUint(uint64(value), 10)},
	)
	return q
}

// Terms adds a free-text search clause, producing search_terms=<terms>.
func (q *QueryV0) Terms(terms string) *QueryV0 {
	q.params = append(q.params, Param{"search_terms", terms})
	return q
}

// SortBy sets the result ordering, emitted after all clause parameters.
func (q *QueryV0) SortBy(s SortBy) *QueryV0 {
	q.sortBy = &s
	return q
}

func (q *QueryV0) queryVersion() Version {
	return V0
}

func (q *QueryV0) queryParams() Params {
	out := make(Params, 0, len(q.params)+3)
	out = append(out, q.params...)
	if q.sortBy != nil {
		out = append(out, Param{"sort_by", q.sortBy.String()})
	}
	out = append(out,
		Param{"action", "process"},
		Param{"json", "true"},
	)
	return out
}
