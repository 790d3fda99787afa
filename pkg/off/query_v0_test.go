package off

import (
	"reflect"
	"testing"
)

func TestQueryV0WorkedExample(t *testing.T) {
	query := NewQueryV0().
		Criteria("brands", "contains", "Nestlé").
		Criteria("categories", "does_not_contain", "cheese").
		Ingredient("additives", "without").
		Ingredient("ingredients_that_may_be_from_palm_oil", "indifferent").
		Nutrient("fiber", "lt", 500).
		Nutrient("salt", "gt", 100).
		Terms("cereal")

	want := Params{
		{"tagtype_1", "brands"},
		{"tag_contains_1", "contains"},
		{"tag_1", "Nestlé"},
		{"tagtype_2", "categories"},
		{"tag_contains_2", "does_not_contain"},
		{"tag_2", "cheese"},
		{"additives", "without_additives"},
		{"ingredients_that_may_be_from_palm_oil", "indifferent"},
		{"nutriment_1", "fiber"},
		{"nutriment_compare_1", "lt"},
		{"nutriment_value_1", "500"},
		{"nutriment_2", "salt"},
		{"nutriment_compare_2", "gt"},
		{"nutriment_value_2", "100"},
		{"search_terms", "cereal"},
		{"action", "process"},
		{"json", "true"},
	}
	if got := query.queryParams(); !reflect.DeepEqual(got, want) {
		t.Errorf("queryParams() = %v, want %v", got, want)
	}
}

func TestQueryV0IndependentCounters(t *testing.T) {
	// Criteria and nutrient counters advance independently, unaffected by
	// interleaved ingredient and terms calls.
	query := NewQueryV0().
		Nutrient("fiber", "lt", 500).
		Criteria("brands", "contains", "Nestlé").
		Ingredient("ingredients_from_palm_oil", "with").
		Nutrient("salt", "gt", 100).
		Terms("cereal").
		Criteria("labels", "contains", "kosher").
		Criteria("stores", "contains", "corner shop")

	byName := map[string]string{}
	for _, p := range query.queryParams() {
		byName[p.Name] = p.Value
	}

	for name, want := range map[string]string{
		"tagtype_1":   "brands",
		"tagtype_2":   "labels",
		"tagtype_3":   "stores",
		"nutriment_1": "fiber",
		"nutriment_2": "salt",
	} {
		if got := byName[name]; got != want {
			t.Errorf("%s = %q, want %q", name, got, want)
		}
	}
	if _, ok := byName["tagtype_4"]; ok {
		t.Error("criteria counter advanced past the number of criteria calls")
	}
	if _, ok := byName["nutriment_3"]; ok {
		t.Error("nutrient counter advanced past the number of nutrient calls")
	}
}

func TestQueryV0IngredientAdditivesRewrite(t *testing.T) {
	tests := []struct {
		ingredient string
		value      string
		want       Param
	}{
		{"additives", "without", Param{"additives", "without_additives"}},
		{"additives", "with", Param{"additives", "with_additives"}},
		{"additives", "indifferent", Param{"additives", "indifferent_additives"}},
		{"ingredients_from_palm_oil", "with", Param{"ingredients_from_palm_oil", "with"}},
	}

	for _, tt := range tests {
		query := NewQueryV0().Ingredient(tt.ingredient, tt.value)
		got := query.queryParams()
		if got[0] != tt.want {
			t.Errorf("Ingredient(%q, %q) emitted %v, want %v", tt.ingredient, tt.value, got[0], tt.want)
		}
	}
}

func TestQueryV0TrailingConstants(t *testing.T) {
	queries := []*QueryV0{
		NewQueryV0(),
		NewQueryV0().Terms("cereal"),
		NewQueryV0().Criteria("brands", "contains", "Nestlé").SortBy(SortByPopularity),
	}

	for _, query := range queries {
		params := query.queryParams()
		if len(params) < 2 {
			t.Fatalf("queryParams() = %v, want at least the two constants", params)
		}
		if params[len(params)-2] != (Param{"action", "process"}) {
			t.Errorf("second-to-last = %v, want action=process", params[len(params)-2])
		}
		if params[len(params)-1] != (Param{"json", "true"}) {
			t.Errorf("last = %v, want json=true", params[len(params)-1])
		}
	}
}

func TestQueryV0SortByBeforeConstants(t *testing.T) {
	query := NewQueryV0().Terms("cereal").SortBy(SortByEcoScore)

	params := query.queryParams()
	if params[len(params)-3] != (Param{"sort_by", "ecoscore_score"}) {
		t.Errorf("sort_by position wrong: %v", params)
	}
}

func TestQueryV0OpPassThrough(t *testing.T) {
	// Operators are not validated; arbitrary strings pass through.
	query := NewQueryV0().Criteria("brands", "definitely_not_an_op", "x")

	params := query.queryParams()
	if params[1] != (Param{"tag_contains_1", "definitely_not_an_op"}) {
		t.Errorf("op rewritten: %v", params[1])
	}
}

func TestQueryV0Version(t *testing.T) {
	if got := NewQueryV0().queryVersion(); got != V0 {
		t.Errorf("queryVersion() = %v, want V0", got)
	}
}
