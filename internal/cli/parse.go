package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/foodfacts/pkg/off"
)

// =============================================================================
// Flag Spec Parsing
// =============================================================================

// Search conditions are passed as compact flag values and parsed here.
// The v0 API takes name:op:value triplets; the v2 API takes tag
// expressions (name[@lc]=value) and nutrient specs (name:unit:op:value).

// criterionV0 is a parsed --criteria value for the v0 API.
type criterionV0 struct {
	name  string
	op    string
	value string
}

// parseCriterionV0 parses "name:op:value" (e.g. "brands:contains:Nestlé").
// The value may itself contain colons.
func parseCriterionV0(s string) (criterionV0, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
		return criterionV0{}, fmt.Errorf("criteria %q: want name:op:value", s)
	}
	return criterionV0{name: parts[0], op: parts[1], value: parts[2]}, nil
}

// ingredientV0 is a parsed --ingredient value for the v0 API.
type ingredientV0 struct {
	name  string
	value string
}

// parseIngredientV0 parses "name:value" (e.g. "additives:without").
func parseIngredientV0(s string) (ingredientV0, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return ingredientV0{}, fmt.Errorf("ingredient %q: want name:value", s)
	}
	return ingredientV0{name: parts[0], value: parts[1]}, nil
}

// nutrientV0 is a parsed --nutrient value for the v0 API.
type nutrientV0 struct {
	name  string
	op    string
	value uint
}

// parseNutrientV0 parses "name:op:value" (e.g. "fiber:lt:500").
func parseNutrientV0(s string) (nutrientV0, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
		return nutrientV0{}, fmt.Errorf("nutrient %q: want name:op:value", s)
	}
	value, err := strconv.ParseUint(parts[2], 10, 64)
	if err != nil {
		return nutrientV0{}, fmt.Errorf("nutrient %q: value must be a non-negative integer", s)
	}
	return nutrientV0{name: parts[0], op: parts[1], value: uint(value)}, nil
}

// tagV2 is a parsed --criteria value for the v2 API.
type tagV2 struct {
	name  string
	lc    string
	value string
}

// parseTagV2 parses "name[@lc]=value" (e.g. "brands@fr=Nestlé",
// "categories=-cheese"). The value may contain "=".
func parseTagV2(s string) (tagV2, error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok || name == "" || value == "" {
		return tagV2{}, fmt.Errorf("criteria %q: want name[@lc]=value", s)
	}
	name, lc, _ := strings.Cut(name, "@")
	if name == "" {
		return tagV2{}, fmt.Errorf("criteria %q: want name[@lc]=value", s)
	}
	return tagV2{name: name, lc: lc, value: value}, nil
}

// nutrientV2 is a parsed --nutrient value for the v2 API.
type nutrientV2 struct {
	name  string
	unit  string
	op    string
	value uint
}

// parseNutrientV2 parses "name:unit:op:value" (e.g. "fiber:100g:<:500").
// The unit must be 100g or serving.
func parseNutrientV2(s string) (nutrientV2, error) {
	parts := strings.SplitN(s, ":", 4)
	if len(parts) != 4 || parts[0] == "" || parts[2] == "" {
		return nutrientV2{}, fmt.Errorf("nutrient %q: want name:unit:op:value", s)
	}
	if parts[1] != off.Per100g && parts[1] != off.PerServing {
		return nutrientV2{}, fmt.Errorf("nutrient %q: unit must be %s or %s", s, off.Per100g, off.PerServing)
	}
	value, err := strconv.ParseUint(parts[3], 10, 64)
	if err != nil {
		return nutrientV2{}, fmt.Errorf("nutrient %q: value must be a non-negative integer", s)
	}
	return nutrientV2{name: parts[0], unit: parts[1], op: parts[2], value: uint(value)}, nil
}

// parseSortBy maps a --sort-by flag value to its sort order.
func parseSortBy(s string) (off.SortBy, error) {
	switch s {
	case "popularity":
		return off.SortByPopularity, nil
	case "product-name":
		return off.SortByProductName, nil
	case "created":
		return off.SortByCreatedDate, nil
	case "last-modified":
		return off.SortByLastModifiedDate, nil
	case "ecoscore":
		return off.SortByEcoScore, nil
	}
	return 0, fmt.Errorf("sort-by %q: want popularity, product-name, created, last-modified, or ecoscore", s)
}

// parseVersion maps an --api-version flag value to its version.
func parseVersion(s string) (off.Version, error) {
	switch strings.ToLower(s) {
	case "v0", "0":
		return off.V0, nil
	case "v2", "2":
		return off.V2, nil
	}
	return 0, fmt.Errorf("api-version %q: want v0 or v2", s)
}
