package cli

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/matzehuels/foodfacts/pkg/off"
)

// searchOpts holds the command-line flags for the search command.
// The criteria and nutrient spec formats depend on the API version.
type searchOpts struct {
	criteria    []string // v0: name:op:value, v2: name[@lc]=value
	ingredients []string // v0 only: name:value
	nutrients   []string // v0: name:op:value, v2: name:unit:op:value
	terms       string   // v0 only: free-text search
	sortBy      string   // sort order name
	output      outputOpts
}

// searchCommand creates the search command.
func (c *CLI) searchCommand() *cobra.Command {
	var opts searchOpts

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search products by criteria, ingredients, and nutrients",
		Long: `Search products and print the raw JSON response.

The spec format of --criteria and --nutrient depends on the API version.

v0 (default):
  foodfacts search --criteria brands:contains:Nestlé --criteria categories:does_not_contain:cheese
  foodfacts search --ingredient additives:without --nutrient fiber:lt:500
  foodfacts search --terms cereal --sort-by popularity

v2:
  foodfacts search --api-version v2 --criteria brands@fr=Nestlé --criteria categories=-cheese
  foodfacts search --api-version v2 --nutrient fiber:100g:<:500 --nutrient salt:serving:=:100`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.newClient(cmd)
			if err != nil {
				return err
			}
			query, err := buildQuery(client.Version(), &opts)
			if err != nil {
				return err
			}
			ctx := c.commandContext(cmd)
			return runFetch(ctx, "search results", func() (*http.Response, error) {
				return client.Search(ctx, query, opts.output.build(cmd))
			})
		},
	}

	cmd.Flags().StringArrayVar(&opts.criteria, "criteria", nil, "tag criterion (repeatable)")
	cmd.Flags().StringArrayVar(&opts.ingredients, "ingredient", nil, "ingredient condition (repeatable, v0 only)")
	cmd.Flags().StringArrayVar(&opts.nutrients, "nutrient", nil, "nutrient condition (repeatable)")
	cmd.Flags().StringVar(&opts.terms, "terms", "", "free-text search terms (v0 only)")
	cmd.Flags().StringVar(&opts.sortBy, "sort-by", "", "sort order (popularity, product-name, created, last-modified, ecoscore)")
	opts.output.register(cmd)

	return cmd
}

// buildQuery assembles the search query for the given API version.
func buildQuery(version off.Version, opts *searchOpts) (off.Query, error) {
	if version == off.V2 {
		return buildQueryV2(opts)
	}
	return buildQueryV0(opts)
}

func buildQueryV0(opts *searchOpts) (*off.QueryV0, error) {
	query := off.NewQueryV0()
	for _, s := range opts.criteria {
		cr, err := parseCriterionV0(s)
		if err != nil {
			return nil, err
		}
		query.Criteria(cr.name, cr.op, cr.value)
	}
	for _, s := range opts.ingredients {
		in, err := parseIngredientV0(s)
		if err != nil {
			return nil, err
		}
		query.Ingredient(in.name, in.value)
	}
	for _, s := range opts.nutrients {
		nu, err := parseNutrientV0(s)
		if err != nil {
			return nil, err
		}
		query.Nutrient(nu.name, nu.op, nu.value)
	}
	if opts.terms != "" {
		query.Terms(opts.terms)
	}
	if opts.sortBy != "" {
		sort, err := parseSortBy(opts.sortBy)
		if err != nil {
			return nil, err
		}
		query.SortBy(sort)
	}
	return query, nil
}

func buildQueryV2(opts *searchOpts) (*off.QueryV2, error) {
	if len(opts.ingredients) > 0 {
		return nil, fmt.Errorf("--ingredient is not supported by the v2 API")
	}
	if opts.terms != "" {
		return nil, fmt.Errorf("--terms is not supported by the v2 API")
	}

	query := off.NewQueryV2()
	for _, s := range opts.criteria {
		tag, err := parseTagV2(s)
		if err != nil {
			return nil, err
		}
		query.Criteria(tag.name, tag.value, tag.lc)
	}
	for _, s := range opts.nutrients {
		nu, err := parseNutrientV2(s)
		if err != nil {
			return nil, err
		}
		query.Nutrient(nu.name, nu.unit, nu.op, nu.value)
	}
	if opts.sortBy != "" {
		sort, err := parseSortBy(opts.sortBy)
		if err != nil {
			return nil, err
		}
		query.SortBy(sort)
	}
	return query, nil
}
