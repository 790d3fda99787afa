package cli

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

// facetCommand creates the facet command for listing facet values.
func (c *CLI) facetCommand() *cobra.Command {
	var opts outputOpts

	cmd := &cobra.Command{
		Use:   "facet <name>",
		Short: "List values of a facet (brands, labels, additives, ...)",
		Long: `List the values of a facet and print the raw JSON response.

Examples:
  foodfacts facet brands
  foodfacts facet labels --locale fr --page 2 --fields url`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.newClient(cmd)
			if err != nil {
				return err
			}
			ctx := c.commandContext(cmd)
			return runFetch(ctx, fmt.Sprintf("facet %s", args[0]), func() (*http.Response, error) {
				return client.Facet(ctx, args[0], opts.build(cmd))
			})
		},
	}

	opts.register(cmd)
	return cmd
}

// categoriesCommand creates the categories command.
func (c *CLI) categoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List product categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.newClient(cmd)
			if err != nil {
				return err
			}
			ctx := c.commandContext(cmd)
			return runFetch(ctx, "categories", func() (*http.Response, error) {
				return client.Categories(ctx, nil)
			})
		},
	}
}

// nutrientsCommand creates the nutrients command.
func (c *CLI) nutrientsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "nutrients",
		Short: "List known nutrients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.newClient(cmd)
			if err != nil {
				return err
			}
			ctx := c.commandContext(cmd)
			return runFetch(ctx, "nutrients", func() (*http.Response, error) {
				return client.Nutrients(ctx, nil)
			})
		},
	}
}

// taxonomyCommand creates the taxonomy command. Taxonomies are global;
// the locale flag has no effect here.
func (c *CLI) taxonomyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "taxonomy <name>",
		Short: "Fetch a taxonomy (nova_groups, allergens, ...)",
		Long: `Fetch a taxonomy and print the raw JSON response.

Taxonomies are global and always served from the world subdomain.

Examples:
  foodfacts taxonomy nova_groups
  foodfacts taxonomy allergens`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.newClient(cmd)
			if err != nil {
				return err
			}
			ctx := c.commandContext(cmd)
			return runFetch(ctx, fmt.Sprintf("taxonomy %s", args[0]), func() (*http.Response, error) {
				return client.Taxonomy(ctx, args[0])
			})
		},
	}
}

// productsByCommand creates the products-by command for listing products
// that share a facet value.
func (c *CLI) productsByCommand() *cobra.Command {
	var opts outputOpts

	cmd := &cobra.Command{
		Use:   "products-by <what> <id>",
		Short: "List products sharing a facet value",
		Long: `List products sharing a facet value and print the raw JSON response.

Examples:
  foodfacts products-by additive e322-lecithins
  foodfacts products-by categorie fromages --locale fr --page 2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.newClient(cmd)
			if err != nil {
				return err
			}
			ctx := c.commandContext(cmd)
			return runFetch(ctx, fmt.Sprintf("products by %s %s", args[0], args[1]), func() (*http.Response, error) {
				return client.ProductsBy(ctx, args[0], args[1], opts.build(cmd))
			})
		},
	}

	opts.register(cmd)
	return cmd
}
