package cli

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"
)

// productCommand creates the product command for fetching a single product.
func (c *CLI) productCommand() *cobra.Command {
	var opts outputOpts

	cmd := &cobra.Command{
		Use:   "product <barcode>",
		Short: "Fetch a single product by barcode",
		Long: `Fetch a single product by barcode and print the raw JSON response.

Examples:
  foodfacts product 069000019832
  foodfacts product 069000019832 --fields code,product_name --locale fr`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.newClient(cmd)
			if err != nil {
				return err
			}
			ctx := c.commandContext(cmd)
			return runFetch(ctx, fmt.Sprintf("product %s", args[0]), func() (*http.Response, error) {
				return client.Product(ctx, args[0], opts.build(cmd))
			})
		},
	}

	opts.register(cmd)
	return cmd
}

// productsCommand creates the products command for fetching several products
// in one request. The batch endpoint only exists on the v2 API.
func (c *CLI) productsCommand() *cobra.Command {
	var opts outputOpts

	cmd := &cobra.Command{
		Use:   "products <barcode> [barcode...]",
		Short: "Fetch multiple products by barcode (v2 only)",
		Long: `Fetch multiple products in a single request and print the raw JSON response.

The batch endpoint only exists on the v2 API; pass --api-version v2 or set
api_version in the configuration file.

Examples:
  foodfacts products 069000019832 3017620422003 --api-version v2
  foodfacts products 069000019832,3017620422003 --api-version v2 --fields code`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.newClient(cmd)
			if err != nil {
				return err
			}
			barcodes := strings.Join(args, ",")
			ctx := c.commandContext(cmd)
			return runFetch(ctx, fmt.Sprintf("products %s", barcodes), func() (*http.Response, error) {
				return client.Products(ctx, barcodes, opts.build(cmd))
			})
		},
	}

	opts.register(cmd)
	return cmd
}
