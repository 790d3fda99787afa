// Package cli implements the foodfacts command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/foodfacts/pkg/buildinfo"
	"github.com/matzehuels/foodfacts/pkg/off"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "foodfacts"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	config Config
}

// New creates a new CLI instance with a default logger and the user's
// configuration file loaded. A missing configuration file is not an error.
func New(w io.Writer, level log.Level) (*CLI, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return &CLI{
		Logger: newLogger(w, level),
		config: cfg,
	}, nil
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "foodfacts",
		Short:        "Foodfacts queries the Open Food Facts database",
		Long:         `Foodfacts is a CLI client for the Open Food Facts API. It fetches products, facets, taxonomies, and search results and prints the raw JSON response to stdout.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().String("locale", "", "locale as cc or cc-lc (e.g. fr, fr-ca)")
	root.PersistentFlags().String("api-version", "", "API version (v0 or v2)")

	// Register all subcommands
	root.AddCommand(c.productCommand())
	root.AddCommand(c.productsCommand())
	root.AddCommand(c.searchCommand())
	root.AddCommand(c.facetCommand())
	root.AddCommand(c.categoriesCommand())
	root.AddCommand(c.nutrientsCommand())
	root.AddCommand(c.taxonomyCommand())
	root.AddCommand(c.productsByCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Client Factory
// =============================================================================

// newClient builds an API client from flags, the configuration file, and
// built-in defaults, in that order of precedence.
func (c *CLI) newClient(cmd *cobra.Command) (*off.Client, error) {
	version, err := c.resolveVersion(cmd)
	if err != nil {
		return nil, err
	}

	var opts []off.Option
	if locale := c.resolveLocale(cmd); locale != "" {
		opts = append(opts, off.WithLocale(off.ParseLocale(locale)))
	}
	if c.config.UserAgent != "" {
		opts = append(opts, off.WithUserAgent(c.config.UserAgent))
	}
	if c.config.Auth.Username != "" {
		opts = append(opts, off.WithAuth(c.config.Auth.Username, c.config.Auth.Password))
	}

	return off.NewClient(version, opts...), nil
}

// resolveVersion returns the API version from the --api-version flag, the
// configuration file, or V0 as the default.
func (c *CLI) resolveVersion(cmd *cobra.Command) (off.Version, error) {
	s, _ := cmd.Flags().GetString("api-version")
	if s == "" {
		s = c.config.APIVersion
	}
	if s == "" {
		return off.V0, nil
	}
	return parseVersion(s)
}

// resolveLocale returns the locale string from the --locale flag or the
// configuration file. An empty string means the client default (world).
func (c *CLI) resolveLocale(cmd *cobra.Command) string {
	if s, _ := cmd.Flags().GetString("locale"); s != "" {
		return s
	}
	return c.config.Locale
}
