package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/foodfacts/pkg/off"
)

// =============================================================================
// Shared Output Flags
// =============================================================================

// outputOpts holds the shared result-shaping flags available on most commands.
// Each endpoint applies only the options it supports; the rest are ignored.
type outputOpts struct {
	page     uint
	pageSize uint
	fields   []string
	nocache  bool
}

// register adds the shared output flags to cmd.
func (o *outputOpts) register(cmd *cobra.Command) {
	cmd.Flags().UintVar(&o.page, "page", 0, "result page number")
	cmd.Flags().UintVar(&o.pageSize, "page-size", 0, "results per page")
	cmd.Flags().StringSliceVar(&o.fields, "fields", nil, "response fields to include")
	cmd.Flags().BoolVar(&o.nocache, "nocache", false, "bypass the server-side cache")
}

// build converts the flags that were explicitly set into output options.
// Unset flags stay unset so the server applies its own defaults.
func (o *outputOpts) build(cmd *cobra.Command) *off.Output {
	out := off.NewOutput()
	if cmd.Flags().Changed("page") {
		out.Page(o.page)
	}
	if cmd.Flags().Changed("page-size") {
		out.PageSize(o.pageSize)
	}
	if len(o.fields) > 0 {
		out.Fields(o.fields...)
	}
	if cmd.Flags().Changed("nocache") {
		out.Nocache(o.nocache)
	}
	return out
}

// =============================================================================
// Response Output
// =============================================================================

// commandContext returns the command's context with the CLI logger attached.
func (c *CLI) commandContext(cmd *cobra.Command) context.Context {
	return withLogger(cmd.Context(), c.Logger)
}

// runFetch executes fetch, logs timing, and streams the response to stdout.
func runFetch(ctx context.Context, what string, fetch func() (*http.Response, error)) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Fetching %s", what)

	prog := newProgress(logger)
	resp, err := fetch()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Fetched %s: %s", what, resp.Status))

	return writeResponse(resp)
}

// writeResponse streams the raw response body to stdout and closes it.
// A non-2xx status is surfaced as a warning, not an error: the body still
// carries the server's JSON answer.
func writeResponse(resp *http.Response) error {
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		printWarning("Server returned %s", resp.Status)
	}

	if _, err := io.Copy(os.Stdout, resp.Body); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}
