package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/glyphfall/internal/api"
	"github.com/matzehuels/glyphfall/pkg/cache"
	"github.com/matzehuels/glyphfall/pkg/observability"
	"github.com/matzehuels/glyphfall/pkg/pipeline"
)

const defaultAddr = "localhost:8080"

// serveCommand creates the serve command, which runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		gen     genFlags
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve grids over HTTP",
		Long: `Serve runs the HTTP API until interrupted.

Generation flags and the config file set the defaults that requests
override. Requests without a seed get a fresh one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			defaults := pipeline.FromConfig(cfg)
			gen.apply(cmd, &defaults)
			// Validate a copy: a zero seed must stay zero so requests draw their own.
			check := defaults
			if err := check.ValidateForGenerate(); err != nil {
				return err
			}
			return c.runServe(cmd.Context(), addr, defaults, noCache)
		},
	}

	gen.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, defaults pipeline.Options, noCache bool) error {
	logger := loggerFromContext(ctx)

	runner, err := c.newRunner(ctx, noCache, cache.NewScopedKeyer(nil, "api:"))
	if err != nil {
		return err
	}
	defer runner.Close()

	observability.SetHTTPHooks(logHooks{logger})
	srv := api.New(runner, api.WithLogger(logger), api.WithDefaults(defaults))
	return srv.ListenAndServe(ctx, addr)
}
