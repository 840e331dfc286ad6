package cli

import (
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/andrescamacho/factory-planner/internal/adapters/api"
	"github.com/andrescamacho/factory-planner/internal/adapters/metrics"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the planning API over HTTP",
		Long: `Start the HTTP API. Solve requests are rate limited (api.rate_limit) and
Prometheus metrics are exposed at metrics.path when metrics.enabled is set.

Routes:
  GET  /health
  GET  /api/v1/projects
  GET  /api/v1/projects/:name/requirements
  POST /api/v1/projects/:name/solve
  POST /api/v1/analyze
  GET  /api/v1/power?project=...
  GET  /api/v1/runs?project=...&limit=...`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApplication()
			if err != nil {
				return err
			}
			defer app.Close()

			if host != "" {
				app.cfg.API.Host = host
			}
			if port > 0 {
				app.cfg.API.Port = port
			}
			if app.cfg.Logging.Level != "debug" {
				gin.SetMode(gin.ReleaseMode)
			}

			server := api.NewServer(app.mediator, app.logger, app.cfg.API, app.cfg.Solver,
				api.WithMetrics(app.cfg.Metrics.Path, metrics.GetRegistry()))

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.Run(app.context(ctx))
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Bind host (default from config)")
	cmd.Flags().IntVar(&port, "port", 0, "Bind port (default from config)")

	return cmd
}
