package cli

import (
	"context"

	"github.com/spf13/cobra"

	"nse-breadth/internal/analysis"
	"nse-breadth/internal/dashboard"
	"nse-breadth/internal/models"
)

func newDashboardCmd(app *App) *cobra.Command {
	var addr string
	var noInitial bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Serve the web dashboard",
		Long: `Starts the HTTP dashboard: chart pages for the browser and a JSON API.
An analysis run is performed on startup and cached; POST /api/refresh
re-runs it. Each refresh also records the day's score in history.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			if addr == "" {
				addr = app.Config.Dashboard.ListenAddr
			}

			refresh := func(ctx context.Context) (*analysis.Result, error) {
				quotes, vix, _, err := app.fetchUniverse(ctx)
				if err != nil {
					return nil, err
				}
				return app.newPipeline().Run(ctx, quotes, vix, true)
			}

			var history dashboard.HistoryFunc
			if app.Store != nil {
				history = func(ctx context.Context) ([]models.HistoryRecord, error) {
					return app.Store.Load(ctx)
				}
			}

			srv := dashboard.NewServer(dashboard.Config{
				Addr:    addr,
				Refresh: refresh,
				History: history,
				Logger:  app.Logger,
			})

			if !noInitial {
				output.Info("Running initial analysis...")
				if err := srv.Refresh(cmd.Context()); err != nil {
					app.Logger.Warn().Err(err).Msg("Initial analysis failed, dashboard starts empty")
					output.Warning("Initial analysis failed: %v", err)
				}
			}

			output.Success("Dashboard listening on %s", addr)
			return srv.Start(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	cmd.Flags().BoolVar(&noInitial, "no-initial", false, "skip the analysis run on startup")
	return cmd
}
