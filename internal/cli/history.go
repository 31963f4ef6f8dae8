package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"nse-breadth/internal/errors"
	"nse-breadth/internal/models"
	"nse-breadth/internal/store"
)

func newHistoryCmd(app *App) *cobra.Command {
	var last int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show stored breadth history and trend",
		Long: `Lists the stored daily breadth scores with their regimes, then the
moving average, trend direction and divergence reading derived from them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			if app.Store == nil {
				return errors.Wrap(errors.ErrNoData, "history store unavailable")
			}
			recs, err := app.Store.Load(cmd.Context())
			if err != nil {
				return err
			}
			if len(recs) == 0 {
				return errors.Wrap(errors.ErrNoData, "no history recorded yet, run analyze first")
			}

			ma, maOK := store.MovingAverage(recs, app.Config.History.AveragePeriod)
			trend := store.Trend(recs, app.Config.History.TrendLookback)
			divergence, detail := store.Divergence(recs, recs[len(recs)-1].Score)

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"records":           recs,
					"moving_average":    ma,
					"moving_average_ok": maOK,
					"trend":             trend,
					"divergence":        divergence,
					"divergence_detail": detail,
				})
			}

			shown := recs
			if last > 0 && len(shown) > last {
				shown = shown[len(shown)-last:]
			}

			output.Bold("Breadth History")
			table := NewTable(output, "Date", "Score", "Regime", "VIX", "Participation")
			for _, r := range shown {
				vix := "-"
				if r.VIX != nil {
					vix = fmt.Sprintf("%.2f", *r.VIX)
				}
				part := "-"
				if r.Participation != nil {
					part = fmt.Sprintf("%.1f%%", *r.Participation)
				}
				table.AddRow(
					r.Date.Format(app.Config.UI.DateFormat),
					output.FormatScore(r.Score),
					r.Regime,
					vix,
					part,
				)
			}
			table.Render()
			output.Println()

			if maOK {
				output.Printf("%d-day Moving Average: %s\n",
					app.Config.History.AveragePeriod, output.FormatScore(ma))
			}
			renderTrend(output, trend)
			output.Printf("Divergence: %s\n", detail)
			return nil
		},
	}

	cmd.Flags().IntVar(&last, "last", 0, "show only the last N records (0 = all)")
	return cmd
}

func newTrendCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "trend",
		Short: "Show the multi-day breadth trend",
		Long:  "Prints the moving average, trend direction and divergence reading from stored history.",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			if app.Store == nil {
				return errors.Wrap(errors.ErrNoData, "history store unavailable")
			}
			recs, err := app.Store.Load(cmd.Context())
			if err != nil {
				return err
			}
			if len(recs) == 0 {
				return errors.Wrap(errors.ErrNoData, "no history recorded yet, run analyze first")
			}

			ma, maOK := store.MovingAverage(recs, app.Config.History.AveragePeriod)
			trend := store.Trend(recs, app.Config.History.TrendLookback)
			divergence, detail := store.Divergence(recs, recs[len(recs)-1].Score)

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"moving_average":    ma,
					"moving_average_ok": maOK,
					"trend":             trend,
					"divergence":        divergence,
					"divergence_detail": detail,
				})
			}

			if maOK {
				output.Printf("%d-day Moving Average: %s\n",
					app.Config.History.AveragePeriod, output.FormatScore(ma))
			}
			renderTrend(output, trend)
			output.Printf("Divergence: %s\n", detail)
			return nil
		},
	}
}

func renderTrend(output *Output, trend models.TrendDirection) {
	label := string(trend)
	switch trend {
	case models.TrendImproving:
		label = output.Green(label)
	case models.TrendDeteriorating:
		label = output.Red(label)
	}
	output.Printf("Trend: %s\n", label)
}
