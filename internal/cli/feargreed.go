package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"nse-breadth/internal/analysis/advanced"
	"nse-breadth/internal/errors"
)

func newFearGreedCmd(app *App) *cobra.Command {
	var fetchVIX bool

	cmd := &cobra.Command{
		Use:   "feargreed",
		Short: "Show the fear/greed index from stored history",
		Long: `Computes the composite fear/greed index from the history database.
Needs at least three stored days. With --fetch-vix the current India VIX
level is fetched to fill in a missing stored VIX series.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx := cmd.Context()

			if app.Store == nil {
				return errors.Wrap(errors.ErrNoData, "history store unavailable")
			}
			recs, err := app.Store.Load(ctx)
			if err != nil {
				return err
			}
			if len(recs) == 0 {
				return errors.Wrap(errors.ErrNoData, "no history recorded yet, run analyze first")
			}

			var vix *float64
			if fetchVIX {
				if vq, verr := app.Fetcher.FetchQuote(ctx, app.Config.Universe.VIXSymbol); verr == nil {
					vix = &vq.Price
				} else {
					app.Logger.Warn().Err(verr).Msg("VIX fetch failed")
				}
			}
			if vix == nil {
				vix = recs[len(recs)-1].VIX
			}

			var participation float64
			if p := recs[len(recs)-1].Participation; p != nil {
				participation = *p
			}

			in, err := advanced.BuildFearGreedInputs(recs, vix, participation)
			if err != nil {
				return err
			}
			fg := advanced.FearGreed(in)

			if output.IsJSON() {
				return output.JSON(fg)
			}
			renderFearGreed(output, &fg)
			return nil
		},
	}

	cmd.Flags().BoolVar(&fetchVIX, "fetch-vix", false, "fetch the current India VIX level")
	return cmd
}

func renderFearGreed(output *Output, fg *advanced.FearGreedResult) {
	if fg == nil {
		return
	}

	output.Bold("Fear / Greed Index")
	reading := output.Yellow(fg.Regime)
	switch {
	case fg.Total >= 60:
		reading = output.Green(fg.Regime)
	case fg.Total < 40:
		reading = output.Red(fg.Regime)
	}
	output.Printf("  %.1f / 100  %s\n", fg.Total, reading)

	table := NewTable(output, "Component", "Raw", "Weight", "Score")
	for _, c := range fg.Components {
		table.AddRow(
			c.Name,
			fmt.Sprintf("%.1f", c.Raw),
			fmt.Sprintf("%.0f%%", c.Weight*100),
			fmt.Sprintf("%.2f", c.Score),
		)
	}
	table.Render()

	if fg.Synthetic {
		output.Dim("  (some inputs approximated from current readings)")
	}
	output.Println()
}
