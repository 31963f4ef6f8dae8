package cli

import (
	"github.com/spf13/cobra"
)

func newSectorsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sectors",
		Short: "Show sector breadth only",
		Long: `Fetches the universe and prints the per-sector breadth table, the
sector leaders and laggards, and the rotation reading. Nothing is written
to the history database.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx := cmd.Context()

			if !output.IsJSON() {
				output.Info("Fetching %d symbols...", len(app.Config.Universe.Stocks))
			}

			quotes, vix, _, err := app.fetchUniverse(ctx)
			if err != nil {
				return err
			}

			res, err := app.newPipeline().Run(ctx, quotes, vix, false)
			if err != nil {
				return err
			}

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"sectors":  res.Sectors,
					"leaders":  res.SectorLeaders,
					"laggards": res.SectorLaggards,
					"rotation": res.Rotation,
				})
			}

			output.Println()
			renderSectors(output, res)

			rot := res.Rotation
			output.Bold("Sector Rotation")
			output.Printf("  Dispersion: %.2f  %s\n", rot.Strength, rot.Status)
			if rot.Leader != nil && rot.Laggard != nil {
				output.Printf("  %s (%s) leading, %s (%s) lagging\n",
					rot.Leader.Name, output.FormatPercent(rot.Leader.AvgChange),
					rot.Laggard.Name, output.FormatPercent(rot.Laggard.AvgChange))
			}
			return nil
		},
	}
}
