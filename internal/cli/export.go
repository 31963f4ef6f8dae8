package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"

	"nse-breadth/internal/analysis"
	"nse-breadth/internal/analysis/breadth"
	"nse-breadth/pkg/utils"
)

// exportRow is one classified instrument in the CSV report.
type exportRow struct {
	Symbol      string  `csv:"symbol"`
	Price       float64 `csv:"price"`
	PrevClose   float64 `csv:"prev_close"`
	PctChange   float64 `csv:"pct_change"`
	Volume      int64   `csv:"volume"`
	AvgVolume   int64   `csv:"avg_volume"`
	VolumeRatio float64 `csv:"volume_ratio"`
	Category    string  `csv:"category"`
}

func newExportCmd(app *App) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Run the analysis and export CSV and summary files",
		Long: `Runs the full analysis and writes two files to the output directory:
a per-stock CSV with every classified instrument, and a plain-text summary
of the day's breadth, regime and sector readings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx := cmd.Context()

			if outDir == "" {
				outDir = app.Config.Output.Dir
			}

			quotes, vix, _, err := app.fetchUniverse(ctx)
			if err != nil {
				return err
			}
			res, err := app.newPipeline().Run(ctx, quotes, vix, true)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}

			csvPath := filepath.Join(outDir, app.Config.Output.CSVFile)
			if err := writeCSV(csvPath, res); err != nil {
				return err
			}

			summaryPath := filepath.Join(outDir, app.Config.Output.SummaryFile)
			if err := writeSummary(summaryPath, res, app.Config.UI.DateFormat); err != nil {
				return err
			}

			if output.IsJSON() {
				return output.JSON(map[string]string{
					"csv":     csvPath,
					"summary": summaryPath,
				})
			}
			output.Success("Wrote %s", csvPath)
			output.Success("Wrote %s", summaryPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "", "output directory (default from config)")
	return cmd
}

func writeCSV(path string, res *analysis.Result) error {
	rows := make([]exportRow, 0, len(res.Classified))
	for _, c := range res.Classified {
		rows = append(rows, exportRow{
			Symbol:      c.Symbol,
			Price:       c.Price,
			PrevClose:   c.PrevClose,
			PctChange:   c.PctChange,
			Volume:      c.Volume,
			AvgVolume:   c.AvgVolume,
			VolumeRatio: c.VolumeRatio,
			Category:    string(c.Category),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].PctChange > rows[j].PctChange })

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gocsv.MarshalFile(&rows, f)
}

func writeSummary(path string, res *analysis.Result, dateFormat string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "NSE F&O Market Breadth - %s\n\n", res.Date.Format(dateFormat))
	fmt.Fprintf(&b, "Breadth Score:  %s\n", utils.FormatScore(res.Breadth.Score))
	fmt.Fprintf(&b, "Regime:         %s\n", res.Regime.Regime.Name)

	action := res.Regime.Regime.Action
	if res.Regime.NarrowLeadership {
		action += "\n                " + breadth.NarrowLeadershipWarning
	}
	fmt.Fprintf(&b, "Action:         %s\n", action)
	fmt.Fprintf(&b, "Bulls/Bears:    %d/%d (ratio %s)\n",
		res.Breadth.TotalBulls, res.Breadth.TotalBears, res.Breadth.BullBearRatio)
	fmt.Fprintf(&b, "Participation:  %.2f%% of sectors bullish\n", res.Sectors.ParticipationPct)
	fmt.Fprintf(&b, "Ultra Score:    %s\n", utils.FormatScore(res.Magnitude.UltraScore))
	fmt.Fprintf(&b, "Temperature:    %.1f (%s)\n", res.Temperature.Temperature, res.Temperature.Status)
	fmt.Fprintf(&b, "TRIN:           %.2f (%s)\n\n", res.Internals.TRIN, res.Internals.TRINSignal)

	if len(res.SectorLeaders) > 0 {
		b.WriteString("Leading sectors:\n")
		for _, s := range res.SectorLeaders {
			fmt.Fprintf(&b, "  %-20s %s (%s avg)\n",
				s.Name, utils.FormatScore(s.Breadth.Score), utils.FormatPercent(s.Breadth.AvgChange))
		}
	}
	if len(res.SectorLaggards) > 0 {
		b.WriteString("Lagging sectors:\n")
		for _, s := range res.SectorLaggards {
			fmt.Fprintf(&b, "  %-20s %s (%s avg)\n",
				s.Name, utils.FormatScore(s.Breadth.Score), utils.FormatPercent(s.Breadth.AvgChange))
		}
	}

	if len(res.Signals) > 0 {
		b.WriteString("\nSignals:\n")
		for _, s := range res.Signals {
			fmt.Fprintf(&b, "  [%s/%s] %s\n", s.Type, s.Strength, s.Message)
		}
	}

	if fg := res.FearGreed; fg != nil {
		fmt.Fprintf(&b, "\nFear/Greed: %.1f (%s)\n", fg.Total, fg.Regime)
	}

	return os.WriteFile(path, []byte(b.String()), 0o644)
}
