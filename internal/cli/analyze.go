package cli

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"nse-breadth/internal/analysis"
	"nse-breadth/internal/analysis/advanced"
	"nse-breadth/internal/analysis/breadth"
	"nse-breadth/internal/fetcher"
	"nse-breadth/internal/models"
	"nse-breadth/pkg/utils"
)

func newAnalyzeCmd(app *App) *cobra.Command {
	var noSave bool

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the full market breadth analysis",
		Long: `Fetches quotes for the configured universe, classifies every stock,
and prints the complete breadth report: score, regime, sectors, magnitude,
composite indices, signals and history-derived readings.

The day's score is stored in the history database; re-running on the same
trading day replaces that day's record.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx := cmd.Context()

			if !output.IsJSON() {
				output.Info("Fetching %d symbols...", len(app.Config.Universe.Stocks))
			}

			quotes, vix, stats, err := app.fetchUniverse(ctx)
			if err != nil {
				return err
			}

			res, err := app.newPipeline().Run(ctx, quotes, vix, !noSave)
			if err != nil {
				return err
			}

			if output.IsJSON() {
				return output.JSON(struct {
					*analysis.Result
					Fetch fetcher.Stats `json:"fetch"`
				}{res, stats})
			}

			renderReport(output, app, res, stats)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noSave, "no-save", false, "do not record today's score in history")
	return cmd
}

func renderReport(output *Output, app *App, res *analysis.Result, stats fetcher.Stats) {
	dateStr := res.Date.Format(app.Config.UI.DateFormat)

	output.Println()
	output.Box("NSE F&O MARKET BREADTH", []string{
		fmt.Sprintf("Date: %s", dateStr),
		fmt.Sprintf("Universe: %d fetched / %d requested", stats.Fetched, stats.Requested),
	})
	if stats.Failed > 0 {
		output.Warning("Failed symbols: %s", strings.Join(stats.FailedSymbols, ", "))
	}
	if utils.IsMarketOpen(time.Now()) {
		output.Dim("Market is open - this is an intraday reading")
	}
	output.Println()

	renderBreadth(output, res)
	renderRegime(output, res)
	renderMagnitude(output, res)
	renderSectors(output, res)
	renderMovers(output, res)
	renderAdvanced(output, res)
	renderSignals(output, res)
	renderChecklist(output, app, res)
	renderHistory(output, res)
	renderFearGreed(output, res.FearGreed)
}

// renderChecklist prints the pre-trade checks derived from the run.
func renderChecklist(output *Output, app *App, res *analysis.Result) {
	t := app.Config.Analysis.Thresholds

	check := func(ok bool, label string) {
		if ok {
			output.Success("  [x] %s", label)
		} else {
			output.Error("  [ ] %s", label)
		}
	}

	output.Bold("Trading Checklist")
	check(res.Breadth.Score > 0, "Breadth score positive")
	check(res.Sectors.ParticipationPct >= t.HealthyParticipation,
		fmt.Sprintf("Sector participation healthy (>= %.0f%%)", t.HealthyParticipation))
	check(res.Internals.VolumeRatio.Defined && res.Internals.VolumeRatio.Value > 1,
		"Up volume exceeds down volume")
	check(res.Divergence != models.DivergenceBearish, "No bearish divergence")
	check(!res.Regime.NarrowLeadership, "Leadership broad-based")
	output.Println()
}

func renderBreadth(output *Output, res *analysis.Result) {
	output.Bold("Classification")
	for _, c := range models.Categories {
		n := res.Breadth.Count(c)
		bar := utils.Bar(float64(n), float64(res.Breadth.Total), 30)
		output.Printf("  %-12s %4d  %s\n", c, n, output.DimText(bar))
	}
	output.Println()

	output.Bold("Breadth")
	output.Printf("  Score:           %s\n", output.FormatScore(res.Breadth.Score))
	output.Printf("  Bulls / Bears:   %d / %d (ratio %s)\n",
		res.Breadth.TotalBulls, res.Breadth.TotalBears, res.Breadth.BullBearRatio)
	output.Println()
}

func renderRegime(output *Output, res *analysis.Result) {
	call := res.Regime
	name := call.Regime.Name
	switch call.Regime.Key {
	case models.RegimeExtremeBull, models.RegimeStrongBull, models.RegimeWeakBull:
		name = output.Green(name)
	case models.RegimeExtremeBear, models.RegimeStrongBear, models.RegimeWeakBear:
		name = output.Red(name)
	default:
		name = output.Yellow(name)
	}

	action := call.Regime.Action
	if call.NarrowLeadership {
		action += "\n  " + breadth.NarrowLeadershipWarning
	}

	output.Bold("Regime")
	output.Printf("  %s\n", name)
	output.Printf("  %s\n", action)
	output.Printf("  Participation: %.2f%% of sectors bullish\n", call.ParticipationPct)
	output.Println()
}

func renderMagnitude(output *Output, res *analysis.Result) {
	m := res.Magnitude
	output.Bold("Magnitude")
	output.Printf("  Ultra Score: %s\n", output.FormatScore(m.UltraScore))
	output.Printf("  Up:   explosive %d, strong %d, moderate %d\n",
		m.ExplosiveUp, m.StrongUp, m.ModerateUp)
	output.Printf("  Down: explosive %d, strong %d, moderate %d\n",
		m.ExplosiveDown, m.StrongDown, m.ModerateDown)
	output.Println()
}

func renderSectors(output *Output, res *analysis.Result) {
	if len(res.Sectors.Sectors) == 0 {
		return
	}

	names := make([]string, 0, len(res.Sectors.Sectors))
	for name := range res.Sectors.Sectors {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		si, sj := res.Sectors.Sectors[names[i]].Score, res.Sectors.Sectors[names[j]].Score
		if si != sj {
			return si > sj
		}
		return names[i] < names[j]
	})

	output.Bold("Sectors")
	table := NewTable(output, "Sector", "Net", "Score", "Avg %", "Status")
	for _, name := range names {
		sb := res.Sectors.Sectors[name]
		status := string(sb.Status)
		switch sb.Status {
		case models.SectorBullish:
			status = output.Green(status)
		case models.SectorBearish:
			status = output.Red(status)
		}
		table.AddRow(
			name,
			fmt.Sprintf("%+d", sb.Net),
			output.FormatScore(sb.Score),
			output.FormatPercent(sb.AvgChange),
			status,
		)
	}
	table.Render()
	output.Printf("  Participation: %d/%d sectors bullish (%.2f%%)\n",
		res.Sectors.BullishCount, res.Sectors.TotalCount, res.Sectors.ParticipationPct)
	output.Println()
}

func renderMovers(output *Output, res *analysis.Result) {
	renderMoverList(output, "Top Gainers", res.Gainers)
	renderMoverList(output, "Top Losers", res.Losers)
}

func renderMoverList(output *Output, title string, movers []models.ClassifiedInstrument) {
	if len(movers) == 0 {
		return
	}
	output.Bold(title)
	table := NewTable(output, "Symbol", "Change", "Volume", "Vol Ratio", "Category")
	for _, m := range movers {
		table.AddRow(
			m.Symbol,
			output.FormatPercent(m.PctChange),
			utils.FormatVolume(m.Volume),
			fmt.Sprintf("%.2fx", m.VolumeRatio),
			string(m.Category),
		)
	}
	table.Render()
	output.Println()
}

func renderAdvanced(output *Output, res *analysis.Result) {
	output.Bold("Market Temperature")
	output.Printf("  %.1f / 100  %s\n", res.Temperature.Temperature, res.Temperature.Status)
	output.Printf("  breadth %.1f, momentum %.1f, volume %.1f\n",
		res.Temperature.Breadth, res.Temperature.Momentum, res.Temperature.Volume)
	output.Println()

	in := res.Internals
	output.Bold("Internals")
	output.Printf("  Advances/Declines: %d / %d (unchanged %d, A/D ratio %s)\n",
		in.Advances, in.Declines, in.Unchanged, in.ADRatio)
	output.Printf("  Up/Down Volume:    %s / %s (ratio %s)\n",
		utils.FormatVolume(in.UpVolume), utils.FormatVolume(in.DownVolume), in.VolumeRatio)
	output.Printf("  TRIN:              %.2f  %s\n", in.TRIN, in.TRINSignal)
	output.Println()

	output.Bold("Concentration")
	output.Printf("  Top movers carry %.1f%% of total movement (%s risk)\n",
		res.Concentration.ConcentrationPct, res.Concentration.RiskLevel)
	if len(res.Concentration.TopContributors) > 0 {
		output.Printf("  Leaders: %s\n", strings.Join(res.Concentration.TopContributors, ", "))
	}
	output.Println()

	rot := res.Rotation
	output.Bold("Sector Rotation")
	output.Printf("  Dispersion: %.2f  %s\n", rot.Strength, rot.Status)
	if rot.Leader != nil && rot.Laggard != nil {
		output.Printf("  %s (%s) leading, %s (%s) lagging\n",
			rot.Leader.Name, output.FormatPercent(rot.Leader.AvgChange),
			rot.Laggard.Name, output.FormatPercent(rot.Laggard.AvgChange))
	}
	output.Println()

	if res.Sentiment.Condition != advanced.NormalMood {
		output.Bold("Sentiment Extreme")
		output.Warning("  %s: %s", res.Sentiment.Condition, res.Sentiment.Signal)
		output.Printf("  %.1f%% of universe in explosive moves\n", res.Sentiment.ExplosivePct)
		output.Printf("  %s\n", res.Sentiment.Action)
		output.Println()
	}
}

func renderSignals(output *Output, res *analysis.Result) {
	if len(res.Signals) == 0 {
		return
	}
	output.Bold("Signals")
	for _, s := range res.Signals {
		line := fmt.Sprintf("  [%s/%s] %s", s.Type, s.Strength, s.Message)
		switch s.Type {
		case "BUY":
			output.Success("%s", line)
		case "SELL":
			output.Error("%s", line)
		case "WARNING":
			output.Warning("%s", line)
		default:
			output.Println(line)
		}
	}
	output.Println()
}

func renderHistory(output *Output, res *analysis.Result) {
	output.Bold("History")
	if res.MovingAverageOK {
		output.Printf("  Moving Average: %s\n", output.FormatScore(res.MovingAverage))
	} else {
		output.Dim("  Moving Average: no history yet")
	}
	output.Printf("  Trend:          %s\n", res.Trend)
	output.Printf("  Divergence:     %s\n", res.DivergenceDetail)
	output.Println()
}
