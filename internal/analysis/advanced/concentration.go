package advanced

import (
	"math"
	"sort"

	"nse-breadth/internal/models"
)

// ConcentrationResult measures how much of the day's total movement is
// carried by the largest movers.
type ConcentrationResult struct {
	ConcentrationPct float64  `json:"concentration_pct"`
	RiskLevel        string   `json:"risk_level"`
	TopContributors  []string `json:"top_contributors"`
}

// Concentration computes the share of total absolute movement contributed
// by the top decile of movers (count truncated). A flat or tiny universe
// reads 0 with broad-participation risk.
func Concentration(quotes []models.InstrumentQuote) ConcentrationResult {
	sorted := append([]models.InstrumentQuote(nil), quotes...)
	sort.Slice(sorted, func(i, j int) bool {
		ai, aj := math.Abs(sorted[i].PctChange), math.Abs(sorted[j].PctChange)
		if ai != aj {
			return ai > aj
		}
		return sorted[i].Symbol < sorted[j].Symbol
	})

	topCount := int(float64(len(sorted)) * 0.1)
	top := sorted[:topCount]

	var totalAbs, topAbs float64
	for _, q := range sorted {
		totalAbs += math.Abs(q.PctChange)
	}
	for _, q := range top {
		topAbs += math.Abs(q.PctChange)
	}

	var pct float64
	if totalAbs > 0 {
		pct = topAbs / totalAbs * 100
	}

	contributors := make([]string, 0, 5)
	for i := 0; i < len(top) && i < 5; i++ {
		contributors = append(contributors, top[i].Symbol)
	}

	return ConcentrationResult{
		ConcentrationPct: pct,
		RiskLevel:        concentrationRisk(pct),
		TopContributors:  contributors,
	}
}

func concentrationRisk(pct float64) string {
	switch {
	case pct > 50:
		return "HIGH RISK - Very narrow market"
	case pct > 35:
		return "MODERATE RISK - Somewhat narrow"
	default:
		return "LOW RISK - Broad participation"
	}
}
