package breadth

import (
	"sort"

	"nse-breadth/internal/models"
)

// TopMovers returns the n largest gainers and losers by percent change.
// Symbols break ties for deterministic output.
func TopMovers(items []models.ClassifiedInstrument, n int) (gainers, losers []models.ClassifiedInstrument) {
	sorted := append([]models.ClassifiedInstrument(nil), items...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].PctChange != sorted[j].PctChange {
			return sorted[i].PctChange > sorted[j].PctChange
		}
		return sorted[i].Symbol < sorted[j].Symbol
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	gainers = sorted[:n]
	losers = make([]models.ClassifiedInstrument, 0, n)
	for i := len(sorted) - 1; i >= len(sorted)-n; i-- {
		losers = append(losers, sorted[i])
	}
	return gainers, losers
}
