// Package store provides persistence for daily breadth history plus pure
// analytics over the loaded records.
package store

import (
	"context"

	"nse-breadth/internal/models"
)

// HistoryStore persists one breadth record per trading day.
type HistoryStore interface {
	// AppendOrReplace stores the record, replacing any record already
	// stored for the same date, and prunes the history to its cap.
	AppendOrReplace(ctx context.Context, rec models.HistoryRecord) error

	// Load returns all records ordered by date, oldest first.
	Load(ctx context.Context) ([]models.HistoryRecord, error)

	Close() error
}

// Divergence messages surfaced alongside the signal.
const (
	BearishDivergenceMessage = "Breadth deteriorating - Distribution warning"
	BullishDivergenceMessage = "Breadth improving - Accumulation signal"
	NoDivergenceMessage      = "No divergence"
	InsufficientDataMessage  = "Insufficient data"
)

// MovingAverage returns the mean score of the last period records. With
// fewer records than the period it averages what exists; the second
// return is false only when the history is empty.
func MovingAverage(recs []models.HistoryRecord, period int) (float64, bool) {
	if len(recs) == 0 || period < 1 {
		return 0, false
	}
	if period > len(recs) {
		period = len(recs)
	}
	var sum float64
	for _, r := range recs[len(recs)-period:] {
		sum += r.Score
	}
	return sum / float64(period), true
}

// Trend compares the oldest and newest scores of the last lookback
// records. Fewer records than the lookback is an insufficient-data state,
// not an error.
func Trend(recs []models.HistoryRecord, lookback int) models.TrendDirection {
	if lookback < 1 || len(recs) < lookback {
		return models.TrendInsufficient
	}
	window := recs[len(recs)-lookback:]
	first, last := window[0].Score, window[len(window)-1].Score
	switch {
	case last > first:
		return models.TrendImproving
	case last < first:
		return models.TrendDeteriorating
	default:
		return models.TrendStable
	}
}

// Divergence flags a current score moving against the run of the last
// three stored scores: a positive score over strictly falling history is
// bearish, a negative score over strictly rising history is bullish.
func Divergence(recs []models.HistoryRecord, currentScore float64) (models.DivergenceSignal, string) {
	if len(recs) < 3 {
		return models.DivergenceInsufficient, InsufficientDataMessage
	}

	last3 := recs[len(recs)-3:]
	falling := last3[0].Score > last3[1].Score && last3[1].Score > last3[2].Score
	rising := last3[0].Score < last3[1].Score && last3[1].Score < last3[2].Score

	if currentScore > 0 && falling {
		return models.DivergenceBearish, BearishDivergenceMessage
	}
	if currentScore < 0 && rising {
		return models.DivergenceBullish, BullishDivergenceMessage
	}
	return models.DivergenceNone, NoDivergenceMessage
}
