package store

import (
	"math"
	"testing"
	"time"

	"nse-breadth/internal/models"
)

func rec(day int, score float64) models.HistoryRecord {
	return models.HistoryRecord{
		Date:   time.Date(2026, 8, day, 0, 0, 0, 0, time.UTC),
		Score:  score,
		Regime: "NO_TRADE",
	}
}

func recs(scores ...float64) []models.HistoryRecord {
	out := make([]models.HistoryRecord, 0, len(scores))
	for i, s := range scores {
		out = append(out, rec(i+1, s))
	}
	return out
}

func TestMovingAverage(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		period int
		want   float64
		ok     bool
	}{
		{"empty history", nil, 3, 0, false},
		{"single record", []float64{0.3}, 3, 0.3, true},
		{"shorter than period", []float64{0.2, 0.4}, 3, 0.3, true},
		{"exact period", []float64{0.1, 0.2, 0.3}, 3, 0.2, true},
		{"uses last period only", []float64{5, 0.1, 0.2, 0.3}, 3, 0.2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MovingAverage(recs(tt.scores...), tt.period)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("moving average = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTrend(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   models.TrendDirection
	}{
		{"too short", []float64{0.1, 0.2}, models.TrendInsufficient},
		{"improving", []float64{0.1, 0.0, 0.3, 0.2, 0.4}, models.TrendImproving},
		{"deteriorating", []float64{0.4, 0.5, 0.3, 0.2, 0.1}, models.TrendDeteriorating},
		{"stable", []float64{0.2, 0.5, 0.1, 0.3, 0.2}, models.TrendStable},
		{"window is last five", []float64{9, 0.1, 0.2, 0.1, 0.2, 0.3}, models.TrendImproving},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Trend(recs(tt.scores...), 5); got != tt.want {
				t.Errorf("trend = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDivergence(t *testing.T) {
	tests := []struct {
		name    string
		scores  []float64
		current float64
		want    models.DivergenceSignal
	}{
		{"insufficient history", []float64{0.5, 0.3}, 0.2, models.DivergenceInsufficient},
		{"bearish: falling run, positive score", []float64{0.5, 0.3, 0.1}, 0.2, models.DivergenceBearish},
		{"bullish: rising run, negative score", []float64{-0.5, -0.3, -0.1}, -0.05, models.DivergenceBullish},
		{"no divergence: falling but negative score", []float64{0.5, 0.3, 0.1}, -0.2, models.DivergenceNone},
		{"no divergence: not strictly monotonic", []float64{0.5, 0.5, 0.1}, 0.2, models.DivergenceNone},
		{"no divergence: zero score", []float64{0.5, 0.3, 0.1}, 0, models.DivergenceNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, msg := Divergence(recs(tt.scores...), tt.current)
			if got != tt.want {
				t.Errorf("divergence = %s (%q), want %s", got, msg, tt.want)
			}
		})
	}
}

func TestDivergenceUsesLastThree(t *testing.T) {
	// Older records must not matter.
	history := recs(-9, 0.5, 0.3, 0.1)
	got, _ := Divergence(history, 0.2)
	if got != models.DivergenceBearish {
		t.Errorf("divergence = %s, want Bearish Divergence", got)
	}
}
