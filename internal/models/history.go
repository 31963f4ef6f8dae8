package models

import "time"

// HistoryRecord is one persisted day of breadth results. VIX and
// Participation are optional: older rows predate their capture.
type HistoryRecord struct {
	Date          time.Time `json:"date"`
	Score         float64   `json:"score"`
	Regime        string    `json:"regime"`
	VIX           *float64  `json:"vix,omitempty"`
	Participation *float64  `json:"participation,omitempty"`
}

// TrendDirection is the multi-day score trend. Insufficient history is a
// state, not an error.
type TrendDirection string

const (
	TrendImproving     TrendDirection = "Improving"
	TrendDeteriorating TrendDirection = "Deteriorating"
	TrendStable        TrendDirection = "Stable"
	TrendInsufficient  TrendDirection = "Insufficient Data"
)

// DivergenceSignal flags a score moving against its own recent run.
type DivergenceSignal string

const (
	DivergenceBearish      DivergenceSignal = "Bearish Divergence"
	DivergenceBullish      DivergenceSignal = "Bullish Divergence"
	DivergenceNone         DivergenceSignal = "None"
	DivergenceInsufficient DivergenceSignal = "Insufficient Data"
)
