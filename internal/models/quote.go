// Package models provides domain models for the breadth analyzer.
package models

import (
	"fmt"
	"math"
)

// InstrumentQuote is one row of the daily price/volume table, as delivered
// by the data fetcher. Immutable once fetched.
type InstrumentQuote struct {
	Symbol      string  `json:"symbol"`
	Price       float64 `json:"price"`
	PrevClose   float64 `json:"prev_close"`
	PctChange   float64 `json:"pct_change"`
	Volume      int64   `json:"volume"`
	AvgVolume   int64   `json:"avg_volume"`
	VolumeRatio float64 `json:"volume_ratio"`
}

// Validate checks the fetcher's preconditions: finite fields and positive
// prices. Rows failing validation never reach the analysis core.
func (q InstrumentQuote) Validate() error {
	if q.Symbol == "" {
		return fmt.Errorf("quote has empty symbol")
	}
	for name, v := range map[string]float64{
		"price":        q.Price,
		"prev_close":   q.PrevClose,
		"pct_change":   q.PctChange,
		"volume_ratio": q.VolumeRatio,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("quote %s: non-finite %s", q.Symbol, name)
		}
	}
	if q.Price <= 0 || q.PrevClose <= 0 {
		return fmt.Errorf("quote %s: non-positive price", q.Symbol)
	}
	return nil
}

// Category is the breadth classification of a single instrument.
type Category string

const (
	StrongBull Category = "Strong Bull"
	WeakBull   Category = "Weak Bull"
	Neutral    Category = "Neutral"
	WeakBear   Category = "Weak Bear"
	StrongBear Category = "Strong Bear"
)

// Categories lists all categories in display order.
var Categories = []Category{StrongBull, WeakBull, Neutral, WeakBear, StrongBear}

// ClassifiedInstrument is an InstrumentQuote plus its assigned category.
// The category is fully determined by (PctChange, VolumeRatio) and the
// configured thresholds; it is never mutated after assignment.
type ClassifiedInstrument struct {
	InstrumentQuote
	Category Category `json:"category"`
}
