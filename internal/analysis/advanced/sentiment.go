package advanced

import "nse-breadth/internal/models"

// SentimentCondition classifies extreme sentiment.
type SentimentCondition string

const (
	Capitulation SentimentCondition = "CAPITULATION"
	Euphoria     SentimentCondition = "EUPHORIA"
	NormalMood   SentimentCondition = "NORMAL"
)

// SentimentResult flags capitulation or euphoria when explosive moves
// dominate the tape.
type SentimentResult struct {
	Condition    SentimentCondition `json:"condition"`
	Signal       string             `json:"signal"`
	ExplosivePct float64            `json:"explosive_moves_pct"`
	Action       string             `json:"action"`
}

// Sentiment detects extreme one-sided explosive moves. Capitulation is
// checked before euphoria; more than 15% of the universe moving
// explosively one way trips the flag. explosiveMove is the percent-change
// cutoff for an explosive move.
func Sentiment(quotes []models.InstrumentQuote, explosiveMove float64) SentimentResult {
	normal := SentimentResult{
		Condition: NormalMood,
		Signal:    "No extreme sentiment detected",
		Action:    "Continue normal trading",
	}
	if len(quotes) == 0 {
		return normal
	}

	var explosiveUp, explosiveDown int
	for _, q := range quotes {
		if q.PctChange > explosiveMove {
			explosiveUp++
		} else if q.PctChange < -explosiveMove {
			explosiveDown++
		}
	}
	n := float64(len(quotes))

	if downPct := float64(explosiveDown) / n * 100; downPct > 15 {
		return SentimentResult{
			Condition:    Capitulation,
			Signal:       "CAPITULATION DETECTED - Potential bottom near",
			ExplosivePct: downPct,
			Action:       "Watch for reversal, prepare long entries",
		}
	}
	if upPct := float64(explosiveUp) / n * 100; upPct > 15 {
		return SentimentResult{
			Condition:    Euphoria,
			Signal:       "EUPHORIA DETECTED - Potential top near",
			ExplosivePct: upPct,
			Action:       "Book profits, tighten stops",
		}
	}
	return normal
}
