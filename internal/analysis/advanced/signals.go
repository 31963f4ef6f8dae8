package advanced

// Signal is a concrete trading instruction derived from breadth and
// participation.
type Signal struct {
	Type     string `json:"type"`     // BUY, SELL, WARNING, NEUTRAL
	Strength string `json:"strength"` // STRONG, MODERATE, WEAK
	Message  string `json:"message"`
}

// TradingSignals maps breadth score and sector participation to at most
// one signal. The conditions are evaluated in priority order; scores in
// the gaps produce no signal.
func TradingSignals(breadthScore, sectorParticipation float64) []Signal {
	switch {
	case breadthScore > 0.5 && sectorParticipation > 70:
		return []Signal{{
			Type:     "BUY",
			Strength: "STRONG",
			Message:  "Strong buy signal - Broad-based rally with high participation",
		}}
	case breadthScore > 0 && sectorParticipation < 40:
		return []Signal{{
			Type:     "WARNING",
			Strength: "MODERATE",
			Message:  "Narrow leadership warning - Reduce exposure",
		}}
	case breadthScore < -0.5:
		return []Signal{{
			Type:     "SELL",
			Strength: "STRONG",
			Message:  "Strong sell signal - Broad-based decline",
		}}
	case breadthScore > -0.2 && breadthScore < 0.2:
		return []Signal{{
			Type:     "NEUTRAL",
			Strength: "WEAK",
			Message:  "No clear signal - Stay in cash or tight ranges",
		}}
	default:
		return nil
	}
}
