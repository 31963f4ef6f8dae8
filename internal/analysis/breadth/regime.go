package breadth

import "nse-breadth/internal/models"

// NarrowLeadershipWarning is appended to the regime action by presentation
// layers when a positive score rides on weak sector participation.
const NarrowLeadershipWarning = "WARNING: Narrow leadership (low participation) - Reduce sizing by 30%"

var regimes = map[models.RegimeKey]models.Regime{
	models.RegimeExtremeBull: {
		Key:    models.RegimeExtremeBull,
		Name:   "EXTREME BULL",
		Action: "MAXIMUM AGGRESSION - Take all long setups, full sizing (100%)",
	},
	models.RegimeStrongBull: {
		Key:    models.RegimeStrongBull,
		Name:   "STRONG BULL",
		Action: "Take all valid long setups, 80-100% sizing",
	},
	models.RegimeWeakBull: {
		Key:    models.RegimeWeakBull,
		Name:   "WEAK BULL",
		Action: "Selective longs only (high RS stocks), 50% sizing",
	},
	models.RegimeNoTrade: {
		Key:    models.RegimeNoTrade,
		Name:   "NO TRADE ZONE",
		Action: "NO NEW ENTRIES - Trail winners, cut losers, cash mode",
	},
	models.RegimeWeakBear: {
		Key:    models.RegimeWeakBear,
		Name:   "WEAK BEAR",
		Action: "Selective shorts only, 50% sizing, no longs",
	},
	models.RegimeStrongBear: {
		Key:    models.RegimeStrongBear,
		Name:   "STRONG BEAR",
		Action: "Take all short setups, 80-100% sizing, no longs",
	},
	models.RegimeExtremeBear: {
		Key:    models.RegimeExtremeBear,
		Name:   "EXTREME BEAR",
		Action: "MAXIMUM SHORT AGGRESSION - Full sizing, no longs",
	},
}

// RegimeByKey looks up a regime definition.
func RegimeByKey(key models.RegimeKey) (models.Regime, bool) {
	r, ok := regimes[key]
	return r, ok
}

// RegimeClassifier maps a breadth score and sector participation to a
// trading regime.
type RegimeClassifier struct {
	t Thresholds
}

// NewRegimeClassifier creates a regime classifier with the given thresholds.
func NewRegimeClassifier(t Thresholds) *RegimeClassifier {
	return &RegimeClassifier{t: t}
}

// Classify maps a score to its regime band. Only the extreme-bull boundary
// is strict: a score of exactly ExtremeBull stays StrongBull. A positive
// score with participation below WeakParticipation sets NarrowLeadership;
// the regime itself is never downgraded.
func (r *RegimeClassifier) Classify(score, participationPct float64) models.RegimeCall {
	var key models.RegimeKey
	switch {
	case score > r.t.ExtremeBull:
		key = models.RegimeExtremeBull
	case score >= r.t.StrongBull:
		key = models.RegimeStrongBull
	case score >= r.t.WeakBull:
		key = models.RegimeWeakBull
	case score >= r.t.NoTradeLow:
		key = models.RegimeNoTrade
	case score >= r.t.WeakBear:
		key = models.RegimeWeakBear
	case score >= r.t.StrongBear:
		key = models.RegimeStrongBear
	default:
		key = models.RegimeExtremeBear
	}

	return models.RegimeCall{
		Regime:           regimes[key],
		Score:            score,
		ParticipationPct: participationPct,
		NarrowLeadership: participationPct < r.t.WeakParticipation && score > 0,
	}
}
