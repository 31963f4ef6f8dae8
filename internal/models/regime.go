package models

// RegimeKey identifies a market regime band.
type RegimeKey string

const (
	RegimeExtremeBull RegimeKey = "EXTREME_BULL"
	RegimeStrongBull  RegimeKey = "STRONG_BULL"
	RegimeWeakBull    RegimeKey = "WEAK_BULL"
	RegimeNoTrade     RegimeKey = "NO_TRADE"
	RegimeWeakBear    RegimeKey = "WEAK_BEAR"
	RegimeStrongBear  RegimeKey = "STRONG_BEAR"
	RegimeExtremeBear RegimeKey = "EXTREME_BEAR"
)

// Regime is a regime band with its display name and the trading action it
// prescribes.
type Regime struct {
	Key    RegimeKey `json:"key"`
	Name   string    `json:"name"`
	Action string    `json:"action"`
}

// RegimeCall is the regime decision for one analysis run. NarrowLeadership
// flags a positive score carried by weak participation; the regime itself is
// not downgraded, presentation layers append the sizing warning.
type RegimeCall struct {
	Regime           Regime  `json:"regime"`
	Score            float64 `json:"score"`
	ParticipationPct float64 `json:"participation_pct"`
	NarrowLeadership bool    `json:"narrow_leadership"`
}
