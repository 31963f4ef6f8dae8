package models

import (
	"encoding/json"
	"fmt"
)

// Ratio is a division result that may be undefined (zero denominator).
// Modeled as a tagged value rather than ±Inf so that serialization and
// comparison stay well-defined.
type Ratio struct {
	Defined bool
	Value   float64
}

// DefinedRatio returns a defined ratio value.
func DefinedRatio(v float64) Ratio { return Ratio{Defined: true, Value: v} }

// UndefinedRatio returns the undefined sentinel.
func UndefinedRatio() Ratio { return Ratio{} }

// String formats the ratio for display; undefined renders as "inf".
func (r Ratio) String() string {
	if !r.Defined {
		return "inf"
	}
	return fmt.Sprintf("%.2f", r.Value)
}

// MarshalJSON encodes undefined ratios as null.
func (r Ratio) MarshalJSON() ([]byte, error) {
	if !r.Defined {
		return []byte("null"), nil
	}
	return json.Marshal(r.Value)
}

// UnmarshalJSON decodes null as the undefined sentinel.
func (r *Ratio) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = Ratio{}
		return nil
	}
	r.Defined = true
	return json.Unmarshal(data, &r.Value)
}

// BreadthSnapshot holds per-category counts and the weighted breadth score
// for one analysis run.
type BreadthSnapshot struct {
	Score         float64 `json:"score"`
	StrongBulls   int     `json:"strong_bulls"`
	WeakBulls     int     `json:"weak_bulls"`
	Neutral       int     `json:"neutral"`
	WeakBears     int     `json:"weak_bears"`
	StrongBears   int     `json:"strong_bears"`
	Total         int     `json:"total"`
	TotalBulls    int     `json:"total_bulls"`
	TotalBears    int     `json:"total_bears"`
	BullBearRatio Ratio   `json:"bull_bear_ratio"`
}

// Count returns the count for a category.
func (b BreadthSnapshot) Count(c Category) int {
	switch c {
	case StrongBull:
		return b.StrongBulls
	case WeakBull:
		return b.WeakBulls
	case Neutral:
		return b.Neutral
	case WeakBear:
		return b.WeakBears
	case StrongBear:
		return b.StrongBears
	}
	return 0
}

// SectorStatus is the net direction of a sector.
type SectorStatus string

const (
	SectorBullish SectorStatus = "Bullish"
	SectorBearish SectorStatus = "Bearish"
	SectorNeutral SectorStatus = "Neutral"
)

// SectorBreadth holds move-magnitude counts and the weighted score for one
// sector.
type SectorBreadth struct {
	UpStrong     int          `json:"up_strong"`
	UpModerate   int          `json:"up_moderate"`
	DownModerate int          `json:"down_moderate"`
	DownStrong   int          `json:"down_strong"`
	Total        int          `json:"total"`
	Net          int          `json:"net"`
	Score        float64      `json:"score"`
	AvgChange    float64      `json:"avg_change"`
	Status       SectorStatus `json:"status"`
}

// SectorSnapshot maps sector names to their breadth. Sectors with no
// matching instruments are omitted entirely, which also keeps them out of
// the participation denominator.
type SectorSnapshot struct {
	Sectors          map[string]SectorBreadth `json:"sectors"`
	BullishCount     int                      `json:"bullish_count"`
	TotalCount       int                      `json:"total_count"`
	ParticipationPct float64                  `json:"participation_pct"`
}

// SectorRank is a sector paired with its breadth, used for sorted listings.
type SectorRank struct {
	Name    string        `json:"name"`
	Breadth SectorBreadth `json:"breadth"`
}

// MagnitudeSnapshot holds the six directional move-size buckets and the
// magnitude-weighted ultra score.
type MagnitudeSnapshot struct {
	UltraScore    float64 `json:"ultra_score"`
	ExplosiveUp   int     `json:"explosive_up"`
	StrongUp      int     `json:"strong_up"`
	ModerateUp    int     `json:"moderate_up"`
	ExplosiveDown int     `json:"explosive_down"`
	StrongDown    int     `json:"strong_down"`
	ModerateDown  int     `json:"moderate_down"`
}
