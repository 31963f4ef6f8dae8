package advanced

import (
	"nse-breadth/internal/errors"
	"nse-breadth/internal/models"
)

// FearGreedInputs are the five raw series feeding the index, reduced to
// the values the step tables consume. Synthetic marks inputs where the
// VIX or participation history was approximated from the current value.
type FearGreedInputs struct {
	Breadth3Day       float64 `json:"breadth_3day"`
	BreadthToday      float64 `json:"breadth_today"`
	VIX3Day           float64 `json:"vix_3day"`
	VIXDay1           float64 `json:"vix_day1"`
	VIXDay3           float64 `json:"vix_day3"`
	Participation3Day float64 `json:"participation_3day"`
	Synthetic         bool    `json:"synthetic"`
}

// FearGreedComponent is one weighted sub-score of the index.
type FearGreedComponent struct {
	Name   string  `json:"name"`
	Raw    float64 `json:"raw"`
	Weight float64 `json:"weight"`
	Score  float64 `json:"score"`
}

// FearGreedResult is the composite 0-100 index with its regime band.
type FearGreedResult struct {
	Total      float64              `json:"total_index"`
	Regime     string               `json:"regime"`
	Components []FearGreedComponent `json:"components"`
	Synthetic  bool                 `json:"synthetic"`
}

// FearGreed computes the composite fear-greed index from its five inputs
// using fixed step tables: 3-day breadth (40%), breadth momentum (15%),
// 3-day VIX level (25%), VIX direction (10%) and 3-day participation (10%).
func FearGreed(in FearGreedInputs) FearGreedResult {
	c1 := breadthLevelScore(in.Breadth3Day)
	c2 := breadthMomentumScore(in.BreadthToday - in.Breadth3Day)
	c3 := vixLevelScore(in.VIX3Day)
	c4 := vixDirectionScore(in.VIXDay3 - in.VIXDay1)
	c5 := participationScore(in.Participation3Day)

	components := []FearGreedComponent{
		{Name: "Breadth 3-Day Average", Raw: c1, Weight: 0.40, Score: c1 * 0.40},
		{Name: "Breadth Momentum", Raw: c2, Weight: 0.15, Score: c2 * 0.15},
		{Name: "VIX Level", Raw: c3, Weight: 0.25, Score: c3 * 0.25},
		{Name: "VIX Direction", Raw: c4, Weight: 0.10, Score: c4 * 0.10},
		{Name: "Participation", Raw: c5, Weight: 0.10, Score: c5 * 0.10},
	}

	var total float64
	for _, c := range components {
		total += c.Score
	}

	return FearGreedResult{
		Total:      total,
		Regime:     fearGreedRegime(total),
		Components: components,
		Synthetic:  in.Synthetic,
	}
}

// BuildFearGreedInputs reduces the history to fear-greed inputs. It needs
// at least three records; when the stored rows lack VIX or participation,
// it approximates a short history from the current readings and marks the
// result synthetic. currentVIX must be present when no stored VIX exists.
func BuildFearGreedInputs(history []models.HistoryRecord, currentVIX *float64, currentParticipation float64) (FearGreedInputs, error) {
	if len(history) < 3 {
		return FearGreedInputs{}, errors.Wrapf(errors.ErrInsufficientData,
			"fear-greed index needs 3 days of history, have %d", len(history))
	}

	last3 := history[len(history)-3:]
	var in FearGreedInputs
	in.Breadth3Day = (last3[0].Score + last3[1].Score + last3[2].Score) / 3
	in.BreadthToday = last3[2].Score

	if last3[0].VIX != nil && last3[1].VIX != nil && last3[2].VIX != nil {
		in.VIXDay1 = *last3[0].VIX
		in.VIXDay3 = *last3[2].VIX
		in.VIX3Day = (*last3[0].VIX + *last3[1].VIX + *last3[2].VIX) / 3
	} else {
		if currentVIX == nil {
			return FearGreedInputs{}, errors.Wrap(errors.ErrNoData, "no VIX reading available")
		}
		// Approximate a gently falling VIX from the current level.
		day1, day2, day3 := *currentVIX*1.05, *currentVIX*1.02, *currentVIX
		in.VIXDay1, in.VIXDay3 = day1, day3
		in.VIX3Day = (day1 + day2 + day3) / 3
		in.Synthetic = true
	}

	if last3[0].Participation != nil && last3[1].Participation != nil && last3[2].Participation != nil {
		in.Participation3Day = (*last3[0].Participation + *last3[1].Participation + *last3[2].Participation) / 3
	} else {
		day1, day2, day3 := currentParticipation*0.95, currentParticipation*0.98, currentParticipation
		in.Participation3Day = (day1 + day2 + day3) / 3
		in.Synthetic = true
	}

	return in, nil
}

func breadthLevelScore(b float64) float64 {
	switch {
	case b > 0.8:
		return 97.5
	case b >= 0.6:
		return 87
	case b >= 0.4:
		return 72
	case b >= 0.2:
		return 59.5
	case b >= 0.0:
		return 49.5
	case b >= -0.2:
		return 39.5
	case b >= -0.4:
		return 29.5
	case b >= -0.6:
		return 17
	default:
		return 4.5
	}
}

func breadthMomentumScore(m float64) float64 {
	switch {
	case m >= 0.15:
		return 100
	case m >= 0.10:
		return 92
	case m >= 0.05:
		return 77
	case m >= 0.0:
		return 62
	case m >= -0.05:
		return 49.5
	case m >= -0.10:
		return 37
	case m >= -0.15:
		return 22
	default:
		return 7
	}
}

func vixLevelScore(v float64) float64 {
	switch {
	case v < 12:
		return 95
	case v < 14:
		return 82
	case v < 16:
		return 67
	case v < 18:
		return 54.5
	case v < 20:
		return 44.5
	case v < 23:
		return 32
	case v < 27:
		return 17
	default:
		return 4.5
	}
}

func vixDirectionScore(change float64) float64 {
	switch {
	case change <= -3:
		return 100
	case change <= -2:
		return 85
	case change <= -1:
		return 70
	case change <= 0:
		return 55
	case change <= 1:
		return 45
	case change <= 2:
		return 30
	case change <= 3:
		return 15
	default:
		return 0
	}
}

func participationScore(p float64) float64 {
	switch {
	case p > 80:
		return 100
	case p >= 70:
		return 92
	case p >= 60:
		return 77
	case p >= 50:
		return 62
	case p >= 40:
		return 47
	case p >= 30:
		return 32
	default:
		return 17
	}
}

func fearGreedRegime(total float64) string {
	switch {
	case total >= 90:
		return "EXTREME GREED"
	case total >= 75:
		return "GREED"
	case total >= 60:
		return "MODERATE GREED"
	case total >= 50:
		return "NEUTRAL"
	case total >= 40:
		return "MILD FEAR"
	case total >= 25:
		return "FEAR"
	case total >= 10:
		return "EXTREME FEAR"
	default:
		return "PANIC"
	}
}
