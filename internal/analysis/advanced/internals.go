package advanced

import "nse-breadth/internal/models"

// InternalsResult holds advance/decline and volume-flow internals,
// including the Arms Index (TRIN).
type InternalsResult struct {
	Advances    int          `json:"advances"`
	Declines    int          `json:"declines"`
	Unchanged   int          `json:"unchanged"`
	ADRatio     models.Ratio `json:"ad_ratio"`
	UpVolume    int64        `json:"up_volume"`
	DownVolume  int64        `json:"down_volume"`
	VolumeRatio models.Ratio `json:"volume_ratio"`
	TRIN        float64      `json:"trin"`
	TRINSignal  string       `json:"trin_signal"`
}

// Internals computes advance/decline counts, up/down volume flow and the
// Arms Index. TRIN degenerates to 0 when advances or up volume is zero.
func Internals(quotes []models.InstrumentQuote) InternalsResult {
	var res InternalsResult
	for _, q := range quotes {
		switch {
		case q.PctChange > 0:
			res.Advances++
			res.UpVolume += q.Volume
		case q.PctChange < 0:
			res.Declines++
			res.DownVolume += q.Volume
		default:
			res.Unchanged++
		}
	}

	if res.Declines > 0 {
		res.ADRatio = models.DefinedRatio(float64(res.Advances) / float64(res.Declines))
	}
	if res.DownVolume > 0 {
		res.VolumeRatio = models.DefinedRatio(float64(res.UpVolume) / float64(res.DownVolume))
	}

	// TRIN = (Declines/Advances) / (Down Volume/Up Volume)
	// Degenerates to 0 whenever a leg is empty, keeping the value finite.
	if res.Advances > 0 && res.UpVolume > 0 && res.DownVolume > 0 {
		adv := float64(res.Advances)
		dec := float64(res.Declines)
		res.TRIN = (dec / adv) / (float64(res.DownVolume) / float64(res.UpVolume))
	}
	res.TRINSignal = trinSignal(res.TRIN)
	return res
}

func trinSignal(trin float64) string {
	switch {
	case trin < 0.5:
		return "Extremely Bullish"
	case trin < 0.8:
		return "Bullish"
	case trin < 1.2:
		return "Neutral"
	case trin < 2.0:
		return "Bearish"
	default:
		return "Extremely Bearish"
	}
}
