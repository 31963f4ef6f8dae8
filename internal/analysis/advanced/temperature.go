// Package advanced implements composite market indices layered on top of
// the raw quote table: temperature, internals, concentration risk, sector
// rotation, sentiment extremes, trading signals and the fear-greed index.
package advanced

import "nse-breadth/internal/models"

// TemperatureResult is the blended 0-100 market temperature.
type TemperatureResult struct {
	Temperature float64 `json:"temperature"`
	Status      string  `json:"status"`
	// Component points: breadth 0-40, momentum 0-30, volume 0-30.
	Breadth  float64 `json:"breadth"`
	Momentum float64 `json:"momentum"`
	Volume   float64 `json:"volume"`
}

// Temperature blends advancing share, average move and average volume
// ratio into one 0-100 reading. An empty input reads 0 (COLD).
func Temperature(quotes []models.InstrumentQuote) TemperatureResult {
	if len(quotes) == 0 {
		return TemperatureResult{Status: temperatureStatus(0)}
	}

	var up int
	var sumPct, sumVol float64
	for _, q := range quotes {
		if q.PctChange > 0 {
			up++
		}
		sumPct += q.PctChange
		sumVol += q.VolumeRatio
	}
	n := float64(len(quotes))

	breadthPts := float64(up) / n * 40
	momentumPts := clamp((sumPct/n+2)/4*30, 0, 30)
	volumePts := clamp((sumVol/n-0.5)/1.5*30, 0, 30)

	temp := breadthPts + momentumPts + volumePts
	return TemperatureResult{
		Temperature: temp,
		Status:      temperatureStatus(temp),
		Breadth:     breadthPts,
		Momentum:    momentumPts,
		Volume:      volumePts,
	}
}

func temperatureStatus(temp float64) string {
	switch {
	case temp > 80:
		return "OVERHEATED (Potential reversal)"
	case temp > 60:
		return "HOT (Strong bullish)"
	case temp > 40:
		return "WARM (Moderate bullish)"
	case temp > 30:
		return "NEUTRAL"
	case temp > 20:
		return "COOL (Moderate bearish)"
	default:
		return "COLD (Strong bearish)"
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
