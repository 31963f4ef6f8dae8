package advanced

import (
	"math"
	"sort"

	"nse-breadth/internal/models"
)

// SectorPerformance pairs a sector with its mean percent change.
type SectorPerformance struct {
	Name      string  `json:"name"`
	AvgChange float64 `json:"avg_change"`
}

// RotationResult measures the dispersion of sector performances.
type RotationResult struct {
	Strength float64            `json:"strength"`
	Status   string             `json:"status"`
	Leader   *SectorPerformance `json:"leader,omitempty"`
	Laggard  *SectorPerformance `json:"laggard,omitempty"`
}

// Rotation computes the population standard deviation of per-sector mean
// moves. With one sector or fewer the strength is 0 and no status applies.
func Rotation(quotes []models.InstrumentQuote, sectors map[string][]string) RotationResult {
	bySymbol := make(map[string]float64, len(quotes))
	for _, q := range quotes {
		bySymbol[q.Symbol] = q.PctChange
	}

	perf := make([]SectorPerformance, 0, len(sectors))
	for name, members := range sectors {
		var sum float64
		var n int
		for _, sym := range members {
			if pct, ok := bySymbol[sym]; ok {
				sum += pct
				n++
			}
		}
		if n > 0 {
			perf = append(perf, SectorPerformance{Name: name, AvgChange: sum / float64(n)})
		}
	}

	sort.Slice(perf, func(i, j int) bool {
		if perf[i].AvgChange != perf[j].AvgChange {
			return perf[i].AvgChange > perf[j].AvgChange
		}
		return perf[i].Name < perf[j].Name
	})

	res := RotationResult{Status: "N/A"}
	if len(perf) > 0 {
		leader, laggard := perf[0], perf[len(perf)-1]
		res.Leader = &leader
		res.Laggard = &laggard
	}
	if len(perf) > 1 {
		res.Strength = stddev(perf)
		res.Status = rotationStatus(res.Strength)
	}
	return res
}

func stddev(perf []SectorPerformance) float64 {
	var sum float64
	for _, p := range perf {
		sum += p.AvgChange
	}
	mean := sum / float64(len(perf))

	var ss float64
	for _, p := range perf {
		d := p.AvgChange - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(perf)))
}

func rotationStatus(strength float64) string {
	switch {
	case strength > 2.0:
		return "STRONG ROTATION - Divergent sector moves"
	case strength > 1.0:
		return "MODERATE ROTATION - Some divergence"
	default:
		return "WEAK ROTATION - Sectors moving together"
	}
}
