package breadth

import (
	"sort"

	"nse-breadth/internal/models"
)

// SectorAggregator buckets quotes by sector and scores each sector by move
// magnitude rather than volume-confirmed category.
type SectorAggregator struct {
	t       Thresholds
	sectors map[string][]string
}

// NewSectorAggregator creates an aggregator over the given sector map.
func NewSectorAggregator(t Thresholds, sectors map[string][]string) *SectorAggregator {
	return &SectorAggregator{t: t, sectors: sectors}
}

// Aggregate computes per-sector breadth. Sectors with no quoted members
// are omitted and excluded from the participation denominator.
func (a *SectorAggregator) Aggregate(quotes []models.InstrumentQuote) models.SectorSnapshot {
	bySymbol := make(map[string]models.InstrumentQuote, len(quotes))
	for _, q := range quotes {
		bySymbol[q.Symbol] = q
	}

	snap := models.SectorSnapshot{Sectors: make(map[string]models.SectorBreadth)}
	for name, members := range a.sectors {
		var sb models.SectorBreadth
		var sum float64
		for _, sym := range members {
			q, ok := bySymbol[sym]
			if !ok {
				continue
			}
			sb.Total++
			sum += q.PctChange
			switch {
			case q.PctChange > a.t.StrongMove:
				sb.UpStrong++
			case q.PctChange > a.t.ModerateMove:
				sb.UpModerate++
			case q.PctChange < -a.t.StrongMove:
				sb.DownStrong++
			case q.PctChange < -a.t.ModerateMove:
				sb.DownModerate++
			}
		}
		if sb.Total == 0 {
			continue
		}

		sb.Net = sb.UpStrong - sb.DownStrong
		weighted := 2*sb.UpStrong + sb.UpModerate - 2*sb.DownStrong - sb.DownModerate
		sb.Score = float64(weighted) / float64(sb.Total)
		sb.AvgChange = sum / float64(sb.Total)
		switch {
		case sb.Net > 0:
			sb.Status = models.SectorBullish
		case sb.Net < 0:
			sb.Status = models.SectorBearish
		default:
			sb.Status = models.SectorNeutral
		}

		snap.Sectors[name] = sb
		snap.TotalCount++
		if sb.Status == models.SectorBullish {
			snap.BullishCount++
		}
	}

	if snap.TotalCount > 0 {
		snap.ParticipationPct = 100 * float64(snap.BullishCount) / float64(snap.TotalCount)
	}
	return snap
}

// Rank returns sectors sorted by score, best first. Names break ties so
// the order is stable across runs.
func Rank(snap models.SectorSnapshot) []models.SectorRank {
	ranks := make([]models.SectorRank, 0, len(snap.Sectors))
	for name, sb := range snap.Sectors {
		ranks = append(ranks, models.SectorRank{Name: name, Breadth: sb})
	}
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].Breadth.Score != ranks[j].Breadth.Score {
			return ranks[i].Breadth.Score > ranks[j].Breadth.Score
		}
		return ranks[i].Name < ranks[j].Name
	})
	return ranks
}

// LeadersLaggards returns the top-n and bottom-n sectors by score.
func LeadersLaggards(snap models.SectorSnapshot, n int) (leaders, laggards []models.SectorRank) {
	ranks := Rank(snap)
	if n > len(ranks) {
		n = len(ranks)
	}
	leaders = ranks[:n]
	laggards = make([]models.SectorRank, 0, n)
	for i := len(ranks) - 1; i >= len(ranks)-n; i-- {
		laggards = append(laggards, ranks[i])
	}
	return leaders, laggards
}
