package breadth

import "nse-breadth/internal/models"

// Score computes the weighted breadth score over classified instruments:
// strong categories count double, neutral counts nothing. An empty input
// scores zero with an undefined bull/bear ratio.
func Score(items []models.ClassifiedInstrument) models.BreadthSnapshot {
	var snap models.BreadthSnapshot
	for _, it := range items {
		switch it.Category {
		case models.StrongBull:
			snap.StrongBulls++
		case models.WeakBull:
			snap.WeakBulls++
		case models.Neutral:
			snap.Neutral++
		case models.WeakBear:
			snap.WeakBears++
		case models.StrongBear:
			snap.StrongBears++
		}
	}
	snap.Total = len(items)
	snap.TotalBulls = snap.StrongBulls + snap.WeakBulls
	snap.TotalBears = snap.StrongBears + snap.WeakBears

	if snap.Total > 0 {
		weighted := 2*snap.StrongBulls + snap.WeakBulls - 2*snap.StrongBears - snap.WeakBears
		snap.Score = float64(weighted) / float64(snap.Total)
	}

	if snap.TotalBears > 0 {
		snap.BullBearRatio = models.DefinedRatio(float64(snap.TotalBulls) / float64(snap.TotalBears))
	} else {
		snap.BullBearRatio = models.UndefinedRatio()
	}
	return snap
}
