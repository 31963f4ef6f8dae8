package breadth

import "nse-breadth/internal/models"

// Magnitude buckets quotes into six directional move-size bands and
// computes the magnitude-weighted ultra score. The up and down bands are
// mirrored, including their edge inclusivity: exactly +3% counts strong
// up, exactly -3% counts strong down.
func Magnitude(t Thresholds, quotes []models.InstrumentQuote) models.MagnitudeSnapshot {
	var snap models.MagnitudeSnapshot
	for _, q := range quotes {
		pct := q.PctChange
		switch {
		case pct > t.ExplosiveMove:
			snap.ExplosiveUp++
		case pct >= t.StrongExplosive:
			snap.StrongUp++
		case pct >= t.StrongMove:
			snap.ModerateUp++
		case pct < -t.ExplosiveMove:
			snap.ExplosiveDown++
		case pct <= -t.StrongExplosive:
			snap.StrongDown++
		case pct <= -t.StrongMove:
			snap.ModerateDown++
		}
	}

	if n := len(quotes); n > 0 {
		weighted := 3*snap.ExplosiveUp + 2*snap.StrongUp + snap.ModerateUp -
			3*snap.ExplosiveDown - 2*snap.StrongDown - snap.ModerateDown
		snap.UltraScore = float64(weighted) / float64(n)
	}
	return snap
}
