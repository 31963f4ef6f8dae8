package breadth

import (
	"math"
	"testing"

	"nse-breadth/internal/models"
)

func classify(t *testing.T, quotes []models.InstrumentQuote) []models.ClassifiedInstrument {
	t.Helper()
	return NewClassifier(DefaultThresholds()).ClassifyAll(quotes)
}

func TestScoreEmptyInput(t *testing.T) {
	snap := Score(nil)
	if snap.Score != 0 {
		t.Errorf("empty input score = %v, want 0", snap.Score)
	}
	if snap.BullBearRatio.Defined {
		t.Errorf("empty input bull/bear ratio should be undefined")
	}
}

func TestScoreAllStrongBulls(t *testing.T) {
	var quotes []models.InstrumentQuote
	for i := 0; i < 5; i++ {
		quotes = append(quotes, quote("S", 4, 1.5))
	}
	snap := Score(classify(t, quotes))
	if snap.Score != 2.0 {
		t.Errorf("all strong bulls score = %v, want 2.0", snap.Score)
	}
	if snap.BullBearRatio.Defined {
		t.Errorf("no bears: ratio should be undefined, got %v", snap.BullBearRatio.Value)
	}
}

func TestScoreMixedMarket(t *testing.T) {
	// Six strong bulls and four strong bears over ten stocks:
	// (2*6 - 2*4) / 10 = 0.4
	var quotes []models.InstrumentQuote
	for i := 0; i < 6; i++ {
		quotes = append(quotes, quote("UP", 3, 1.5))
	}
	for i := 0; i < 4; i++ {
		quotes = append(quotes, quote("DN", -3, 1.5))
	}

	snap := Score(classify(t, quotes))
	if math.Abs(snap.Score-0.4) > 1e-12 {
		t.Errorf("score = %v, want 0.4", snap.Score)
	}
	if !snap.BullBearRatio.Defined || math.Abs(snap.BullBearRatio.Value-1.5) > 1e-12 {
		t.Errorf("bull/bear ratio = %+v, want 1.5", snap.BullBearRatio)
	}
	if snap.TotalBulls != 6 || snap.TotalBears != 4 {
		t.Errorf("bulls/bears = %d/%d, want 6/4", snap.TotalBulls, snap.TotalBears)
	}
}

func TestScoreRegimeBoundary(t *testing.T) {
	// Six strong bulls, four weak bears gives (12-4)/10 = 0.8 exactly,
	// which must land in STRONG_BULL, not EXTREME_BULL.
	var quotes []models.InstrumentQuote
	for i := 0; i < 6; i++ {
		quotes = append(quotes, quote("UP", 3, 1.5))
	}
	for i := 0; i < 4; i++ {
		quotes = append(quotes, quote("DN", -3, 0.5))
	}

	snap := Score(classify(t, quotes))
	if math.Abs(snap.Score-0.8) > 1e-12 {
		t.Fatalf("score = %v, want 0.8", snap.Score)
	}

	call := NewRegimeClassifier(DefaultThresholds()).Classify(snap.Score, 60)
	if call.Regime.Key != models.RegimeStrongBull {
		t.Errorf("score 0.8 mapped to %s, want STRONG_BULL", call.Regime.Key)
	}
}

func TestScoreCountsSumToTotal(t *testing.T) {
	quotes := []models.InstrumentQuote{
		quote("A", 4, 1.5),
		quote("B", 2.5, 0.8),
		quote("C", 0.5, 1.2),
		quote("D", -2.5, 0.8),
		quote("E", -4, 1.5),
	}
	snap := Score(classify(t, quotes))
	sum := snap.StrongBulls + snap.WeakBulls + snap.Neutral + snap.WeakBears + snap.StrongBears
	if sum != snap.Total || snap.Total != 5 {
		t.Errorf("category counts sum %d, total %d, want both 5", sum, snap.Total)
	}
}
