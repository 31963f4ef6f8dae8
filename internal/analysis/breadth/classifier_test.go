package breadth

import (
	"testing"

	"nse-breadth/internal/models"
)

func quote(sym string, pct, volRatio float64) models.InstrumentQuote {
	return models.InstrumentQuote{
		Symbol:      sym,
		Price:       100 * (1 + pct/100),
		PrevClose:   100,
		PctChange:   pct,
		Volume:      1000000,
		AvgVolume:   1000000,
		VolumeRatio: volRatio,
	}
}

func TestClassify(t *testing.T) {
	c := NewClassifier(DefaultThresholds())

	tests := []struct {
		name     string
		pct      float64
		volRatio float64
		want     models.Category
	}{
		{"strong bull", 3.5, 1.8, models.StrongBull},
		{"weak bull low volume", 3.5, 0.9, models.WeakBull},
		{"weak bull volume exactly at cutoff", 3.5, 1.0, models.WeakBull},
		{"strong bear", -3.5, 1.8, models.StrongBear},
		{"weak bear low volume", -3.5, 0.9, models.WeakBear},
		{"flat", 0.0, 2.5, models.Neutral},
		{"exactly strong move is neutral", 2.0, 1.8, models.Neutral},
		{"exactly negative strong move is neutral", -2.0, 1.8, models.Neutral},
		{"just above strong move", 2.0001, 1.0001, models.StrongBull},
		{"just below negative strong move", -2.0001, 0.9999, models.WeakBear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(quote("TEST", tt.pct, tt.volRatio))
			if got != tt.want {
				t.Errorf("Classify(pct=%v, vol=%v) = %v, want %v", tt.pct, tt.volRatio, got, tt.want)
			}
		})
	}
}

func TestClassifyAllPreservesOrder(t *testing.T) {
	c := NewClassifier(DefaultThresholds())
	quotes := []models.InstrumentQuote{
		quote("A", 3, 1.5),
		quote("B", -3, 0.5),
		quote("C", 0, 1.0),
	}

	out := c.ClassifyAll(quotes)
	if len(out) != 3 {
		t.Fatalf("expected 3 classified instruments, got %d", len(out))
	}
	for i, q := range quotes {
		if out[i].Symbol != q.Symbol {
			t.Errorf("position %d: got %s, want %s", i, out[i].Symbol, q.Symbol)
		}
	}
	if out[0].Category != models.StrongBull || out[1].Category != models.WeakBear || out[2].Category != models.Neutral {
		t.Errorf("unexpected categories: %v %v %v", out[0].Category, out[1].Category, out[2].Category)
	}
}
