package breadth

import (
	"testing"

	"nse-breadth/internal/models"
)

func TestRegimeBands(t *testing.T) {
	rc := NewRegimeClassifier(DefaultThresholds())

	tests := []struct {
		score float64
		want  models.RegimeKey
	}{
		{1.5, models.RegimeExtremeBull},
		{0.81, models.RegimeExtremeBull},
		{0.8, models.RegimeStrongBull}, // strict upper boundary
		{0.4, models.RegimeStrongBull},
		{0.39, models.RegimeWeakBull},
		{0.15, models.RegimeWeakBull},
		{0.14, models.RegimeNoTrade},
		{0.0, models.RegimeNoTrade},
		{-0.15, models.RegimeNoTrade},
		{-0.16, models.RegimeWeakBear},
		{-0.4, models.RegimeWeakBear},
		{-0.41, models.RegimeStrongBear},
		{-0.8, models.RegimeStrongBear},
		{-0.81, models.RegimeExtremeBear},
		{-2.0, models.RegimeExtremeBear},
	}

	for _, tt := range tests {
		call := rc.Classify(tt.score, 60)
		if call.Regime.Key != tt.want {
			t.Errorf("score %v -> %s, want %s", tt.score, call.Regime.Key, tt.want)
		}
	}
}

func TestRegimeNarrowLeadership(t *testing.T) {
	rc := NewRegimeClassifier(DefaultThresholds())

	tests := []struct {
		name          string
		score         float64
		participation float64
		want          bool
	}{
		{"positive score, weak participation", 0.5, 30, true},
		{"positive score, healthy participation", 0.5, 70, false},
		{"positive score, participation at cutoff", 0.5, 40, false},
		{"negative score, weak participation", -0.5, 30, false},
		{"zero score, weak participation", 0, 30, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			call := rc.Classify(tt.score, tt.participation)
			if call.NarrowLeadership != tt.want {
				t.Errorf("narrow leadership = %v, want %v", call.NarrowLeadership, tt.want)
			}
		})
	}
}

func TestRegimeNarrowLeadershipDoesNotChangeRegime(t *testing.T) {
	rc := NewRegimeClassifier(DefaultThresholds())
	flagged := rc.Classify(0.5, 20)
	clean := rc.Classify(0.5, 80)
	if flagged.Regime.Key != clean.Regime.Key {
		t.Errorf("narrow leadership altered regime: %s vs %s", flagged.Regime.Key, clean.Regime.Key)
	}
}

func TestRegimeByKey(t *testing.T) {
	r, ok := RegimeByKey(models.RegimeNoTrade)
	if !ok {
		t.Fatal("NO_TRADE regime missing")
	}
	if r.Name != "NO TRADE ZONE" {
		t.Errorf("name = %q", r.Name)
	}
	if _, ok := RegimeByKey("BOGUS"); ok {
		t.Error("unknown key should not resolve")
	}
}
