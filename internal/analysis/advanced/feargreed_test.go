package advanced

import (
	"math"
	"testing"
	"time"

	"nse-breadth/internal/errors"
	"nse-breadth/internal/models"
)

func record(day int, score float64, vix, participation *float64) models.HistoryRecord {
	return models.HistoryRecord{
		Date:          time.Date(2026, 8, day, 0, 0, 0, 0, time.UTC),
		Score:         score,
		Regime:        "NO_TRADE",
		VIX:           vix,
		Participation: participation,
	}
}

func fptr(v float64) *float64 { return &v }

func TestFearGreedComponents(t *testing.T) {
	in := FearGreedInputs{
		Breadth3Day:       0.5,  // 72
		BreadthToday:      0.62, // momentum 0.12 -> 92
		VIX3Day:           13,   // 82
		VIXDay1:           14,
		VIXDay3:           12, // change -2 -> 85
		Participation3Day: 65, // 77
	}

	res := FearGreed(in)
	want := 72*0.40 + 92*0.15 + 82*0.25 + 85*0.10 + 77*0.10
	if math.Abs(res.Total-want) > 1e-9 {
		t.Errorf("total = %v, want %v", res.Total, want)
	}
	if res.Regime != "GREED" {
		t.Errorf("regime = %q, want GREED", res.Regime)
	}
	if len(res.Components) != 5 {
		t.Fatalf("components = %d, want 5", len(res.Components))
	}
	var sum float64
	for _, c := range res.Components {
		sum += c.Score
	}
	if math.Abs(sum-res.Total) > 1e-9 {
		t.Errorf("component scores sum %v != total %v", sum, res.Total)
	}
}

func TestFearGreedBreadthBoundary(t *testing.T) {
	// Exactly 0.8 lands in the >=0.6 band; only strictly above 0.8 gets
	// the top step.
	at := FearGreed(FearGreedInputs{Breadth3Day: 0.8, BreadthToday: 0.8})
	above := FearGreed(FearGreedInputs{Breadth3Day: 0.81, BreadthToday: 0.81})
	if at.Components[0].Raw != 87 {
		t.Errorf("breadth 0.8 raw = %v, want 87", at.Components[0].Raw)
	}
	if above.Components[0].Raw != 97.5 {
		t.Errorf("breadth 0.81 raw = %v, want 97.5", above.Components[0].Raw)
	}
}

func TestFearGreedRegimeBands(t *testing.T) {
	tests := []struct {
		total float64
		want  string
	}{
		{95, "EXTREME GREED"},
		{90, "EXTREME GREED"},
		{75, "GREED"},
		{60, "MODERATE GREED"},
		{50, "NEUTRAL"},
		{40, "MILD FEAR"},
		{25, "FEAR"},
		{10, "EXTREME FEAR"},
		{5, "PANIC"},
	}
	for _, tt := range tests {
		if got := fearGreedRegime(tt.total); got != tt.want {
			t.Errorf("fearGreedRegime(%v) = %q, want %q", tt.total, got, tt.want)
		}
	}
}

func TestBuildFearGreedInputsRequiresHistory(t *testing.T) {
	history := []models.HistoryRecord{
		record(1, 0.1, nil, nil),
		record(2, 0.2, nil, nil),
	}
	_, err := BuildFearGreedInputs(history, fptr(15), 50)
	if !errors.Is(err, errors.ErrInsufficientData) {
		t.Errorf("err = %v, want ErrInsufficientData", err)
	}
}

func TestBuildFearGreedInputsRealSeries(t *testing.T) {
	history := []models.HistoryRecord{
		record(1, 0.1, fptr(16), fptr(50)),
		record(2, 0.2, fptr(15), fptr(55)),
		record(3, 0.3, fptr(14), fptr(60)),
	}

	in, err := BuildFearGreedInputs(history, nil, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Synthetic {
		t.Error("full stored series should not be synthetic")
	}
	if math.Abs(in.Breadth3Day-0.2) > 1e-12 || in.BreadthToday != 0.3 {
		t.Errorf("breadth inputs = %v/%v", in.Breadth3Day, in.BreadthToday)
	}
	if math.Abs(in.VIX3Day-15) > 1e-12 || in.VIXDay1 != 16 || in.VIXDay3 != 14 {
		t.Errorf("vix inputs = %v/%v/%v", in.VIX3Day, in.VIXDay1, in.VIXDay3)
	}
	if math.Abs(in.Participation3Day-55) > 1e-12 {
		t.Errorf("participation = %v, want 55", in.Participation3Day)
	}
}

func TestBuildFearGreedInputsSyntheticFallback(t *testing.T) {
	history := []models.HistoryRecord{
		record(1, 0.1, nil, nil),
		record(2, 0.2, nil, nil),
		record(3, 0.3, nil, nil),
	}

	in, err := BuildFearGreedInputs(history, fptr(20), 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !in.Synthetic {
		t.Error("approximated series must be flagged synthetic")
	}
	if in.VIXDay1 != 21 || in.VIXDay3 != 20 {
		t.Errorf("synthetic vix endpoints = %v/%v, want 21/20", in.VIXDay1, in.VIXDay3)
	}
	wantVIX := (20*1.05 + 20*1.02 + 20) / 3
	if math.Abs(in.VIX3Day-wantVIX) > 1e-9 {
		t.Errorf("synthetic vix 3day = %v, want %v", in.VIX3Day, wantVIX)
	}
	wantPart := (60*0.95 + 60*0.98 + 60) / 3
	if math.Abs(in.Participation3Day-wantPart) > 1e-9 {
		t.Errorf("synthetic participation = %v, want %v", in.Participation3Day, wantPart)
	}
}

func TestBuildFearGreedInputsNoVIXAnywhere(t *testing.T) {
	history := []models.HistoryRecord{
		record(1, 0.1, nil, fptr(50)),
		record(2, 0.2, nil, fptr(50)),
		record(3, 0.3, nil, fptr(50)),
	}
	_, err := BuildFearGreedInputs(history, nil, 50)
	if !errors.Is(err, errors.ErrNoData) {
		t.Errorf("err = %v, want ErrNoData", err)
	}
}
