package breadth

import (
	"math"
	"testing"

	"nse-breadth/internal/models"
)

var testSectors = map[string][]string{
	"Bank":  {"BANK1", "BANK2", "BANK3"},
	"IT":    {"IT1", "IT2"},
	"Metal": {"METAL1"},
	"Empty": {"GHOST1", "GHOST2"},
}

func TestAggregateBuckets(t *testing.T) {
	agg := NewSectorAggregator(DefaultThresholds(), testSectors)
	quotes := []models.InstrumentQuote{
		quote("BANK1", 3.0, 1.0),  // up strong
		quote("BANK2", 1.5, 1.0),  // up moderate
		quote("BANK3", -3.0, 1.0), // down strong
		quote("IT1", -1.5, 1.0),   // down moderate
		quote("IT2", 0.5, 1.0),    // uncounted
		quote("METAL1", 2.0, 1.0), // exactly strong move: up moderate
	}

	snap := agg.Aggregate(quotes)

	bank, ok := snap.Sectors["Bank"]
	if !ok {
		t.Fatal("Bank sector missing")
	}
	if bank.UpStrong != 1 || bank.UpModerate != 1 || bank.DownStrong != 1 || bank.DownModerate != 0 {
		t.Errorf("Bank buckets = %+v", bank)
	}
	// (2*1 + 1 - 2*1 - 0) / 3
	if math.Abs(bank.Score-1.0/3.0) > 1e-12 {
		t.Errorf("Bank score = %v, want 1/3", bank.Score)
	}
	if bank.Net != 0 || bank.Status != models.SectorNeutral {
		t.Errorf("Bank net/status = %d/%s, want 0/Neutral", bank.Net, bank.Status)
	}
	if math.Abs(bank.AvgChange-0.5) > 1e-12 {
		t.Errorf("Bank avg change = %v, want 0.5", bank.AvgChange)
	}

	it := snap.Sectors["IT"]
	if it.DownModerate != 1 || it.UpStrong != 0 || it.Total != 2 {
		t.Errorf("IT buckets = %+v", it)
	}
	if it.Status != models.SectorNeutral {
		t.Errorf("IT status = %s, want Neutral (no strong moves)", it.Status)
	}

	metal := snap.Sectors["Metal"]
	if metal.UpStrong != 0 || metal.UpModerate != 1 {
		t.Errorf("exactly 2%% should be up moderate, got %+v", metal)
	}
}

func TestAggregateOmitsEmptySectors(t *testing.T) {
	agg := NewSectorAggregator(DefaultThresholds(), testSectors)
	snap := agg.Aggregate([]models.InstrumentQuote{quote("BANK1", 3, 1.5)})

	if _, ok := snap.Sectors["Empty"]; ok {
		t.Error("sector with no quoted members must be omitted")
	}
	if snap.TotalCount != 1 {
		t.Errorf("total sectors = %d, want 1", snap.TotalCount)
	}
}

func TestAggregateParticipation(t *testing.T) {
	agg := NewSectorAggregator(DefaultThresholds(), testSectors)
	quotes := []models.InstrumentQuote{
		quote("BANK1", 3, 1.0),   // Bank bullish
		quote("IT1", -3, 1.0),    // IT bearish
		quote("METAL1", 4, 1.0),  // Metal bullish
	}

	snap := agg.Aggregate(quotes)
	if snap.BullishCount != 2 || snap.TotalCount != 3 {
		t.Fatalf("bullish/total = %d/%d, want 2/3", snap.BullishCount, snap.TotalCount)
	}
	want := 100.0 * 2 / 3
	if math.Abs(snap.ParticipationPct-want) > 1e-9 {
		t.Errorf("participation = %v, want %v", snap.ParticipationPct, want)
	}
}

func TestAggregateNoQuotes(t *testing.T) {
	agg := NewSectorAggregator(DefaultThresholds(), testSectors)
	snap := agg.Aggregate(nil)
	if snap.TotalCount != 0 || snap.ParticipationPct != 0 {
		t.Errorf("empty input: total=%d participation=%v, want 0/0", snap.TotalCount, snap.ParticipationPct)
	}
}

func TestLeadersLaggards(t *testing.T) {
	agg := NewSectorAggregator(DefaultThresholds(), testSectors)
	quotes := []models.InstrumentQuote{
		quote("BANK1", 4, 1.0),
		quote("IT1", -4, 1.0),
		quote("METAL1", 1.5, 1.0),
	}
	snap := agg.Aggregate(quotes)

	leaders, laggards := LeadersLaggards(snap, 2)
	if len(leaders) != 2 || len(laggards) != 2 {
		t.Fatalf("got %d leaders, %d laggards", len(leaders), len(laggards))
	}
	if leaders[0].Name != "Bank" {
		t.Errorf("top sector = %s, want Bank", leaders[0].Name)
	}
	if laggards[0].Name != "IT" {
		t.Errorf("bottom sector = %s, want IT", laggards[0].Name)
	}
}
