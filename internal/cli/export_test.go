package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"nse-breadth/internal/analysis"
	"nse-breadth/internal/analysis/advanced"
	"nse-breadth/internal/analysis/breadth"
	"nse-breadth/internal/models"
)

func sampleResult() *analysis.Result {
	quotes := []models.InstrumentQuote{
		{Symbol: "AAA", Price: 103, PrevClose: 100, PctChange: 3, Volume: 2000, AvgVolume: 1000, VolumeRatio: 2},
		{Symbol: "BBB", Price: 97, PrevClose: 100, PctChange: -3, Volume: 500, AvgVolume: 1000, VolumeRatio: 0.5},
	}
	classifier := breadth.NewClassifier(breadth.DefaultThresholds())
	classified := classifier.ClassifyAll(quotes)

	regime, _ := breadth.RegimeByKey(models.RegimeNoTrade)
	return &analysis.Result{
		Date:       time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC),
		Classified: classified,
		Breadth:    breadth.Score(classified),
		Regime:     models.RegimeCall{Regime: regime, Score: 0},
		Sectors:    models.SectorSnapshot{ParticipationPct: 50},
		Signals: []advanced.Signal{
			{Type: "NEUTRAL", Strength: "WEAK", Message: "Choppy market - Reduce size or stay out"},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	if err := writeCSV(path, sampleResult()); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	if !strings.HasPrefix(content, "symbol,price,prev_close,pct_change,volume,avg_volume,volume_ratio,category") {
		t.Errorf("unexpected header: %q", strings.SplitN(content, "\n", 2)[0])
	}
	lines := strings.Split(strings.TrimSpace(content), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want header + 2 rows", len(lines))
	}
	// Rows sorted by percent change descending.
	if !strings.HasPrefix(lines[1], "AAA,") || !strings.HasPrefix(lines[2], "BBB,") {
		t.Errorf("row order: %q / %q", lines[1], lines[2])
	}
	if !strings.Contains(lines[1], "Strong Bull") {
		t.Errorf("AAA row missing category: %q", lines[1])
	}
}

func TestWriteSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.txt")
	if err := writeSummary(path, sampleResult(), "02-Jan-2006"); err != nil {
		t.Fatalf("write summary: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	for _, want := range []string{
		"21-Aug-2026",
		"NO TRADE ZONE",
		"Participation:  50.00%",
		"[NEUTRAL/WEAK] Choppy market",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("summary missing %q:\n%s", want, content)
		}
	}
}

func TestStripANSI(t *testing.T) {
	in := "\033[32mgreen\033[0m plain \033[1mbold\033[0m"
	if got := stripANSI(in); got != "green plain bold" {
		t.Errorf("stripANSI = %q", got)
	}
}
