// Package integration exercises the full stack end to end: quotes served
// by a fake chart API, fetched, analyzed and persisted to a real SQLite
// history database.
package integration

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"nse-breadth/internal/analysis"
	"nse-breadth/internal/analysis/breadth"
	"nse-breadth/internal/config"
	"nse-breadth/internal/fetcher"
	"nse-breadth/internal/logging"
	"nse-breadth/internal/models"
	"nse-breadth/internal/store"
)

// universe: six strong advancers on rising volume, four decliners on
// fading volume. Weighted score (2*6 - 1*4)/10 = 0.8, STRONG_BULL.
var (
	upSymbols   = []string{"UP1", "UP2", "UP3", "UP4", "UP5", "UP6"}
	downSymbols = []string{"DN1", "DN2", "DN3", "DN4"}
)

func chartJSON(closes []float64, volumes []int64) string {
	cs := make([]string, len(closes))
	for i, c := range closes {
		cs[i] = fmt.Sprintf("%g", c)
	}
	vs := make([]string, len(volumes))
	for i, v := range volumes {
		vs[i] = fmt.Sprintf("%d", v)
	}
	return fmt.Sprintf(
		`{"chart":{"result":[{"indicators":{"quote":[{"close":[%s],"volume":[%s]}]}}],"error":null}}`,
		strings.Join(cs, ","), strings.Join(vs, ","))
}

func newChartServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sym := strings.TrimPrefix(r.URL.Path, "/v8/finance/chart/")
		switch {
		case sym == "^INDIAVIX":
			fmt.Fprint(w, chartJSON([]float64{15.0, 14.0}, []int64{0, 0}))
		case strings.HasPrefix(sym, "UP"):
			fmt.Fprint(w, chartJSON([]float64{100.0, 103.0}, []int64{1000, 2000}))
		case strings.HasPrefix(sym, "DN"):
			fmt.Fprint(w, chartJSON([]float64{100.0, 97.0}, []int64{1000, 500}))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newStack(t *testing.T, baseURL string) (*fetcher.Fetcher, *analysis.Pipeline, store.HistoryStore) {
	t.Helper()
	logger := logging.NewLoggerWithConfig(logging.LogConfig{Level: "error"})

	f := fetcher.New(config.FetcherConfig{
		BaseURL:        baseURL,
		Timeout:        5 * time.Second,
		RequestsPerSec: 1000,
		MaxRetries:     1,
		Range:          "5d",
		Interval:       "1d",
		UserAgent:      "test",
	}, logger)

	hist, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"), 30)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { hist.Close() })

	sectors := map[string][]string{
		"Tech":  upSymbols,
		"Banks": downSymbols,
	}
	p := analysis.NewPipeline(analysis.Options{
		Thresholds:    breadth.DefaultThresholds(),
		Sectors:       sectors,
		History:       hist,
		AveragePeriod: 3,
		TrendLookback: 5,
		TopMovers:     3,
		Logger:        logger,
	})
	return f, p, hist
}

func TestFetchAnalyzePersist(t *testing.T) {
	srv := newChartServer(t)
	f, p, hist := newStack(t, srv.URL)
	ctx := context.Background()

	symbols := append(append([]string{}, upSymbols...), downSymbols...)
	quotes, stats, err := f.FetchAll(ctx, symbols)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if stats.Fetched != 10 || stats.Failed != 0 {
		t.Fatalf("stats = %+v", stats)
	}

	vq, err := f.FetchQuote(ctx, "^INDIAVIX")
	if err != nil {
		t.Fatalf("vix fetch: %v", err)
	}
	if vq.Price != 14.0 {
		t.Fatalf("vix = %v, want 14.0", vq.Price)
	}

	res, err := p.Run(ctx, quotes, &vq.Price, true)
	if err != nil {
		t.Fatalf("pipeline: %v", err)
	}

	if math.Abs(res.Breadth.Score-0.8) > 1e-9 {
		t.Errorf("score = %v, want 0.8", res.Breadth.Score)
	}
	if res.Regime.Regime.Key != models.RegimeStrongBull {
		t.Errorf("regime = %s, want STRONG_BULL (0.8 is not above the extreme cutoff)", res.Regime.Regime.Key)
	}
	if res.Breadth.StrongBulls != 6 || res.Breadth.WeakBears != 4 {
		t.Errorf("counts = %+v", res.Breadth)
	}
	if res.Sectors.ParticipationPct != 50 {
		t.Errorf("participation = %v, want 50", res.Sectors.ParticipationPct)
	}
	if res.Regime.NarrowLeadership {
		t.Error("participation at 50% should not flag narrow leadership")
	}
	if len(res.Gainers) != 3 || !strings.HasPrefix(res.Gainers[0].Symbol, "UP") {
		t.Errorf("gainers = %+v", res.Gainers)
	}

	tech, ok := res.Sectors.Sectors["Tech"]
	if !ok || tech.Status != models.SectorBullish || tech.UpStrong != 6 {
		t.Errorf("tech sector = %+v", tech)
	}
	banks := res.Sectors.Sectors["Banks"]
	if banks.Status != models.SectorBearish || banks.DownStrong != 4 {
		t.Errorf("banks sector = %+v", banks)
	}

	// Re-run on the same trading day: the stored row is replaced.
	if _, err := p.Run(ctx, quotes, &vq.Price, true); err != nil {
		t.Fatalf("second run: %v", err)
	}
	recs, err := hist.Load(ctx)
	if err != nil {
		t.Fatalf("load history: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("history rows = %d, want 1", len(recs))
	}
	rec := recs[0]
	if math.Abs(rec.Score-0.8) > 1e-9 || rec.Regime != "STRONG_BULL" {
		t.Errorf("stored record = %+v", rec)
	}
	if rec.VIX == nil || *rec.VIX != 14.0 {
		t.Errorf("stored vix = %v", rec.VIX)
	}
	if rec.Participation == nil || *rec.Participation != 50 {
		t.Errorf("stored participation = %v", rec.Participation)
	}
}
