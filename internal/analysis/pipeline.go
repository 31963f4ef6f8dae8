// Package analysis runs the full breadth pipeline over a fetched quote
// table and assembles the combined result.
package analysis

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"nse-breadth/internal/analysis/advanced"
	"nse-breadth/internal/analysis/breadth"
	"nse-breadth/internal/errors"
	"nse-breadth/internal/logging"
	"nse-breadth/internal/models"
	"nse-breadth/internal/store"
	"nse-breadth/pkg/utils"
)

// Result is the combined output of one pipeline run over a single day's
// quote table.
type Result struct {
	Date       time.Time                     `json:"date"`
	Classified []models.ClassifiedInstrument `json:"classified"`
	Breadth    models.BreadthSnapshot        `json:"breadth"`
	Sectors    models.SectorSnapshot         `json:"sectors"`
	Magnitude  models.MagnitudeSnapshot      `json:"magnitude"`
	Regime     models.RegimeCall             `json:"regime"`

	Gainers        []models.ClassifiedInstrument `json:"gainers"`
	Losers         []models.ClassifiedInstrument `json:"losers"`
	SectorLeaders  []models.SectorRank           `json:"sector_leaders"`
	SectorLaggards []models.SectorRank           `json:"sector_laggards"`

	Temperature   advanced.TemperatureResult   `json:"temperature"`
	Internals     advanced.InternalsResult     `json:"internals"`
	Concentration advanced.ConcentrationResult `json:"concentration"`
	Rotation      advanced.RotationResult      `json:"rotation"`
	Sentiment     advanced.SentimentResult     `json:"sentiment"`
	Signals       []advanced.Signal            `json:"signals"`

	// History-derived readings, populated when a store is attached.
	MovingAverage    float64                 `json:"moving_average"`
	MovingAverageOK  bool                    `json:"moving_average_ok"`
	Trend            models.TrendDirection   `json:"trend"`
	Divergence       models.DivergenceSignal `json:"divergence"`
	DivergenceDetail string                  `json:"divergence_detail"`
	FearGreed        *advanced.FearGreedResult `json:"fear_greed,omitempty"`

	// VIX level when the index symbol was fetched.
	VIX *float64 `json:"vix,omitempty"`
}

// Pipeline wires the analyzers together. The history store is optional;
// without it the history-derived fields stay in their insufficient-data
// states.
type Pipeline struct {
	thresholds breadth.Thresholds
	sectors    map[string][]string
	history    store.HistoryStore
	avgPeriod  int
	lookback   int
	topMovers  int
	logger     zerolog.Logger
}

// Options configure a pipeline.
type Options struct {
	Thresholds    breadth.Thresholds
	Sectors       map[string][]string
	History       store.HistoryStore
	AveragePeriod int
	TrendLookback int
	TopMovers     int
	Logger        zerolog.Logger
}

// NewPipeline creates a pipeline.
func NewPipeline(opts Options) *Pipeline {
	if opts.AveragePeriod < 1 {
		opts.AveragePeriod = 3
	}
	if opts.TrendLookback < 2 {
		opts.TrendLookback = 5
	}
	if opts.TopMovers < 1 {
		opts.TopMovers = 10
	}
	return &Pipeline{
		thresholds: opts.Thresholds,
		sectors:    opts.Sectors,
		history:    opts.History,
		avgPeriod:  opts.AveragePeriod,
		lookback:   opts.TrendLookback,
		topMovers:  opts.TopMovers,
		logger:     opts.Logger,
	}
}

// Run analyzes one day's quotes. vix may be nil when the index symbol was
// not fetched. When persist is set, the day's record is written to the
// history store before the history-derived readings are computed, so a
// re-run replaces the same day instead of appending.
func (p *Pipeline) Run(ctx context.Context, quotes []models.InstrumentQuote, vix *float64, persist bool) (*Result, error) {
	if len(quotes) == 0 {
		return nil, errors.Wrap(errors.ErrNoData, "no quotes to analyze")
	}
	start := time.Now()

	classifier := breadth.NewClassifier(p.thresholds)
	classified := classifier.ClassifyAll(quotes)
	breadthSnap := breadth.Score(classified)

	sectorSnap := breadth.NewSectorAggregator(p.thresholds, p.sectors).Aggregate(quotes)
	magnitudeSnap := breadth.Magnitude(p.thresholds, quotes)
	regimeCall := breadth.NewRegimeClassifier(p.thresholds).Classify(breadthSnap.Score, sectorSnap.ParticipationPct)

	gainers, losers := breadth.TopMovers(classified, p.topMovers)
	leaders, laggards := breadth.LeadersLaggards(sectorSnap, 3)

	res := &Result{
		Date:           utils.TradingDate(time.Now()),
		Classified:     classified,
		Breadth:        breadthSnap,
		Sectors:        sectorSnap,
		Magnitude:      magnitudeSnap,
		Regime:         regimeCall,
		Gainers:        gainers,
		Losers:         losers,
		SectorLeaders:  leaders,
		SectorLaggards: laggards,
		Temperature:    advanced.Temperature(quotes),
		Internals:      advanced.Internals(quotes),
		Concentration:  advanced.Concentration(quotes),
		Rotation:       advanced.Rotation(quotes, p.sectors),
		Sentiment:      advanced.Sentiment(quotes, p.thresholds.ExplosiveMove),
		Signals:        advanced.TradingSignals(breadthSnap.Score, sectorSnap.ParticipationPct),
		Trend:          models.TrendInsufficient,
		Divergence:     models.DivergenceInsufficient,
		VIX:            vix,
	}

	if p.history != nil {
		if persist {
			rec := models.HistoryRecord{
				Date:          res.Date,
				Score:         breadthSnap.Score,
				Regime:        string(regimeCall.Regime.Key),
				VIX:           vix,
				Participation: &sectorSnap.ParticipationPct,
			}
			if err := p.history.AppendOrReplace(ctx, rec); err != nil {
				return nil, err
			}
		}

		recs, err := p.history.Load(ctx)
		if err != nil {
			return nil, err
		}
		if persist && len(recs) >= 2 {
			prev := recs[len(recs)-2].Regime
			if prev != string(regimeCall.Regime.Key) {
				logging.LogRegimeChange(p.logger, prev, string(regimeCall.Regime.Key), breadthSnap.Score)
			}
		}

		res.MovingAverage, res.MovingAverageOK = store.MovingAverage(recs, p.avgPeriod)
		res.Trend = store.Trend(recs, p.lookback)
		res.Divergence, res.DivergenceDetail = store.Divergence(recs, breadthSnap.Score)

		if in, err := advanced.BuildFearGreedInputs(recs, vix, sectorSnap.ParticipationPct); err == nil {
			fg := advanced.FearGreed(in)
			res.FearGreed = &fg
		} else if !errors.Is(err, errors.ErrInsufficientData) && !errors.Is(err, errors.ErrNoData) {
			return nil, err
		}
	}

	logging.LogAnalysis(p.logger, len(quotes), breadthSnap.Score, regimeCall.Regime.Name, time.Since(start))
	return res, nil
}
