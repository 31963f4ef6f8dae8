// Package fetcher acquires daily quotes from the Yahoo Finance chart API.
package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"nse-breadth/internal/config"
	"nse-breadth/internal/errors"
	"nse-breadth/internal/logging"
	"nse-breadth/internal/models"
	"nse-breadth/pkg/utils"
)

// Stats summarizes one fetch batch.
type Stats struct {
	Requested     int           `json:"requested"`
	Fetched       int           `json:"fetched"`
	Failed        int           `json:"failed"`
	FailedSymbols []string      `json:"failed_symbols,omitempty"`
	Duration      time.Duration `json:"duration"`
}

// Fetcher pulls daily bars and reduces them to quote rows. Requests are
// rate limited and failed symbols retried with backoff.
type Fetcher struct {
	client    *http.Client
	baseURL   string
	limiter   *rate.Limiter
	retryCfg  utils.RetryConfig
	barRange  string
	interval  string
	userAgent string
	logger    zerolog.Logger
}

// New creates a fetcher from configuration.
func New(cfg config.FetcherConfig, logger zerolog.Logger) *Fetcher {
	retryCfg := utils.DefaultRetryConfig()
	if cfg.MaxRetries > 0 {
		retryCfg.MaxAttempts = cfg.MaxRetries
	}
	return &Fetcher{
		client:    &http.Client{Timeout: cfg.Timeout},
		baseURL:   cfg.BaseURL,
		limiter:   rate.NewLimiter(rate.Limit(cfg.RequestsPerSec), 1),
		retryCfg:  retryCfg,
		barRange:  cfg.Range,
		interval:  cfg.Interval,
		userAgent: cfg.UserAgent,
		logger:    logging.WithOperation(logger, "fetch"),
	}
}

// chart API response, reduced to the fields consumed here.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Indicators struct {
				Quote []struct {
					Close  []*float64 `json:"close"`
					Volume []*int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// FetchQuote fetches one symbol and reduces its daily bars to a quote
// row: last close vs the close before it, last volume against the window
// average.
func (f *Fetcher) FetchQuote(ctx context.Context, symbol string) (models.InstrumentQuote, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return models.InstrumentQuote{}, err
	}

	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?range=%s&interval=%s",
		f.baseURL, url.PathEscape(YahooSymbol(symbol)), f.barRange, f.interval)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.InstrumentQuote{}, errors.NewFetchError(symbol, "build request", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	start := time.Now()
	resp, err := f.client.Do(req)
	logging.LogAPICall(f.logger, http.MethodGet, endpoint, time.Since(start), err)
	if err != nil {
		return models.InstrumentQuote{}, errors.NewFetchError(symbol, "request", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return models.InstrumentQuote{}, errors.NewFetchError(symbol, "request", errors.ErrRateLimited)
	}
	if resp.StatusCode != http.StatusOK {
		return models.InstrumentQuote{}, errors.NewFetchError(symbol, "request",
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var parsed chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return models.InstrumentQuote{}, errors.NewFetchError(symbol, "decode", err)
	}
	return reduceChart(symbol, parsed)
}

// reduceChart turns the bar series into a quote row. Bars with a null
// close are skipped; at least two closes are required.
func reduceChart(symbol string, parsed chartResponse) (models.InstrumentQuote, error) {
	if parsed.Chart.Error != nil {
		return models.InstrumentQuote{}, errors.NewFetchError(symbol, "chart",
			fmt.Errorf("%s: %s", parsed.Chart.Error.Code, parsed.Chart.Error.Description))
	}
	if len(parsed.Chart.Result) == 0 || len(parsed.Chart.Result[0].Indicators.Quote) == 0 {
		return models.InstrumentQuote{}, errors.NewFetchError(symbol, "chart", errors.ErrNoData)
	}

	bars := parsed.Chart.Result[0].Indicators.Quote[0]
	var closes []float64
	var volumes []int64
	for i, c := range bars.Close {
		if c == nil {
			continue
		}
		closes = append(closes, *c)
		var vol int64
		if i < len(bars.Volume) && bars.Volume[i] != nil {
			vol = *bars.Volume[i]
		}
		volumes = append(volumes, vol)
	}
	if len(closes) < 2 {
		return models.InstrumentQuote{}, errors.NewFetchError(symbol, "chart",
			errors.Wrap(errors.ErrNoData, "fewer than two daily bars"))
	}

	price := closes[len(closes)-1]
	prevClose := closes[len(closes)-2]
	volume := volumes[len(volumes)-1]

	var volSum int64
	for _, v := range volumes {
		volSum += v
	}
	avgVolume := volSum / int64(len(volumes))

	volumeRatio := 1.0
	if avgVolume > 0 {
		volumeRatio = float64(volume) / float64(avgVolume)
	}

	q := models.InstrumentQuote{
		Symbol:      symbol,
		Price:       price,
		PrevClose:   prevClose,
		PctChange:   (price - prevClose) / prevClose * 100,
		Volume:      volume,
		AvgVolume:   avgVolume,
		VolumeRatio: volumeRatio,
	}
	if err := q.Validate(); err != nil {
		return models.InstrumentQuote{}, errors.NewFetchError(symbol, "validate", err)
	}
	return q, nil
}

// FetchAll fetches every symbol, then retries the failures with backoff.
// Symbols that still fail are reported in the stats, not as an error.
func (f *Fetcher) FetchAll(ctx context.Context, symbols []string) ([]models.InstrumentQuote, Stats, error) {
	start := time.Now()
	quotes := make([]models.InstrumentQuote, 0, len(symbols))
	var failed []string

	for _, sym := range symbols {
		q, err := f.FetchQuote(ctx, sym)
		if err != nil {
			if ctx.Err() != nil {
				return nil, Stats{}, ctx.Err()
			}
			f.logger.Debug().Str("symbol", sym).Err(err).Msg("Quote fetch failed")
			failed = append(failed, sym)
			continue
		}
		quotes = append(quotes, q)
	}

	// Second pass over failures, this time with backoff per symbol.
	var stillFailed []string
	for _, sym := range failed {
		q, err := utils.RetryWithResult(ctx, f.retryCfg, func() (models.InstrumentQuote, error) {
			return f.FetchQuote(ctx, sym)
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil, Stats{}, ctx.Err()
			}
			stillFailed = append(stillFailed, sym)
			continue
		}
		quotes = append(quotes, q)
	}

	stats := Stats{
		Requested:     len(symbols),
		Fetched:       len(quotes),
		Failed:        len(stillFailed),
		FailedSymbols: stillFailed,
		Duration:      time.Since(start),
	}
	logging.LogFetch(f.logger, stats.Requested, stats.Fetched, stats.Failed, stats.Duration)
	return quotes, stats, nil
}
