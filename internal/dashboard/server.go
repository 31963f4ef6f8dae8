// Package dashboard serves the breadth results over HTTP: a JSON API for
// programmatic access and rendered chart pages for the browser.
package dashboard

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"nse-breadth/internal/analysis"
	"nse-breadth/internal/models"
)

// RefreshFunc produces a fresh analysis result.
type RefreshFunc func(ctx context.Context) (*analysis.Result, error)

// HistoryFunc loads the stored breadth history.
type HistoryFunc func(ctx context.Context) ([]models.HistoryRecord, error)

// Server holds one cached analysis snapshot and serves it until the next
// refresh. Reads and refreshes are safe to interleave.
type Server struct {
	addr    string
	refresh RefreshFunc
	history HistoryFunc
	logger  zerolog.Logger
	router  *gin.Engine

	mu          sync.RWMutex
	snapshot    *analysis.Result
	refreshedAt time.Time
}

// Config configures a dashboard server.
type Config struct {
	Addr    string
	Refresh RefreshFunc
	History HistoryFunc
	Logger  zerolog.Logger
}

// NewServer creates a dashboard server. Refresh is required; History may
// be nil when no store is available.
func NewServer(cfg Config) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		addr:    cfg.Addr,
		refresh: cfg.Refresh,
		history: cfg.History,
		logger:  cfg.Logger,
		router:  router,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/charts/history", s.handleHistoryChart)
	s.router.GET("/charts/sectors", s.handleSectorsChart)
	s.router.GET("/charts/feargreed", s.handleFearGreedChart)

	api := s.router.Group("/api")
	api.GET("/summary", s.handleSummary)
	api.GET("/sectors", s.handleSectors)
	api.GET("/internals", s.handleInternals)
	api.GET("/feargreed", s.handleFearGreed)
	api.GET("/history", s.handleHistory)
	api.POST("/refresh", s.handleRefresh)
}

// Refresh runs the pipeline and swaps the cached snapshot.
func (s *Server) Refresh(ctx context.Context) error {
	res, err := s.refresh(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.snapshot = res
	s.refreshedAt = time.Now()
	s.mu.Unlock()
	s.logger.Info().
		Float64("score", res.Breadth.Score).
		Str("regime", res.Regime.Regime.Name).
		Msg("Dashboard snapshot refreshed")
	return nil
}

// current returns the cached snapshot, or nil before the first refresh.
func (s *Server) current() (*analysis.Result, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot, s.refreshedAt
}

func (s *Server) handleSummary(c *gin.Context) {
	res, at := s.current()
	if res == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no snapshot yet, POST /api/refresh first"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"refreshed_at": at,
		"date":         res.Date,
		"breadth":      res.Breadth,
		"regime":       res.Regime,
		"magnitude":    res.Magnitude,
		"temperature":  res.Temperature,
		"sentiment":    res.Sentiment,
		"signals":      res.Signals,
		"gainers":      res.Gainers,
		"losers":       res.Losers,
		"trend":        res.Trend,
		"divergence":   res.Divergence,
		"vix":          res.VIX,
	})
}

func (s *Server) handleSectors(c *gin.Context) {
	res, _ := s.current()
	if res == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no snapshot yet"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"sectors":  res.Sectors,
		"leaders":  res.SectorLeaders,
		"laggards": res.SectorLaggards,
		"rotation": res.Rotation,
	})
}

func (s *Server) handleInternals(c *gin.Context) {
	res, _ := s.current()
	if res == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no snapshot yet"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"internals":     res.Internals,
		"concentration": res.Concentration,
	})
}

func (s *Server) handleFearGreed(c *gin.Context) {
	res, _ := s.current()
	if res == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no snapshot yet"})
		return
	}
	if res.FearGreed == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "fear/greed needs 3 days of history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"feargreed": res.FearGreed})
}

func (s *Server) handleHistory(c *gin.Context) {
	if s.history == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "history store unavailable"})
		return
	}
	recs, err := s.history(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": recs})
}

func (s *Server) handleRefresh(c *gin.Context) {
	if err := s.Refresh(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	res, at := s.current()
	c.JSON(http.StatusOK, gin.H{
		"refreshed_at": at,
		"score":        res.Breadth.Score,
		"regime":       res.Regime.Regime.Key,
	})
}

// Start runs the HTTP server until ctx is cancelled or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.router}
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()
	s.logger.Info().Str("addr", s.addr).Msg("Dashboard listening")

	select {
	case <-ctx.Done():
		shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shCtx)
	case err := <-errCh:
		return err
	}
}
