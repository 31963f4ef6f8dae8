package dashboard

import (
	"fmt"
	"io"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"nse-breadth/internal/analysis"
	"nse-breadth/internal/models"
)

const dateLayout = "02-Jan"

type renderer interface {
	Render(w io.Writer) error
}

func renderHTML(c *gin.Context, r renderer) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := r.Render(c.Writer); err != nil {
		c.String(http.StatusInternalServerError, "chart render failed: %v", err)
	}
}

func (s *Server) handleIndex(c *gin.Context) {
	res, _ := s.current()
	if res == nil {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK,
			"<html><body><h2>NSE Breadth</h2><p>No snapshot yet. POST /api/refresh to load data.</p></body></html>")
		return
	}

	page := components.NewPage()
	page.PageTitle = "NSE Breadth"
	page.AddCharts(
		classificationPie(res),
		sectorsBar(res),
		temperatureGauge(res),
	)
	if res.FearGreed != nil {
		page.AddCharts(fearGreedGauge(res))
	}
	renderHTML(c, page)
}

func (s *Server) handleSectorsChart(c *gin.Context) {
	res, _ := s.current()
	if res == nil {
		c.String(http.StatusServiceUnavailable, "no snapshot yet")
		return
	}
	renderHTML(c, sectorsBar(res))
}

func (s *Server) handleFearGreedChart(c *gin.Context) {
	res, _ := s.current()
	if res == nil || res.FearGreed == nil {
		c.String(http.StatusNotFound, "fear/greed needs 3 days of history")
		return
	}
	renderHTML(c, fearGreedGauge(res))
}

func (s *Server) handleHistoryChart(c *gin.Context) {
	if s.history == nil {
		c.String(http.StatusNotFound, "history store unavailable")
		return
	}
	recs, err := s.history(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "history load failed: %v", err)
		return
	}
	if len(recs) == 0 {
		c.String(http.StatusNotFound, "no history recorded yet")
		return
	}
	renderHTML(c, historyLine(recs))
}

func classificationPie(res *analysis.Result) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Classification"}),
	)

	items := make([]opts.PieData, 0, len(models.Categories))
	for _, cat := range models.Categories {
		items = append(items, opts.PieData{
			Name:  string(cat),
			Value: res.Breadth.Count(cat),
		})
	}
	pie.AddSeries("stocks", items)
	return pie
}

func sectorsBar(res *analysis.Result) *charts.Bar {
	names := make([]string, 0, len(res.Sectors.Sectors))
	for name := range res.Sectors.Sectors {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		si, sj := res.Sectors.Sectors[names[i]].Score, res.Sectors.Sectors[names[j]].Score
		if si != sj {
			return si > sj
		}
		return names[i] < names[j]
	})

	scores := make([]opts.BarData, 0, len(names))
	for _, name := range names {
		scores = append(scores, opts.BarData{Value: res.Sectors.Sectors[name].Score})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Sector Breadth",
			Subtitle: fmt.Sprintf("%.1f%% of sectors bullish", res.Sectors.ParticipationPct),
		}),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Rotate: 45}}),
	)
	bar.SetXAxis(names).AddSeries("score", scores)
	return bar
}

func temperatureGauge(res *analysis.Result) *charts.Gauge {
	gauge := charts.NewGauge()
	gauge.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Market Temperature",
			Subtitle: res.Temperature.Status,
		}),
	)
	gauge.AddSeries("temperature", []opts.GaugeData{
		{Name: res.Temperature.Status, Value: res.Temperature.Temperature},
	})
	return gauge
}

func fearGreedGauge(res *analysis.Result) *charts.Gauge {
	gauge := charts.NewGauge()
	gauge.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Fear / Greed",
			Subtitle: res.FearGreed.Regime,
		}),
	)
	gauge.AddSeries("feargreed", []opts.GaugeData{
		{Name: res.FearGreed.Regime, Value: res.FearGreed.Total},
	})
	return gauge
}

func historyLine(recs []models.HistoryRecord) *charts.Line {
	dates := make([]string, 0, len(recs))
	scores := make([]opts.LineData, 0, len(recs))
	for _, r := range recs {
		dates = append(dates, r.Date.Format(dateLayout))
		scores = append(scores, opts.LineData{Value: r.Score})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Breadth History",
			Subtitle: "weighted score, -2 to +2",
		}),
	)
	line.SetXAxis(dates).AddSeries("score", scores,
		charts.WithMarkLineNameYAxisItemOpts(
			opts.MarkLineNameYAxisItem{Name: "strong bull", YAxis: 0.4},
			opts.MarkLineNameYAxisItem{Name: "weak bull", YAxis: 0.15},
			opts.MarkLineNameYAxisItem{Name: "weak bear", YAxis: -0.15},
			opts.MarkLineNameYAxisItem{Name: "strong bear", YAxis: -0.4},
		),
	)
	return line
}
