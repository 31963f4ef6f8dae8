// Package config provides configuration management for the breadth analyzer.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/viper"

	"nse-breadth/internal/analysis/breadth"
)

// Config holds all application configuration.
type Config struct {
	Analysis  AnalysisConfig  `mapstructure:"analysis"`
	Fetcher   FetcherConfig   `mapstructure:"fetcher"`
	History   HistoryConfig   `mapstructure:"history"`
	Dashboard DashboardConfig `mapstructure:"dashboard"`
	Output    OutputConfig    `mapstructure:"output"`
	UI        UIConfig        `mapstructure:"ui"`
	Universe  Universe        `mapstructure:"-"` // Loaded separately
}

// AnalysisConfig holds classification thresholds.
type AnalysisConfig struct {
	Thresholds breadth.Thresholds `mapstructure:",squash"`
	// TopMovers is the number of gainers/losers listed in reports.
	TopMovers int `mapstructure:"top_movers"`
}

// FetcherConfig holds quote-acquisition configuration.
type FetcherConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	Timeout        time.Duration `mapstructure:"timeout"`
	RequestsPerSec float64       `mapstructure:"requests_per_sec"`
	MaxRetries     int           `mapstructure:"max_retries"`
	Range          string        `mapstructure:"range"`    // chart lookback, e.g. "5d"
	Interval       string        `mapstructure:"interval"` // bar interval, e.g. "1d"
	UserAgent      string        `mapstructure:"user_agent"`
}

// HistoryConfig holds history persistence configuration.
type HistoryConfig struct {
	DatabasePath  string `mapstructure:"database_path"`
	Days          int    `mapstructure:"days"`           // rows kept
	AveragePeriod int    `mapstructure:"average_period"` // moving average window
	TrendLookback int    `mapstructure:"trend_lookback"`
}

// DashboardConfig holds dashboard server configuration.
type DashboardConfig struct {
	ListenAddr string `mapstructure:"listen_addr"`
}

// OutputConfig holds report output paths.
type OutputConfig struct {
	Dir         string `mapstructure:"dir"`
	CSVFile     string `mapstructure:"csv_file"`
	SummaryFile string `mapstructure:"summary_file"`
}

// UIConfig holds UI-related configuration.
type UIConfig struct {
	ColorEnabled bool   `mapstructure:"color_enabled"`
	DateFormat   string `mapstructure:"date_format"`
}

// Universe is the stock list plus its sector classification.
type Universe struct {
	Stocks    []string            `mapstructure:"stocks"`
	VIXSymbol string              `mapstructure:"vix_symbol"`
	Sectors   map[string][]string `mapstructure:"sectors"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/nse-breadth"
	}
	return filepath.Join(home, ".config", "nse-breadth")
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	cfg := &Config{}

	// Load main config
	if err := loadConfigFile(configDir, "config", cfg); err != nil {
		return nil, fmt.Errorf("loading config.toml: %w", err)
	}

	// Load universe; a missing universe.toml falls back to the built-in
	// 208-stock F&O list rather than failing.
	if err := loadUniverse(configDir, &cfg.Universe); err != nil {
		return nil, fmt.Errorf("loading universe.toml: %w", err)
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func loadConfigFile(configDir, name string, cfg *Config) error {
	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	setDefaults(v, configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found, create template and continue on defaults
			if werr := createTemplateConfig(configDir, name); werr != nil {
				return werr
			}
			return v.Unmarshal(cfg)
		}
		return err
	}

	return v.Unmarshal(cfg)
}

func setDefaults(v *viper.Viper, configDir string) {
	t := breadth.DefaultThresholds()

	v.SetDefault("analysis.strong_move", t.StrongMove)
	v.SetDefault("analysis.moderate_move", t.ModerateMove)
	v.SetDefault("analysis.explosive_move", t.ExplosiveMove)
	v.SetDefault("analysis.strong_explosive", t.StrongExplosive)
	v.SetDefault("analysis.volume_multiplier", t.VolumeMultiplier)
	v.SetDefault("analysis.high_volume", t.HighVolume)
	v.SetDefault("analysis.extreme_bull", t.ExtremeBull)
	v.SetDefault("analysis.strong_bull", t.StrongBull)
	v.SetDefault("analysis.weak_bull", t.WeakBull)
	v.SetDefault("analysis.no_trade_low", t.NoTradeLow)
	v.SetDefault("analysis.weak_bear", t.WeakBear)
	v.SetDefault("analysis.strong_bear", t.StrongBear)
	v.SetDefault("analysis.healthy_participation", t.HealthyParticipation)
	v.SetDefault("analysis.weak_participation", t.WeakParticipation)
	v.SetDefault("analysis.top_movers", 10)

	v.SetDefault("fetcher.base_url", "https://query1.finance.yahoo.com")
	v.SetDefault("fetcher.timeout", "10s")
	v.SetDefault("fetcher.requests_per_sec", 5.0)
	v.SetDefault("fetcher.max_retries", 3)
	v.SetDefault("fetcher.range", "5d")
	v.SetDefault("fetcher.interval", "1d")
	v.SetDefault("fetcher.user_agent", "Mozilla/5.0 (X11; Linux x86_64)")

	v.SetDefault("history.database_path", filepath.Join(configDir, "breadth_history.db"))
	v.SetDefault("history.days", 30)
	v.SetDefault("history.average_period", 3)
	v.SetDefault("history.trend_lookback", 5)

	v.SetDefault("dashboard.listen_addr", ":8571")

	v.SetDefault("output.dir", "output")
	v.SetDefault("output.csv_file", "breadth_report.csv")
	v.SetDefault("output.summary_file", "summary.txt")

	v.SetDefault("ui.color_enabled", true)
	v.SetDefault("ui.date_format", "02-Jan-2006")
}

func loadUniverse(configDir string, u *Universe) error {
	v := viper.New()
	v.SetConfigName("universe")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			*u = DefaultUniverse()
			return nil
		}
		return err
	}

	if err := v.Unmarshal(u); err != nil {
		return err
	}
	if len(u.Stocks) == 0 {
		u.Stocks = DefaultUniverse().Stocks
	}
	if u.VIXSymbol == "" {
		u.VIXSymbol = DefaultUniverse().VIXSymbol
	}
	if len(u.Sectors) == 0 {
		u.Sectors = DefaultUniverse().Sectors
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("BREADTH_DB_PATH"); v != "" {
		cfg.History.DatabasePath = v
	}
	if v := os.Getenv("BREADTH_FETCH_URL"); v != "" {
		cfg.Fetcher.BaseURL = v
	}
	if v := os.Getenv("BREADTH_DASHBOARD_ADDR"); v != "" {
		cfg.Dashboard.ListenAddr = v
	}
	if v := os.Getenv("BREADTH_RATE_LIMIT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.Fetcher.RequestsPerSec = f
		}
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Analysis.Thresholds.Validate(); err != nil {
		return err
	}
	if c.Analysis.TopMovers < 1 {
		return fmt.Errorf("analysis.top_movers must be at least 1")
	}
	if c.Fetcher.RequestsPerSec <= 0 {
		return fmt.Errorf("fetcher.requests_per_sec must be positive")
	}
	if c.Fetcher.MaxRetries < 0 {
		return fmt.Errorf("fetcher.max_retries must be non-negative")
	}
	if c.History.Days < 1 {
		return fmt.Errorf("history.days must be at least 1")
	}
	if c.History.AveragePeriod < 1 {
		return fmt.Errorf("history.average_period must be at least 1")
	}
	if c.History.TrendLookback < 2 {
		return fmt.Errorf("history.trend_lookback must be at least 2")
	}
	if len(c.Universe.Stocks) == 0 {
		return fmt.Errorf("universe has no stocks")
	}
	return nil
}
