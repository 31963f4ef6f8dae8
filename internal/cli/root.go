package cli

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"nse-breadth/internal/analysis"
	"nse-breadth/internal/config"
	"nse-breadth/internal/fetcher"
	"nse-breadth/internal/logging"
	"nse-breadth/internal/models"
	"nse-breadth/internal/store"
)

// Version information
const (
	Version   = "0.1.0"
	BuildDate = "2026-08-24"
)

// App holds the application dependencies.
type App struct {
	Config  *config.Config
	Logger  zerolog.Logger
	Store   store.HistoryStore
	Fetcher *fetcher.Fetcher
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config:  cfg,
		Logger:  logger,
		Fetcher: fetcher.New(cfg.Fetcher, logger),
	}

	hist, err := store.NewSQLiteStore(cfg.History.DatabasePath, cfg.History.Days)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to open history store, trend features unavailable")
	} else {
		app.Store = hist
		logger.Debug().Str("path", cfg.History.DatabasePath).Msg("History store opened")
	}

	rootCmd := &cobra.Command{
		Use:   "nse-breadth",
		Short: "NSE F&O market breadth analyzer",
		Long: `nse-breadth analyzes market breadth across the NSE F&O stock universe.

It fetches daily quotes, classifies each stock by move strength and volume,
and produces a weighted breadth score, a market regime call, sector
aggregates, composite indices and trading signals. Daily scores are stored
so trend, divergence and fear/greed readings build up over time.

Use 'nse-breadth analyze' for the full daily report.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/nse-breadth)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))
	rootCmd.AddCommand(newAnalyzeCmd(app))
	rootCmd.AddCommand(newSectorsCmd(app))
	rootCmd.AddCommand(newHistoryCmd(app))
	rootCmd.AddCommand(newTrendCmd(app))
	rootCmd.AddCommand(newFearGreedCmd(app))
	rootCmd.AddCommand(newExportCmd(app))
	rootCmd.AddCommand(newDashboardCmd(app))

	return rootCmd
}

// newPipeline builds the analysis pipeline from the application config.
func (a *App) newPipeline() *analysis.Pipeline {
	return analysis.NewPipeline(analysis.Options{
		Thresholds:    a.Config.Analysis.Thresholds,
		Sectors:       a.Config.Universe.Sectors,
		History:       a.Store,
		AveragePeriod: a.Config.History.AveragePeriod,
		TrendLookback: a.Config.History.TrendLookback,
		TopMovers:     a.Config.Analysis.TopMovers,
		Logger:        a.Logger,
	})
}

// fetchUniverse pulls quotes for the whole universe plus the volatility
// index. A failed VIX fetch is not fatal, the fear/greed reading just
// falls back to stored or synthetic values.
func (a *App) fetchUniverse(ctx context.Context) ([]models.InstrumentQuote, *float64, fetcher.Stats, error) {
	quotes, stats, err := a.Fetcher.FetchAll(ctx, a.Config.Universe.Stocks)
	if err != nil {
		return nil, nil, stats, err
	}

	var vix *float64
	if sym := a.Config.Universe.VIXSymbol; sym != "" {
		vq, verr := a.Fetcher.FetchQuote(ctx, sym)
		if verr != nil {
			a.Logger.Warn().Str("symbol", sym).Err(verr).Msg("VIX fetch failed")
		} else {
			vix = &vq.Price
		}
	}
	return quotes, vix, stats, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{
					"version":    Version,
					"build_date": BuildDate,
				})
			} else {
				output.Printf("nse-breadth v%s\n", Version)
				output.Dim("Build date: %s", BuildDate)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and manage application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}
			showConfig(output, app.Config)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"path": config.DefaultConfigDir()})
			} else {
				output.Println(config.DefaultConfigDir())
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration files",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.Config.Validate(); err != nil {
				output.Error("Configuration validation failed: %v", err)
				return err
			}
			if output.IsJSON() {
				output.JSON(map[string]bool{"valid": true})
			} else {
				output.Success("Configuration is valid")
			}
			return nil
		},
	})

	return cmd
}

func showConfig(output *Output, cfg *config.Config) {
	t := cfg.Analysis.Thresholds

	output.Bold("Analysis Thresholds")
	output.Printf("  Strong Move:       %.1f%%\n", t.StrongMove)
	output.Printf("  Moderate Move:     %.1f%%\n", t.ModerateMove)
	output.Printf("  Explosive Move:    %.1f%%\n", t.ExplosiveMove)
	output.Printf("  Volume Multiplier: %.1fx\n", t.VolumeMultiplier)
	output.Printf("  High Volume:       %.1fx\n", t.HighVolume)
	output.Println()

	output.Bold("Fetcher")
	output.Printf("  Base URL:    %s\n", cfg.Fetcher.BaseURL)
	output.Printf("  Rate Limit:  %.1f req/s\n", cfg.Fetcher.RequestsPerSec)
	output.Printf("  Max Retries: %d\n", cfg.Fetcher.MaxRetries)
	output.Printf("  Range:       %s @ %s bars\n", cfg.Fetcher.Range, cfg.Fetcher.Interval)
	output.Println()

	output.Bold("History")
	output.Printf("  Database:       %s\n", cfg.History.DatabasePath)
	output.Printf("  Days Kept:      %d\n", cfg.History.Days)
	output.Printf("  Average Period: %d\n", cfg.History.AveragePeriod)
	output.Printf("  Trend Lookback: %d\n", cfg.History.TrendLookback)
	output.Println()

	output.Bold("Universe")
	output.Printf("  Stocks:     %d\n", len(cfg.Universe.Stocks))
	output.Printf("  Sectors:    %d\n", len(cfg.Universe.Sectors))
	output.Printf("  VIX Symbol: %s\n", cfg.Universe.VIXSymbol)
	output.Println()

	output.Bold("Dashboard")
	output.Printf("  Listen Addr: %s\n", cfg.Dashboard.ListenAddr)
}
