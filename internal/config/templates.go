package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# NSE Breadth Analyzer Configuration
# All values shown are the defaults. Delete any line to keep its default.

[analysis]
# Percent change for a strong move (strict: exactly this value does not qualify)
strong_move = 2.0
# Percent change for a moderate move
moderate_move = 1.0
# Percent change for an explosive move
explosive_move = 5.0
# Percent change between moderate and explosive
strong_explosive = 3.0
# Volume ratio vs average volume for confirmation
volume_multiplier = 1.0
# High volume threshold
high_volume = 1.5
# Regime score boundaries
extreme_bull = 0.8
strong_bull = 0.4
weak_bull = 0.15
no_trade_low = -0.15
weak_bear = -0.4
strong_bear = -0.8
# Sector participation cutoffs (% of sectors bullish)
healthy_participation = 60.0
weak_participation = 40.0
# Gainers/losers listed in reports
top_movers = 10

[fetcher]
base_url = "https://query1.finance.yahoo.com"
timeout = "10s"
requests_per_sec = 5.0
max_retries = 3
range = "5d"
interval = "1d"

[history]
# SQLite database path (defaults next to this file)
# database_path = ""
# Days of history kept
days = 30
# Moving average window
average_period = 3
# Trend lookback window
trend_lookback = 5

[dashboard]
listen_addr = ":8571"

[output]
dir = "output"
csv_file = "breadth_report.csv"
summary_file = "summary.txt"

[ui]
color_enabled = true
date_format = "02-Jan-2006"

# The stock universe and sector map can be overridden in universe.toml
# (keys: stocks, vix_symbol, [sectors]); without it the built-in NSE F&O
# universe is used.
`

func createTemplateConfig(configDir, name string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, name+".toml")
	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config template: %w", err)
	}

	return nil
}
