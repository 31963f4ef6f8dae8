// Package breadth implements the core market-breadth scoring pipeline:
// per-stock classification, weighted breadth score, regime mapping, sector
// aggregation and magnitude analysis.
package breadth

import "nse-breadth/internal/errors"

// Thresholds holds all classification cutoffs. Analyzers receive a copy at
// construction and never read configuration globals.
type Thresholds struct {
	// Percent-change cutoffs.
	StrongMove      float64 `mapstructure:"strong_move"`
	ModerateMove    float64 `mapstructure:"moderate_move"`
	ExplosiveMove   float64 `mapstructure:"explosive_move"`
	StrongExplosive float64 `mapstructure:"strong_explosive"`

	// Volume-ratio cutoffs.
	VolumeMultiplier float64 `mapstructure:"volume_multiplier"`
	HighVolume       float64 `mapstructure:"high_volume"`

	// Regime score boundaries.
	ExtremeBull float64 `mapstructure:"extreme_bull"`
	StrongBull  float64 `mapstructure:"strong_bull"`
	WeakBull    float64 `mapstructure:"weak_bull"`
	NoTradeLow  float64 `mapstructure:"no_trade_low"`
	WeakBear    float64 `mapstructure:"weak_bear"`
	StrongBear  float64 `mapstructure:"strong_bear"`

	// Sector participation cutoffs (percent of sectors bullish).
	HealthyParticipation float64 `mapstructure:"healthy_participation"`
	WeakParticipation    float64 `mapstructure:"weak_participation"`
}

// DefaultThresholds returns the standard cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		StrongMove:      2.0,
		ModerateMove:    1.0,
		ExplosiveMove:   5.0,
		StrongExplosive: 3.0,

		VolumeMultiplier: 1.0,
		HighVolume:       1.5,

		ExtremeBull: 0.8,
		StrongBull:  0.4,
		WeakBull:    0.15,
		NoTradeLow:  -0.15,
		WeakBear:    -0.4,
		StrongBear:  -0.8,

		HealthyParticipation: 60,
		WeakParticipation:    40,
	}
}

// Validate checks threshold ordering.
func (t Thresholds) Validate() error {
	if t.ModerateMove <= 0 || t.StrongMove <= t.ModerateMove {
		return errors.Wrap(errors.ErrConfigInvalid, "strong_move must exceed moderate_move, both positive")
	}
	if t.StrongExplosive <= t.StrongMove || t.ExplosiveMove <= t.StrongExplosive {
		return errors.Wrap(errors.ErrConfigInvalid, "explosive_move > strong_explosive > strong_move required")
	}
	if t.VolumeMultiplier <= 0 {
		return errors.Wrap(errors.ErrConfigInvalid, "volume_multiplier must be positive")
	}
	if !(t.ExtremeBull > t.StrongBull && t.StrongBull > t.WeakBull &&
		t.WeakBull > t.NoTradeLow && t.NoTradeLow > t.WeakBear &&
		t.WeakBear > t.StrongBear) {
		return errors.Wrap(errors.ErrConfigInvalid, "regime boundaries must be strictly descending")
	}
	if t.WeakParticipation < 0 || t.HealthyParticipation > 100 ||
		t.WeakParticipation >= t.HealthyParticipation {
		return errors.Wrap(errors.ErrConfigInvalid, "participation cutoffs must satisfy 0 <= weak < healthy <= 100")
	}
	return nil
}
