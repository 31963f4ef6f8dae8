// Package utils provides shared utility functions.
package utils

import (
	"fmt"
	"strings"
)

// FormatScore formats a breadth score with sign and three decimals.
func FormatScore(score float64) string {
	return fmt.Sprintf("%+.3f", score)
}

// FormatPercent formats a percentage with sign.
func FormatPercent(value float64) string {
	sign := ""
	if value > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.2f%%", sign, value)
}

// FormatQuantity formats a quantity with Indian-style comma grouping.
func FormatQuantity(qty int64) string {
	negative := qty < 0
	if negative {
		qty = -qty
	}
	s := formatIndianNumber(fmt.Sprintf("%d", qty))
	if negative {
		return "-" + s
	}
	return s
}

// formatIndianNumber groups an integer string in the Indian numbering
// system (last three digits, then pairs).
func formatIndianNumber(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	s = s[:n-3]

	for len(s) > 0 {
		if len(s) >= 2 {
			result = s[len(s)-2:] + "," + result
			s = s[:len(s)-2]
		} else {
			result = s + "," + result
			s = ""
		}
	}

	return result
}

// FormatVolume formats a share count compactly in lakhs or crores.
func FormatVolume(volume int64) string {
	v := float64(volume)
	abs := v
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 1e7:
		return fmt.Sprintf("%.2f Cr", v/1e7)
	case abs >= 1e5:
		return fmt.Sprintf("%.2f L", v/1e5)
	default:
		return FormatQuantity(volume)
	}
}

// Bar renders a fixed-width signed bar for console score displays.
func Bar(value, max float64, width int) string {
	if max <= 0 || width <= 0 {
		return ""
	}
	frac := value / max
	if frac > 1 {
		frac = 1
	}
	if frac < -1 {
		frac = -1
	}
	filled := int(frac * float64(width))
	if filled >= 0 {
		return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	}
	filled = -filled
	return strings.Repeat("▒", filled) + strings.Repeat("░", width-filled)
}
