package utils

import "time"

// IndiaLocation is the timezone for Indian markets.
var IndiaLocation *time.Location

func init() {
	var err error
	IndiaLocation, err = time.LoadLocation("Asia/Kolkata")
	if err != nil {
		// Fallback to UTC+5:30
		IndiaLocation = time.FixedZone("IST", 5*60*60+30*60)
	}
}

// IsTradingDay reports whether t falls on an NSE trading weekday.
// Exchange holidays are not modeled.
func IsTradingDay(t time.Time) bool {
	wd := t.In(IndiaLocation).Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// IsMarketOpen reports whether the NSE cash session (9:15-15:30 IST) is
// in progress.
func IsMarketOpen(t time.Time) bool {
	if !IsTradingDay(t) {
		return false
	}
	local := t.In(IndiaLocation)
	minutes := local.Hour()*60 + local.Minute()
	return minutes >= 555 && minutes < 930
}

// TradingDate returns the session date a breadth snapshot taken at t
// belongs to: today on a trading day, otherwise the most recent trading
// day. Normalized to midnight IST.
func TradingDate(t time.Time) time.Time {
	local := t.In(IndiaLocation)
	for !IsTradingDay(local) {
		local = local.AddDate(0, 0, -1)
	}
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, IndiaLocation)
}

// NextMarketOpen returns the next session open after t.
func NextMarketOpen(t time.Time) time.Time {
	local := t.In(IndiaLocation)
	next := time.Date(local.Year(), local.Month(), local.Day(), 9, 15, 0, 0, IndiaLocation)
	if local.After(next) {
		next = next.AddDate(0, 0, 1)
	}
	for !IsTradingDay(next) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
