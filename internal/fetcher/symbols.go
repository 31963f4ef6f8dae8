package fetcher

import "strings"

// Special symbol mappings for Yahoo Finance where the plain ".NS" rule
// does not hold or needs pinning.
var specialSymbols = map[string]string{
	"360ONE":     "360ONE.NS",
	"M&M":        "M&M.NS",
	"BAJAJ-AUTO": "BAJAJ-AUTO.NS",
	"M_M":        "M&M.NS", // alternative spelling seen in some feeds
	"^INDIAVIX":  "^INDIAVIX",
}

// YahooSymbol converts an NSE symbol to its Yahoo Finance form. Index
// symbols (leading caret) pass through unchanged; everything else gets
// the .NS suffix.
func YahooSymbol(symbol string) string {
	if mapped, ok := specialSymbols[symbol]; ok {
		return mapped
	}
	if strings.HasPrefix(symbol, "^") {
		return symbol
	}
	return symbol + ".NS"
}
