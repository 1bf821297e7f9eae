package smartdca

import (
	"fmt"
	"math"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
)

// LatestPrice returns the last traded price of a ticker from the eodhd
// real-time endpoint. It is used to value positions in the gain/loss summary,
// where the end-of-day close may lag the market by a day.
func LatestPrice(apiKey, ticker string) (float64, error) {
	// {"code":"NVDA.US","timestamp":1755878400,"open":176.9,"high":178.18,
	//  "low":174.8,"close":177.99,"volume":1.2e8,"previousClose":175.4,...}
	addr := fmt.Sprintf("https://eodhd.com/api/real-time/%s?fmt=json&api_token=%s", eodhdCode(ticker), apiKey)
	var jobj any
	if err := jwget(new(http.Client), addr, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("error in wget %q: %w", ticker, err)
	}
	path := "$.close"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %w", ticker, path, err)
	}
	// jsonpath is never clear about whether it returns a list of 1 answer or
	// a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok || val <= 0 {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %s %v", ticker, path, "not a positive price", jval)
	}
	return val, nil
}
