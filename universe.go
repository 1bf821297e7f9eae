package smartdca

import "strings"

// DefaultUniverse seeds a fresh market data file.
var DefaultUniverse = []string{"QQQ", "AAPL", "NVDA"}

// NormalizeTicker canonicalizes a ticker: surrounding spaces are dropped and
// the symbol is uppercased, so "qqq " and "QQQ" are the same instrument.
func NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// ParseTickers splits a comma-separated ticker list into normalized tickers,
// skipping empty items.
func ParseTickers(str string) []string {
	var tickers []string
	for _, t := range strings.Split(str, ",") {
		if t = NormalizeTicker(t); t != "" {
			tickers = append(tickers, t)
		}
	}
	return tickers
}

// CheckTickers validates tickers against the declared universe. Unknown
// tickers are reported all at once in an *InvalidTickerError.
func (m *MarketData) CheckTickers(tickers []string) error {
	var invalid []string
	for _, t := range tickers {
		if !m.Has(t) {
			invalid = append(invalid, NormalizeTicker(t))
		}
	}
	if len(invalid) > 0 {
		return &InvalidTickerError{Tickers: invalid}
	}
	return nil
}
