package smartdca

import (
	"fmt"
	"slices"

	"github.com/etnz/smartdca/date"
)

// lookbackDays bounds how far back a price lookup may resolve. A ticker with
// no close within that window of the requested day has no usable price.
const lookbackDays = 200

// MarketData holds the daily close history for every ticker of the declared
// universe. Declaring a ticker is what makes it a valid member of the
// universe; scoring and selection only ever see declared tickers.
type MarketData struct {
	tickers []string
	prices  map[string]*date.History[float64]
}

// NewMarketData returns a new empty market data collection.
func NewMarketData() *MarketData {
	return &MarketData{
		tickers: make([]string, 0),
		prices:  make(map[string]*date.History[float64]),
	}
}

// Has returns true if the ticker is declared.
func (m *MarketData) Has(ticker string) bool {
	_, ok := m.prices[NormalizeTicker(ticker)]
	return ok
}

// Tickers returns the declared universe in ascending order.
func (m *MarketData) Tickers() []string {
	return slices.Clone(m.tickers)
}

// Declare adds a ticker to the universe. Declaring twice is a no-op.
func (m *MarketData) Declare(ticker string) error {
	t := NormalizeTicker(ticker)
	if t == "" {
		return fmt.Errorf("empty ticker")
	}
	if m.Has(t) {
		return nil
	}
	m.tickers = append(m.tickers, t)
	slices.Sort(m.tickers)
	m.prices[t] = new(date.History[float64])
	return nil
}

// Append records the close price of a declared ticker for a day. An existing
// point at that day is overwritten.
func (m *MarketData) Append(ticker string, on Date, close float64) error {
	t := NormalizeTicker(ticker)
	h, ok := m.prices[t]
	if !ok {
		return &InvalidTickerError{Tickers: []string{t}}
	}
	if close <= 0 {
		return fmt.Errorf("non-positive close %v for %s on %s", close, t, on)
	}
	h.Append(on, close)
	return nil
}

// Latest returns the most recent close of a ticker.
func (m *MarketData) Latest(ticker string) (Date, float64, bool) {
	h, ok := m.prices[NormalizeTicker(ticker)]
	if !ok || h.Len() == 0 {
		return Date{}, 0, false
	}
	on, v := h.Latest()
	return on, v, true
}

// PriceAsOf resolves the most recent close on or before the given day, no
// further back than lookbackDays. It fails with a *PriceUnavailableError.
func (m *MarketData) PriceAsOf(ticker string, on Date) (float64, error) {
	t := NormalizeTicker(ticker)
	h, ok := m.prices[t]
	if !ok {
		return 0, &PriceUnavailableError{Ticker: t, On: on, Err: &InvalidTickerError{Tickers: []string{t}}}
	}
	day, v, ok := h.AsOf(on)
	if !ok || day.Before(on.Add(-lookbackDays)) {
		return 0, &PriceUnavailableError{Ticker: t, On: on}
	}
	return v, nil
}

// PriceLookup exposes the market data as the capability the core consumes.
func (m *MarketData) PriceLookup() PriceLookup {
	return m.PriceAsOf
}
