package smartdca

// test helpers shared across the package tests.

// tableLookup builds a PriceLookup from a fixed table of prices keyed by
// ticker and day. Any miss fails like a real market data miss.
func tableLookup(prices map[string]map[Date]float64) PriceLookup {
	return func(ticker string, on Date) (float64, error) {
		if p, ok := prices[ticker][on]; ok {
			return p, nil
		}
		return 0, &PriceUnavailableError{Ticker: ticker, On: on}
	}
}

// constLookup builds a PriceLookup that always resolves a ticker to the same
// price, whatever the day.
func constLookup(prices map[string]float64) PriceLookup {
	return func(ticker string, on Date) (float64, error) {
		if p, ok := prices[ticker]; ok {
			return p, nil
		}
		return 0, &PriceUnavailableError{Ticker: ticker, On: on}
	}
}
