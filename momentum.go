package smartdca

import (
	"errors"
	"fmt"
)

// PriceLookup resolves the most recent price for a ticker on or before a
// given day, within a bounded lookback window. It is the only capability the
// core requires from its environment.
type PriceLookup func(ticker string, on Date) (float64, error)

// Weights is the blend of trailing returns used to compute a momentum score.
// The three weights must sum to 1.
type Weights struct {
	R1 float64 // weight of the 1-month trailing return
	R3 float64 // weight of the 3-month trailing return
	R6 float64 // weight of the 6-month trailing return
}

// DefaultWeights favors the longer horizon.
var DefaultWeights = Weights{R1: 0.2, R3: 0.3, R6: 0.5}

// Sum returns the sum of the three weights, expected to be 1.
func (w Weights) Sum() float64 { return w.R1 + w.R3 + w.R6 }

// Score computes the weighted momentum score of a ticker as of cutoff.
//
// It resolves the price at cutoff and 30, 90 and 180 days earlier, computes
// the three trailing returns p0/px - 1 and blends them. Any unresolved price
// surfaces as a *PriceUnavailableError, never as a substituted default.
func (w Weights) Score(lookup PriceLookup, ticker string, cutoff Date) (float64, error) {
	p0, err := priceAt(lookup, ticker, cutoff)
	if err != nil {
		return 0, err
	}
	p1, err := priceAt(lookup, ticker, cutoff.Add(-30))
	if err != nil {
		return 0, err
	}
	p3, err := priceAt(lookup, ticker, cutoff.Add(-90))
	if err != nil {
		return 0, err
	}
	p6, err := priceAt(lookup, ticker, cutoff.Add(-180))
	if err != nil {
		return 0, err
	}

	r1, r3, r6 := p0/p1-1, p0/p3-1, p0/p6-1
	return w.R1*r1 + w.R3*r3 + w.R6*r6, nil
}

// Score computes the momentum score of a ticker as of cutoff using the
// default 0.2/0.3/0.5 weights.
func Score(lookup PriceLookup, ticker string, cutoff Date) (float64, error) {
	return DefaultWeights.Score(lookup, ticker, cutoff)
}

// ScoreAll scores every given ticker as of cutoff. Tickers that cannot be
// scored are reported in the second map instead of aborting the whole batch,
// so the caller decides between excluding them and giving up.
func ScoreAll(lookup PriceLookup, tickers []string, cutoff Date) (map[string]float64, map[string]error) {
	scores := make(map[string]float64, len(tickers))
	failures := make(map[string]error)
	for _, t := range tickers {
		s, err := Score(lookup, t, cutoff)
		if err != nil {
			failures[t] = err
			continue
		}
		scores[t] = s
	}
	return scores, failures
}

// priceAt invokes the lookup and normalizes any failure into a
// *PriceUnavailableError carrying the ticker and requested day.
func priceAt(lookup PriceLookup, ticker string, on Date) (float64, error) {
	p, err := lookup(ticker, on)
	if err != nil {
		var unavailable *PriceUnavailableError
		if errors.As(err, &unavailable) {
			return 0, err
		}
		return 0, &PriceUnavailableError{Ticker: ticker, On: on, Err: err}
	}
	if p <= 0 {
		return 0, &PriceUnavailableError{Ticker: ticker, On: on, Err: fmt.Errorf("non-positive price %v", p)}
	}
	return p, nil
}
