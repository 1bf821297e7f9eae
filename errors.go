package smartdca

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoCandidates is returned by Select when invoked with no scored ticker.
var ErrNoCandidates = errors.New("no candidate ticker to select from")

// ErrInvalidAmount is returned by Select when the investable amount is not
// strictly positive.
var ErrInvalidAmount = errors.New("investable amount must be positive")

// PriceUnavailableError reports that no price could be resolved for a ticker
// on or before a given day within the lookback window.
type PriceUnavailableError struct {
	Ticker string
	On     Date
	Err    error // optional cause (transport failure, etc.)
}

func (e *PriceUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("no price available for %s on or before %s: %v", e.Ticker, e.On, e.Err)
	}
	return fmt.Sprintf("no price available for %s on or before %s", e.Ticker, e.On)
}

func (e *PriceUnavailableError) Unwrap() error { return e.Err }

// InvalidTickerError reports tickers that are not part of the declared universe.
type InvalidTickerError struct {
	Tickers []string
}

func (e *InvalidTickerError) Error() string {
	return fmt.Sprintf("invalid tickers: %s", strings.Join(e.Tickers, ", "))
}
