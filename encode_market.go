package smartdca

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// marketLine is the JSONL shape of the market data file. A line with no date
// merely declares the ticker as part of the universe.
type marketLine struct {
	Ticker string  `json:"ticker"`
	Date   Date    `json:"date,omitzero"`
	Close  float64 `json:"close,omitempty"`
}

// DecodeMarketData reads a JSONL stream of ticker declarations and daily
// closes and returns the market data.
func DecodeMarketData(r io.Reader) (*MarketData, error) {
	m := NewMarketData()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}
		var line marketLine
		if err := json.Unmarshal(lineBytes, &line); err != nil {
			return nil, fmt.Errorf("could not decode market line %q: %w", string(lineBytes), err)
		}
		if err := m.Declare(line.Ticker); err != nil {
			return nil, fmt.Errorf("could not declare ticker in line %q: %w", string(lineBytes), err)
		}
		if line.Date.IsZero() {
			continue
		}
		if err := m.Append(line.Ticker, line.Date, line.Close); err != nil {
			return nil, fmt.Errorf("could not decode market line %q: %w", string(lineBytes), err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

// EncodeMarketData writes the market data as a canonical JSONL stream: one
// declaration line per ticker followed by its closes in chronological order.
func EncodeMarketData(w io.Writer, m *MarketData) error {
	enc := json.NewEncoder(w)
	for _, t := range m.Tickers() {
		if err := enc.Encode(marketLine{Ticker: t}); err != nil {
			return err
		}
		for on, close := range m.prices[t].Values() {
			if err := enc.Encode(marketLine{Ticker: t, Date: on, Close: close}); err != nil {
				return err
			}
		}
	}
	return nil
}
