package smartdca

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/smartdca/date"
)

// This file contains functions to access the EODHD API.

const eodhd_api_key = "EODHD_API_KEY"

var eodhdApiFlag = flag.String("eodhd-api-key", "", "EODHD API key to use for fetching prices from EODHD.com.\n If missing it will read for the environment variable \""+eodhd_api_key+"\". You can get one at https://eodhd.com/")

// EodhdApiKey returns the API key from the flag, falling back to the environment.
func EodhdApiKey() string {
	if *eodhdApiFlag == "" {
		*eodhdApiFlag = os.Getenv(eodhd_api_key)
	}
	return *eodhdApiFlag
}

// eodhdCode maps a plain US ticker to the eodhd internal code.
func eodhdCode(ticker string) string { return NormalizeTicker(ticker) + ".US" }

// eodhdDaily returns the daily close prices for a given ticker, adjusted for splits.
func eodhdDaily(apiKey, ticker string, from, to date.Date) (close date.History[float64], err error) {
	// https://eodhd.com/api/eod/NVDA.US?api_token=...&fmt=json
	// [
	//	{
	//		"date": "2024-02-13",
	//		"open": 675.066,
	//		"high": 684.219,
	//		"low": 648.659,
	//		"close": 668.445,
	//		"adjusted_close": 67.705,
	//		"volume": 0
	//	  },

	addr := fmt.Sprintf("https://eodhd.com/api/eod/%s?fmt=json&api_token=%s&from=%s&to=%s", eodhdCode(ticker), apiKey, from, to)
	type Info struct {
		Date  date.Date `json:"date"`
		Close float64   `json:"adjusted_close"`
	}

	// that's the payload
	content := make([]Info, 0)
	if err := jwget(daily(), addr, &content); err != nil {
		return close, err
	}

	for _, info := range content {
		close.Append(info.Date, info.Close)
	}
	return close, nil
}

// UpdatePrices fetches the daily closes of every declared ticker over the
// given range and merges them into the market data. A ticker that fails does
// not stop the others, all failures are joined in the returned error.
func UpdatePrices(m *MarketData, apiKey string, from, to date.Date) error {
	if apiKey == "" {
		return fmt.Errorf("no EODHD API key, set -eodhd-api-key or %s", eodhd_api_key)
	}
	var errs error
	for _, ticker := range m.Tickers() {
		closes, err := eodhdDaily(apiKey, ticker, from, to)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("could not fetch %s: %w", ticker, err))
			continue
		}
		for on, close := range closes.Values() {
			if err := m.Append(ticker, on, close); err != nil {
				errs = errors.Join(errs, err)
			}
		}
	}
	return errs
}
