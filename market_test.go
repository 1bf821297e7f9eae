package smartdca

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestPriceAsOf(t *testing.T) {
	m := NewMarketData()
	if err := m.Declare("qqq "); err != nil {
		t.Fatalf("Declare() error = %v", err)
	}
	friday := NewDate(2025, time.June, 13)
	if err := m.Append("QQQ", friday, 530.12); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	// Exact day.
	if got, err := m.PriceAsOf("QQQ", friday); err != nil || got != 530.12 {
		t.Errorf("PriceAsOf(friday) = %v, %v want 530.12, nil", got, err)
	}
	// The following sunday resolves to friday's close.
	if got, err := m.PriceAsOf("QQQ", friday.Add(2)); err != nil || got != 530.12 {
		t.Errorf("PriceAsOf(sunday) = %v, %v want 530.12, nil", got, err)
	}
	// Ticker normalization applies on lookup too.
	if got, err := m.PriceAsOf(" qqq", friday); err != nil || got != 530.12 {
		t.Errorf("PriceAsOf(\" qqq\") = %v, %v want 530.12, nil", got, err)
	}
}

func TestPriceAsOfLookbackWindow(t *testing.T) {
	m := NewMarketData()
	m.Declare("AAPL")
	on := NewDate(2025, time.January, 2)
	m.Append("AAPL", on, 243.85)

	// Within the window the stale close still resolves.
	if _, err := m.PriceAsOf("AAPL", on.Add(lookbackDays)); err != nil {
		t.Errorf("PriceAsOf(+%d days) error = %v, want resolved", lookbackDays, err)
	}
	// One day past the window the price is gone.
	var unavailable *PriceUnavailableError
	if _, err := m.PriceAsOf("AAPL", on.Add(lookbackDays+1)); !errors.As(err, &unavailable) {
		t.Errorf("PriceAsOf(+%d days) error = %v, want *PriceUnavailableError", lookbackDays+1, err)
	}
}

func TestPriceAsOfUnknownTicker(t *testing.T) {
	m := NewMarketData()
	var unavailable *PriceUnavailableError
	_, err := m.PriceAsOf("ZZZ", Today())
	if !errors.As(err, &unavailable) {
		t.Fatalf("PriceAsOf(unknown) error = %v, want *PriceUnavailableError", err)
	}
	var invalid *InvalidTickerError
	if !errors.As(err, &invalid) {
		t.Errorf("PriceAsOf(unknown) error = %v, want to wrap *InvalidTickerError", err)
	}
}

func TestMarketDataEncodeDecode(t *testing.T) {
	m := NewMarketData()
	m.Declare("QQQ")
	m.Declare("NVDA")
	m.Append("QQQ", NewDate(2025, time.June, 12), 528.00)
	m.Append("QQQ", NewDate(2025, time.June, 13), 530.12)

	var b strings.Builder
	if err := EncodeMarketData(&b, m); err != nil {
		t.Fatalf("EncodeMarketData() error = %v", err)
	}

	got, err := DecodeMarketData(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("DecodeMarketData() error = %v", err)
	}

	if tickers := got.Tickers(); len(tickers) != 2 || tickers[0] != "NVDA" || tickers[1] != "QQQ" {
		t.Errorf("Tickers() = %v want [NVDA QQQ]", tickers)
	}
	if p, err := got.PriceAsOf("QQQ", NewDate(2025, time.June, 13)); err != nil || p != 530.12 {
		t.Errorf("PriceAsOf() after round trip = %v, %v want 530.12, nil", p, err)
	}
	// NVDA survives as a declared ticker even with no prices yet.
	if !got.Has("NVDA") {
		t.Errorf("Has(NVDA) = false after round trip")
	}
}
