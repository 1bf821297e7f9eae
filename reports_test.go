package smartdca

import (
	"testing"
	"time"
)

func reportLedger(t *testing.T) *Ledger {
	t.Helper()
	l := NewLedger()
	buy(t, l, NewDate(2025, time.April, 15), "QQQ", 450, 1)
	buy(t, l, NewDate(2025, time.May, 15), "QQQ", 460, 1)
	buy(t, l, NewDate(2025, time.May, 15), "AAPL", 200, 0.5)
	return l
}

func TestNewSummary(t *testing.T) {
	l := reportLedger(t)
	current := func(ticker string) (float64, error) {
		return map[string]float64{"QQQ": 500, "AAPL": 180}[ticker], nil
	}

	s, err := NewSummary(l, NewDate(2025, time.June, 16), current)
	if err != nil {
		t.Fatalf("NewSummary() error = %v", err)
	}

	if len(s.Tickers) != 2 {
		t.Fatalf("Tickers = %v want entries for AAPL and QQQ", s.Tickers)
	}
	// Tickers are reported in ascending order.
	aapl, qqq := s.Tickers[0], s.Tickers[1]

	// AAPL: 0.5 shares at 180 = 90, cost 100, loss of 10.
	if !aapl.Gain.Equal(M(-10, USD)) {
		t.Errorf("AAPL gain = %s want -$10.00", aapl.Gain)
	}
	// QQQ: 2 shares at 500 = 1000, cost 910, gain of 90.
	if !qqq.Gain.Equal(M(90, USD)) {
		t.Errorf("QQQ gain = %s want +$90.00", qqq.Gain)
	}
	if !s.TotalCost.Equal(M(1010, USD)) {
		t.Errorf("TotalCost = %s want $1,010.00", s.TotalCost)
	}
	if !s.Gain.Equal(M(80, USD)) {
		t.Errorf("Gain = %s want +$80.00", s.Gain)
	}
}

func TestNewSummaryFailsOnMissingPrice(t *testing.T) {
	l := reportLedger(t)
	current := func(ticker string) (float64, error) {
		return 0, &PriceUnavailableError{Ticker: ticker, On: Today()}
	}
	if _, err := NewSummary(l, Today(), current); err == nil {
		t.Errorf("NewSummary() expected an error when a position cannot be valued, got nil")
	}
}

func TestNewAllocation(t *testing.T) {
	l := reportLedger(t)
	slices := NewAllocation(l)

	if len(slices) != 2 {
		t.Fatalf("NewAllocation() = %v want 2 slices", slices)
	}
	aapl, qqq := slices[0], slices[1]
	if !aapl.Cost.Equal(M(100, USD)) || !qqq.Cost.Equal(M(910, USD)) {
		t.Errorf("costs = %s, %s want $100.00, $910.00", aapl.Cost, qqq.Cost)
	}
	// 100/1010 and 910/1010 of the total.
	if !aapl.Weight.Equal(Percent(9.9010)) {
		t.Errorf("AAPL weight = %s want 9.90%%", aapl.Weight)
	}
	if !qqq.Weight.Equal(Percent(90.0990)) {
		t.Errorf("QQQ weight = %s want 90.10%%", qqq.Weight)
	}
}

func TestCumulativeInvestment(t *testing.T) {
	l := reportLedger(t)
	h := CumulativeInvestment(l)

	// Two distinct buy days: the two may-15 purchases collapse into one point.
	if h.Len() != 2 {
		t.Fatalf("CumulativeInvestment().Len() = %d want 2", h.Len())
	}
	if v, _ := h.Get(NewDate(2025, time.April, 15)); v != 450 {
		t.Errorf("cumulative on 2025-04-15 = %v want 450", v)
	}
	if v, _ := h.Get(NewDate(2025, time.May, 15)); v != 1010 {
		t.Errorf("cumulative on 2025-05-15 = %v want 1010", v)
	}
}
