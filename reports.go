package smartdca

import (
	"fmt"

	"github.com/etnz/smartdca/date"
	"github.com/shopspring/decimal"
)

// TickerSummary aggregates the ledger rows of one ticker and values them at
// the current price.
type TickerSummary struct {
	Ticker       string
	Shares       Quantity
	Cost         Money
	CurrentPrice Money
	Value        Money
	Gain         Money
	Return       Percent
}

// Summary is the gain/loss overview of the whole ledger.
type Summary struct {
	Date      Date
	Tickers   []TickerSummary
	TotalCost Money
	Value     Money
	Gain      Money
}

// CurrentPrice resolves the present price of a ticker for valuation purposes.
type CurrentPrice func(ticker string) (float64, error)

// NewSummary values every position of the ledger at its current price and
// computes the gain or loss per ticker and in total. A ticker whose current
// price cannot be resolved fails the whole summary: valuing a position at a
// stale or zero price would silently corrupt the report.
func NewSummary(ledger *Ledger, on Date, current CurrentPrice) (*Summary, error) {
	summary := &Summary{
		Date:      on,
		TotalCost: M(0, USD),
		Value:     M(0, USD),
		Gain:      M(0, USD),
	}

	for _, ticker := range ledger.Tickers() {
		price, err := current(ticker)
		if err != nil {
			return nil, fmt.Errorf("could not value %s: %w", ticker, err)
		}

		shares, cost := decimal.Zero, decimal.Zero
		for _, p := range ledger.Purchases() {
			if p.Ticker != ticker {
				continue
			}
			shares = shares.Add(p.Shares)
			cost = cost.Add(p.Cost)
		}

		ts := TickerSummary{
			Ticker:       ticker,
			Shares:       Q(shares),
			Cost:         M(cost, USD),
			CurrentPrice: M(price, USD),
		}
		ts.Value = ts.CurrentPrice.Mul(ts.Shares)
		ts.Gain = ts.Value.Sub(ts.Cost)
		if !ts.Cost.IsZero() {
			ts.Return = Percent(ts.Gain.AsFloat() / ts.Cost.AsFloat() * 100)
		}
		summary.Tickers = append(summary.Tickers, ts)

		summary.TotalCost = summary.TotalCost.Add(ts.Cost)
		summary.Value = summary.Value.Add(ts.Value)
	}
	summary.Gain = summary.Value.Sub(summary.TotalCost)
	return summary, nil
}

// AllocationSlice is the share of the total invested cost sunk into one ticker.
type AllocationSlice struct {
	Ticker string
	Cost   Money
	Weight Percent
}

// NewAllocation breaks the total invested cost down by ticker.
func NewAllocation(ledger *Ledger) []AllocationSlice {
	total := decimal.Zero
	costs := make(map[string]decimal.Decimal)
	for _, p := range ledger.Purchases() {
		costs[p.Ticker] = costs[p.Ticker].Add(p.Cost)
		total = total.Add(p.Cost)
	}

	var slices []AllocationSlice
	for _, ticker := range ledger.Tickers() {
		s := AllocationSlice{Ticker: ticker, Cost: M(costs[ticker], USD)}
		if !total.IsZero() {
			weight, _ := costs[ticker].Div(total).Mul(decimal.NewFromInt(100)).Float64()
			s.Weight = Percent(weight)
		}
		slices = append(slices, s)
	}
	return slices
}

// CumulativeInvestment returns the running total of invested cost over time.
func CumulativeInvestment(ledger *Ledger) *date.History[float64] {
	h := new(date.History[float64])
	for _, p := range ledger.Purchases() {
		cost, _ := p.Cost.Float64()
		h.AppendAdd(p.Date, cost)
	}
	// AppendAdd accumulates per day; turn the per-day flows into a running sum.
	sum := 0.0
	cumulative := new(date.History[float64])
	for on, v := range h.Values() {
		sum += v
		cumulative.Append(on, sum)
	}
	return cumulative
}
