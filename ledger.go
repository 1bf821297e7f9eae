package smartdca

import (
	"fmt"
	"iter"
	"sort"

	"github.com/shopspring/decimal"
)

// Purchase is one row of the purchase ledger: a buy of some shares of a
// ticker at a price on a day. Cost is price times shares, kept explicit so a
// manually recorded broker figure survives re-encoding untouched.
type Purchase struct {
	Date   Date            `json:"date"`
	Ticker string          `json:"ticker"`
	Price  decimal.Decimal `json:"price"`
	Shares decimal.Decimal `json:"shares"`
	Cost   decimal.Decimal `json:"cost"`
}

// PriceMoney returns the purchase price as Money.
func (p Purchase) PriceMoney() Money { return M(p.Price, USD) }

// CostMoney returns the purchase cost as Money.
func (p Purchase) CostMoney() Money { return M(p.Cost, USD) }

// SharesQuantity returns the purchased shares as a Quantity.
func (p Purchase) SharesQuantity() Quantity { return Q(p.Shares) }

// Validate checks a purchase for correctness and applies quick fixes: the
// ticker is normalized, a zero date becomes today, and a zero cost is
// computed from price and shares.
func (p Purchase) Validate() (Purchase, error) {
	p.Ticker = NormalizeTicker(p.Ticker)
	if p.Ticker == "" {
		return p, fmt.Errorf("purchase has no ticker")
	}
	if p.Date.IsZero() {
		p.Date = Today()
	}
	if !p.Price.IsPositive() {
		return p, fmt.Errorf("purchase price must be positive, got %s", p.Price)
	}
	if !p.Shares.IsPositive() {
		return p, fmt.Errorf("purchase shares must be positive, got %s", p.Shares)
	}
	if p.Cost.IsZero() {
		p.Cost = p.Price.Mul(p.Shares)
	}
	return p, nil
}

// Purchase converts a suggestion into the ledger row recording it, bought on
// the given day (the buy day is the caller's choice, not the cutoff).
func (s *Suggestion) Purchase(on Date) Purchase {
	return Purchase{
		Date:   on,
		Ticker: s.Ticker,
		Price:  s.Price.value,
		Shares: s.Shares.value,
		Cost:   s.Cost.value,
	}
}

// Ledger is the chronological list of purchases.
type Ledger struct {
	purchases []Purchase
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{purchases: make([]Purchase, 0)}
}

// Len returns the number of purchases.
func (l *Ledger) Len() int { return len(l.purchases) }

// Append validates the purchase and adds it to the ledger, keeping the
// chronological order.
func (l *Ledger) Append(p Purchase) error {
	p, err := p.Validate()
	if err != nil {
		return fmt.Errorf("invalid purchase on %s: %w", p.Date, err)
	}
	l.purchases = append(l.purchases, p)
	l.sort()
	return nil
}

// Delete removes the purchase at the given index.
func (l *Ledger) Delete(index int) error {
	if index < 0 || index >= len(l.purchases) {
		return fmt.Errorf("no purchase at index %d, ledger has %d", index, len(l.purchases))
	}
	l.purchases = append(l.purchases[:index], l.purchases[index+1:]...)
	return nil
}

// Get returns the purchase at the given index.
func (l *Ledger) Get(index int) (Purchase, error) {
	if index < 0 || index >= len(l.purchases) {
		return Purchase{}, fmt.Errorf("no purchase at index %d, ledger has %d", index, len(l.purchases))
	}
	return l.purchases[index], nil
}

// Purchases returns an iterator over all purchases in chronological order.
func (l *Ledger) Purchases() iter.Seq2[int, Purchase] {
	return func(yield func(int, Purchase) bool) {
		for i, p := range l.purchases {
			if !yield(i, p) {
				return
			}
		}
	}
}

// Tickers returns the distinct tickers present in the ledger, ascending.
func (l *Ledger) Tickers() []string {
	seen := make(map[string]bool)
	var tickers []string
	for _, p := range l.purchases {
		if !seen[p.Ticker] {
			seen[p.Ticker] = true
			tickers = append(tickers, p.Ticker)
		}
	}
	sort.Strings(tickers)
	return tickers
}

// sort keeps purchases in chronological order, stable for same-day entries.
func (l *Ledger) sort() {
	sort.SliceStable(l.purchases, func(i, j int) bool {
		return l.purchases[i].Date.Before(l.purchases[j].Date)
	})
}
