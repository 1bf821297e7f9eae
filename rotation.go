package smartdca

import (
	"fmt"
	"maps"
	"slices"
	"sort"
)

// rotationCap is the maximum number of consecutive buys of the same ticker
// before it must yield to the others.
const rotationCap = 3

// sharePlaces is the precision share quantities are truncated to.
const sharePlaces = 3

// Rotation maps a ticker to the number of consecutive cycles it has been
// bought since the last full reset. A missing entry counts as zero.
type Rotation map[string]int

// Count returns the rotation count of a ticker, zero when absent.
func (r Rotation) Count(ticker string) int { return r[ticker] }

// Clone returns a copy of the rotation counts including every given ticker,
// so callers can mutate the copy without touching the original.
func (r Rotation) Clone(tickers ...string) Rotation {
	n := make(Rotation, len(r)+len(tickers))
	maps.Copy(n, r)
	for _, t := range tickers {
		if _, ok := n[t]; !ok {
			n[t] = 0
		}
	}
	return n
}

// Validate checks that every count is within [0, rotationCap].
func (r Rotation) Validate() error {
	for t, c := range r {
		if c < 0 || c > rotationCap {
			return fmt.Errorf("rotation count for %s is %d, want 0 to %d", t, c, rotationCap)
		}
	}
	return nil
}

// Suggestion is the outcome of one selection cycle: which ticker to buy, at
// what price, how many shares, and the rotation counts to carry into the next
// cycle. It is immutable once produced; the caller decides whether to append
// the purchase to a ledger and persist the new rotation.
type Suggestion struct {
	Cutoff   Date
	Ticker   string
	Score    float64
	Price    Money
	Shares   Quantity
	Cost     Money
	Rotation Rotation
}

// Select deterministically picks the next ticker to buy.
//
// Candidates are ordered by score descending, ties broken by ticker ascending
// so that the outcome never depends on map iteration order. The first
// candidate whose rotation count is below the cap wins. When every candidate
// has reached the cap, the top scorer wins and all counts reset to zero
// first. The winner's count is then incremented and every other count
// collapses to zero: only the most recently bought ticker keeps a streak.
//
// Shares are truncated, not rounded, to 3 decimal places and the cost is the
// exact product shares x price.
//
// Select is pure: it never mutates its inputs and keeps no state between
// calls. The returned rotation is the caller's to persist.
func Select(scores map[string]float64, rotation Rotation, amount Money, lookup PriceLookup, cutoff Date) (*Suggestion, error) {
	if len(scores) == 0 {
		return nil, ErrNoCandidates
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidAmount, amount)
	}

	// Sorted keys first, then a stable sort by score: equal scores keep
	// ticker-ascending order.
	candidates := slices.Sorted(maps.Keys(scores))
	sort.SliceStable(candidates, func(i, j int) bool {
		return scores[candidates[i]] > scores[candidates[j]]
	})

	next := rotation.Clone(candidates...)

	var buy string
	for _, t := range candidates {
		if next.Count(t) < rotationCap {
			buy = t
			break
		}
	}
	if buy == "" {
		// Exhaustion: every candidate is at the cap. The top scorer wins and
		// the whole cycle starts over.
		buy = candidates[0]
		for t := range next {
			next[t] = 0
		}
	}
	for t := range next {
		if t != buy {
			next[t] = 0
		}
	}
	next[buy]++

	p, err := priceAt(lookup, buy, cutoff)
	if err != nil {
		return nil, err
	}
	price := M(p, amount.Currency())
	shares := amount.DivPrice(price).Truncate(sharePlaces)
	cost := price.Mul(shares)

	return &Suggestion{
		Cutoff:   cutoff,
		Ticker:   buy,
		Score:    scores[buy],
		Price:    price,
		Shares:   shares,
		Cost:     cost,
		Rotation: next,
	}, nil
}
