// Package smartdca implements a momentum-driven dollar-cost-averaging
// decision aid over a small, user-declared universe of tickers.
//
// The core is two pure functions: Score, which blends 1-, 3- and 6-month
// trailing returns into a single momentum score, and Select, which picks the
// next ticker to buy under an exclusive rotation cap and returns the updated
// rotation counts. Everything else (market data, the purchase ledger, the
// reports) is plumbing around that core.
package smartdca
