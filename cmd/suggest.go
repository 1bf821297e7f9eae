package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/smartdca"
	"github.com/etnz/smartdca/date"
	"github.com/etnz/smartdca/renderer"
	"github.com/google/subcommands"
)

// suggestCmd holds the flags for the 'suggest' subcommand.
type suggestCmd struct {
	tickers     string
	amount      float64
	cutoff      string
	buyDate     string
	apply       bool
	skipMissing bool
}

func (*suggestCmd) Name() string     { return "suggest" }
func (*suggestCmd) Synopsis() string { return "suggest the next ticker to buy via smart DCA" }
func (*suggestCmd) Usage() string {
	return `sdca suggest [-t <tickers>] [-amount <amount>] [-d <cutoff>] [-apply]

  Scores every candidate ticker by momentum as of the cutoff date, picks the
  next one to buy under the rotation cap, and prints the suggestion. With
  -apply, the purchase is appended to the ledger and the rotation state is
  persisted for the next cycle.
`
}

func (c *suggestCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.tickers, "t", "", "Comma-separated candidate tickers. Defaults to the whole declared universe.")
	f.Float64Var(&c.amount, "amount", 450, "Investable amount for this cycle.")
	f.StringVar(&c.cutoff, "d", "", "Cutoff date for momentum evaluation. Defaults to the last weekday.")
	f.StringVar(&c.buyDate, "buy-date", "", "Buy date recorded with -apply. Defaults to the 15th or next weekday.")
	f.BoolVar(&c.apply, "apply", false, "Append the purchase to the ledger and persist the new rotation.")
	f.BoolVar(&c.skipMissing, "skip-missing", false, "Exclude tickers whose prices cannot be resolved instead of aborting.")
}

func (c *suggestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	market, err := DecodeMarketData()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading market data %q: %v\n", *marketFile, err)
		return subcommands.ExitFailure
	}

	tickers := market.Tickers()
	if c.tickers != "" {
		tickers = smartdca.ParseTickers(c.tickers)
		if err := market.CheckTickers(tickers); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}
	if len(tickers) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no candidate tickers, declare some first")
		return subcommands.ExitUsageError
	}

	cutoff := date.LastWeekday(smartdca.Today())
	if c.cutoff != "" {
		if cutoff, err = smartdca.ParseDate(c.cutoff); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing cutoff date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	rotation, err := LoadRotation()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	scores, failures := smartdca.ScoreAll(market.PriceLookup(), tickers, cutoff)
	for ticker, err := range failures {
		if !c.skipMissing {
			fmt.Fprintf(os.Stderr, "Error scoring %s: %v\n", ticker, err)
			fmt.Fprintln(os.Stderr, "Run 'sdca update' to refresh prices, or use -skip-missing to exclude it.")
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "warning, excluding %s: %v\n", ticker, err)
	}

	suggestion, err := smartdca.Select(scores, rotation, smartdca.M(c.amount, smartdca.USD), market.PriceLookup(), cutoff)
	if err != nil {
		if errors.Is(err, smartdca.ErrInvalidAmount) || errors.Is(err, smartdca.ErrNoCandidates) {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	Render(renderer.Suggestion(suggestion))

	if !c.apply {
		return subcommands.ExitSuccess
	}

	buyDay := date.NextBuyDay(smartdca.Today())
	if c.buyDate != "" {
		if buyDay, err = smartdca.ParseDate(c.buyDate); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing buy date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	if status := AppendPurchase(suggestion.Purchase(buyDay)); status != subcommands.ExitSuccess {
		return status
	}
	if err := SaveRotation(suggestion.Rotation); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving rotation state %q: %v\n", *stateFile, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Rotation state saved to %s\n", *stateFile)
	return subcommands.ExitSuccess
}
