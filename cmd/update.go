package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/smartdca"
	"github.com/google/subcommands"
)

// updateCmd holds the flags for the 'update' subcommand.
type updateCmd struct {
	from string
	to   string
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "fetch daily closes for the declared universe" }
func (*updateCmd) Usage() string {
	return `sdca update [-s <from>] [-d <to>]

  Fetches the daily closes of every declared ticker from EODHD and merges
  them into the market data file. The default range covers the momentum
  lookback ending today.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "s", "", "Start of the range to fetch. Defaults to 200 days before today.")
	f.StringVar(&c.to, "d", "", "End of the range to fetch. Defaults to today.")
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	market, err := DecodeMarketData()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading market data %q: %v\n", *marketFile, err)
		return subcommands.ExitFailure
	}

	to := smartdca.Today()
	if c.to != "" {
		if to, err = smartdca.ParseDate(c.to); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	// Scoring needs prices up to 180 days back, each resolved within the
	// lookback window: fetching 200 days more than covers a full cycle.
	from := to.Add(-200)
	if c.from != "" {
		if from, err = smartdca.ParseDate(c.from); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	if err := smartdca.UpdatePrices(market, smartdca.EodhdApiKey(), from, to); err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching prices: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := SaveMarketData(market); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving market data %q: %v\n", *marketFile, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated prices for %d tickers in %s\n", len(market.Tickers()), *marketFile)
	return subcommands.ExitSuccess
}
