package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/smartdca"
	"github.com/etnz/smartdca/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	intraday bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "gain/loss overview of the ledger per ticker" }
func (*summaryCmd) Usage() string {
	return `sdca summary [-intraday]

  Values every position at its current price and reports the gain or loss per
  ticker and in total. By default the latest stored close is used; with
  -intraday the last traded price is fetched instead.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.intraday, "intraday", false, "Fetch the last traded price instead of using stored closes.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	market, err := DecodeMarketData()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading market data %q: %v\n", *marketFile, err)
		return subcommands.ExitFailure
	}

	current := func(ticker string) (float64, error) {
		if c.intraday {
			return smartdca.LatestPrice(smartdca.EodhdApiKey(), ticker)
		}
		_, price, ok := market.Latest(ticker)
		if !ok {
			return 0, &smartdca.PriceUnavailableError{Ticker: ticker, On: smartdca.Today()}
		}
		return price, nil
	}

	summary, err := smartdca.NewSummary(ledger, smartdca.Today(), current)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	Render(renderer.Summary(summary))
	return subcommands.ExitSuccess
}
