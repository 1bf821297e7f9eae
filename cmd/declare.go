package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/smartdca"
	"github.com/google/subcommands"
)

// declareCmd holds the flags for the 'declare' subcommand.
type declareCmd struct {
	tickers string
}

func (*declareCmd) Name() string     { return "declare" }
func (*declareCmd) Synopsis() string { return "declare tickers as part of the candidate universe" }
func (*declareCmd) Usage() string {
	return `sdca declare -t <tickers>

  Adds tickers to the declared universe. Only declared tickers can be scored,
  bought, or recorded in the ledger.
`
}

func (c *declareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.tickers, "t", "", "Comma-separated tickers to declare.")
}

func (c *declareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tickers := smartdca.ParseTickers(c.tickers)
	if len(tickers) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no tickers given, use -t")
		return subcommands.ExitUsageError
	}

	market, err := DecodeMarketData()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading market data %q: %v\n", *marketFile, err)
		return subcommands.ExitFailure
	}

	for _, t := range tickers {
		if err := market.Declare(t); err != nil {
			fmt.Fprintf(os.Stderr, "Error declaring %q: %v\n", t, err)
			return subcommands.ExitUsageError
		}
	}

	if err := SaveMarketData(market); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving market data %q: %v\n", *marketFile, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Declared %d tickers, universe is now %v\n", len(tickers), market.Tickers())
	return subcommands.ExitSuccess
}

type universeCmd struct{}

func (*universeCmd) Name() string     { return "universe" }
func (*universeCmd) Synopsis() string { return "list the declared candidate universe" }
func (*universeCmd) Usage() string {
	return `sdca universe

  Lists the declared tickers and how much price history each one holds.
`
}

func (c *universeCmd) SetFlags(f *flag.FlagSet) {}

func (c *universeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	market, err := DecodeMarketData()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading market data %q: %v\n", *marketFile, err)
		return subcommands.ExitFailure
	}
	for _, t := range market.Tickers() {
		if on, close, ok := market.Latest(t); ok {
			fmt.Printf("%s\tlatest close %.2f on %s\n", t, close, on)
		} else {
			fmt.Printf("%s\tno prices yet, run 'sdca update'\n", t)
		}
	}
	return subcommands.ExitSuccess
}
