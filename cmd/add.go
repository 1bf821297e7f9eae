package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/smartdca"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	ticker string
	price  float64
	shares float64
	date   string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "manually record a purchase in the ledger" }
func (*addCmd) Usage() string {
	return `sdca add -ticker <ticker> -price <price> -shares <shares> [-d <date>]

  Appends a manually entered purchase to the ledger. The cost is computed as
  price times shares.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "ticker", "", "Ticker of the purchased security.")
	f.Float64Var(&c.price, "price", 0, "Buy price per share.")
	f.Float64Var(&c.shares, "shares", 0, "Number of shares bought.")
	f.StringVar(&c.date, "d", "", "Buy date. Defaults to today.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	market, err := DecodeMarketData()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading market data %q: %v\n", *marketFile, err)
		return subcommands.ExitFailure
	}
	if err := market.CheckTickers([]string{c.ticker}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	p := smartdca.Purchase{
		Ticker: c.ticker,
		Price:  decimal.NewFromFloat(c.price),
		Shares: decimal.NewFromFloat(c.shares),
	}
	if c.date != "" {
		if p.Date, err = smartdca.ParseDate(c.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing buy date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	p, err = p.Validate()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	return AppendPurchase(p)
}
