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

type historyCmd struct{}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "cumulative invested cost over time" }
func (*historyCmd) Usage() string {
	return `sdca history

  Shows the running total of invested cost, one row per buy day.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	Render(renderer.History(smartdca.CumulativeInvestment(ledger)))
	return subcommands.ExitSuccess
}
