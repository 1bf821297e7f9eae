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

type allocationCmd struct{}

func (*allocationCmd) Name() string     { return "allocation" }
func (*allocationCmd) Synopsis() string { return "breakdown of invested cost by ticker" }
func (*allocationCmd) Usage() string {
	return `sdca allocation

  Shows how the total invested cost is split across tickers.
`
}

func (c *allocationCmd) SetFlags(f *flag.FlagSet) {}

func (c *allocationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	Render(renderer.Allocation(smartdca.NewAllocation(ledger)))
	return subcommands.ExitSuccess
}
