package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/smartdca/renderer"
	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all purchases in the ledger" }
func (*listCmd) Usage() string {
	return `sdca list

  Lists the purchases of the ledger in chronological order, with the index
  used by 'sdca delete'.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	Render(renderer.Ledger(ledger))
	return subcommands.ExitSuccess
}
