package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// deleteCmd holds the flags for the 'delete' subcommand.
type deleteCmd struct {
	index int
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a purchase from the ledger by index" }
func (*deleteCmd) Usage() string {
	return `sdca delete -i <index>

  Removes the purchase at the given index (as shown by 'sdca list') and
  rewrites the ledger file.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "i", -1, "Index of the purchase to delete.")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	deleted, err := ledger.Get(c.index)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if err := ledger.Delete(c.index); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted purchase of %s on %s from %s\n", deleted.Ticker, deleted.Date, *ledgerFile)
	return subcommands.ExitSuccess
}
