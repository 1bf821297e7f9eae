package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/smartdca"
	"github.com/etnz/smartdca/renderer"
	"github.com/google/subcommands"
)

// rotationCmd holds the flags for the 'rotation' subcommand.
type rotationCmd struct {
	set string
}

func (*rotationCmd) Name() string     { return "rotation" }
func (*rotationCmd) Synopsis() string { return "show or set the rotation counts" }
func (*rotationCmd) Usage() string {
	return `sdca rotation [-set <ticker=count,...>]

  Shows the persisted rotation counts. With -set, overwrites counts, e.g.
  'sdca rotation -set NVDA=3,QQQ=0' before the first suggestion cycle.
`
}

func (c *rotationCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.set, "set", "", "Comma-separated ticker=count pairs to store.")
}

func (c *rotationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rotation, err := LoadRotation()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.set != "" {
		market, err := DecodeMarketData()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading market data %q: %v\n", *marketFile, err)
			return subcommands.ExitFailure
		}
		for _, pair := range strings.Split(c.set, ",") {
			ticker, count, found := strings.Cut(pair, "=")
			if !found {
				fmt.Fprintf(os.Stderr, "Error: invalid pair %q, want ticker=count\n", pair)
				return subcommands.ExitUsageError
			}
			ticker = smartdca.NormalizeTicker(ticker)
			if err := market.CheckTickers([]string{ticker}); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return subcommands.ExitUsageError
			}
			n, err := strconv.Atoi(strings.TrimSpace(count))
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: invalid count in %q: %v\n", pair, err)
				return subcommands.ExitUsageError
			}
			rotation[ticker] = n
		}
		if err := rotation.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		if err := SaveRotation(rotation); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving rotation state %q: %v\n", *stateFile, err)
			return subcommands.ExitFailure
		}
	}

	Render(renderer.Rotation(rotation))
	return subcommands.ExitSuccess
}
