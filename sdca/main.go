package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/smartdca/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion: when invoked by the shell completion hook, this
	// prints the candidates and exits. Install with COMP_INSTALL=1 sdca.
	completer := &complete.Command{
		Sub: map[string]*complete.Command{
			"suggest":    {Flags: map[string]complete.Predictor{"t": predict.Nothing, "amount": predict.Nothing, "d": predict.Nothing, "buy-date": predict.Nothing, "apply": predict.Nothing, "skip-missing": predict.Nothing}},
			"rotation":   {Flags: map[string]complete.Predictor{"set": predict.Nothing}},
			"add":        {Flags: map[string]complete.Predictor{"ticker": predict.Nothing, "price": predict.Nothing, "shares": predict.Nothing, "d": predict.Nothing}},
			"delete":     {Flags: map[string]complete.Predictor{"i": predict.Nothing}},
			"list":       {},
			"fmt":        {},
			"summary":    {Flags: map[string]complete.Predictor{"intraday": predict.Nothing}},
			"allocation": {},
			"history":    {},
			"declare":    {Flags: map[string]complete.Predictor{"t": predict.Nothing}},
			"universe":   {},
			"update":     {Flags: map[string]complete.Predictor{"s": predict.Nothing, "d": predict.Nothing}},
			"assist":     {},
		},
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.jsonl"),
			"market-file": predict.Files("*.jsonl"),
			"state-file":  predict.Files("*.json"),
			"pretty":      predict.Nothing,
		},
	}
	completer.Complete(path.Base(os.Args[0]))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(subcommands.HelpCommand(), "help")
	commander.Register(subcommands.FlagsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
