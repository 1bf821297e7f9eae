package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/smartdca/agent"
	"github.com/etnz/smartdca/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

const gemini_api_key = "GEMINI_API_KEY"

// assistCmd holds the flags for the 'assist' subcommand.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "chat with an assistant about the portfolio" }
func (*assistCmd) Usage() string {
	return `sdca assist [question ...]

  Starts an interactive chat with a Gemini-backed assistant that has the
  current ledger and rotation state in context. Requires ` + gemini_api_key + `.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if os.Getenv(gemini_api_key) == "" {
		fmt.Fprintf(os.Stderr, "Error: %s is not set\n", gemini_api_key)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	rotation, err := LoadRotation()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	report := renderer.Ledger(ledger) + "\n" + renderer.Rotation(rotation)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating the Gemini client: %v\n", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin)
	if err := a.Start(ctx, client, report); err != nil {
		fmt.Fprintf(os.Stderr, "Error starting the assistant: %v\n", err)
		return subcommands.ExitFailure
	}

	var prompts []string
	if f.NArg() > 0 {
		prompts = []string{strings.Join(f.Args(), " ")}
	}
	if err := a.Run(ctx, prompts...); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
