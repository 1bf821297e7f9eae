// Package cmd implements the CLI application to run and track smart-DCA decisions.
package cmd

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/smartdca"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&suggestCmd{}, "dca")
	c.Register(&rotationCmd{}, "dca")

	c.Register(&addCmd{}, "ledger")
	c.Register(&deleteCmd{}, "ledger")
	c.Register(&listCmd{}, "ledger")
	c.Register(&fmtCmd{}, "ledger")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&allocationCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")

	c.Register(&declareCmd{}, "universe")
	c.Register(&universeCmd{}, "universe")
	c.Register(&updateCmd{}, "universe")

	c.Register(&assistCmd{}, "assist")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "purchases.jsonl", "Path to the purchase ledger file (JSONL format)")
var marketFile = flag.String("market-file", "market.jsonl", "Path to the market data file (JSONL format)")
var stateFile = flag.String("state-file", "rotation.json", "Path to the rotation state file (JSON format)")
var pretty = flag.Bool("pretty", false, "Render reports for the terminal instead of raw markdown")

// DecodeLedger loads the purchase ledger from the app ledger file.
func DecodeLedger() (l *smartdca.Ledger, err error) {
	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, ledger file does not exist, starting from an empty ledger instead")
		return smartdca.NewLedger(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return smartdca.DecodeLedger(f)
}

// SaveLedger rewrites the whole ledger file in canonical form.
func SaveLedger(l *smartdca.Ledger) error {
	f, err := os.Create(*ledgerFile)
	if err != nil {
		return err
	}
	defer f.Close()
	return smartdca.EncodeLedger(f, l)
}

// AppendPurchase appends a single purchase into the app default ledger file.
func AppendPurchase(p smartdca.Purchase) subcommands.ExitStatus {
	f, err := os.OpenFile(*ledgerFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := smartdca.EncodePurchase(f, p); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended purchase to %s\n", *ledgerFile)
	return subcommands.ExitSuccess
}

// DecodeMarketData loads the market data from the app market file. A missing
// file yields a fresh universe seeded with the default tickers.
func DecodeMarketData() (*smartdca.MarketData, error) {
	f, err := os.Open(*marketFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, market file does not exist, creating the default universe instead")
		m := smartdca.NewMarketData()
		for _, t := range smartdca.DefaultUniverse {
			if err := m.Declare(t); err != nil {
				return nil, err
			}
		}
		return m, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return smartdca.DecodeMarketData(f)
}

// SaveMarketData rewrites the whole market file in canonical form.
func SaveMarketData(m *smartdca.MarketData) error {
	f, err := os.Create(*marketFile)
	if err != nil {
		return err
	}
	defer f.Close()
	return smartdca.EncodeMarketData(f, m)
}

// LoadRotation reads the rotation counts from the app state file. A missing
// file is an empty rotation: every count implicitly zero.
func LoadRotation() (smartdca.Rotation, error) {
	content, err := os.ReadFile(*stateFile)
	if errors.Is(err, fs.ErrNotExist) {
		return smartdca.Rotation{}, nil
	}
	if err != nil {
		return nil, err
	}
	var r smartdca.Rotation
	if err := json.Unmarshal(content, &r); err != nil {
		return nil, fmt.Errorf("could not decode rotation state %q: %w", *stateFile, err)
	}
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rotation state %q: %w", *stateFile, err)
	}
	return r, nil
}

// SaveRotation persists the rotation counts for the next cycle.
func SaveRotation(r smartdca.Rotation) error {
	content, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(*stateFile, content, 0644)
}

// Render prints a markdown report, through glamour when -pretty is set.
func Render(markdown string) {
	if *pretty {
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
		if err == nil {
			if out, err := r.Render(markdown); err == nil {
				fmt.Print(out)
				return
			}
		}
		// fall through to raw markdown
	}
	fmt.Print(markdown)
}
