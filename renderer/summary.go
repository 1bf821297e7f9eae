package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/smartdca"
	md "github.com/nao1215/markdown"
)

// Summary renders the gain/loss overview to a markdown string.
func Summary(s *smartdca.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio Summary on %s", s.Date))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Ticker", "Shares", "Cost", "Current Price", "Value", "Gain / Loss", "Return"},
	}
	for _, ts := range s.Tickers {
		table.Rows = append(table.Rows, []string{
			ts.Ticker,
			ts.Shares.String(),
			ts.Cost.String(),
			ts.CurrentPrice.String(),
			ts.Value.String(),
			ts.Gain.SignedString(),
			ts.Return.SignedString(),
		})
	}
	table.Rows = append(table.Rows, []string{
		md.Bold("Total"),
		"",
		md.Bold(s.TotalCost.String()),
		"",
		md.Bold(s.Value.String()),
		md.Bold(s.Gain.SignedString()),
		"",
	})
	doc.Table(table)

	return doc.String()
}

// Allocation renders the cost allocation to a markdown string.
func Allocation(slices []smartdca.AllocationSlice) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Allocation by Cost")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Ticker", "Cost", "Weight"},
	}
	for _, s := range slices {
		table.Rows = append(table.Rows, []string{s.Ticker, s.Cost.String(), s.Weight.String()})
	}
	doc.Table(table)

	return doc.String()
}
