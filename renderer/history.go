package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/smartdca/date"
	md "github.com/nao1215/markdown"
)

// History renders the cumulative invested cost over time to a markdown string.
func History(h *date.History[float64]) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Cumulative Investment Over Time")
	if h.Len() == 0 {
		doc.PlainText("No purchases recorded yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Date", "Invested"},
	}
	for on, v := range h.Values() {
		table.Rows = append(table.Rows, []string{on.String(), fmt.Sprintf("$%.2f", v)})
	}
	doc.Table(table)

	return doc.String()
}
