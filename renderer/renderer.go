// Package renderer turns smartdca reports into markdown.
package renderer

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/etnz/smartdca"
	md "github.com/nao1215/markdown"
)

// Suggestion renders a buy suggestion to a markdown string.
func Suggestion(s *smartdca.Suggestion) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Smart DCA Suggestion")
	doc.PlainText(fmt.Sprintf("Momentum evaluated as of %s.", s.Cutoff))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Buy", md.Bold(s.Ticker)},
		Rows: [][]string{
			{"Score", fmt.Sprintf("%+.4f", s.Score)},
			{"Price", s.Price.String()},
			{"Shares", s.Shares.String()},
			{"Cost", s.Cost.String()},
		},
	})

	doc.H2("Next Rotation")
	doc.Table(rotationTable(s.Rotation))

	return doc.String()
}

// Rotation renders rotation counts to a markdown string.
func Rotation(r smartdca.Rotation) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Rotation Counts")
	doc.Table(rotationTable(r))
	return doc.String()
}

func rotationTable(r smartdca.Rotation) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Ticker", "Count"},
	}
	for _, ticker := range slices.Sorted(maps.Keys(r)) {
		table.Rows = append(table.Rows, []string{ticker, strconv.Itoa(r.Count(ticker))})
	}
	return table
}
