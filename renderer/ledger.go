package renderer

import (
	"bytes"
	"strconv"

	"github.com/etnz/smartdca"
	md "github.com/nao1215/markdown"
)

// Ledger renders the purchase ledger to a markdown table.
func Ledger(l *smartdca.Ledger) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Purchase Ledger")
	if l.Len() == 0 {
		doc.PlainText("No purchases recorded yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"#", "Date", "Ticker", "Price", "Shares", "Cost"},
	}
	for i, p := range l.Purchases() {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(i),
			p.Date.String(),
			p.Ticker,
			p.PriceMoney().String(),
			p.SharesQuantity().String(),
			p.CostMoney().String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
