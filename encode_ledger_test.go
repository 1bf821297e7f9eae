package smartdca

import (
	"strings"
	"testing"
	"time"
)

func TestDecodeLedger(t *testing.T) {
	// Out-of-order lines, an empty line, and a line with no cost: decoding
	// sorts, skips, and fixes.
	jsonl := `{"date":"2025-05-15","ticker":"AAPL","price":210,"shares":2,"cost":420}

{"date":"2025-04-15","ticker":"qqq","price":450,"shares":1}
`
	l, err := DecodeLedger(strings.NewReader(jsonl))
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}
	if l.Len() != 2 {
		t.Fatalf("Len() = %d want 2", l.Len())
	}

	first, _ := l.Get(0)
	if first.Ticker != "QQQ" || first.Date != NewDate(2025, time.April, 15) {
		t.Errorf("first purchase = %s %s, want QQQ 2025-04-15", first.Ticker, first.Date)
	}
	if first.Cost.String() != "450" {
		t.Errorf("first purchase cost = %s want 450 (computed from price and shares)", first.Cost)
	}
}

func TestDecodeLedgerBadLine(t *testing.T) {
	if _, err := DecodeLedger(strings.NewReader("not json\n")); err == nil {
		t.Errorf("DecodeLedger(garbage) expected an error, got nil")
	}
	if _, err := DecodeLedger(strings.NewReader(`{"date":"2025-04-15","ticker":"QQQ","price":-1,"shares":1}` + "\n")); err == nil {
		t.Errorf("DecodeLedger(negative price) expected an error, got nil")
	}
}

func TestEncodeLedgerCanonical(t *testing.T) {
	l := NewLedger()
	buy(t, l, NewDate(2025, time.May, 15), "AAPL", 210, 2)
	buy(t, l, NewDate(2025, time.April, 15), "QQQ", 450, 1)

	var b strings.Builder
	if err := EncodeLedger(&b, l); err != nil {
		t.Fatalf("EncodeLedger() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("EncodeLedger() wrote %d lines want 2", len(lines))
	}
	// Chronological order, decimals as bare numbers.
	if !strings.Contains(lines[0], `"ticker":"QQQ"`) || !strings.Contains(lines[0], `"price":450`) {
		t.Errorf("first line = %s, want the april QQQ purchase with a bare price", lines[0])
	}

	// The canonical form decodes back to the same ledger.
	got, err := DecodeLedger(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("DecodeLedger(canonical) error = %v", err)
	}
	if got.Len() != l.Len() {
		t.Errorf("round trip Len() = %d want %d", got.Len(), l.Len())
	}
}
