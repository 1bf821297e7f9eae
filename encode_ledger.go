package smartdca

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeLedger decodes purchases from a stream of JSONL data, validates each
// line, and returns a sorted Ledger.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}
		var p Purchase
		if err := json.Unmarshal(lineBytes, &p); err != nil {
			return nil, fmt.Errorf("could not decode purchase line %q: %w", string(lineBytes), err)
		}
		if err := ledger.Append(p); err != nil {
			return nil, fmt.Errorf("could not decode purchase line %q: %w", string(lineBytes), err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ledger, nil
}

// EncodeLedger writes the ledger as canonical JSONL, one purchase per line in
// chronological order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	enc := json.NewEncoder(w)
	for _, p := range l.Purchases() {
		if err := enc.Encode(p); err != nil {
			return err
		}
	}
	return nil
}

// EncodePurchase appends a single purchase line to the writer.
func EncodePurchase(w io.Writer, p Purchase) error {
	return json.NewEncoder(w).Encode(p)
}
