package smartdca

import (
	"errors"
	"slices"
	"testing"
)

func TestParseTickers(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"QQQ,AAPL,NVDA", []string{"QQQ", "AAPL", "NVDA"}},
		{" qqq , aapl ", []string{"QQQ", "AAPL"}},
		{"QQQ,,NVDA,", []string{"QQQ", "NVDA"}},
		{"", nil},
	}
	for _, tt := range tests {
		if got := ParseTickers(tt.in); !slices.Equal(got, tt.want) {
			t.Errorf("ParseTickers(%q) = %v want %v", tt.in, got, tt.want)
		}
	}
}

func TestCheckTickers(t *testing.T) {
	m := NewMarketData()
	m.Declare("QQQ")
	m.Declare("AAPL")

	if err := m.CheckTickers([]string{"QQQ", "aapl"}); err != nil {
		t.Errorf("CheckTickers(declared) error = %v want nil", err)
	}

	err := m.CheckTickers([]string{"QQQ", "FAKE", "WORSE"})
	var invalid *InvalidTickerError
	if !errors.As(err, &invalid) {
		t.Fatalf("CheckTickers(unknown) error = %v, want *InvalidTickerError", err)
	}
	if want := []string{"FAKE", "WORSE"}; !slices.Equal(invalid.Tickers, want) {
		t.Errorf("InvalidTickerError.Tickers = %v want %v", invalid.Tickers, want)
	}
}
