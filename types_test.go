package smartdca

import "testing"

func TestMoneyString(t *testing.T) {
	tests := []struct {
		in   Money
		want string
	}{
		{M(450, USD), "$450.00"},
		{M(450.5, USD), "$450.50"},
		{M(1010, USD), "$1,010.00"},
		{M(-10, USD), "-$10.00"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("Money.String() = %q want %q", got, tt.want)
		}
	}
}

func TestMoneySignedString(t *testing.T) {
	if got := M(90, USD).SignedString(); got != "+$90.00" {
		t.Errorf("SignedString() = %q want %q", got, "+$90.00")
	}
	if got := M(0, USD).SignedString(); got != "-" {
		t.Errorf("SignedString() = %q want %q", got, "-")
	}
}

func TestQuantityTruncate(t *testing.T) {
	tests := []struct {
		in   Quantity
		want string
	}{
		{Q(1.0299), "1.029"},  // truncation, not rounding
		{Q(4.5), "4.5"},       // no padding
		{Q(1.029328), "1.029"},
	}
	for _, tt := range tests {
		if got := tt.in.Truncate(3).String(); got != tt.want {
			t.Errorf("Q(%s).Truncate(3) = %q want %q", tt.in, got, tt.want)
		}
	}
}
