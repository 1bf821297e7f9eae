package date

import (
	"testing"
	"time"
)

func TestLastWeekday(t *testing.T) {
	tests := []struct {
		in   Date
		want Date
	}{
		{New(2025, time.June, 13), New(2025, time.June, 13)}, // friday stays
		{New(2025, time.June, 14), New(2025, time.June, 13)}, // saturday backs up
		{New(2025, time.June, 15), New(2025, time.June, 13)}, // sunday backs up
		{New(2025, time.June, 16), New(2025, time.June, 16)}, // monday stays
	}
	for _, tt := range tests {
		if got := LastWeekday(tt.in); got != tt.want {
			t.Errorf("LastWeekday(%v) = %v want %v", tt.in, got, tt.want)
		}
	}
}

func TestNextBuyDay(t *testing.T) {
	tests := []struct {
		in   Date
		want Date
	}{
		// june 2025: the 15th is a sunday, pushed to monday the 16th.
		{New(2025, time.June, 1), New(2025, time.June, 16)},
		// july 2025: the 15th is a tuesday.
		{New(2025, time.July, 20), New(2025, time.July, 15)},
		// march 2025: the 15th is a saturday, pushed to monday the 17th.
		{New(2025, time.March, 2), New(2025, time.March, 17)},
	}
	for _, tt := range tests {
		if got := NextBuyDay(tt.in); got != tt.want {
			t.Errorf("NextBuyDay(%v) = %v want %v", tt.in, got, tt.want)
		}
	}
}
