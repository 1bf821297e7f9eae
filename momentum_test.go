package smartdca

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestDefaultWeightsSum(t *testing.T) {
	// Guards against silent weight drift.
	if got := DefaultWeights.Sum(); got != 1.0 {
		t.Errorf("DefaultWeights.Sum() = %v want 1.0", got)
	}
}

func TestScore(t *testing.T) {
	cutoff := NewDate(2025, time.June, 13)
	lookup := tableLookup(map[string]map[Date]float64{
		"QQQ": {
			cutoff:           110, // p0
			cutoff.Add(-30):  100, // r1 = 0.10
			cutoff.Add(-90):  88,  // r3 = 0.25
			cutoff.Add(-180): 80,  // r6 = 0.375
		},
	})

	got, err := Score(lookup, "QQQ", cutoff)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	want := 0.2*0.10 + 0.3*0.25 + 0.5*0.375
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Score() = %v want %v", got, want)
	}
}

func TestScoreNegativeMomentum(t *testing.T) {
	cutoff := NewDate(2025, time.June, 13)
	lookup := tableLookup(map[string]map[Date]float64{
		"NVDA": {
			cutoff:           80,
			cutoff.Add(-30):  100,
			cutoff.Add(-90):  100,
			cutoff.Add(-180): 100,
		},
	})

	got, err := Score(lookup, "NVDA", cutoff)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if got >= 0 {
		t.Errorf("Score() = %v want a negative score for a falling price", got)
	}
}

func TestScorePriceUnavailable(t *testing.T) {
	cutoff := NewDate(2025, time.June, 13)
	// The 6-month point is missing: the whole score must fail, with no
	// default substituted.
	lookup := tableLookup(map[string]map[Date]float64{
		"AAPL": {
			cutoff:          110,
			cutoff.Add(-30): 100,
			cutoff.Add(-90): 90,
		},
	})

	_, err := Score(lookup, "AAPL", cutoff)
	var unavailable *PriceUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("Score() error = %v, want a *PriceUnavailableError", err)
	}
	if unavailable.Ticker != "AAPL" {
		t.Errorf("PriceUnavailableError.Ticker = %q want %q", unavailable.Ticker, "AAPL")
	}
	if unavailable.On != cutoff.Add(-180) {
		t.Errorf("PriceUnavailableError.On = %v want %v", unavailable.On, cutoff.Add(-180))
	}
}

func TestScoreAllPartialFailure(t *testing.T) {
	cutoff := NewDate(2025, time.June, 13)
	lookup := constLookup(map[string]float64{"QQQ": 100, "AAPL": 200})

	scores, failures := ScoreAll(lookup, []string{"QQQ", "AAPL", "NVDA"}, cutoff)

	if len(scores) != 2 {
		t.Errorf("ScoreAll() scores = %v, want QQQ and AAPL only", scores)
	}
	if _, ok := failures["NVDA"]; !ok {
		t.Errorf("ScoreAll() failures = %v, want NVDA reported", failures)
	}
	// A flat price has zero momentum on all horizons.
	if scores["QQQ"] != 0 {
		t.Errorf("ScoreAll() QQQ score = %v want 0", scores["QQQ"])
	}
}
