package cmd

import (
	"slices"
	"testing"
)

func TestParseWeights(t *testing.T) {
	got, err := parseWeights("0.25, 0.25,0.5")
	if err != nil {
		t.Fatalf("parseWeights() failed: %v", err)
	}
	if !slices.Equal(got, []float64{0.25, 0.25, 0.5}) {
		t.Errorf("parseWeights() = %v, want [0.25 0.25 0.5]", got)
	}

	if _, err := parseWeights("0.5,half"); err == nil {
		t.Fatal("parseWeights() should reject non-numeric weights")
	}
}

func TestParseTickers(t *testing.T) {
	got := parseTickers("spy.us, aapl.us,,msft.us ")
	if !slices.Equal(got, []string{"SPY.US", "AAPL.US", "MSFT.US"}) {
		t.Errorf("parseTickers() = %v, want upper-cased trimmed tickers", got)
	}
}
