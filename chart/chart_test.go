package chart

import (
	"math"
	"testing"
	"time"

	"github.com/etnz/quantfolio"
	"github.com/etnz/quantfolio/date"
)

func monthlyReturns(t *testing.T, values ...float64) *quantfolio.ReturnSeries {
	t.Helper()
	days := make([]date.Date, len(values))
	for i := range values {
		days[i] = date.New(2024, time.Month(i+1), 1).EndOf(date.Monthly)
	}
	return quantfolio.NewReturnSeries("SPY.US", quantfolio.Simple, days, values)
}

func TestPad(t *testing.T) {
	tests := []struct {
		name             string
		values           []float64
		wantMin, wantMax float64
	}{
		{"spread", []float64{1, 3}, 0.9, 3.1},
		{"flat", []float64{2, 2, 2}, 1.99, 2.01},
		{"single", []float64{0.5}, 0.49, 0.51},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gotMin, gotMax := pad(tc.values)
			if math.Abs(gotMin-tc.wantMin) > 1e-12 || math.Abs(gotMax-tc.wantMax) > 1e-12 {
				t.Errorf("pad() = [%v, %v], want [%v, %v]", gotMin, gotMax, tc.wantMin, tc.wantMax)
			}
		})
	}
}

func TestRollingLine(t *testing.T) {
	rs := monthlyReturns(t, 0.01, -0.02, 0.03, 0.005, -0.01, 0.02)
	rolling, err := quantfolio.Roll(rs, 3, quantfolio.StatMean, quantfolio.RollOptions{})
	if err != nil {
		t.Fatalf("Roll() failed: %v", err)
	}

	img, err := RollingLine("SPY.US", rolling)
	if err != nil {
		t.Fatalf("RollingLine() failed: %v", err)
	}
	if len(img) == 0 {
		t.Error("RollingLine() produced an empty image")
	}
}

func TestRollingLine_TooFewPoints(t *testing.T) {
	rs := monthlyReturns(t, 0.01, -0.02, 0.03)
	rolling, err := quantfolio.Roll(rs, 3, quantfolio.StatMean, quantfolio.RollOptions{})
	if err != nil {
		t.Fatalf("Roll() failed: %v", err)
	}

	// A single output point cannot make a line.
	if _, err := RollingLine("SPY.US", rolling); err == nil {
		t.Fatal("RollingLine() should fail with fewer than 2 points")
	}
}

func TestSimulationFan(t *testing.T) {
	seed := uint64(42)
	res, err := quantfolio.Simulate(12, 0.005, 0.03, maxFanPaths+10, &seed)
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}

	img, err := SimulationFan(res)
	if err != nil {
		t.Fatalf("SimulationFan() failed: %v", err)
	}
	if len(img) == 0 {
		t.Error("SimulationFan() produced an empty image")
	}
}
