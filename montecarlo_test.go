package quantfolio

import (
	"testing"
)

func TestSimulate_GridDimensions(t *testing.T) {
	seed := uint64(7)
	res, err := Simulate(12, 0.01, 0.04, 5, &seed)
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}
	if len(res.Grid) != 5 {
		t.Fatalf("got %d paths, want 5", len(res.Grid))
	}
	for i, row := range res.Grid {
		if len(row) != 13 {
			t.Errorf("path %d has %d points, want 13 (periods+1)", i, len(row))
		}
		if row[0] != 1.0 {
			t.Errorf("path %d starts at %v, want 1.0", i, row[0])
		}
	}
}

func TestSimulate_ZeroMeanZeroStddev(t *testing.T) {
	// Zero variance and zero mean means no growth: every value of the grid
	// stays exactly at 1.0.
	seed := uint64(1)
	res, err := Simulate(12, 0, 0, 5, &seed)
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}
	for i, row := range res.Grid {
		for tt, v := range row {
			if v != 1.0 {
				t.Fatalf("path %d period %d = %v, want exactly 1.0", i, tt, v)
			}
		}
	}
	if res.MinTerminal() != 1 || res.MaxTerminal() != 1 {
		t.Errorf("terminal range [%v, %v], want [1, 1]", res.MinTerminal(), res.MaxTerminal())
	}
}

func TestSimulate_SeededRunsAreReproducible(t *testing.T) {
	seed := uint64(42)
	a, err := Simulate(24, 0.005, 0.03, 8, &seed)
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}
	b, err := Simulate(24, 0.005, 0.03, 8, &seed)
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}
	for i := range a.Grid {
		for tt := range a.Grid[i] {
			if a.Grid[i][tt] != b.Grid[i][tt] {
				t.Fatalf("path %d period %d differs between seeded runs", i, tt)
			}
		}
	}
	if a.Seed != seed || b.Seed != seed {
		t.Errorf("effective seeds %d,%d want %d", a.Seed, b.Seed, seed)
	}
}

func TestSimulate_DeterministicGrowthCompounds(t *testing.T) {
	// Zero stddev with a positive mean compounds exactly.
	seed := uint64(1)
	res, err := Simulate(3, 0.10, 0, 2, &seed)
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}
	want := []float64{1, 1.1, 1.21, 1.331}
	for _, row := range res.Grid {
		for i, w := range want {
			near(t, "compounded growth", row[i], w, 1e-12)
		}
	}
}

func TestSimulate_ManyPathsAllComputed(t *testing.T) {
	// Far more paths than workers: every row of the grid must still be
	// filled, and the run must stay reproducible.
	seed := uint64(3)
	a, err := Simulate(4, 0.01, 0.02, 500, &seed)
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}
	for i, row := range a.Grid {
		if len(row) != 5 {
			t.Fatalf("path %d has %d points, want 5", i, len(row))
		}
	}
	b, err := Simulate(4, 0.01, 0.02, 500, &seed)
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}
	for i := range a.Grid {
		if a.Grid[i][4] != b.Grid[i][4] {
			t.Fatalf("path %d differs between seeded runs", i)
		}
	}
}

func TestSimulate_QuantilesAreOrdered(t *testing.T) {
	seed := uint64(99)
	res, err := Simulate(36, 0.005, 0.05, 200, &seed)
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}
	q05, q50, q95 := res.Quantile(0.05), res.MedianTerminal(), res.Quantile(0.95)
	if !(res.MinTerminal() <= q05 && q05 <= q50 && q50 <= q95 && q95 <= res.MaxTerminal()) {
		t.Errorf("quantiles out of order: min=%v q05=%v q50=%v q95=%v max=%v",
			res.MinTerminal(), q05, q50, q95, res.MaxTerminal())
	}
}

func TestSimulate_InvalidInputs(t *testing.T) {
	seed := uint64(1)
	if _, err := Simulate(0, 0, 0.1, 5, &seed); err == nil {
		t.Error("Simulate(periods=0) should fail")
	}
	if _, err := Simulate(12, 0, 0.1, 0, &seed); err == nil {
		t.Error("Simulate(paths=0) should fail")
	}
	if _, err := Simulate(12, 0, -0.1, 5, &seed); err == nil {
		t.Error("Simulate(stddev<0) should fail")
	}
}
