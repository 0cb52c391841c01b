package quantfolio

import (
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// SimulationResult is the outcome of a Monte Carlo growth simulation: a
// paths × (periods+1) grid of cumulative growth factors, every path starting
// at 1.0, plus the terminal-value distribution.
type SimulationResult struct {
	Periods int
	Paths   int
	// Seed is the effective seed of the run. Re-running Simulate with this
	// seed reproduces the grid exactly.
	Seed uint64
	Grid [][]float64

	terminal []float64 // terminal values, sorted ascending
}

// Simulate draws, for each of paths independent paths, periods i.i.d. normal
// returns with the given per-period mean and standard deviation, and
// compounds them into a running growth factor starting at 1.0.
//
// When seed is nil a time-based seed is drawn, so every invocation yields
// different paths; this is expected, not a bug. Pass a fixed seed for a
// reproducible run (the effective seed is reported in the result either way).
//
// Paths are independent, so they run concurrently; each path owns its own
// random stream, seeded deterministically from the master seed.
func Simulate(periods int, mean, stddev float64, paths int, seed *uint64) (*SimulationResult, error) {
	if periods <= 0 {
		return nil, fmt.Errorf("simulate: periods must be positive, got %d", periods)
	}
	if paths <= 0 {
		return nil, fmt.Errorf("simulate: paths must be positive, got %d", paths)
	}
	if stddev < 0 {
		return nil, fmt.Errorf("simulate: stddev must be non-negative, got %v", stddev)
	}

	master := uint64(time.Now().UnixNano())
	if seed != nil {
		master = *seed
	}
	// Derive one seed per path up front so the grid does not depend on
	// goroutine scheduling.
	seeder := rand.New(rand.NewSource(master))
	pathSeeds := make([]uint64, paths)
	for i := range pathSeeds {
		pathSeeds[i] = seeder.Uint64()
	}

	res := &SimulationResult{
		Periods: periods,
		Paths:   paths,
		Seed:    master,
		Grid:    make([][]float64, paths),
	}

	// A fixed pool keeps the goroutine count bounded however many paths are
	// requested. Each path still owns its own stream, so the grid does not
	// depend on which worker picks it up.
	workers := runtime.GOMAXPROCS(0)
	if workers > paths {
		workers = paths
	}
	pathc := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range pathc {
				res.Grid[i] = growthPath(periods, mean, stddev, pathSeeds[i])
			}
		}()
	}
	for i := 0; i < paths; i++ {
		pathc <- i
	}
	close(pathc)
	wg.Wait()

	res.terminal = make([]float64, paths)
	for i, row := range res.Grid {
		res.terminal[i] = row[periods]
	}
	sort.Float64s(res.terminal)
	return res, nil
}

// growthPath computes one path: a strictly sequential running product of
// (1 + r) over the drawn returns, prefixed with the 1.0 starting value.
func growthPath(periods int, mean, stddev float64, seed uint64) []float64 {
	row := make([]float64, periods+1)
	row[0] = 1.0
	if stddev == 0 {
		// Degenerate normal: every draw is exactly the mean.
		for t := 1; t <= periods; t++ {
			row[t] = row[t-1] * (1 + mean)
		}
		return row
	}
	normal := distuv.Normal{Mu: mean, Sigma: stddev, Src: rand.NewSource(seed)}
	for t := 1; t <= periods; t++ {
		row[t] = row[t-1] * (1 + normal.Rand())
	}
	return row
}

// TerminalValues returns the terminal growth factors sorted ascending.
func (r *SimulationResult) TerminalValues() []float64 {
	return append([]float64(nil), r.terminal...)
}

// MinTerminal returns the smallest terminal growth factor.
func (r *SimulationResult) MinTerminal() float64 { return r.terminal[0] }

// MaxTerminal returns the largest terminal growth factor.
func (r *SimulationResult) MaxTerminal() float64 { return r.terminal[len(r.terminal)-1] }

// MedianTerminal returns the median terminal growth factor.
func (r *SimulationResult) MedianTerminal() float64 { return r.Quantile(0.5) }

// Quantile returns the q-quantile (0 ≤ q ≤ 1) of the terminal-value
// distribution.
func (r *SimulationResult) Quantile(q float64) float64 {
	return stat.Quantile(q, stat.Empirical, r.terminal, nil)
}
