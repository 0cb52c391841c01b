package quantfolio

import (
	"fmt"
	"math"
)

// RollingStatistic is the output of the rolling engine: one (date, value)
// point per window position, dated at the window's right edge. The leading
// window-1 undefined positions are dropped, not null-filled.
type RollingStatistic struct {
	Stat   Statistic
	Window int
	series Series
}

// Len returns the number of window positions, len(input) − window + 1.
func (r *RollingStatistic) Len() int { return r.series.Len() }

// Series exposes the underlying date-indexed series for read access.
func (r *RollingStatistic) Series() *Series { return &r.series }

// RollOptions carries the extra inputs some statistics need.
type RollOptions struct {
	RiskFree float64         // per-period risk-free rate, for StatSharpe
	Market   *ReturnSeries   // market series, for StatBeta
	Factors  []*ReturnSeries // factor series, for StatFactorCoefficient
	Factor   int             // index into Factors of the coefficient to report
}

// Roll computes stat over every right-aligned window of the given width and
// returns the aligned output series.
//
// Each window is recomputed independently, O(n·w). Inputs are at most a few
// hundred periods, so no incremental update is implemented.
//
// It fails with an InsufficientDataError when the series is shorter than the
// window, an AlignmentError when a multi-series statistic is given
// mismatched date indices, and a DegenerateInputError when a ratio statistic
// meets a zero-variance window.
func Roll(rs *ReturnSeries, window int, s Statistic, opts RollOptions) (*RollingStatistic, error) {
	if window <= 0 {
		return nil, fmt.Errorf("roll: window must be positive, got %d", window)
	}
	if rs.Len() < window {
		return nil, &InsufficientDataError{Op: "roll", Need: window, Have: rs.Len()}
	}

	var market *Series
	if s == StatBeta {
		if opts.Market == nil {
			return nil, fmt.Errorf("roll: statistic %s requires a market series", s)
		}
		market = opts.Market.Series()
		if !aligned(rs.Series(), market) {
			return nil, &AlignmentError{Op: "roll " + s.String()}
		}
	}
	var factors []*Series
	if s == StatFactorCoefficient {
		if len(opts.Factors) == 0 {
			return nil, fmt.Errorf("roll: statistic %s requires factor series", s)
		}
		if opts.Factor < 0 || opts.Factor >= len(opts.Factors) {
			return nil, fmt.Errorf("roll: factor index %d out of range [0,%d)", opts.Factor, len(opts.Factors))
		}
		// The regression needs one observation more than it has coefficients
		// (intercept plus one per factor).
		if need := len(opts.Factors) + 2; window < need {
			return nil, &InsufficientDataError{Op: "roll", Need: need, Have: window}
		}
		all := []*Series{rs.Series()}
		for _, f := range opts.Factors {
			factors = append(factors, f.Series())
			all = append(all, f.Series())
		}
		if !aligned(all...) {
			return nil, &AlignmentError{Op: "roll " + s.String()}
		}
	}

	src := rs.Series()
	out := &RollingStatistic{Stat: s, Window: window}
	for i := window - 1; i < src.Len(); i++ {
		xs := src.window(i, window)
		var v float64
		switch s {
		case StatMean:
			v = Mean(xs)
		case StatStdDev:
			v = StdDev(xs)
		case StatSkewness:
			v = Skewness(xs)
		case StatKurtosis:
			v = Kurtosis(xs)
		case StatSharpe:
			v = SharpeRatio(xs, opts.RiskFree)
		case StatBeta:
			v = Beta(xs, market.window(i, window))
		case StatFactorCoefficient:
			v = rollFactor(xs, factors, i, window, opts)
		default:
			return nil, fmt.Errorf("roll: unsupported statistic %v", s)
		}
		if math.IsNaN(v) {
			return nil, &DegenerateInputError{Stat: s.String(), On: src.Date(i).String()}
		}
		out.series.Append(src.Date(i), v)
	}
	return out, nil
}

// rollFactor regresses the window's excess returns on the factor windows and
// extracts the requested coefficient. NaN signals a degenerate window.
func rollFactor(xs []float64, factors []*Series, i, window int, opts RollOptions) float64 {
	cols := make([][]float64, len(factors))
	for j, f := range factors {
		cols[j] = f.window(i, window)
	}
	reg, err := regressSlices(xs, cols, opts.RiskFree)
	if err != nil {
		return math.NaN()
	}
	// Coefficients[0] is the intercept, factors start at 1.
	return reg.Coefficients[opts.Factor+1]
}
