package quantfolio

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// Statistic identifies the scalar statistic computed by the rolling engine.
// Each statistic is implemented exactly once, here, whatever surface
// (rolling report, chart, CLI) consumes it.
type Statistic int

const (
	StatMean Statistic = iota
	StatStdDev
	StatSkewness
	StatKurtosis
	StatSharpe
	StatBeta
	StatFactorCoefficient
)

func (s Statistic) String() string {
	switch s {
	case StatMean:
		return "mean"
	case StatStdDev:
		return "stddev"
	case StatSkewness:
		return "skewness"
	case StatKurtosis:
		return "kurtosis"
	case StatSharpe:
		return "sharpe"
	case StatBeta:
		return "beta"
	case StatFactorCoefficient:
		return "factor"
	default:
		panic(fmt.Sprintf("unknown statistic %d", s))
	}
}

func ParseStatistic(s string) (Statistic, error) {
	switch strings.ToLower(s) {
	case "mean":
		return StatMean, nil
	case "stddev", "std", "volatility":
		return StatStdDev, nil
	case "skewness", "skew":
		return StatSkewness, nil
	case "kurtosis", "kurt":
		return StatKurtosis, nil
	case "sharpe":
		return StatSharpe, nil
	case "beta":
		return StatBeta, nil
	case "factor":
		return StatFactorCoefficient, nil
	default:
		return StatMean, fmt.Errorf("unknown statistic %q", s)
	}
}

// Mean returns the arithmetic mean of xs.
func Mean(xs []float64) float64 { return stat.Mean(xs, nil) }

// StdDev returns the population standard deviation of xs: √(Σ(x−x̄)²/n).
// The population convention (no Bessel correction) is deliberate so that the
// value agrees with the √(wᵗΣw) matrix-algebra path for a unit weight vector.
func StdDev(xs []float64) float64 { return math.Sqrt(stat.PopVariance(xs, nil)) }

// Skewness returns the third standardized central moment m3/m2^1.5.
func Skewness(xs []float64) float64 {
	m2 := stat.Moment(2, xs, nil)
	if m2 == 0 {
		return math.NaN()
	}
	return stat.Moment(3, xs, nil) / math.Pow(m2, 1.5)
}

// Kurtosis returns the raw fourth standardized central moment m4/m2².
// A normal distribution scores 3; subtract 3 for the excess convention.
func Kurtosis(xs []float64) float64 {
	m2 := stat.Moment(2, xs, nil)
	if m2 == 0 {
		return math.NaN()
	}
	return stat.Moment(4, xs, nil) / (m2 * m2)
}

// SharpeRatio returns mean(excess)/stddev(excess) where excess is the return
// minus the per-period risk-free rate. The denominator uses the population
// standard deviation. It returns NaN on a zero-variance input; callers in
// the rolling engine translate that into a DegenerateInputError.
func SharpeRatio(xs []float64, riskFree float64) float64 {
	excess := make([]float64, len(xs))
	for i, x := range xs {
		excess[i] = x - riskFree
	}
	sd := StdDev(excess)
	if sd == 0 {
		return math.NaN()
	}
	return Mean(excess) / sd
}

// Beta returns cov(p, m)/var(m), the CAPM sensitivity of portfolio returns
// to market returns. It is numerically identical to the slope of an OLS
// regression of p on m with intercept. NaN on a zero-variance market.
func Beta(p, m []float64) float64 {
	v := stat.Variance(m, nil)
	if v == 0 {
		return math.NaN()
	}
	return stat.Covariance(p, m, nil) / v
}
