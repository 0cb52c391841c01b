package quantfolio

import (
	"fmt"
	"math"

	"github.com/etnz/quantfolio/date"
	"gonum.org/v1/gonum/mat"
)

// WeightTolerance is the accepted deviation of a weight sum from 1.
const WeightTolerance = 1e-6

// Portfolio binds asset tickers to target weights and a rebalancing cadence.
// It is immutable after construction: weights are validated once by
// NewPortfolio and never change.
type Portfolio struct {
	tickers     []string
	weights     []float64
	rebalancing date.Period
}

// NewPortfolio validates and builds a portfolio. Weights must be
// non-negative and sum to 1 within WeightTolerance, otherwise it fails with
// a WeightSumError.
func NewPortfolio(tickers []string, weights []float64, rebalancing date.Period) (*Portfolio, error) {
	if len(tickers) != len(weights) {
		return nil, fmt.Errorf("got %d tickers for %d weights", len(tickers), len(weights))
	}
	var sum float64
	for _, w := range weights {
		if w < 0 {
			return nil, &WeightSumError{Sum: w}
		}
		sum += w
	}
	if math.Abs(sum-1) > WeightTolerance {
		return nil, &WeightSumError{Sum: sum}
	}
	p := &Portfolio{rebalancing: rebalancing}
	p.tickers = append(p.tickers, tickers...)
	p.weights = append(p.weights, weights...)
	return p, nil
}

// Tickers returns the asset tickers in construction order.
func (p *Portfolio) Tickers() []string { return p.tickers }

// Weights returns a copy of the target weights.
func (p *Portfolio) Weights() []float64 { return append([]float64(nil), p.weights...) }

// Rebalancing returns the rebalancing cadence.
func (p *Portfolio) Rebalancing() date.Period { return p.rebalancing }

// weightedReturn is the dot product of weights and per-asset returns.
func weightedReturn(weights, returns []float64) float64 {
	var r float64
	for i, w := range weights {
		r += w * returns[i]
	}
	return r
}

// weightedReturnMat computes the same dot product through gonum vectors.
// It exists as the matrix-algebra cross-check of weightedReturn; the two
// must agree within floating tolerance.
func weightedReturnMat(weights, returns []float64) float64 {
	return mat.Dot(mat.NewVecDense(len(weights), weights), mat.NewVecDense(len(returns), returns))
}

// Returns aggregates per-asset return series into a single portfolio return
// series. The assets must be supplied in the portfolio's ticker order, be
// simple returns, and share exactly the same date index (AlignmentError
// otherwise).
//
// Between rebalancing boundaries the effective weights drift with compounded
// growth: after a period with portfolio return rp, each weight becomes
// w*(1+r)/(1+rp). On the first period of each rebalancing bucket the weights
// are restored to their targets.
func (p *Portfolio) Returns(assets ...*ReturnSeries) (*ReturnSeries, error) {
	if len(assets) != len(p.tickers) {
		return nil, fmt.Errorf("portfolio has %d assets, got %d return series", len(p.tickers), len(assets))
	}
	if len(assets) == 0 {
		return nil, &InsufficientDataError{Op: "portfolio returns", Need: 1, Have: 0}
	}
	series := make([]*Series, len(assets))
	for i, a := range assets {
		if a.Kind != Simple {
			return nil, fmt.Errorf("asset %s: portfolio aggregation requires simple returns, got %s", a.Ticker, a.Kind)
		}
		series[i] = a.Series()
	}
	if !aligned(series...) {
		return nil, &AlignmentError{Op: "portfolio returns"}
	}

	n := series[0].Len()
	out := &ReturnSeries{Ticker: "portfolio", Kind: Simple}
	weights := p.Weights()
	bucket := date.Date{}
	returns := make([]float64, len(assets))
	for i := 0; i < n; i++ {
		on := series[0].Date(i)
		if start := on.StartOf(p.rebalancing); start != bucket {
			// First period of a new rebalancing bucket: restore targets.
			copy(weights, p.weights)
			bucket = start
		}
		for j, s := range series {
			returns[j] = s.Value(i)
		}
		rp := weightedReturn(weights, returns)
		out.series.Append(on, rp)

		// Drift the weights with compounded growth.
		if growth := 1 + rp; growth != 0 {
			for j := range weights {
				weights[j] = weights[j] * (1 + returns[j]) / growth
			}
		}
	}
	return out, nil
}
