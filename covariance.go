package quantfolio

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// CovarianceMatrix computes the covariance matrix of the given return
// series, one row per observation and one column per asset. The series must
// share exactly the same date index.
//
// The matrix uses the population convention (divisor n, not n-1) so that
// √(wᵗΣw) agrees with the population standard deviation of the aggregated
// series for a unit weight vector.
func CovarianceMatrix(assets ...*ReturnSeries) (*mat.SymDense, error) {
	if len(assets) == 0 {
		return nil, &InsufficientDataError{Op: "covariance", Need: 1, Have: 0}
	}
	series := make([]*Series, len(assets))
	for i, a := range assets {
		series[i] = a.Series()
	}
	if !aligned(series...) {
		return nil, &AlignmentError{Op: "covariance"}
	}
	n := series[0].Len()
	if n < 2 {
		return nil, &InsufficientDataError{Op: "covariance", Need: 2, Have: n}
	}

	k := len(assets)
	data := mat.NewDense(n, k, nil)
	for j, s := range series {
		for i := 0; i < n; i++ {
			data.Set(i, j, s.Value(i))
		}
	}
	cov := mat.NewSymDense(k, nil)
	stat.CovarianceMatrix(cov, data, nil)
	// gonum computes the sample covariance; rescale to population.
	cov.ScaleSym(float64(n-1)/float64(n), cov)
	return cov, nil
}

// PortfolioStdDev returns √(wᵗΣw), the portfolio standard deviation implied
// by a weight vector and a covariance matrix.
func PortfolioStdDev(weights []float64, cov mat.Symmetric) float64 {
	w := mat.NewVecDense(len(weights), weights)
	var sw mat.VecDense
	sw.MulVec(cov, w)
	return math.Sqrt(mat.Dot(w, &sw))
}
