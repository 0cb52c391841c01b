package quantfolio

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// zCritical95 is the normal-approximation critical value for a two-sided
// 95% confidence interval.
const zCritical95 = 1.959963984540054

// Regression holds the result of an ordinary-least-squares fit of excess
// portfolio returns on one or more factor series.
type Regression struct {
	// Coefficients holds the intercept (alpha) first, then one slope per
	// factor in input order.
	Coefficients []float64
	// StdErrors, Lower and Upper are per-coefficient standard errors and
	// 95% confidence bounds (normal approximation).
	StdErrors []float64
	Lower     []float64
	Upper     []float64
	R2        float64
	// Residual is the standard deviation of the regression residuals.
	Residual float64
	N        int
}

// RegressFactors fits excess portfolio returns (portfolio − risk-free) on
// the given factor series by ordinary least squares with intercept. This is
// the Fama-French style fit: pass the market factor alone for CAPM, or
// market, size and value for the three-factor model.
//
// All series must share exactly the same date index.
func RegressFactors(p *ReturnSeries, riskFree float64, factors ...*ReturnSeries) (*Regression, error) {
	if len(factors) == 0 {
		return nil, fmt.Errorf("regression: at least one factor series is required")
	}
	all := []*Series{p.Series()}
	cols := make([][]float64, len(factors))
	for i, f := range factors {
		all = append(all, f.Series())
		cols[i] = f.Series().Floats()
	}
	if !aligned(all...) {
		return nil, &AlignmentError{Op: "regression"}
	}
	return regressSlices(p.Series().Floats(), cols, riskFree)
}

// regressSlices runs the OLS fit on raw slices. It is shared between the
// whole-series regression and the rolling FactorCoefficient statistic.
func regressSlices(y []float64, cols [][]float64, riskFree float64) (*Regression, error) {
	n := len(y)
	k := len(cols) + 1 // coefficients: intercept plus one per factor
	if n < k+1 {
		return nil, &InsufficientDataError{Op: "regression", Need: k + 1, Have: n}
	}

	yex := mat.NewVecDense(n, nil)
	for i, v := range y {
		yex.SetVec(i, v-riskFree)
	}
	x := mat.NewDense(n, k, nil)
	for i := 0; i < n; i++ {
		x.Set(i, 0, 1)
		for j, c := range cols {
			x.Set(i, j+1, c[i])
		}
	}

	var qr mat.QR
	qr.Factorize(x)
	var beta mat.VecDense
	if err := qr.SolveVecTo(&beta, false, yex); err != nil {
		return nil, &DegenerateInputError{Stat: "regression", On: "collinear factors"}
	}

	// Residuals and goodness of fit.
	var fitted mat.VecDense
	fitted.MulVec(x, &beta)
	mean := 0.0
	for i := 0; i < n; i++ {
		mean += yex.AtVec(i)
	}
	mean /= float64(n)
	var ssr, sst float64
	for i := 0; i < n; i++ {
		r := yex.AtVec(i) - fitted.AtVec(i)
		ssr += r * r
		d := yex.AtVec(i) - mean
		sst += d * d
	}
	if sst == 0 {
		return nil, &DegenerateInputError{Stat: "regression", On: "constant dependent series"}
	}

	// Standard errors from σ²(XᵀX)⁻¹.
	sigma2 := ssr / float64(n-k)
	var xtx, inv mat.Dense
	xtx.Mul(x.T(), x)
	if err := inv.Inverse(&xtx); err != nil {
		return nil, &DegenerateInputError{Stat: "regression", On: "singular design matrix"}
	}

	reg := &Regression{
		Coefficients: make([]float64, k),
		StdErrors:    make([]float64, k),
		Lower:        make([]float64, k),
		Upper:        make([]float64, k),
		R2:           1 - ssr/sst,
		Residual:     math.Sqrt(ssr / float64(n)),
		N:            n,
	}
	for j := 0; j < k; j++ {
		b := beta.AtVec(j)
		se := math.Sqrt(sigma2 * inv.At(j, j))
		reg.Coefficients[j] = b
		reg.StdErrors[j] = se
		reg.Lower[j] = b - zCritical95*se
		reg.Upper[j] = b + zCritical95*se
	}
	return reg, nil
}
