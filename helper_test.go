package quantfolio

import (
	"math"
	"testing"
	"time"

	"github.com/etnz/quantfolio/date"
)

// monthlySeries builds a return series with one value per month starting
// January 2024, dated at month ends.
func monthlySeries(t *testing.T, ticker string, values ...float64) *ReturnSeries {
	t.Helper()
	days := make([]date.Date, len(values))
	for i := range values {
		days[i] = date.New(2024+i/12, time.Month(1+i%12), 1).EndOf(date.Monthly)
	}
	return NewReturnSeries(ticker, Simple, days, values)
}

// constantSeries builds a return series of n identical monthly values.
func constantSeries(t *testing.T, ticker string, n int, value float64) *ReturnSeries {
	t.Helper()
	values := make([]float64, n)
	for i := range values {
		values[i] = value
	}
	return monthlySeries(t, ticker, values...)
}

// alternatingSeries builds a monthly series of n values alternating ±v.
func alternatingSeries(t *testing.T, n int, v float64) *ReturnSeries {
	t.Helper()
	values := make([]float64, n)
	for i := range values {
		if i%2 == 0 {
			values[i] = v
		} else {
			values[i] = -v
		}
	}
	return monthlySeries(t, "alt", values...)
}

// near fails the test when got is not within tol of want.
func near(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.IsNaN(got) || math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v (±%v)", name, got, want, tol)
	}
}
