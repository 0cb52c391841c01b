package quantfolio

import (
	"fmt"
	"math"
	"strings"

	"github.com/etnz/quantfolio/date"
)

// ReturnKind selects the compounding convention of a return series.
type ReturnKind int

const (
	// Simple returns: r = p1/p0 - 1.
	Simple ReturnKind = iota
	// Log returns: r = ln(p1/p0).
	Log
)

func (k ReturnKind) String() string {
	switch k {
	case Simple:
		return "simple"
	case Log:
		return "log"
	default:
		panic(fmt.Sprintf("unknown return kind %d", k))
	}
}

func ParseReturnKind(s string) (ReturnKind, error) {
	switch strings.ToLower(s) {
	case "simple":
		return Simple, nil
	case "log":
		return Log, nil
	default:
		return Simple, fmt.Errorf("unknown return kind %q", s)
	}
}

// ReturnSeries is a chronological sequence of periodic returns for one asset
// or one portfolio. It is derived once from prices and read-only afterwards.
type ReturnSeries struct {
	Ticker string
	Kind   ReturnKind
	series Series
}

// NewReturnSeries builds a return series from parallel dates and values.
// Dates need not be pre-sorted; duplicates keep the last value.
func NewReturnSeries(ticker string, kind ReturnKind, days []date.Date, values []float64) *ReturnSeries {
	rs := &ReturnSeries{Ticker: ticker, Kind: kind}
	for i, on := range days {
		rs.series.Append(on, values[i])
	}
	return rs
}

// Len returns the number of periods in the series.
func (r *ReturnSeries) Len() int { return r.series.Len() }

// Series exposes the underlying date-indexed series for read access.
func (r *ReturnSeries) Series() *Series { return &r.series }

// From returns a new return series keeping only periods on or after day.
func (r *ReturnSeries) From(day date.Date) *ReturnSeries {
	return &ReturnSeries{Ticker: r.Ticker, Kind: r.Kind, series: *r.series.From(day)}
}

// ToSimple converts a log return series to simple compounding. Simple series
// are returned unchanged. Portfolio aggregation is only meaningful on simple
// returns, because weighted sums do not distribute over logarithms.
func (r *ReturnSeries) ToSimple() *ReturnSeries {
	if r.Kind == Simple {
		return r
	}
	s := &ReturnSeries{Ticker: r.Ticker, Kind: Simple}
	for on, v := range r.series.Values() {
		s.series.Append(on, math.Expm1(v))
	}
	return s
}

// ReturnsFromPrices derives a periodic return series from a date-indexed
// price series. Each return is dated at the later of the two prices it
// spans, so the result has one fewer point than the input.
func ReturnsFromPrices(ticker string, prices *Series, kind ReturnKind) (*ReturnSeries, error) {
	if prices.Len() < 2 {
		return nil, &InsufficientDataError{Op: "returns", Need: 2, Have: prices.Len()}
	}
	rs := &ReturnSeries{Ticker: ticker, Kind: kind}
	prev := prices.Value(0)
	for i := 1; i < prices.Len(); i++ {
		cur := prices.Value(i)
		var v float64
		switch kind {
		case Log:
			v = math.Log(cur / prev)
		default:
			v = cur/prev - 1
		}
		rs.series.Append(prices.Date(i), v)
		prev = cur
	}
	return rs, nil
}

// Resample reduces a (typically daily) price series to one observation per
// period, keeping the last available price on or before each period end.
func Resample(prices *Series, p date.Period) *Series {
	out := &Series{}
	for on, v := range prices.Values() {
		// Last write wins within a period, so the final observation of
		// each period boundary survives.
		out.Append(on.EndOf(p), v)
	}
	return out
}

// ExcessReturns subtracts a constant per-period risk-free rate from every
// return of the series.
func (r *ReturnSeries) ExcessReturns(riskFree float64) *ReturnSeries {
	s := &ReturnSeries{Ticker: r.Ticker, Kind: r.Kind}
	for on, v := range r.series.Values() {
		s.series.Append(on, v-riskFree)
	}
	return s
}
