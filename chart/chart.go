// Package chart renders analytics series as PNG line charts. Like the
// renderer package it is a pure consumer: plain series in, image bytes out.
package chart

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/quantfolio"
	charts "github.com/vicanso/go-charts/v2"
)

// maxFanPaths caps how many Monte Carlo paths are drawn; beyond that the
// chart is unreadable anyway.
const maxFanPaths = 50

// RollingLine renders a rolling-statistic series as a PNG line chart.
func RollingLine(ticker string, r *quantfolio.RollingStatistic) ([]byte, error) {
	if r.Len() < 2 {
		return nil, errors.New("not enough data points")
	}

	labels := make([]string, 0, r.Len())
	values := make([]float64, 0, r.Len())
	for on, v := range r.Series().Values() {
		labels = append(labels, on.Format("2006-01-02"))
		values = append(values, v)
	}
	yMin, yMax := pad(values)

	title := fmt.Sprintf("%s • rolling %s • w=%d", strings.ToUpper(ticker), r.Stat, r.Window)
	painter, err := charts.LineRender([][]float64{values},
		charts.TitleTextOptionFunc(title),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: labels, BoundaryGap: charts.FalseFlag(), SplitNumber: 8}),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &yMin, Max: &yMax, DivideCount: 5}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}

// SimulationFan renders the first paths of a Monte Carlo run as a fan chart.
func SimulationFan(res *quantfolio.SimulationResult) ([]byte, error) {
	n := res.Paths
	if n > maxFanPaths {
		n = maxFanPaths
	}
	series := make([][]float64, n)
	var all []float64
	for i := 0; i < n; i++ {
		series[i] = res.Grid[i]
		all = append(all, res.Grid[i]...)
	}
	labels := make([]string, res.Periods+1)
	for t := range labels {
		labels[t] = strconv.Itoa(t)
	}
	yMin, yMax := pad(all)

	title := fmt.Sprintf("Monte Carlo growth • %d paths • seed %d", res.Paths, res.Seed)
	painter, err := charts.LineRender(series,
		charts.TitleTextOptionFunc(title),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: labels, BoundaryGap: charts.FalseFlag(), SplitNumber: 10}),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &yMin, Max: &yMax, DivideCount: 5}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}

// pad computes a y-range with a small margin around the data.
func pad(values []float64) (yMin, yMax float64) {
	yMin, yMax = values[0], values[0]
	for _, v := range values {
		if v < yMin {
			yMin = v
		}
		if v > yMax {
			yMax = v
		}
	}
	margin := (yMax - yMin) * 0.05
	if margin == 0 {
		margin = 0.01
	}
	return yMin - margin, yMax + margin
}
