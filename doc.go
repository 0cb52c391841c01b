// Package quantfolio provides a set of functions and types for descriptive
// risk and performance analytics over portfolios of assets. It is designed to
// be local-first and deterministic: all computations are pure functions over
// in-memory, date-indexed series, so the same inputs always produce the same
// report.
//
// The core functionalities include:
//   - Return Series: converting date-indexed price series into periodic
//     simple or logarithmic return series, immutable once derived.
//   - Portfolio Aggregation: combining per-asset return series with a
//     weight vector into a single portfolio return series, re-normalizing
//     the weights at each rebalancing boundary.
//   - Rolling Statistic Engine: computing a scalar statistic (mean,
//     standard deviation, skewness, kurtosis, Sharpe ratio, CAPM beta, or
//     a factor-regression coefficient) over a fixed-width sliding window.
//   - Factor Regression: ordinary least squares of excess portfolio
//     returns on market, size and value factor series.
//   - Monte Carlo Simulation: compounding dollar-growth paths from a
//     normal-return assumption, with reproducible seeded runs.
//
// This package serves as the foundational logic for the `pqa` command-line
// tool; market data retrieval lives in the eodhd sub-package and rendering
// in the renderer and chart sub-packages.
package quantfolio
