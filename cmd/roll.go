package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/quantfolio"
	"github.com/etnz/quantfolio/date"
	"github.com/etnz/quantfolio/renderer"
	"github.com/google/subcommands"
)

// rollCmd holds the flags for the 'roll' subcommand.
type rollCmd struct {
	tickers   string
	weights   string
	window    int
	stat      string
	riskFree  float64
	market    string
	period    string
	rebalance string
	start     string
	kind      string
}

func (*rollCmd) Name() string     { return "roll" }
func (*rollCmd) Synopsis() string { return "compute a rolling window statistic over portfolio returns" }
func (*rollCmd) Usage() string {
	return `pqa roll -t <tickers> [-w <weights>] -window <n> -stat <statistic> [options]

  Computes a fixed-width sliding-window statistic over the portfolio return
  series and displays the aligned output series. With a single ticker and no
  weights the statistic runs on that asset alone.

  Statistics: mean, stddev, skewness, kurtosis, sharpe, beta.
  Beta requires a market series (-market).

Usage Examples:
# 12-month rolling volatility of a 60/40 portfolio.
$ pqa roll -t SPY.US,AGG.US -w 0.6,0.4 -window 12 -stat stddev

# 24-month rolling beta against the market.
$ pqa roll -t AAPL.US -window 24 -stat beta -market SPY.US

`
}

func (c *rollCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.tickers, "t", "", "Comma-separated tickers of the portfolio assets.")
	f.StringVar(&c.weights, "w", "", "Comma-separated portfolio weights summing to 1. Defaults to a single asset.")
	f.IntVar(&c.window, "window", 12, "Window width in periods.")
	f.StringVar(&c.stat, "stat", "stddev", "Statistic to compute over each window.")
	f.Float64Var(&c.riskFree, "rf", 0, "Per-period risk-free rate (for sharpe).")
	f.StringVar(&c.market, "market", "", "Market ticker (for beta).")
	f.StringVar(&c.period, "p", "monthly", "Return sampling period (weekly, monthly, quarterly, yearly).")
	f.StringVar(&c.rebalance, "rebalance", "monthly", "Rebalancing cadence for portfolio weights.")
	f.StringVar(&c.start, "s", "", "Inclusive lower bound on the return series dates.")
	f.StringVar(&c.kind, "kind", "simple", "Return kind: simple or log.")
}

// resolveReturns builds the subject return series: the single asset when no
// weights are given, the rebalanced portfolio otherwise.
func (c *rollCmd) resolveReturns() (*quantfolio.ReturnSeries, error) {
	tickers := parseTickers(c.tickers)
	if len(tickers) == 0 {
		return nil, fmt.Errorf("no tickers given, use -t")
	}
	period, err := date.ParsePeriod(c.period)
	if err != nil {
		return nil, err
	}
	kind, err := quantfolio.ParseReturnKind(c.kind)
	if err != nil {
		return nil, err
	}
	var from date.Date
	if c.start != "" {
		if from, err = date.Parse(c.start); err != nil {
			return nil, err
		}
	}

	if c.weights == "" {
		if len(tickers) != 1 {
			return nil, fmt.Errorf("got %d tickers but no weights, use -w", len(tickers))
		}
		return loadReturns(tickers[0], period, kind, from)
	}

	weights, err := parseWeights(c.weights)
	if err != nil {
		return nil, err
	}
	rebalance, err := date.ParsePeriod(c.rebalance)
	if err != nil {
		return nil, err
	}
	portfolio, err := quantfolio.NewPortfolio(tickers, weights, rebalance)
	if err != nil {
		return nil, err
	}
	assets := make([]*quantfolio.ReturnSeries, len(tickers))
	for i, t := range tickers {
		rs, err := loadReturns(t, period, kind, from)
		if err != nil {
			return nil, err
		}
		assets[i] = rs.ToSimple()
	}
	return portfolio.Returns(assets...)
}

// rollOptions assembles the RollOptions for the given statistic, loading the
// market series when beta asks for one. Shared with the chart command.
func (c *rollCmd) rollOptions(stat quantfolio.Statistic) (quantfolio.RollOptions, error) {
	opts := quantfolio.RollOptions{RiskFree: c.riskFree}
	if stat != quantfolio.StatBeta {
		return opts, nil
	}
	if c.market == "" {
		return opts, fmt.Errorf("statistic beta requires a market ticker, use -market")
	}
	period, err := date.ParsePeriod(c.period)
	if err != nil {
		return opts, err
	}
	kind, err := quantfolio.ParseReturnKind(c.kind)
	if err != nil {
		return opts, err
	}
	var from date.Date
	if c.start != "" {
		if from, err = date.Parse(c.start); err != nil {
			return opts, err
		}
	}
	market, err := loadReturns(c.market, period, kind, from)
	if err != nil {
		return opts, err
	}
	opts.Market = market
	return opts, nil
}

func (c *rollCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	stat, err := quantfolio.ParseStatistic(c.stat)
	if err != nil {
		return fail(err)
	}
	subject, err := c.resolveReturns()
	if err != nil {
		return fail(err)
	}
	opts, err := c.rollOptions(stat)
	if err != nil {
		return fail(err)
	}

	rolling, err := quantfolio.Roll(subject, c.window, stat, opts)
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.RollingMarkdown(subject.Ticker, rolling))
	return subcommands.ExitSuccess
}
