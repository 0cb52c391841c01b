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

// factorsCmd holds the flags for the 'factors' subcommand.
type factorsCmd struct {
	ticker   string
	factors  string
	riskFree float64
	period   string
	start    string
}

func (*factorsCmd) Name() string { return "factors" }
func (*factorsCmd) Synopsis() string {
	return "regress excess returns on market, size and value factor series"
}
func (*factorsCmd) Usage() string {
	return `pqa factors -t <ticker> -f <factor tickers> [options]

  Fits excess asset returns on the given factor series by ordinary least
  squares with intercept (the Fama-French style fit). The report shows each
  coefficient with its 95% confidence interval, and the R² of the fit.

Usage Examples:
# Three-factor regression: market, size, value proxies.
$ pqa factors -t AAPL.US -f SPY.US,IWM.US,IVE.US -rf 0.0003

`
}

func (c *factorsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Asset ticker.")
	f.StringVar(&c.factors, "f", "", "Comma-separated factor tickers, market first.")
	f.Float64Var(&c.riskFree, "rf", 0, "Per-period risk-free rate.")
	f.StringVar(&c.period, "p", "monthly", "Return sampling period.")
	f.StringVar(&c.start, "s", "", "Inclusive lower bound on the return series dates.")
}

func (c *factorsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	factorTickers := parseTickers(c.factors)
	if c.ticker == "" || len(factorTickers) == 0 {
		return fail(fmt.Errorf("both -t and -f are required"))
	}
	period, err := date.ParsePeriod(c.period)
	if err != nil {
		return fail(err)
	}
	var from date.Date
	if c.start != "" {
		if from, err = date.Parse(c.start); err != nil {
			return fail(err)
		}
	}

	asset, err := loadReturns(c.ticker, period, quantfolio.Simple, from)
	if err != nil {
		return fail(err)
	}
	factors := make([]*quantfolio.ReturnSeries, len(factorTickers))
	for i, t := range factorTickers {
		if factors[i], err = loadReturns(t, period, quantfolio.Simple, from); err != nil {
			return fail(err)
		}
	}

	reg, err := quantfolio.RegressFactors(asset, c.riskFree, factors...)
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.RegressionMarkdown(c.ticker, factorTickers, reg))
	return subcommands.ExitSuccess
}
