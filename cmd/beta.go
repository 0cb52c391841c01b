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

// betaCmd holds the flags for the 'beta' subcommand.
type betaCmd struct {
	ticker   string
	market   string
	riskFree float64
	period   string
	start    string
}

func (*betaCmd) Name() string     { return "beta" }
func (*betaCmd) Synopsis() string { return "estimate the CAPM beta of an asset against a market" }
func (*betaCmd) Usage() string {
	return `pqa beta -t <ticker> -market <ticker> [options]

  Regresses the asset's excess returns on the market's over the whole
  available range. The slope is the CAPM beta, numerically identical to
  cov(asset, market)/var(market); the intercept is the alpha.

Usage Examples:
$ pqa beta -t AAPL.US -market SPY.US -rf 0.0003

`
}

func (c *betaCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Asset ticker.")
	f.StringVar(&c.market, "market", "", "Market ticker.")
	f.Float64Var(&c.riskFree, "rf", 0, "Per-period risk-free rate.")
	f.StringVar(&c.period, "p", "monthly", "Return sampling period.")
	f.StringVar(&c.start, "s", "", "Inclusive lower bound on the return series dates.")
}

func (c *betaCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" || c.market == "" {
		return fail(fmt.Errorf("both -t and -market are required"))
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
	market, err := loadReturns(c.market, period, quantfolio.Simple, from)
	if err != nil {
		return fail(err)
	}

	reg, err := quantfolio.RegressFactors(asset, c.riskFree, market)
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.RegressionMarkdown(c.ticker, []string{"beta (" + c.market + ")"}, reg))
	return subcommands.ExitSuccess
}
