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

// returnsCmd holds the flags for the 'returns' subcommand.
type returnsCmd struct {
	ticker string
	period string
	kind   string
	start  string
}

func (*returnsCmd) Name() string     { return "returns" }
func (*returnsCmd) Synopsis() string { return "display the periodic returns of a stored asset" }
func (*returnsCmd) Usage() string {
	return `pqa returns -t <ticker> [-p <period>] [-kind simple|log] [-s <start>]

  Resamples the locally stored prices at the given period and displays the
  derived return series. Each return is dated at the later of the two prices
  it spans.

Usage Examples:
$ pqa returns -t SPY.US -p monthly -s 2023-01-01

`
}

func (c *returnsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Asset ticker.")
	f.StringVar(&c.period, "p", "monthly", "Return sampling period (weekly, monthly, quarterly, yearly).")
	f.StringVar(&c.kind, "kind", "simple", "Return kind: simple or log.")
	f.StringVar(&c.start, "s", "", "Inclusive lower bound on the return series dates.")
}

func (c *returnsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		return fail(fmt.Errorf("no ticker given, use -t"))
	}
	period, err := date.ParsePeriod(c.period)
	if err != nil {
		return fail(err)
	}
	kind, err := quantfolio.ParseReturnKind(c.kind)
	if err != nil {
		return fail(err)
	}
	var from date.Date
	if c.start != "" {
		if from, err = date.Parse(c.start); err != nil {
			return fail(err)
		}
	}

	rs, err := loadReturns(c.ticker, period, kind, from)
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.ReturnsMarkdown(rs))
	return subcommands.ExitSuccess
}
