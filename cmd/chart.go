package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/quantfolio"
	"github.com/etnz/quantfolio/chart"
	"github.com/google/subcommands"
)

// chartCmd holds the flags for the 'chart' subcommand.
type chartCmd struct {
	rollCmd // the rolling flags are shared; chart adds rendering ones

	output string
	fan    bool
	paths  int
	seed   uint64
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "render a rolling statistic or a simulation fan as PNG" }
func (*chartCmd) Usage() string {
	return `pqa chart -o <file.png> [roll flags | -fan -paths <k>]

  Renders either a rolling-statistic line chart (same flags as 'pqa roll')
  or, with -fan, a Monte Carlo fan chart calibrated on the subject returns.

Usage Examples:
$ pqa chart -t SPY.US -window 12 -stat stddev -o vol.png
$ pqa chart -t SPY.US -fan -paths 50 -o fan.png

`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	c.rollCmd.SetFlags(f)
	f.StringVar(&c.output, "o", "chart.png", "Output PNG file.")
	f.BoolVar(&c.fan, "fan", false, "Render a Monte Carlo fan instead of a rolling line.")
	f.IntVar(&c.paths, "paths", 50, "Number of simulated paths (with -fan).")
	f.Uint64Var(&c.seed, "seed", 42, "Random seed (with -fan).")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	subject, err := c.resolveReturns()
	if err != nil {
		return fail(err)
	}

	var img []byte
	if c.fan {
		xs := subject.Series().Floats()
		res, err := quantfolio.Simulate(c.window, quantfolio.Mean(xs), quantfolio.StdDev(xs), c.paths, &c.seed)
		if err != nil {
			return fail(err)
		}
		img, err = chart.SimulationFan(res)
		if err != nil {
			return fail(err)
		}
	} else {
		stat, err := quantfolio.ParseStatistic(c.stat)
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
		if img, err = chart.RollingLine(subject.Ticker, rolling); err != nil {
			return fail(err)
		}
	}

	if err := os.WriteFile(c.output, img, 0644); err != nil {
		return fail(err)
	}
	fmt.Printf("Wrote %s (%d bytes)\n", c.output, len(img))
	return subcommands.ExitSuccess
}
