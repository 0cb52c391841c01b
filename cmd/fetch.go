package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/quantfolio/date"
	"github.com/etnz/quantfolio/eodhd"
	"github.com/google/subcommands"
)

// fetchCmd holds the flags for the 'fetch' subcommand.
type fetchCmd struct {
	tickers string
	start   string
	end     string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch daily prices from EODHD into the local store" }
func (*fetchCmd) Usage() string {
	return `pqa fetch -t <tickers> [-s <start>] [-e <end>]

  Fetches adjusted daily closing prices for the given tickers and saves them
  in the local price store. All other commands read from the store, so a
  single fetch is enough for any number of analytics runs.

Usage Examples:
# Fetch five years of prices for two assets.
$ pqa fetch -t AAPL.US,MSFT.US -s 2020-01-01

`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.tickers, "t", "", "Comma-separated EODHD tickers (e.g. AAPL.US,MSFT.US).")
	f.StringVar(&c.start, "s", "", "Start date of the range to fetch (defaults to one year ago).")
	f.StringVar(&c.end, "e", date.Today().String(), "End date of the range to fetch (defaults to today).")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tickers := parseTickers(c.tickers)
	if len(tickers) == 0 {
		return fail(fmt.Errorf("no tickers given, use -t"))
	}

	end, err := date.Parse(c.end)
	if err != nil {
		return fail(err)
	}
	start := end.Add(-365)
	if c.start != "" {
		if start, err = date.Parse(c.start); err != nil {
			return fail(err)
		}
	}

	client := eodhd.NewClient(*apiKeyFlag)
	store := Store()
	for _, ticker := range tickers {
		prices, err := client.DailyPrices(ticker, date.Range{From: start, To: end})
		if err != nil {
			return fail(err)
		}
		if err := store.Save(ticker, prices); err != nil {
			return fail(err)
		}
		fmt.Printf("Fetched %d prices for %s\n", prices.Len(), ticker)
	}
	return subcommands.ExitSuccess
}
