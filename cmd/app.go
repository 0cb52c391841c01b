// Package cmd implements the CLI application to analyse portfolio risk and
// performance.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/quantfolio"
	"github.com/etnz/quantfolio/date"
	"github.com/google/subcommands"
)

// Commands lists all subcommands to register on the commander.
var Commands = []subcommands.Command{
	&fetchCmd{},
	&returnsCmd{},
	&rollCmd{},
	&betaCmd{},
	&factorsCmd{},
	&simulateCmd{},
	&chartCmd{},
	&explainCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storePath = flag.String("store-path", ".prices", "Path to the local price store folder")
var apiKeyFlag = flag.String("eodhd-api-key", "", "EODHD API key for fetching prices. If missing it is read from the EODHD_API_KEY environment variable. You can get one at https://eodhd.com/")

// Store opens the app price store.
func Store() *quantfolio.PriceStore { return quantfolio.NewPriceStore(*storePath) }

// printMarkdown renders a markdown report for the terminal.
func printMarkdown(doc string) {
	out, err := glamour.Render(doc, "auto")
	if err != nil {
		// glamour is cosmetic only, fall back to the raw markdown.
		fmt.Println(doc)
		return
	}
	fmt.Print(out)
}

// loadReturns loads locally stored prices for a ticker, resamples them at
// the given period and converts them to returns starting at 'from'.
func loadReturns(ticker string, p date.Period, kind quantfolio.ReturnKind, from date.Date) (*quantfolio.ReturnSeries, error) {
	prices, err := Store().Load(ticker)
	if err != nil {
		return nil, err
	}
	rs, err := quantfolio.ReturnsFromPrices(ticker, quantfolio.Resample(prices, p), kind)
	if err != nil {
		return nil, err
	}
	return rs.From(from), nil
}

// parseWeights parses a comma-separated list of weights like "0.25,0.25,0.5".
func parseWeights(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	weights := make([]float64, 0, len(parts))
	for _, p := range parts {
		w, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid weight %q: %w", p, err)
		}
		weights = append(weights, w)
	}
	return weights, nil
}

// parseTickers parses a comma-separated list of tickers.
func parseTickers(s string) []string {
	parts := strings.Split(s, ",")
	tickers := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tickers = append(tickers, strings.ToUpper(t))
		}
	}
	return tickers
}

// fail prints an error and returns the failure exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}
