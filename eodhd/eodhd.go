// Package eodhd retrieves historical end-of-day prices from EODHD.com.
// It is the engine's sole market-data collaborator: it produces date-indexed
// adjusted-close price series and knows nothing about statistics.
package eodhd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/quantfolio"
	"github.com/etnz/quantfolio/date"
	"github.com/shopspring/decimal"
)

const apiKeyEnv = "EODHD_API_KEY"

// Client accesses the EODHD end-of-day API.
type Client struct {
	apiKey string
	http   *http.Client
}

// NewClient returns a client for the given API key. An empty key falls back
// to the EODHD_API_KEY environment variable. Responses are cached on disk
// with a daily expiry, so repeated runs within a day do not hit the API.
func NewClient(apiKey string) *Client {
	if apiKey == "" {
		apiKey = os.Getenv(apiKeyEnv)
	}
	return &Client{apiKey: apiKey, http: newDailyCachingClient()}
}

// DailyPrices fetches the adjusted daily closing prices of a ticker over the
// given range (boundaries included). The EODHD ticker format is typically
// "SYMBOL.EXCHANGECODE", e.g. "AAPL.US".
//
//	https://eodhd.com/api/eod/AAPL.US?api_token=demo&fmt=json
//	[
//	  {
//	    "date": "2024-02-13",
//	    "open": 675.066,
//	    "close": 668.445,
//	    "adjusted_close": 67.705,
//	    "volume": 0
//	  },
func (c *Client) DailyPrices(ticker string, r date.Range) (*quantfolio.Series, error) {
	addr := fmt.Sprintf("https://eodhd.com/api/eod/%s?fmt=json&api_token=%s&from=%s&to=%s",
		ticker, c.apiKey, r.From, r.To)

	type info struct {
		Date          date.Date       `json:"date"`
		AdjustedClose decimal.Decimal `json:"adjusted_close"`
	}
	content := make([]info, 0)
	if err := jwget(c.http, addr, &content); err != nil {
		return nil, fmt.Errorf("cannot fetch prices for %q: %w", ticker, err)
	}

	prices := &quantfolio.Series{}
	for _, p := range content {
		prices.Append(p.Date, p.AdjustedClose.InexactFloat64())
	}
	return prices, nil
}

// LiveQuote returns the latest known price of a ticker from the real-time
// endpoint. The response is a single json object; jsonpath keeps the
// extraction resilient to the extra fields EODHD keeps adding.
func (c *Client) LiveQuote(ticker string) (float64, error) {
	addr := fmt.Sprintf("https://eodhd.com/api/real-time/%s?fmt=json&api_token=%s", ticker, c.apiKey)

	var jobj any
	if err := jwget(c.http, addr, &jobj); err != nil {
		return 0, fmt.Errorf("cannot fetch quote for %q: %w", ticker, err)
	}
	return extractQuote(jobj, ticker)
}

// extractQuote pulls the close price out of a decoded real-time response.
func extractQuote(jobj any, ticker string) (float64, error) {
	path := "$.close"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("error parsing quote for %q: %q %w", ticker, path, err)
	}
	// jsonpath is never clear about whether it returns a list of 1 answer
	// or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("error parsing quote for %q: %q not a float: %v", ticker, path, jval)
	}
	return val, nil
}
