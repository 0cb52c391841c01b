package quantfolio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/etnz/quantfolio/date"
	"github.com/shopspring/decimal"
)

// This file persists fetched price series in a folder, in a way that is
// human-readable and git-friendly: one JSONL file per ticker, one price per
// line. The main goal for such data is to let analytics run offline after a
// single fetch.

const priceFilesGlob = "*.jsonl"

// PriceStore reads and writes date-indexed price series under a directory.
type PriceStore struct {
	dir string
}

// NewPriceStore returns a store rooted at dir. The directory is created on
// first save.
func NewPriceStore(dir string) *PriceStore { return &PriceStore{dir: dir} }

// jprice is the object written per line, using json tag annotation.
// The close is kept as a decimal string to avoid float round-tripping.
type jprice struct {
	On    date.Date       `json:"on"`
	Close decimal.Decimal `json:"close"`
}

func (st *PriceStore) file(ticker string) string {
	return filepath.Join(st.dir, strings.ToUpper(ticker)+".jsonl")
}

// Save writes the price series for a ticker, overwriting any previous file.
func (st *PriceStore) Save(ticker string, prices *Series) error {
	if err := os.MkdirAll(st.dir, 0755); err != nil {
		return fmt.Errorf("cannot create price store %q: %w", st.dir, err)
	}
	f, err := os.Create(st.file(ticker))
	if err != nil {
		return fmt.Errorf("cannot create price file for %q: %w", ticker, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for on, v := range prices.Values() {
		line, err := json.Marshal(jprice{On: on, Close: decimal.NewFromFloat(v)})
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(line))
	}
	return w.Flush()
}

// Load reads the price series for a ticker.
func (st *PriceStore) Load(ticker string) (*Series, error) {
	f, err := os.Open(st.file(ticker))
	if err != nil {
		return nil, fmt.Errorf("no local prices for %q (run 'pqa fetch' first): %w", ticker, err)
	}
	defer f.Close()

	prices := &Series{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var jp jprice
		if err := json.Unmarshal(line, &jp); err != nil {
			return nil, fmt.Errorf("format error in %q on line %q: %w", st.file(ticker), string(line), err)
		}
		prices.Append(jp.On, jp.Close.InexactFloat64())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return prices, nil
}

// Tickers lists the tickers with locally stored prices, in alphabetical order.
func (st *PriceStore) Tickers() ([]string, error) {
	files, err := filepath.Glob(filepath.Join(st.dir, priceFilesGlob))
	if err != nil {
		return nil, err
	}
	tickers := make([]string, 0, len(files))
	for _, f := range files {
		tickers = append(tickers, strings.TrimSuffix(filepath.Base(f), ".jsonl"))
	}
	sort.Strings(tickers)
	return tickers, nil
}
