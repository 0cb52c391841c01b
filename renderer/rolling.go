package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/quantfolio"
	md "github.com/nao1215/markdown"
)

// RollingMarkdown renders a rolling-statistic report to a markdown string.
func RollingMarkdown(ticker string, r *quantfolio.RollingStatistic) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Rolling %s for %s (window %d)", r.Stat, ticker, r.Window))
	if r.Stat == quantfolio.StatKurtosis {
		doc.PlainText("Kurtosis is raw (fourth standardized moment); a normal distribution scores 3.")
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Date", r.Stat.String()},
		Rows:      [][]string{},
	}
	for on, v := range r.Series().Values() {
		table.Rows = append(table.Rows, []string{on.String(), value(v)})
	}
	doc.Table(table)

	return doc.String()
}
