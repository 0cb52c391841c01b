package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/quantfolio"
	md "github.com/nao1215/markdown"
)

// ReturnsMarkdown renders a periodic return series as a markdown table.
func ReturnsMarkdown(r *quantfolio.ReturnSeries) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s returns for %s (%d periods)", r.Kind, r.Ticker, r.Len()))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Date", "Return"},
		Rows:      [][]string{},
	}
	for on, v := range r.Series().Values() {
		table.Rows = append(table.Rows, []string{on.String(), quantfolio.AsPercent(v).SignedString()})
	}
	doc.Table(table)

	return doc.String()
}
