package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/quantfolio"
	md "github.com/nao1215/markdown"
)

// SimulationMarkdown renders a Monte Carlo simulation summary. The initial
// investment scales the growth factors into money amounts.
func SimulationMarkdown(res *quantfolio.SimulationResult, initial quantfolio.Money) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Monte Carlo growth: %d paths × %d periods", res.Paths, res.Periods))
	doc.PlainText(fmt.Sprintf("Seed: %d (re-run with this seed to reproduce the paths exactly).", res.Seed))
	doc.PlainText(fmt.Sprintf("Median growth over the horizon: %s.", percent(res.MedianTerminal()-1)))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Terminal value", "Growth factor", fmt.Sprintf("On %s", initial)},
		Rows: [][]string{
			{"Minimum", value(res.MinTerminal()), initial.Scale(res.MinTerminal()).String()},
			{"5% quantile", value(res.Quantile(0.05)), initial.Scale(res.Quantile(0.05)).String()},
			{"Median", value(res.MedianTerminal()), initial.Scale(res.MedianTerminal()).String()},
			{"95% quantile", value(res.Quantile(0.95)), initial.Scale(res.Quantile(0.95)).String()},
			{"Maximum", value(res.MaxTerminal()), initial.Scale(res.MaxTerminal()).String()},
		},
	}
	doc.Table(table)

	return doc.String()
}
