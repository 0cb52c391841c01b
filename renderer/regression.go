package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/quantfolio"
	md "github.com/nao1215/markdown"
)

// RegressionMarkdown renders a factor-regression report. factorNames must
// name the factors in fit order; the intercept row is labeled "alpha".
func RegressionMarkdown(ticker string, factorNames []string, reg *quantfolio.Regression) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Factor regression for %s", ticker))
	doc.PlainText(fmt.Sprintf("Observations: %d, R²: %.4f, residual stddev: %.6f.", reg.N, reg.R2, reg.Residual))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Coefficient", "Estimate", "Std Error", "95% Low", "95% High"},
		Rows:      [][]string{},
	}
	names := append([]string{"alpha"}, factorNames...)
	for i, name := range names {
		table.Rows = append(table.Rows, []string{
			name,
			value(reg.Coefficients[i]),
			value(reg.StdErrors[i]),
			value(reg.Lower[i]),
			value(reg.Upper[i]),
		})
	}
	doc.Table(table)

	return doc.String()
}
