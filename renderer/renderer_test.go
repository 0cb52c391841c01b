package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/quantfolio"
	"github.com/etnz/quantfolio/date"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// parseMarkdown ensures the report is structurally valid markdown and
// returns the number of level-1 headings found.
func parseMarkdown(t *testing.T, src string) (headings int) {
	t.Helper()
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader([]byte(src)))
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == ast.KindHeading {
			if h := n.(*ast.Heading); h.Level == 1 {
				headings++
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walking markdown AST failed: %v", err)
	}
	return headings
}

func sampleRolling(t *testing.T) *quantfolio.RollingStatistic {
	t.Helper()
	days := make([]date.Date, 8)
	values := []float64{0.01, -0.02, 0.03, 0.005, -0.01, 0.02, 0.015, -0.005}
	for i := range days {
		days[i] = date.New(2024, time.Month(i+1), 1).EndOf(date.Monthly)
	}
	rs := quantfolio.NewReturnSeries("SPY.US", quantfolio.Simple, days, values)
	rolling, err := quantfolio.Roll(rs, 4, quantfolio.StatStdDev, quantfolio.RollOptions{})
	if err != nil {
		t.Fatalf("Roll() failed: %v", err)
	}
	return rolling
}

func TestRollingMarkdown(t *testing.T) {
	out := RollingMarkdown("SPY.US", sampleRolling(t))

	if got := parseMarkdown(t, out); got != 1 {
		t.Errorf("got %d level-1 headings, want 1", got)
	}
	if !strings.Contains(out, "SPY.US") {
		t.Error("report should name the ticker")
	}
	if !strings.Contains(out, "window 4") {
		t.Error("report should state the window width")
	}
	// One table row per window position.
	if got, want := strings.Count(out, "2024-"), 5; got != want {
		t.Errorf("got %d dated rows, want %d", got, want)
	}
}

func TestReturnsMarkdown(t *testing.T) {
	days := []date.Date{
		date.New(2024, time.January, 31),
		date.New(2024, time.February, 29),
	}
	rs := quantfolio.NewReturnSeries("SPY.US", quantfolio.Simple, days, []float64{0.0125, -0.02})

	out := ReturnsMarkdown(rs)
	if got := parseMarkdown(t, out); got != 1 {
		t.Errorf("got %d level-1 headings, want 1", got)
	}
	if !strings.Contains(out, "+1.25%") || !strings.Contains(out, "-2.00%") {
		t.Error("report should show signed percent returns")
	}
}

func TestRegressionMarkdown(t *testing.T) {
	days := make([]date.Date, 6)
	mvals := []float64{0.010, -0.020, 0.030, 0.005, -0.010, 0.020}
	pvals := make([]float64, len(mvals))
	for i := range days {
		days[i] = date.New(2024, time.Month(i+1), 1).EndOf(date.Monthly)
		pvals[i] = 0.001 + 1.2*mvals[i]
	}
	m := quantfolio.NewReturnSeries("SPY.US", quantfolio.Simple, days, mvals)
	p := quantfolio.NewReturnSeries("AAPL.US", quantfolio.Simple, days, pvals)
	reg, err := quantfolio.RegressFactors(p, 0, m)
	if err != nil {
		t.Fatalf("RegressFactors() failed: %v", err)
	}

	out := RegressionMarkdown("AAPL.US", []string{"market"}, reg)
	if got := parseMarkdown(t, out); got != 1 {
		t.Errorf("got %d level-1 headings, want 1", got)
	}
	if !strings.Contains(out, "alpha") || !strings.Contains(out, "market") {
		t.Error("report should label the intercept and each factor")
	}
}

func TestSimulationMarkdown(t *testing.T) {
	seed := uint64(42)
	res, err := quantfolio.Simulate(12, 0.005, 0.03, 20, &seed)
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}

	out := SimulationMarkdown(res, quantfolio.M(1000, "USD"))
	if got := parseMarkdown(t, out); got != 1 {
		t.Errorf("got %d level-1 headings, want 1", got)
	}
	if !strings.Contains(out, "Seed: 42") {
		t.Error("report should state the effective seed")
	}
	if !strings.Contains(out, "Median") {
		t.Error("report should include the median terminal value")
	}
	if !strings.Contains(out, "$1,000.00") {
		t.Error("report should show the formatted initial investment")
	}
}
