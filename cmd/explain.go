package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// explainCmd holds the flags for the 'explain' subcommand.
type explainCmd struct {
	model string
}

func (*explainCmd) Name() string { return "explain" }
func (*explainCmd) Synopsis() string {
	return "ask Gemini to explain an analytics report in plain words"
}
func (*explainCmd) Usage() string {
	return `pqa explain [-model <name>] < report.md

  Reads a markdown report from stdin (typically the output of roll, beta,
  factors or simulate) and asks Gemini for a plain-language commentary on
  what the numbers mean. Requires Gemini credentials in the environment.

Usage Examples:
$ pqa roll -t SPY.US -window 12 -stat sharpe | pqa explain

`
}

func (c *explainCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.model, "model", "gemini-2.5-flash", "Gemini model to use.")
}

const explainPrompt = `You are a patient finance tutor. Below is a portfolio
analytics report. Explain in a short paragraph, without jargon, what these
numbers say about the portfolio's risk and performance, and what a long-term
investor should take away from them.`

func (c *explainCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fail(err)
	}
	if len(report) == 0 {
		return fail(fmt.Errorf("nothing to explain, pipe a report into stdin"))
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return fail(fmt.Errorf("initializing Gemini client: %w", err))
	}

	chat, err := client.Chats.Create(ctx, c.model, nil, nil)
	if err != nil {
		return fail(err)
	}
	resp, err := chat.Send(ctx, &genai.Part{Text: explainPrompt + "\n\n" + string(report)})
	if err != nil {
		return fail(err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return fail(fmt.Errorf("no response from %s", c.model))
	}

	printMarkdown(resp.Candidates[0].Content.Parts[0].Text)
	return subcommands.ExitSuccess
}
