package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/juvenalculino/carteira/renderer"
)

type perfCmd struct {
	date string
}

func (*perfCmd) Name() string     { return "perf" }
func (*perfCmd) Synopsis() string { return "compare normalized price series" }
func (*perfCmd) Usage() string {
	return `carteira perf [-d <date>]

  Fetches the adjusted close history of every ticker over the lookback
  window ending at the given date and normalizes each series by its first
  value, so different tickers can be compared side by side.
`
}

func (c *perfCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "End date of the window (YYYY-MM-DD). Defaults to today.")
}

func (c *perfCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	asOf, err := parseDateFlag(c.date)
	if err != nil {
		return errorf("Error parsing date: %v", err)
	}

	ledger, err := OpenStore().Load()
	if err != nil {
		return errorf("Error loading ledger: %v", err)
	}

	report := NewEngine().Performance(ledger, asOf)
	printMarkdown(renderer.Performance(report))
	return subcommands.ExitSuccess
}
