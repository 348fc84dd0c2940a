package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/juvenalculino/carteira/renderer"
)

type holdingCmd struct {
	date string
}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "value the current positions" }
func (*holdingCmd) Usage() string {
	return `carteira holding [-d <date>]

  Values every ticker of the ledger with its last adjusted close and
  reports positions, composition and the day's summary. Tickers without
  an available price are reported as such and valued at zero.
`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Valuation date (YYYY-MM-DD). Defaults to today.")
}

func (c *holdingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	asOf, err := parseDateFlag(c.date)
	if err != nil {
		return errorf("Error parsing date: %v", err)
	}

	ledger, err := OpenStore().Load()
	if err != nil {
		return errorf("Error loading ledger: %v", err)
	}

	engine := NewEngine()
	positions := engine.Positions(ledger, asOf)
	summary := engine.Summarize(ledger, positions)

	printMarkdown(renderer.Holding(positions, summary))
	return subcommands.ExitSuccess
}
