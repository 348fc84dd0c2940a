package cmd

import (
	"context"
	"flag"
	"strings"

	"github.com/google/subcommands"
	"github.com/juvenalculino/carteira/renderer"
)

type txCmd struct {
	head int
	tail int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list all transactions in the ledger" }
func (*txCmd) Usage() string {
	return `carteira tx [-head <n>] [-tail <n>]

  Lists the transactions with the index expected by the rm command.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N transactions.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		return errorf("Error: -head and -tail flags cannot be used together.")
	}

	ledger, err := OpenStore().Load()
	if err != nil {
		return errorf("Error loading ledger: %v", err)
	}

	// head and tail trim the markdown rows, the index column keeps the
	// original positions so rm still works on a trimmed listing.
	md := renderer.Transactions(ledger)
	printMarkdown(trimRows(md, c.head, c.tail))
	return subcommands.ExitSuccess
}

// trimRows keeps only the first or last n table rows of the transactions
// markdown, leaving the title and the table header in place.
func trimRows(md string, head, tail int) string {
	if head == 0 && tail == 0 {
		return md
	}
	lines := strings.Split(strings.TrimRight(md, "\n"), "\n")
	// Title, blank line, table header and separator.
	const preamble = 4
	if len(lines) <= preamble {
		return md
	}
	rows := lines[preamble:]
	if head > 0 && len(rows) > head {
		rows = rows[:head]
	}
	if tail > 0 && len(rows) > tail {
		rows = rows[len(rows)-tail:]
	}
	return strings.Join(append(lines[:preamble:preamble], rows...), "\n") + "\n"
}
