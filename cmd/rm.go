package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type rmCmd struct {
	index int
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove a transaction from the ledger" }
func (*rmCmd) Usage() string {
	return `carteira rm -i <index>

  Removes the transaction at the given zero-based index, as listed by tx.
  An index out of range fails and leaves the ledger file untouched.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "i", -1, "Index of the transaction to remove.")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.index < 0 {
		return errorf("Error: -i is required.")
	}

	store := OpenStore()
	if err := store.RemoveAt(c.index); err != nil {
		return errorf("Error removing transaction %d: %v", c.index, err)
	}

	fmt.Printf("Successfully removed transaction %d from %s\n", c.index, store.Path())
	return subcommands.ExitSuccess
}
