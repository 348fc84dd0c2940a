// Package cmd implements the CLI application to manage the investment ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/juvenalculino/carteira"
	"github.com/juvenalculino/carteira/date"
	"github.com/juvenalculino/carteira/yahoo"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&buyCmd{}, "ledger")
	c.Register(&sellCmd{}, "ledger")
	c.Register(&txCmd{}, "ledger")
	c.Register(&rmCmd{}, "ledger")

	c.Register(&holdingCmd{}, "reports")
	c.Register(&perfCmd{}, "reports")
	c.Register(&topicCmd{}, "reports")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "registro.csv", "Path to the ledger file containing transactions (CSV format)")

// OpenStore returns the store over the app default ledger file.
func OpenStore() *carteira.Store {
	return carteira.NewStore(*ledgerFile)
}

// NewEngine returns a valuation engine backed by Yahoo Finance.
func NewEngine() *carteira.Engine {
	return carteira.NewEngine(yahoo.NewClient())
}

// parseDateFlag parses an optional -d flag value, defaulting to today.
func parseDateFlag(value string) (date.Date, error) {
	if value == "" {
		return date.Today(), nil
	}
	return date.Parse(value)
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering is not possible.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// errorf reports a command error on stderr and returns the failure status.
func errorf(format string, args ...interface{}) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitFailure
}
