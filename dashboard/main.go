// Command dashboard is the terminal entry point of the investment tracker.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/juvenalculino/carteira/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	name := path.Base(os.Args[0])
	commander := subcommands.NewCommander(flag.CommandLine, name)

	cmd.Register(commander)
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")

	// Shell completion. A no-op unless invoked by the shell completion hook.
	completion(name)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion(name string) {
	ledger := map[string]complete.Predictor{"ledger-file": predict.Files("*.csv")}
	day := map[string]complete.Predictor{"d": predict.Nothing}

	root := &complete.Command{
		Flags: ledger,
		Sub: map[string]*complete.Command{
			"buy":     {Flags: day},
			"sell":    {Flags: day},
			"tx":      {},
			"rm":      {},
			"holding": {Flags: day},
			"perf":    {Flags: day},
			"topic":   {Args: predict.Set{"registro", "carteira", "rentabilidade", "readme"}},
		},
	}
	root.Complete(name)
}
