package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/juvenalculino/carteira"
)

// addCmd holds the flags shared by the buy and sell commands.
type addCmd struct {
	op       carteira.Operation
	date     string
	ticker   string
	class    string
	quantity string
	price    string
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Transaction date (YYYY-MM-DD). Defaults to today.")
	f.StringVar(&c.ticker, "t", "", "Ticker symbol. The .SA suffix is appended when missing.")
	f.StringVar(&c.class, "c", carteira.ClassEquity, "Asset class (AÇÃO, FII, CDB|RDB).")
	f.StringVar(&c.quantity, "q", "", "Number of shares.")
	f.StringVar(&c.price, "p", "", "Unit price.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := parseDateFlag(c.date)
	if err != nil {
		return errorf("Error parsing date: %v", err)
	}
	quantity, err := carteira.ParseQuantity(c.quantity)
	if err != nil {
		return errorf("Error parsing quantity %q: %v", c.quantity, err)
	}
	price, err := carteira.ParseMoney(c.price, carteira.DefaultCurrency)
	if err != nil {
		return errorf("Error parsing price %q: %v", c.price, err)
	}

	tx := carteira.NewTransaction(day, c.op, c.ticker, c.class, quantity, price)

	store := OpenStore()
	if err := store.Append(tx); err != nil {
		return errorf("Error appending transaction to %q: %v", store.Path(), err)
	}

	fmt.Printf("Successfully appended transaction to %s\n", store.Path())
	return subcommands.ExitSuccess
}

type buyCmd struct{ addCmd }

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a purchase in the ledger" }
func (*buyCmd) Usage() string {
	return `carteira buy -t <ticker> -q <quantity> -p <price> [-d <date>] [-c <class>]

  Records a purchase. The total value is derived from quantity and price
  and stored alongside the transaction.

Usage Examples:
$ carteira buy -t VALE3 -q 10 -p 60.50

`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	c.op = carteira.Buy
	c.addCmd.SetFlags(f)
}

type sellCmd struct{ addCmd }

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale in the ledger" }
func (*sellCmd) Usage() string {
	return `carteira sell -t <ticker> -q <quantity> -p <price> [-d <date>] [-c <class>]

  Records a sale.

Usage Examples:
$ carteira sell -t VALE3 -q 5 -p 63.00

`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	c.op = carteira.Sell
	c.addCmd.SetFlags(f)
}
