package carteira

import (
	"github.com/juvenalculino/carteira/date"
)

// quoterFunc adapts a function to the Quoter interface for tests.
type quoterFunc func(ticker string, from, to date.Date) (*date.History[float64], error)

func (f quoterFunc) AdjustedCloses(ticker string, from, to date.Date) (*date.History[float64], error) {
	return f(ticker, from, to)
}

// hist builds a history from day/value pairs.
func hist(points map[string]float64) *date.History[float64] {
	h := &date.History[float64]{}
	for day, v := range points {
		h.Append(date.MustParse(day), v)
	}
	return h
}

// buy is a helper to create a valid buy transaction from consts.
func buy(day, ticker string, quantity int, price float64) Transaction {
	return NewTransaction(date.MustParse(day), Buy, ticker, ClassEquity, Q(quantity), BRL(price))
}

// sell is a helper to create a valid sell transaction from consts.
func sell(day, ticker string, quantity int, price float64) Transaction {
	return NewTransaction(date.MustParse(day), Sell, ticker, ClassEquity, Q(quantity), BRL(price))
}

// ledgerOf builds a ledger from transactions in insertion order.
func ledgerOf(txs ...Transaction) *Ledger {
	l := NewLedger()
	l.Append(txs...)
	return l
}
