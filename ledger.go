package carteira

import (
	"errors"
	"fmt"
	"iter"
)

// ErrInvalidIndex is returned when a row removal targets an ordinal index
// outside the current snapshot.
var ErrInvalidIndex = errors.New("invalid transaction index")

// Ledger is an ordered log of transactions, insertion order preserved.
//
// Unlike a trading journal, the ledger is never reordered: the ordinal index
// of a row identifies it for removal.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// At returns the transaction at ordinal index i.
func (l *Ledger) At(i int) (Transaction, error) {
	if i < 0 || i >= len(l.transactions) {
		return Transaction{}, fmt.Errorf("%w: %d (ledger has %d rows)", ErrInvalidIndex, i, len(l.transactions))
	}
	return l.transactions[i], nil
}

// Append appends transactions at the end of the ledger.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
}

// RemoveAt deletes the row at the given ordinal index. All other rows keep
// their relative order. An out-of-range index returns ErrInvalidIndex and
// leaves the ledger unchanged.
func (l *Ledger) RemoveAt(i int) error {
	if i < 0 || i >= len(l.transactions) {
		return fmt.Errorf("%w: %d (ledger has %d rows)", ErrInvalidIndex, i, len(l.transactions))
	}
	l.transactions = append(l.transactions[:i], l.transactions[i+1:]...)
	return nil
}

// Transactions returns an iterator that yields each transaction with its
// ordinal index, in insertion order.
func (l *Ledger) Transactions() iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			if !yield(i, tx) {
				return
			}
		}
	}
}

// Tickers returns the distinct tickers of the ledger, in order of first
// appearance.
func (l *Ledger) Tickers() []string {
	seen := make(map[string]struct{})
	var tickers []string
	for _, tx := range l.transactions {
		if _, ok := seen[tx.Ticker]; ok {
			continue
		}
		seen[tx.Ticker] = struct{}{}
		tickers = append(tickers, tx.Ticker)
	}
	return tickers
}

// TotalQuantity sums the quantity over all of the ticker's rows. BUY and SELL
// quantities are both added, never subtracted: a fully sold ticker still
// reports its full historical quantity. This matches the original report and
// is kept for compatibility; see NetQuantity for the signed variant.
func (l *Ledger) TotalQuantity(ticker string) Quantity {
	var total Quantity
	for _, tx := range l.transactions {
		if tx.Ticker == ticker {
			total = total.Add(tx.Quantity)
		}
	}
	return total
}

// NetQuantity sums the quantity over the ticker's rows, subtracting sells.
func (l *Ledger) NetQuantity(ticker string) Quantity {
	var total Quantity
	for _, tx := range l.transactions {
		if tx.Ticker != ticker {
			continue
		}
		if tx.Operation == Sell {
			total = total.Sub(tx.Quantity)
		} else {
			total = total.Add(tx.Quantity)
		}
	}
	return total
}

// TotalValueSum sums the persisted total value over rows accepted by the
// filter. A nil filter accepts every row.
func (l *Ledger) TotalValueSum(filter func(Transaction) bool) Money {
	total := BRL(0)
	for _, tx := range l.transactions {
		if filter == nil || filter(tx) {
			total = total.Add(tx.TotalValue)
		}
	}
	return total
}

// ByOperation returns a predicate that filters transactions by operation.
func ByOperation(op Operation) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Operation == op }
}
