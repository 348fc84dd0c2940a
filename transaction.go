package carteira

import (
	"fmt"
	"strings"

	"github.com/juvenalculino/carteira/date"
)

// Operation identifies the side of a transaction.
type Operation string

// Operations, persisted with their original labels.
const (
	Buy  Operation = "COMPRA"
	Sell Operation = "VENDA"
)

// ParseOperation parses the persisted label of an operation.
func ParseOperation(s string) (Operation, error) {
	switch Operation(strings.ToUpper(strings.TrimSpace(s))) {
	case Buy:
		return Buy, nil
	case Sell:
		return Sell, nil
	default:
		return "", fmt.Errorf("unknown operation %q", s)
	}
}

// Canonical asset class labels. AssetClass is an open string, any other
// label is accepted and preserved.
const (
	ClassEquity      = "AÇÃO"
	ClassREIT        = "FII"
	ClassFixedIncome = "CDB|RDB"
)

// DefaultMarketSuffix is appended to tickers at entry time to qualify the
// market place (B3 on Yahoo Finance).
const DefaultMarketSuffix = ".SA"

// NormalizeTicker uppercases the symbol and appends the market suffix when the
// symbol carries none.
func NormalizeTicker(symbol, suffix string) string {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return ""
	}
	if strings.Contains(symbol, ".") {
		return symbol
	}
	return symbol + strings.ToUpper(suffix)
}

// Transaction is one row of the ledger.
type Transaction struct {
	Date       date.Date
	Operation  Operation
	Ticker     string
	AssetClass string
	Quantity   Quantity
	Price      Money
	// TotalValue is Quantity x Price computed at write time and persisted
	// redundantly. It is read back verbatim on load, never re-derived.
	TotalValue Money
}

// NewTransaction builds a transaction for the given day. The ticker is
// normalized and the total value is derived from quantity and price.
func NewTransaction(day date.Date, op Operation, ticker, class string, quantity Quantity, price Money) Transaction {
	return Transaction{
		Date:       day,
		Operation:  op,
		Ticker:     NormalizeTicker(ticker, DefaultMarketSuffix),
		AssetClass: class,
		Quantity:   quantity,
		Price:      price,
		TotalValue: price.Mul(quantity),
	}
}

// Validate checks the transaction invariants that hold at write time.
func (t Transaction) Validate() error {
	if t.Ticker == "" {
		return fmt.Errorf("transaction ticker is missing")
	}
	if t.Quantity.LessThan(Q(1)) {
		return fmt.Errorf("transaction quantity must be at least 1, got %s", t.Quantity)
	}
	if t.Price.IsNegative() {
		return fmt.Errorf("transaction price must not be negative, got %s", t.Price)
	}
	if !t.TotalValue.Equal(t.Price.Mul(t.Quantity)) {
		return fmt.Errorf("transaction total value %s does not match quantity x price", t.TotalValue)
	}
	return nil
}

func (t Transaction) Equal(o Transaction) bool {
	return t.Date == o.Date &&
		t.Operation == o.Operation &&
		t.Ticker == o.Ticker &&
		t.AssetClass == o.AssetClass &&
		t.Quantity.Equal(o.Quantity) &&
		t.Price.Equal(o.Price) &&
		t.TotalValue.Equal(o.TotalValue)
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s %s %s x%s @ %s", t.Date, t.Operation, t.Ticker, t.Quantity, t.Price)
}
