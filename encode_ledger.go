package carteira

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/juvenalculino/carteira/date"
)

// ledgerHeader is the column layout of the ledger file. The labels are kept
// verbatim from the original register for file-level compatibility.
var ledgerHeader = []string{"Data", "Operacao", "Ticker", "Classe", "Quantidade", "Preco", "Valor Total"}

// encodeRecord turns a transaction into one CSV record.
func encodeRecord(tx Transaction) []string {
	return []string{
		tx.Date.String(),
		string(tx.Operation),
		tx.Ticker,
		tx.AssetClass,
		tx.Quantity.String(),
		tx.Price.Amount().String(),
		tx.TotalValue.Amount().String(),
	}
}

// decodeRecord parses one CSV record into a transaction.
//
// The persisted total value is read back verbatim, it is not re-derived from
// quantity and price.
func decodeRecord(record []string) (Transaction, error) {
	if len(record) != len(ledgerHeader) {
		return Transaction{}, fmt.Errorf("want %d columns, got %d", len(ledgerHeader), len(record))
	}
	day, err := date.Parse(record[0])
	if err != nil {
		return Transaction{}, err
	}
	op, err := ParseOperation(record[1])
	if err != nil {
		return Transaction{}, err
	}
	quantity, err := ParseQuantity(record[4])
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid quantity %q: %w", record[4], err)
	}
	price, err := ParseMoney(record[5], DefaultCurrency)
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid price %q: %w", record[5], err)
	}
	total, err := ParseMoney(record[6], DefaultCurrency)
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid total value %q: %w", record[6], err)
	}
	return Transaction{
		Date:       day,
		Operation:  op,
		Ticker:     record[2],
		AssetClass: record[3],
		Quantity:   quantity,
		Price:      price,
		TotalValue: total,
	}, nil
}

// DecodeLedger reads a CSV stream, header line included, and returns the
// ledger in insertion order. A malformed row is an error for the caller, not
// a silent skip.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // column count is checked per record for a better message

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not read ledger: %w", err)
	}

	ledger := NewLedger()
	if len(rows) == 0 {
		return ledger, nil
	}
	for i, row := range rows[1:] {
		tx, err := decodeRecord(row)
		if err != nil {
			return nil, fmt.Errorf("ledger row %d: %w", i, err)
		}
		ledger.Append(tx)
	}
	return ledger, nil
}

// EncodeTransaction marshals a single transaction into one CSV record,
// terminated by a newline. The record is returned as a single byte slice so a
// caller can append it to the ledger file in one write.
func EncodeTransaction(tx Transaction) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(encodeRecord(tx)); err != nil {
		return nil, fmt.Errorf("could not encode transaction: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeLedger writes the full ledger, header first, preserving insertion order.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ledgerHeader); err != nil {
		return err
	}
	for _, tx := range ledger.transactions {
		if err := cw.Write(encodeRecord(tx)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
