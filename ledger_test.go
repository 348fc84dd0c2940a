package carteira

import (
	"errors"
	"reflect"
	"testing"
)

func TestLedger_TickersFirstSeenOrder(t *testing.T) {
	ledger := ledgerOf(
		buy("2025-01-10", "VALE3", 10, 60),
		buy("2025-01-11", "PETR4", 5, 35),
		sell("2025-01-12", "VALE3", 4, 62),
		buy("2025-01-13", "MXRF11", 100, 10),
		buy("2025-01-14", "PETR4", 5, 36),
	)

	got := ledger.Tickers()
	want := []string{"VALE3.SA", "PETR4.SA", "MXRF11.SA"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tickers() = %v, want %v", got, want)
	}
}

func TestLedger_TotalQuantityIsNotNetted(t *testing.T) {
	// BUY and SELL are both added: a fully sold ticker still reports its
	// full historical quantity.
	ledger := ledgerOf(
		buy("2025-01-10", "VALE3", 10, 60),
		sell("2025-02-01", "VALE3", 10, 65),
		buy("2025-03-01", "VALE3", 3, 58),
	)

	if got, want := ledger.TotalQuantity("VALE3.SA"), Q(23); !got.Equal(want) {
		t.Errorf("TotalQuantity() = %s, want %s", got, want)
	}
	if got, want := ledger.NetQuantity("VALE3.SA"), Q(3); !got.Equal(want) {
		t.Errorf("NetQuantity() = %s, want %s", got, want)
	}
}

func TestLedger_RemoveAt(t *testing.T) {
	a := buy("2025-01-10", "VALE3", 10, 60)
	b := buy("2025-01-11", "PETR4", 5, 35)
	c := buy("2025-01-12", "MXRF11", 100, 10)

	testCases := []struct {
		name    string
		index   int
		wantErr bool
		want    []Transaction
	}{
		{name: "first", index: 0, want: []Transaction{b, c}},
		{name: "middle", index: 1, want: []Transaction{a, c}},
		{name: "last", index: 2, want: []Transaction{a, b}},
		{name: "negative", index: -1, wantErr: true, want: []Transaction{a, b, c}},
		{name: "out of range", index: 3, wantErr: true, want: []Transaction{a, b, c}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ledger := ledgerOf(a, b, c)
			err := ledger.RemoveAt(tc.index)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidIndex) {
					t.Fatalf("RemoveAt(%d) error = %v, want ErrInvalidIndex", tc.index, err)
				}
			} else if err != nil {
				t.Fatalf("RemoveAt(%d) unexpected error: %v", tc.index, err)
			}

			var got []Transaction
			for _, tx := range ledger.Transactions() {
				got = append(got, tx)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("after RemoveAt(%d) ledger = %v, want %v", tc.index, got, tc.want)
			}
		})
	}
}

func TestLedger_TotalValueSum(t *testing.T) {
	ledger := ledgerOf(
		buy("2025-01-10", "VALE3", 10, 5),  // total 50
		sell("2025-02-01", "VALE3", 10, 5), // total 50
		buy("2025-03-01", "PETR4", 2, 30),  // total 60
	)

	if got, want := ledger.TotalValueSum(nil), BRL(160); !got.Equal(want) {
		t.Errorf("TotalValueSum(nil) = %s, want %s", got, want)
	}
	if got, want := ledger.TotalValueSum(ByOperation(Sell)), BRL(50); !got.Equal(want) {
		t.Errorf("TotalValueSum(sells) = %s, want %s", got, want)
	}
}

func TestNormalizeTicker(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"vale3", "VALE3.SA"},
		{" petr4 ", "PETR4.SA"},
		{"AAPL.US", "AAPL.US"}, // already qualified, kept as is
		{"", ""},
	}
	for _, tc := range testCases {
		if got := NormalizeTicker(tc.in, DefaultMarketSuffix); got != tc.want {
			t.Errorf("NormalizeTicker(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTransaction_Validate(t *testing.T) {
	valid := buy("2025-01-10", "VALE3", 1, 10)
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() on valid transaction: %v", err)
	}

	zeroQty := valid
	zeroQty.Quantity = Q(0)
	if err := zeroQty.Validate(); err == nil {
		t.Error("Validate() accepted a zero quantity")
	}

	negPrice := buy("2025-01-10", "VALE3", 1, 10)
	negPrice.Price = BRL(-1)
	if err := negPrice.Validate(); err == nil {
		t.Error("Validate() accepted a negative price")
	}

	noTicker := valid
	noTicker.Ticker = ""
	if err := noTicker.Validate(); err == nil {
		t.Error("Validate() accepted an empty ticker")
	}

	drifted := valid
	drifted.TotalValue = BRL(999)
	if err := drifted.Validate(); err == nil {
		t.Error("Validate() accepted a total value out of sync with quantity x price")
	}
}
