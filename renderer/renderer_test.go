package renderer

import (
	"errors"
	"strings"
	"testing"

	"github.com/juvenalculino/carteira"
	"github.com/juvenalculino/carteira/date"
)

func TestTransactions(t *testing.T) {
	ledger := carteira.NewLedger()
	ledger.Append(carteira.NewTransaction(date.MustParse("2025-01-10"), carteira.Buy, "vale3", carteira.ClassEquity, carteira.Q(10), carteira.BRL(60)))

	got := Transactions(ledger)
	for _, want := range []string{"| 0 |", "10-01-2025", "COMPRA", "VALE3.SA"} {
		if !strings.Contains(got, want) {
			t.Errorf("output is missing %q:\n%s", want, got)
		}
	}
}

func TestTransactions_Empty(t *testing.T) {
	got := Transactions(carteira.NewLedger())
	if !strings.Contains(got, "Nenhuma transação registrada.") {
		t.Errorf("empty ledger should say so:\n%s", got)
	}
}

func TestHolding_UnavailablePrice(t *testing.T) {
	positions := []carteira.PositionValuation{
		{Ticker: "VALE3.SA", Date: date.MustParse("2025-06-30"), Quantity: carteira.Q(10), Price: carteira.BRL(60), Value: carteira.BRL(600)},
		{Ticker: "BROKEN.SA", Date: date.MustParse("2025-06-30"), Quantity: carteira.Q(5), Err: errors.New("no data")},
	}
	summary := carteira.Summary{
		Date:              date.MustParse("2025-06-30"),
		TotalInvested:     carteira.BRL(600),
		TotalCurrentValue: carteira.BRL(600),
	}

	got := Holding(positions, summary)
	if !strings.Contains(got, "indisponível") {
		t.Errorf("a failed ticker should render as unavailable:\n%s", got)
	}
	if !strings.Contains(got, "30-06-2025") {
		t.Errorf("dates should be day first:\n%s", got)
	}
	if !strings.Contains(got, "## Composição") {
		t.Errorf("composition section missing:\n%s", got)
	}
	// 10 of 15 shares.
	if !strings.Contains(got, "66.7%") {
		t.Errorf("composition share missing:\n%s", got)
	}
}

func TestDailyReturn_AlwaysPrintsMinus(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{20, "R$-20.00"},
		{-20, "R$--20.00"},
		{0, "R$-0.00"},
	}
	for _, tc := range tests {
		if got := DailyReturn(carteira.BRL(tc.amount)); got != tc.want {
			t.Errorf("DailyReturn(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestPerformance(t *testing.T) {
	series := new(date.History[float64]).
		Append(date.MustParse("2025-01-02"), 1).
		Append(date.MustParse("2025-01-03"), 1.05)

	report := &carteira.PerformanceReport{
		Range: date.NewRange(date.MustParse("2025-01-01"), date.MustParse("2025-01-31")),
		Series: []carteira.TickerSeries{
			{Ticker: "VALE3.SA", Series: series},
			{Ticker: "BROKEN.SA", Err: errors.New("no data")},
		},
	}

	got := Performance(report)
	for _, want := range []string{"01-01-2025", "31-01-2025", "VALE3.SA", "1.0500", "Sem histórico para BROKEN.SA."} {
		if !strings.Contains(got, want) {
			t.Errorf("output is missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "| BROKEN.SA |") {
		t.Errorf("failed tickers must not get a column:\n%s", got)
	}
}
