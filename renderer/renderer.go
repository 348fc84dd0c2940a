// Package renderer turns ledgers, valuations and performance reports into
// markdown suitable for terminal rendering.
package renderer

import (
	"fmt"
	"strings"

	"github.com/juvenalculino/carteira"
)

const priceUnavailable = "indisponível"

// Transactions renders the full ledger as a markdown table, one row per
// transaction, with the zero-based index used by the rm command.
func Transactions(ledger *carteira.Ledger) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Transações\n\n")
	if ledger.Len() == 0 {
		fmt.Fprintln(&b, "Nenhuma transação registrada.")
		return b.String()
	}
	fmt.Fprintln(&b, "| # | Data | Operação | Ticker | Classe | Quantidade | Preço | Valor Total |")
	fmt.Fprintln(&b, "|--:|:---|:---|:---|:---|--:|--:|--:|")
	for i, tx := range ledger.Transactions() {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s | %s | %s |\n",
			i,
			tx.Date.Display(),
			tx.Operation,
			tx.Ticker,
			tx.AssetClass,
			tx.Quantity,
			tx.Price,
			tx.TotalValue,
		)
	}
	return b.String()
}

// Holding renders the current position of every ticker, the portfolio
// composition by quantity, and the summary metrics.
func Holding(positions []carteira.PositionValuation, summary carteira.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Carteira em %s\n\n", summary.Date.Display())

	fmt.Fprintln(&b, "## Posições")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "| Ticker | Data | Quantidade | Preço Atual | Valor Atual |")
	fmt.Fprintln(&b, "|:---|:---|--:|--:|--:|")
	for _, pos := range positions {
		if pos.PriceUnavailable() {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
				pos.Ticker, pos.Date.Display(), pos.Quantity, priceUnavailable, priceUnavailable)
			continue
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			pos.Ticker, pos.Date.Display(), pos.Quantity, pos.Price, pos.Value)
	}
	fmt.Fprintln(&b)

	composition(&b, positions)

	fmt.Fprintln(&b, "## Resumo")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "| Métrica | Valor |")
	fmt.Fprintln(&b, "|:---|--:|")
	fmt.Fprintf(&b, "| Total investido | %s |\n", summary.TotalInvested)
	fmt.Fprintf(&b, "| Valor atual | %s |\n", summary.TotalCurrentValue)
	fmt.Fprintf(&b, "| Rendimento | %s |\n", DailyReturn(summary.DailyReturn))
	return b.String()
}

// composition writes the share of each ticker in the portfolio, by quantity.
func composition(b *strings.Builder, positions []carteira.PositionValuation) {
	total := carteira.Q(0)
	for _, pos := range positions {
		total = total.Add(pos.Quantity)
	}
	if total.IsZero() {
		return
	}
	fmt.Fprintln(b, "## Composição")
	fmt.Fprintln(b)
	fmt.Fprintln(b, "| Ticker | Quantidade | Participação |")
	fmt.Fprintln(b, "|:---|--:|--:|")
	for _, pos := range positions {
		share := pos.Quantity.Div(total).Mul(carteira.Q(100))
		fmt.Fprintf(b, "| %s | %s | %s%% |\n", pos.Ticker, pos.Quantity, share.StringFixed(1))
	}
	fmt.Fprintln(b)
}

// DailyReturn formats the summary's return figure. The minus sign is always
// printed, whatever the sign of the amount, matching the historical display.
func DailyReturn(m carteira.Money) string {
	return "R$-" + m.Amount().StringFixed(2)
}

// Performance renders the normalized price series of every ticker, one
// column per ticker, one row per observed day.
func Performance(report *carteira.PerformanceReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Rentabilidade de %s a %s\n\n", report.Range.From.Display(), report.Range.To.Display())

	var ok []carteira.TickerSeries
	for _, s := range report.Series {
		if s.Err != nil {
			fmt.Fprintf(&b, "Sem histórico para %s.\n\n", s.Ticker)
			continue
		}
		ok = append(ok, s)
	}
	if len(ok) == 0 {
		return b.String()
	}

	fmt.Fprint(&b, "| Data |")
	for _, s := range ok {
		fmt.Fprintf(&b, " %s |", s.Ticker)
	}
	fmt.Fprintln(&b)
	fmt.Fprint(&b, "|:---|")
	for range ok {
		fmt.Fprint(&b, "--:|")
	}
	fmt.Fprintln(&b)

	for _, day := range mergedDays(ok) {
		fmt.Fprintf(&b, "| %s |", day.Display())
		for _, s := range ok {
			if v, found := s.Series.Get(day); found {
				fmt.Fprintf(&b, " %.4f |", v)
			} else {
				fmt.Fprint(&b, " |")
			}
		}
		fmt.Fprintln(&b)
	}
	return b.String()
}
