package carteira

import (
	"fmt"

	"github.com/juvenalculino/carteira/date"
)

// TickerSeries is one ticker's normalized adjusted-close series: every
// observation divided by the first one, so the series starts at exactly 1.0.
type TickerSeries struct {
	Ticker string
	Series *date.History[float64]
	Err    error // non-nil: the series could not be fetched
}

// PerformanceReport compares tickers over a common lookback window.
type PerformanceReport struct {
	Range  date.Range
	Series []TickerSeries
}

// Performance fetches the adjusted-close series of every distinct ticker over
// the lookback window ending at asOf and normalizes each to 1.0 at its first
// observation. A failing ticker carries its error and does not abort the
// report.
func (e *Engine) Performance(ledger *Ledger, asOf date.Date) *PerformanceReport {
	window := date.NewRange(e.lookbackStart(asOf), asOf)
	report := &PerformanceReport{Range: window}

	for _, ticker := range ledger.Tickers() {
		ts := TickerSeries{Ticker: ticker}
		hist, err := e.Quoter.AdjustedCloses(ticker, window.From, window.To)
		switch {
		case err != nil:
			ts.Err = err
		case hist == nil || hist.Len() == 0:
			ts.Err = fmt.Errorf("no price data found for %s in [%s, %s]", ticker, window.From, window.To)
		default:
			ts.Series = normalize(hist)
		}
		report.Series = append(report.Series, ts)
	}
	return report
}

// normalize divides every observation by the first one.
func normalize(hist *date.History[float64]) *date.History[float64] {
	_, first := hist.First()
	norm := &date.History[float64]{}
	for on, v := range hist.Values() {
		norm.Append(on, v/first)
	}
	return norm
}
