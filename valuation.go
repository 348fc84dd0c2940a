package carteira

import (
	"fmt"

	"github.com/juvenalculino/carteira/date"
)

// Quoter provides historical adjusted-close prices for an instrument.
//
// Implementations raise an error on unknown tickers and network failures; an
// empty series is also an error.
type Quoter interface {
	AdjustedCloses(ticker string, from, to date.Date) (*date.History[float64], error)
}

// DefaultLookbackYears is the lookback window of valuation and performance
// reports.
const DefaultLookbackYears = 5

// Engine turns a ledger snapshot plus a price source into valuation facts.
// It never mutates the ledger.
type Engine struct {
	Quoter        Quoter
	LookbackYears int // 0 means DefaultLookbackYears

	// SignedNetting subtracts SELL quantities from positions. Off by
	// default: the original report adds BUY and SELL quantities alike, and
	// that behavior is kept for compatibility.
	SignedNetting bool
}

// NewEngine returns an engine with the default lookback over the given quoter.
func NewEngine(q Quoter) *Engine {
	return &Engine{Quoter: q}
}

func (e *Engine) lookbackYears() int {
	if e.LookbackYears > 0 {
		return e.LookbackYears
	}
	return DefaultLookbackYears
}

func (e *Engine) lookbackStart(asOf date.Date) date.Date {
	return asOf.Add(-e.lookbackYears() * 365)
}

// PositionValuation is a ticker's aggregate quantity and market value on the
// valuation day. It is recomputed on every request, never persisted.
type PositionValuation struct {
	Ticker   string
	Date     date.Date // day the price refers to
	Quantity Quantity
	Price    Money
	Value    Money // Quantity x Price
	Err      error // non-nil: the price could not be fetched
}

// PriceUnavailable reports whether this position carries the sentinel instead
// of a price.
func (p PositionValuation) PriceUnavailable() bool { return p.Err != nil }

// Positions computes one valuation per distinct ticker, in order of first
// appearance in the ledger.
//
// The price is the last observation of the adjusted-close series over the
// lookback window ending at asOf. Any lookup failure is retried exactly once
// with a single-day window anchored at the day before asOf; when the retry
// fails too the position carries the error as a sentinel and the batch
// continues. One bad ticker never aborts the report.
func (e *Engine) Positions(ledger *Ledger, asOf date.Date) []PositionValuation {
	tickers := ledger.Tickers()
	positions := make([]PositionValuation, 0, len(tickers))

	for _, ticker := range tickers {
		quantity := ledger.TotalQuantity(ticker)
		if e.SignedNetting {
			quantity = ledger.NetQuantity(ticker)
		}

		pos := PositionValuation{Ticker: ticker, Date: asOf, Quantity: quantity}

		price, err := e.lastAdjustedClose(ticker, e.lookbackStart(asOf), asOf)
		if err != nil {
			// Retry with yesterday's single-day window, whatever the failure was.
			yesterday := asOf.Add(-1)
			price, err = e.lastAdjustedClose(ticker, yesterday, yesterday)
			pos.Date = yesterday
		}
		if err != nil {
			pos.Err = err
			positions = append(positions, pos)
			continue
		}

		pos.Price = BRL(price)
		pos.Value = pos.Price.Mul(quantity)
		positions = append(positions, pos)
	}
	return positions
}

// lastAdjustedClose fetches the adjusted-close series and returns its last
// observation.
func (e *Engine) lastAdjustedClose(ticker string, from, to date.Date) (float64, error) {
	hist, err := e.Quoter.AdjustedCloses(ticker, from, to)
	if err != nil {
		return 0, err
	}
	if hist == nil || hist.Len() == 0 {
		return 0, fmt.Errorf("no price data found for %s in [%s, %s]", ticker, from, to)
	}
	_, last := hist.Latest()
	return last, nil
}

// Summary holds the aggregate invested-vs-current totals of the portfolio.
type Summary struct {
	Date              date.Date
	TotalInvested     Money // net cash deployed: BUY rows minus SELL rows
	TotalCurrentValue Money // priced positions minus the same SELL adjustment
	// DailyReturn is TotalInvested - TotalCurrentValue. The sign convention
	// is inherited from the original report: a loss yields a positive
	// number, a gain a negative one.
	DailyReturn Money
}

// Summarize computes the aggregate totals for a ledger and its positions.
//
// TotalInvested uses the SELL-adjusted formula: the summed total value of BUY
// rows minus the summed total value of SELL rows (net cash deployed).
// Positions carrying the PriceUnavailable sentinel contribute zero to the
// current value.
func (e *Engine) Summarize(ledger *Ledger, positions []PositionValuation) Summary {
	sells := ledger.TotalValueSum(ByOperation(Sell))
	invested := ledger.TotalValueSum(ByOperation(Buy)).Sub(sells)

	current := BRL(0)
	for _, pos := range positions {
		if pos.PriceUnavailable() {
			continue
		}
		current = current.Add(pos.Value)
	}
	current = current.Sub(sells)

	return Summary{
		Date:              date.Today(),
		TotalInvested:     invested,
		TotalCurrentValue: current,
		DailyReturn:       invested.Sub(current),
	}
}
