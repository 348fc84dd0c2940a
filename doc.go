// Package carteira provides the core logic of a personal investment
// tracker for the Brazilian market.
//
// Transactions are recorded in a plain CSV ledger that can be edited by
// hand, and a stateless valuation engine turns that ledger into position
// values, a daily summary and normalized performance series, using
// adjusted close prices from a pluggable quote provider.
//
// The package is the foundation of the dashboard command-line tool.
package carteira
