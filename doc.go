// Package hsa computes the realized capital gains and the dividend income of
// a Health Savings Account invested in mutual funds.
//
// The input is the "All Investment Transactions" report exported by the HSA
// custodian as an HTML table. Statements are decoded into a chronological
// Ledger of Transaction values (buys, sells and reinvested dividends).
//
// Gains are computed per fund with a specific lot method rather than FIFO.
// For every sale, the earlier lots still holding shares are consumed in this
// order:
//   - lots bought above the sale price (losses), most expensive first;
//   - lots held for more than a year, most expensive first;
//   - the remaining lots, most expensive first.
//
// Each sale reports its cost basis and its long and short term gains. A sale
// that earlier lots cannot cover is reported as a
// LotMatchingInconsistencyError instead of producing wrong totals.
//
// This package serves as the foundational logic for the `hsa` command-line
// tool.
package hsa
