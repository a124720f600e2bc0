package hsa

import (
	"fmt"
	"slices"
	"sort"
)

// Ledger represents the transactions of one or more statements.
//
// In a Ledger transactions are always in chronological order. Transactions
// of the same day keep the order of their statement.
type Ledger struct {
	statements   []*Statement
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Append adds statements to the ledger.
func (l *Ledger) Append(statements ...*Statement) {
	for _, s := range statements {
		l.statements = append(l.statements, s)
		l.transactions = append(l.transactions, s.Transactions...)
	}
	l.stableSort()
}

// AppendTransactions adds transactions that do not come from a statement.
func (l *Ledger) AppendTransactions(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	l.stableSort()
}

func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].Date.Before(l.transactions[j].Date)
	})
}

// Statements returns the statements in the order they were appended.
func (l *Ledger) Statements() []*Statement { return slices.Clone(l.statements) }

// Transactions returns a copy of all transactions in chronological order.
func (l *Ledger) Transactions() []Transaction { return cloneAll(l.transactions) }

// Len returns the number of transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// Funds returns the ledger transactions grouped by fund.
func (l *Ledger) Funds() Funds { return SplitByFund(l.transactions) }

// CapitalGains computes the realized gains of every sale in the ledger.
func (l *Ledger) CapitalGains() (*GainsReport, error) { return CapitalGains(l.transactions) }

// Dividends returns the dividend income per year.
func (l *Ledger) Dividends() []YearDividends { return DividendsByYear(l.transactions) }

// Range returns the smallest range covering all statements.
func (l *Ledger) Range() Range {
	var r Range
	for _, s := range l.statements {
		if r.IsZero() {
			r = s.Range
			continue
		}
		if s.Range.From.Before(r.From) {
			r.From = s.Range.From
		}
		if s.Range.To.After(r.To) {
			r.To = s.Range.To
		}
	}
	return r
}

// Coverage reports the days missing between consecutive statements, and the
// statements covering the same days twice. A gap may hide transactions and
// an overlap may count them twice.
func (l *Ledger) Coverage() []string {
	sorted := slices.Clone(l.statements)
	slices.SortStableFunc(sorted, func(a, b *Statement) int { return a.Range.From.Compare(b.Range.From) })

	var issues []string
	for i := 1; i < len(sorted); i++ {
		prev, next := sorted[i-1], sorted[i]
		switch {
		case next.Range.From.After(prev.Range.To.Add(1)):
			issues = append(issues, fmt.Sprintf("gap: no statement covers %s", NewRange(prev.Range.To.Add(1), next.Range.From.Add(-1))))
		case !next.Range.From.After(prev.Range.To):
			issues = append(issues, fmt.Sprintf("overlap: %s (%s) and %s (%s)", prev.Name, prev.Range, next.Name, next.Range))
		}
	}
	return issues
}
