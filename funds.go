package hsa

import (
	"iter"
	"maps"
	"slices"

	"github.com/samber/lo"
)

// Funds maps fund symbols to their transactions, in ledger order.
type Funds map[string][]Transaction

// SplitByFund groups txs by fund, preserving their relative order.
func SplitByFund(txs []Transaction) Funds {
	return lo.GroupBy(txs, func(tx Transaction) string { return tx.Fund })
}

// Names returns the fund symbols in lexicographic order.
func (f Funds) Names() []string { return slices.Sorted(maps.Keys(f)) }

// All iterates over funds in lexicographic order.
func (f Funds) All() iter.Seq2[string, []Transaction] {
	return func(yield func(string, []Transaction) bool) {
		for _, name := range f.Names() {
			if !yield(name, f[name]) {
				return
			}
		}
	}
}
