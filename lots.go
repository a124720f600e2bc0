package hsa

import "slices"

// PriceOrder is the direction used to order lots by price.
type PriceOrder int

const (
	Ascending PriceOrder = iota
	Descending
)

// byPrice returns the comparison function ordering transactions by price in
// the given direction.
func byPrice(order PriceOrder) func(a, b *Transaction) int {
	return func(a, b *Transaction) int {
		c := a.Price.Decimal().Cmp(b.Price.Decimal())
		if order == Descending {
			return -c
		}
		return c
	}
}

// lots is a working set of acquisitions, pointing into a fund's cloned
// transactions so that consuming a lot depletes the clone.
type lots []*Transaction

// sortByPrice sorts l in place. Lots with the same price keep their ledger order.
func (l lots) sortByPrice(order PriceOrder) { slices.SortStableFunc(l, byPrice(order)) }

// openLots returns the lots that the sale at sellIndex can consume: buys and
// dividends strictly before the sale date that still have shares.
func openLots(txs []Transaction, sellIndex int) lots {
	sell := txs[sellIndex]
	var open lots
	for i := range txs {
		buy := &txs[i]
		if !buy.Category.IsLot() {
			continue
		}
		if !buy.Date.Before(sell.Date) {
			continue
		}
		if !buy.Shares.IsPositive() {
			continue
		}
		open = append(open, buy)
	}
	return open
}

// lossLots returns the open lots bought above the sale price, most expensive first.
func lossLots(txs []Transaction, sellIndex int) lots {
	sell := txs[sellIndex]
	var losses lots
	for _, buy := range openLots(txs, sellIndex) {
		if buy.Price.GreaterThan(sell.Price) {
			losses = append(losses, buy)
		}
	}
	losses.sortByPrice(Descending)
	return losses
}

// gainLots returns the open lots bought at or below the sale price: long term
// lots first, then short term lots, each most expensive first.
func gainLots(txs []Transaction, sellIndex int) lots {
	sell := txs[sellIndex]
	var longTerm, shortTerm lots
	for _, buy := range openLots(txs, sellIndex) {
		if buy.Price.GreaterThan(sell.Price) {
			continue
		}
		if IsLongTerm(buy.Date, sell.Date) {
			longTerm = append(longTerm, buy)
		} else {
			shortTerm = append(shortTerm, buy)
		}
	}
	longTerm.sortByPrice(Descending)
	shortTerm.sortByPrice(Descending)
	return append(longTerm, shortTerm...)
}

// selectLots returns the lots in the order the sale at sellIndex consumes
// them: losses first, then long term gains, then short term gains.
func selectLots(txs []Transaction, sellIndex int) lots {
	return append(lossLots(txs, sellIndex), gainLots(txs, sellIndex)...)
}
