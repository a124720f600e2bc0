package hsa

import "fmt"

// LotMatch is the part of a lot consumed by a sale.
type LotMatch struct {
	Lot      Transaction // Lot as it was before the sale consumed it.
	Shares   Quantity    // Shares taken from the lot.
	Cost     Money       // Cost basis of those shares.
	Proceeds Money       // Share of the sale proceeds.
	Term     Term
}

// Gain returns the realized gain of the match, negative for a loss.
func (m LotMatch) Gain() Money { return m.Proceeds.Sub(m.Cost) }

// SaleGains is the result of matching one sale against earlier lots.
type SaleGains struct {
	Sale      Transaction
	Matches   []LotMatch
	CostBasis Money // Cost basis of the shares sold.
	LongTerm  Money // Long term gain of this sale.
	ShortTerm Money // Short term gain of this sale.

	// Cumulated values over the fund, including this sale.
	RunningCostBasis Money
	RunningLongTerm  Money
	RunningShortTerm Money
}

// Shares returns the number of shares matched.
func (s SaleGains) Shares() Quantity {
	var q Quantity
	for _, m := range s.Matches {
		q = q.Add(m.Shares)
	}
	return q
}

// Gain returns the total gain of this sale.
func (s SaleGains) Gain() Money { return s.LongTerm.Add(s.ShortTerm) }

// matchSale consumes candidates, in order, until the sale is covered.
//
// Each consumed lot is depleted in place: its shares are reduced, with a
// balance within the tolerance clamped to zero, and its amount is kept. Cost
// is always the lot amount prorated over the lot's remaining shares.
// It returns a *LotMatchingInconsistencyError if the candidates do not cover
// the sale.
func matchSale(sale Transaction, candidates lots) (SaleGains, error) {
	if sale.Category != Sell {
		return SaleGains{}, fmt.Errorf("cannot match %s transaction on %s as a sale", sale.Category, sale.Date)
	}
	if !sale.Shares.IsNegative() {
		return SaleGains{}, fmt.Errorf("sale on %s has non negative shares %s", sale.Date, sale.Shares)
	}

	zero := USD(0)
	gains := SaleGains{Sale: sale, CostBasis: zero, LongTerm: zero, ShortTerm: zero}
	toMatch := sale.Shares.Abs()

	for _, lot := range candidates {
		if toMatch.IsZero() {
			break
		}
		if !lot.Category.IsLot() || !lot.Shares.IsPositive() {
			return SaleGains{}, fmt.Errorf("invalid lot for sale on %s: %v", sale.Date, *lot)
		}

		shares := lot.Shares.Min(toMatch)
		m := LotMatch{
			Lot:      *lot,
			Shares:   shares,
			Cost:     lot.Amount.Mul(shares).Div(lot.Shares),
			Proceeds: sale.Amount.Mul(shares).Div(sale.Shares),
			Term:     HoldingTerm(lot.Date, sale.Date),
		}

		lot.Shares = lot.Shares.reduce(shares)
		toMatch = toMatch.reduce(shares)

		gains.Matches = append(gains.Matches, m)
		gains.CostBasis = gains.CostBasis.Add(m.Cost)
		switch m.Term {
		case LongTerm:
			gains.LongTerm = gains.LongTerm.Add(m.Gain())
		default:
			gains.ShortTerm = gains.ShortTerm.Add(m.Gain())
		}
	}

	matched := gains.Shares()
	accounted := gains.CostBasis.Add(gains.Gain())
	if !matched.NearlyEqual(sale.Shares.Abs()) || !accounted.NearlyEqual(sale.Amount.Abs()) {
		return SaleGains{}, &LotMatchingInconsistencyError{Sale: sale, Matched: matched, Accounted: accounted}
	}
	return gains, nil
}
