package hsa

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// cmpOptions compares the value types of this package by value.
var cmpOptions = cmp.Options{
	cmp.Comparer(func(a, b Money) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b Quantity) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b Date) bool { return a == b }),
}

// buy is a helper for tests to create a buy of shares at price, amount is computed.
func buy(day, fund string, shares, price float64) Transaction {
	return NewBuy(MustParseDate(day), fund, Q(shares), USD(price), USD(price).Mul(Q(shares)))
}

// dividend is a helper for tests to create a reinvested dividend.
func dividend(day, fund string, shares, price float64) Transaction {
	return NewDividend(MustParseDate(day), fund, Q(shares), USD(price), USD(price).Mul(Q(shares)))
}

// sell is a helper for tests to create a sale of shares at price.
func sell(day, fund string, shares, price float64) Transaction {
	return NewSell(MustParseDate(day), fund, Q(shares), USD(price), USD(price).Mul(Q(shares)))
}

// assertMoney fails if got is not within the matching tolerance of want.
func assertMoney(t *testing.T, name string, got Money, want float64) {
	t.Helper()
	if !got.NearlyEqual(USD(want)) {
		t.Errorf("%s = %s, want %s", name, got.Decimal(), USD(want).Decimal())
	}
}

// assertShares fails if got is not within the matching tolerance of want.
func assertShares(t *testing.T, name string, got Quantity, want float64) {
	t.Helper()
	if !got.NearlyEqual(Q(want)) {
		t.Errorf("%s = %s, want %v", name, got, want)
	}
}
