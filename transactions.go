package hsa

import (
	"errors"
	"fmt"
)

// Transaction is one row of a brokerage statement.
//
// Transactions are values: the matching engine works on clones, so a
// Transaction held by a Ledger is never modified after ingestion.
type Transaction struct {
	Date        Date
	Fund        string   // Fund symbol, the grouping key.
	Category    Category // Buy, Sell or Dividend.
	Description string
	Price       Money    // Price per share, never negative.
	Amount      Money    // Total value of the transaction, negative for sells.
	Shares      Quantity // Shares acquired, negative for sells.
	TotalShares Quantity // Account share balance reported by the statement.
	TotalValue  Money    // Account value reported by the statement.
}

// NewBuy creates a Buy of shares at price for amount.
func NewBuy(day Date, fund string, shares Quantity, price, amount Money) Transaction {
	return Transaction{Date: day, Fund: fund, Category: Buy, Price: price, Amount: amount, Shares: shares}
}

// NewDividend creates a reinvested Dividend of shares at price for amount.
func NewDividend(day Date, fund string, shares Quantity, price, amount Money) Transaction {
	return Transaction{Date: day, Fund: fund, Category: Dividend, Price: price, Amount: amount, Shares: shares}
}

// NewSell creates a Sell of shares at price for amount. Shares and amount are
// given as positive values and stored negated, the way statements report them.
func NewSell(day Date, fund string, shares Quantity, price, amount Money) Transaction {
	return Transaction{Date: day, Fund: fund, Category: Sell, Price: price, Amount: amount.Abs().Neg(), Shares: shares.Abs().Neg()}
}

// Validate checks the sign conventions of the transaction.
func (t Transaction) Validate() error {
	var errs error
	if t.Date.IsZero() {
		errs = errors.Join(errs, errors.New("date is missing"))
	}
	if t.Fund == "" {
		errs = errors.Join(errs, errors.New("fund is missing"))
	}
	if t.Price.IsNegative() {
		errs = errors.Join(errs, fmt.Errorf("price %s is negative", t.Price))
	}
	switch t.Category {
	case Sell:
		if !t.Shares.IsNegative() {
			errs = errors.Join(errs, fmt.Errorf("sell shares %s must be negative", t.Shares))
		}
		if !t.Amount.IsNegative() {
			errs = errors.Join(errs, fmt.Errorf("sell amount %s must be negative", t.Amount))
		}
	case Buy, Dividend:
		if !t.Shares.IsPositive() {
			errs = errors.Join(errs, fmt.Errorf("%s shares %s must be positive", t.Category, t.Shares))
		}
	default:
		errs = errors.Join(errs, fmt.Errorf("unknown category %d", t.Category))
	}
	if errs != nil {
		return fmt.Errorf("invalid %s transaction on %v: %w", t.Category, t.Date, errs)
	}
	return nil
}

// String formats the transaction as a single log line:
//
//	2024-03-05  VFIAX   -2.000 @ $410.12 = ($820.24)
func (t Transaction) String() string {
	return fmt.Sprintf("%s  %5s  %7s @ %s = %s", t.Date, t.Fund, t.Shares.Format(3), t.Price, t.Amount.Accounting())
}

// MarshalJSON writes the transaction with a stable field order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w orderedJSON
	w.Field("date", t.Date)
	w.Field("fund", t.Fund)
	w.Field("category", t.Category)
	w.OmitZero("description", t.Description)
	w.Field("price", t.Price)
	w.Field("amount", t.Amount)
	w.Field("shares", t.Shares)
	w.Field("totalShares", t.TotalShares)
	w.Field("totalValue", t.TotalValue)
	return w.MarshalJSON()
}

// cloneAll returns a copy of txs that can be mutated freely.
//
// Transaction only holds values, so copying the slice copies every record.
func cloneAll(txs []Transaction) []Transaction {
	dst := make([]Transaction, len(txs))
	copy(dst, txs)
	return dst
}
