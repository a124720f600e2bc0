package hsa

import "fmt"

// Term is the holding period classification of a realized gain.
type Term int

const (
	ShortTerm Term = iota
	LongTerm
)

func (t Term) String() string {
	switch t {
	case ShortTerm:
		return "short"
	case LongTerm:
		return "long"
	default:
		return "unknown"
	}
}

func (t Term) MarshalJSON() ([]byte, error) { return []byte(fmt.Sprintf("%q", t.String())), nil }

// HoldingTerm returns the classification of shares bought on buy and sold on sell.
func HoldingTerm(buy, sell Date) Term {
	if IsLongTerm(buy, sell) {
		return LongTerm
	}
	return ShortTerm
}

// IsLongTerm reports whether shares bought on buy and sold on sell were held
// for more than one year.
//
// Selling on the anniversary of the purchase is still short term. When the
// sale happens on February 29, one more day is required. A sale before the
// purchase is short term.
func IsLongTerm(buy, sell Date) bool {
	if sell.Before(buy) {
		return false
	}

	years, months, days := Between(buy, sell)
	if years < 1 {
		return false
	}
	if years > 1 {
		return true
	}

	minDays := 1
	if sell.IsLeapDay() {
		minDays = 2
	}
	return months > 0 || days >= minDays
}
