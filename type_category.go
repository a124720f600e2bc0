package hsa

import (
	"encoding/json"
	"fmt"
)

// Category is the kind of a statement transaction.
type Category int

const (
	// Buy is a purchase of shares, funded by a contribution.
	Buy Category = iota + 1
	// Sell is a redemption of shares. Shares and amount are negative.
	Sell
	// Dividend is a reinvested distribution: it buys shares like Buy does.
	Dividend
)

func (c Category) String() string {
	switch c {
	case Buy:
		return "Buy"
	case Sell:
		return "Sell"
	case Dividend:
		return "Dividend"
	default:
		return "unknown"
	}
}

// ParseCategory parses the category column of a statement.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "Buy":
		return Buy, nil
	case "Sell":
		return Sell, nil
	case "Dividend":
		return Dividend, nil
	default:
		return 0, fmt.Errorf("unknown transaction category: %q", s)
	}
}

// IsLot reports whether transactions of this category acquire shares that a
// later sale can consume.
func (c Category) IsLot() bool { return c == Buy || c == Dividend }

func (c Category) MarshalJSON() ([]byte, error) { return json.Marshal(c.String()) }

func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseCategory(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}
