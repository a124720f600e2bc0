package hsa

import (
	"strings"
	"testing"
)

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name string
		tx   Transaction
		want string
	}{
		{"valid buy", buy("2024-01-02", "VFIAX", 1, 10), ""},
		{"valid sell", sell("2024-01-02", "VFIAX", 1, 10), ""},
		{"valid dividend", dividend("2024-01-02", "VFIAX", 0.1, 10), ""},
		{"missing fund", buy("2024-01-02", "", 1, 10), "fund is missing"},
		{"missing date", Transaction{Fund: "VFIAX", Category: Buy, Shares: Q(1)}, "date is missing"},
		{"negative price", buy("2024-01-02", "VFIAX", 1, -10), "negative"},
		{"sell with positive shares", Transaction{Date: NewDate(2024, 1, 2), Fund: "VFIAX", Category: Sell, Shares: Q(1), Amount: USD(-1)}, "must be negative"},
		{"sell with positive amount", Transaction{Date: NewDate(2024, 1, 2), Fund: "VFIAX", Category: Sell, Shares: Q(-1), Amount: USD(1)}, "must be negative"},
		{"buy with negative shares", Transaction{Date: NewDate(2024, 1, 2), Fund: "VFIAX", Category: Buy, Shares: Q(-1)}, "must be positive"},
		{"unknown category", Transaction{Date: NewDate(2024, 1, 2), Fund: "VFIAX"}, "unknown category"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tx.Validate()
			if tt.want == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() error = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestTransaction_String(t *testing.T) {
	tx := sell("2024-03-05", "VFIAX", 2, 410.12)
	want := "2024-03-05  VFIAX   -2.000 @ $410.12 = ($820.24)"
	if got := tx.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range []Category{Buy, Sell, Dividend} {
		got, err := ParseCategory(c.String())
		if err != nil || got != c {
			t.Errorf("ParseCategory(%q) = %v, %v, want %v", c.String(), got, err, c)
		}
	}
	if _, err := ParseCategory("buy"); err == nil {
		t.Error(`ParseCategory("buy") error = nil, want an error`)
	}
}
