package hsa

import "github.com/shopspring/decimal"

// epsilon is the tolerance below which share counts and money amounts are
// considered equal, and below which a remaining balance is clamped to zero.
var epsilon = decimal.New(1, -4)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// nearlyEqual reports whether a and b are within epsilon.
func nearlyEqual(a, b decimal.Decimal) bool { return a.Sub(b).Abs().LessThan(epsilon) }

// Quantity is a signed number of shares.
type Quantity struct {
	value decimal.Decimal
}

// Q returns the quantity for value.
func Q[T float64 | int | int64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

func (t Quantity) Equal(p Quantity) bool           { return t.value.Equal(p.value) }
func (t Quantity) LessThan(quantity Quantity) bool { return t.value.LessThan(quantity.value) }
func (t Quantity) Add(p Quantity) Quantity         { return Quantity{value: t.value.Add(p.value)} }
func (t Quantity) Sub(p Quantity) Quantity         { return Quantity{value: t.value.Sub(p.value)} }
func (t Quantity) IsNegative() bool                { return t.value.IsNegative() }
func (t Quantity) IsPositive() bool                { return t.value.IsPositive() }
func (t Quantity) IsZero() bool                    { return t.value.IsZero() }
func (t Quantity) Abs() Quantity                   { return Quantity{value: t.value.Abs()} }
func (t Quantity) Neg() Quantity                   { return Quantity{value: t.value.Neg()} }
func (q Quantity) String() string                  { return q.value.String() }

// NearlyEqual reports whether t and p differ by less than the matching tolerance.
func (t Quantity) NearlyEqual(p Quantity) bool { return nearlyEqual(t.value, p.value) }

// Min returns the smallest of t and p.
func (t Quantity) Min(p Quantity) Quantity {
	if p.LessThan(t) {
		return p
	}
	return t
}

// reduce returns t minus p, clamped to exactly zero when the remainder is
// within the matching tolerance.
func (t Quantity) reduce(p Quantity) Quantity {
	r := t.Sub(p)
	if r.value.Abs().LessThan(epsilon) {
		return Quantity{}
	}
	return r
}

// Format returns the quantity with a fixed number of decimals.
func (t Quantity) Format(places int32) string { return t.value.StringFixed(places) }

// MarshalJSON implements the json.Marshaler interface.
func (t Quantity) MarshalJSON() ([]byte, error) {
	return t.value.MarshalJSON()
}
func (t *Quantity) UnmarshalJSON(decimalBytes []byte) error {
	return t.value.UnmarshalJSON(decimalBytes)
}
