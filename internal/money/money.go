package money

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when a string cannot be parsed as a decimal amount.
var ErrInvalidAmount = errors.New("invalid amount")

// Money is a currency value with exactly two decimal places of precision.
// It wraps an exact decimal so that arithmetic never goes through binary
// floating point. The zero value is 0.00.
type Money struct {
	dec decimal.Decimal
}

// Zero returns 0.00.
func Zero() Money {
	return Money{}
}

// FromDecimal builds a Money from an exact decimal, rounding half-up to two places.
func FromDecimal(d decimal.Decimal) Money {
	return Money{dec: d.Round(2)}
}

// Parse parses a decimal string such as "150.00" or "10".
// Values with more than two decimal places are rounded half-up.
func Parse(s string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return FromDecimal(d), nil
}

// Add returns m + o.
func (m Money) Add(o Money) Money {
	return Money{dec: m.dec.Add(o.dec)}
}

// Sub returns m - o.
func (m Money) Sub(o Money) Money {
	return Money{dec: m.dec.Sub(o.dec)}
}

// MulQuantity returns m multiplied by an integer quantity.
// The multiplication is exact; the result is rounded half-up to two places.
func (m Money) MulQuantity(q int) Money {
	return FromDecimal(m.dec.Mul(decimal.NewFromInt(int64(q))))
}

// Cmp compares m and o: -1 if m < o, 0 if equal, +1 if m > o.
func (m Money) Cmp(o Money) int {
	return m.dec.Cmp(o.dec)
}

// Equal reports whether m and o represent the same amount.
func (m Money) Equal(o Money) bool {
	return m.dec.Equal(o.dec)
}

// IsNegative reports whether m < 0.
func (m Money) IsNegative() bool {
	return m.dec.IsNegative()
}

// String formats the amount with exactly two decimal places.
func (m Money) String() string {
	return m.dec.StringFixed(2)
}

// MarshalJSON renders the amount as a bare JSON number with two decimal places,
// e.g. 300.00. This keeps the wire format numeric while preserving scale.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.dec.StringFixed(2)), nil
}

// UnmarshalJSON accepts both quoted and unquoted decimal values.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		*m = Money{}
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Scan implements sql.Scanner for NUMERIC columns.
func (m *Money) Scan(value any) error {
	var d decimal.Decimal
	if err := d.Scan(value); err != nil {
		return err
	}
	*m = FromDecimal(d)
	return nil
}

// Value implements driver.Valuer.
func (m Money) Value() (driver.Value, error) {
	return m.dec.StringFixed(2), nil
}
