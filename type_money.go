package teller

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value, used to display balances and fees.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M creates Money from a major unit value.
func M[T int | int64 | decimal.Decimal](value T, currency string) Money {
	var d decimal.Decimal
	switch v := any(value).(type) {
	case int:
		d = decimal.NewFromInt(int64(v))
	case int64:
		d = decimal.NewFromInt(v)
	case decimal.Decimal:
		d = v
	}
	return Money{value: d, cur: currency}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value, using the currency grapheme
// and separators.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() string      { return m.cur }
func (m Money) Equal(n Money) bool    { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool          { return m.value.IsZero() }
func (m Money) IntPart() int64        { return m.value.IntPart() }
func (m Money) Add(n Money) Money     { return Money{value: m.value.Add(n.value), cur: m.cur} }
func (m Money) Sub(n Money) Money     { return Money{value: m.value.Sub(n.value), cur: m.cur} }
func (m Money) LessThan(n Money) bool { return m.value.LessThan(n.value) }

// ParseAmount parses a whole, non-negative amount of currency units such as "10000".
// Fractional or negative values are rejected with ErrInvalidParameter.
func ParseAmount(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: amount %q: %v", ErrInvalidParameter, s, err)
	}
	if !d.IsInteger() {
		return 0, fmt.Errorf("%w: amount %q must be a whole number", ErrInvalidParameter, s)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: amount %q must not be negative", ErrInvalidParameter, s)
	}
	if d.GreaterThan(decimal.NewFromInt(MaxAmount)) {
		return 0, fmt.Errorf("%w: amount %q is too large", ErrInvalidParameter, s)
	}
	return d.IntPart(), nil
}

// MaxAmount bounds any amount accepted from user input.
const MaxAmount = 1_000_000_000_000
