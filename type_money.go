package pnltrack

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in a display currency.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M wraps a decimal amount with a display currency.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// currency returns the money's currency, never nil.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value, formatted
// according to the currency conventions (symbol, fraction digits, grouping).
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

func (m Money) Currency() string  { return m.cur }
func (m Money) IsZero() bool      { return m.value.IsZero() }
func (m Money) IsPositive() bool  { return m.value.IsPositive() }
func (m Money) IsNegative() bool  { return m.value.IsNegative() }
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: m.cur} }
func (m Money) Neg() Money        { return Money{value: m.value.Neg(), cur: m.cur} }

// SignedString returns the string representation of the money value with an
// explicit sign. Zero is represented as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}
