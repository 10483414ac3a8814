package tokensense

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns a Money of value in currency.
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// IsKnownCurrency reports whether code is an ISO currency known to go-money.
func IsKnownCurrency(code string) bool {
	return money.GetCurrency(code) != nil
}

var (
	maxMinorUnits = decimal.NewFromInt(math.MaxInt64)
	minMinorUnits = decimal.NewFromInt(math.MinInt64)
)

// String returns the full grouped representation of the money value, with
// the currency symbol and the currency fraction digits, e.g. "$5,000.00".
func (m Money) String() string {
	cur := m.currency()
	minor := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	if minor.GreaterThan(maxMinorUnits) || minor.LessThan(minMinorUnits) {
		// beyond go-money's int64 minor units.
		amount := groupedDecimal(m.value.InexactFloat64(), cur.Fraction, cur.Fraction)
		return strings.Replace(strings.Replace(cur.Template, "1", amount, 1), "$", cur.Grapheme, 1)
	}
	return cur.Formatter().Format(minor.IntPart())
}

// Amount returns the plain decimal amount, without rounding, e.g. "0.000414".
func (m Money) Amount() string { return m.value.String() }

// Symbol returns the currency grapheme, e.g. "$".
func (m Money) Symbol() string { return m.currency().Grapheme }

func (m Money) Currency() string     { return m.cur }
func (m Money) Equal(n Money) bool   { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsNegative() bool     { return m.value.IsNegative() }
func (m Money) Mul(n Quantity) Money { return Money{value: m.value.Mul(n.value), cur: m.cur} }

func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", m.cur)
	w.Append("amount", m.value)
	return w.MarshalJSON()
}
