package tokensense

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrMalformed reports text that is not a numeric literal.
	ErrMalformed = errors.New("malformed number")
	// ErrOutOfRange reports a number outside of the field's domain.
	ErrOutOfRange = errors.New("value out of range")
)

// Bounds of the accepted literals, checked before any arithmetic.
const (
	maxIntegerDigits = 309  // float64 overflows beyond 309 integer digits
	minExponent      = -400 // well below the smallest float64
)

// parseLiteral parses a decimal literal. Blank text is zero, the way an
// emptied input box reads. Literals outside of the float64 range are
// rejected with ErrOutOfRange.
func parseLiteral(raw string) (decimal.Decimal, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrMalformed, raw)
	}
	if d.IsZero() {
		// "0e-999999999" carries its exponent into every product.
		return decimal.Zero, nil
	}
	exp := int64(d.Exponent())
	if exp+int64(d.NumDigits()) > maxIntegerDigits || exp < minExponent {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrOutOfRange, raw)
	}
	return d, nil
}

// ParseIntegerLike parses text typed into a grouped-integer field such as
// "1,000,000". Grouping commas are stripped before parsing.
func ParseIntegerLike(raw string) (Quantity, error) {
	d, err := parseLiteral(strings.ReplaceAll(raw, ",", ""))
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{value: d}, nil
}

// ParseDecimal parses text from a numeric input or slider. Separators are
// not accepted.
func ParseDecimal(raw string) (float64, error) {
	d, err := parseLiteral(raw)
	if err != nil {
		return 0, err
	}
	f := d.InexactFloat64()
	if math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q", ErrOutOfRange, raw)
	}
	return f, nil
}
