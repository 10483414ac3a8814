package tokensense

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	thousand = decimal.NewFromInt(1_000)
	million  = decimal.NewFromInt(1_000_000)
)

// groupedDecimal formats v with en-US thousands grouping and between minFrac
// and maxFrac fraction digits.
func groupedDecimal(v float64, minFrac, maxFrac int) string {
	// a Printer is not safe for concurrent use.
	p := message.NewPrinter(language.AmericanEnglish)
	return p.Sprintf("%v", number.Decimal(v, number.MinFractionDigits(minFrac), number.MaxFractionDigits(maxFrac)))
}

// FormatGroupedInteger renders q with en-US thousands grouping, e.g.
// "69,000,000,000,000". Fraction digits are kept up to three, like the
// browser's en-US locale formatting.
func FormatGroupedInteger(q Quantity) string {
	return groupedDecimal(q.Float64(), 0, 3)
}

// FormatCurrency renders the full grouped amount with its currency symbol,
// e.g. "$19,996,200,000.00".
func FormatCurrency(m Money) string {
	return m.String()
}

// FormatAbbreviatedCurrency renders m abbreviated by magnitude:
//
//	>= 1,000,000  "$X.XXM"
//	>= 1,000      "$X.XXK"
//	otherwise     "$X.XX"
//
// Boundaries are inclusive: 1000 renders as "$1.00K".
func FormatAbbreviatedCurrency(m Money) string {
	v, suffix := m.value, ""
	switch {
	case v.GreaterThanOrEqual(million):
		v, suffix = v.Shift(-6), "M"
	case v.GreaterThanOrEqual(thousand):
		v, suffix = v.Shift(-3), "K"
	}
	return fmt.Sprintf("%s%s%s", m.Symbol(), v.StringFixed(2), suffix)
}

// FormatPercentage renders p with 4 fraction digits, e.g. "10.0000%".
func FormatPercentage(p Percent) string {
	return p.String()
}
