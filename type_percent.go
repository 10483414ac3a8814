package tokensense

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Percent is a ratio expressed on a 0-100 scale.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 1e-9
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// IsFinite reports whether p is neither NaN nor infinite.
func (p Percent) IsFinite() bool {
	f := float64(p)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// String renders the percentage with 4 fraction digits, e.g. "10.0000%".
func (p Percent) String() string {
	return fmt.Sprintf("%.4f%%", float64(p))
}

// ratio returns p/100 as an exact decimal. p must be finite.
func (p Percent) ratio() decimal.Decimal {
	return decimal.NewFromFloat(float64(p)).Shift(-2)
}
