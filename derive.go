package tokensense

import "github.com/shopspring/decimal"

// sharePrecision is the number of fraction digits kept when dividing
// holdings by circulating supply.
const sharePrecision = 32

// Figures are the values derived from a State.
type Figures struct {
	CirculatingSupply Quantity // initial supply minus the burned part
	MarketCap         Money    // circulating supply at the unit price
	HoldingsValue     Money    // holdings at the unit price
}

// CirculatingSupply returns initial * (1 - burn/100).
func CirculatingSupply(initial Quantity, burn Percent) Quantity {
	remaining := decimal.NewFromInt(1).Sub(burn.ratio())
	return Quantity{value: initial.value.Mul(remaining)}
}

// MarketCap returns the circulating supply valued at price.
func MarketCap(circulating Quantity, price Money) Money {
	return price.Mul(circulating)
}

// HoldingsValue returns holdings valued at price.
func HoldingsValue(holdings Quantity, price Money) Money {
	return price.Mul(holdings)
}

// HoldingsShare returns holdings as a percentage of circulating supply.
// It is 0 when circulating supply is zero, whatever the holdings.
func HoldingsShare(holdings, circulating Quantity) Percent {
	if circulating.IsZero() {
		return 0
	}
	share := holdings.value.Mul(hundred).DivRound(circulating.value, sharePrecision)
	return Percent(share.InexactFloat64())
}

// HoldingsFromShare returns the holdings representing share percent of
// circulating supply. share must be finite.
func HoldingsFromShare(share Percent, circulating Quantity) Quantity {
	return Quantity{value: circulating.value.Mul(share.ratio())}
}

// Derive computes the derived figures of s. It has no side effect.
func Derive(s State) Figures {
	circulating := CirculatingSupply(s.InitialSupply, s.BurnPercentage)
	return Figures{
		CirculatingSupply: circulating,
		MarketCap:         MarketCap(circulating, s.PricePerToken),
		HoldingsValue:     HoldingsValue(s.PersonalHoldings, s.PricePerToken),
	}
}
