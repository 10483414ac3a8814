package tokensense

import (
	"fmt"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DefaultCurrency is the reference currency of the unit price.
const DefaultCurrency = "USD"

// State is the calculator form. HoldingsPercentage is stored because it can
// be edited on its own; Session keeps it in sync with PersonalHoldings.
type State struct {
	InitialSupply      Quantity // total supply before burning
	BurnPercentage     Percent  // part of the supply removed from circulation, in [0, 100]
	PricePerToken      Money    // unit price
	PersonalHoldings   Quantity // tokens held by the user
	HoldingsPercentage Percent  // PersonalHoldings as a percentage of circulating supply
}

// DefaultState returns the initial form, priced in DefaultCurrency.
func DefaultState() State {
	s, err := NewDefaultState(DefaultCurrency)
	if err != nil {
		panic(err)
	}
	return s
}

// NewDefaultState returns the initial form with the unit price in currency.
func NewDefaultState(currency string) (State, error) {
	if !IsKnownCurrency(currency) {
		return State{}, fmt.Errorf("unknown currency %q", currency)
	}
	return State{
		InitialSupply:    Q(int64(69_000_000_000_000)),
		BurnPercentage:   30,
		PricePerToken:    M(decimal.RequireFromString("0.000414"), currency),
		PersonalHoldings: Q(0),
	}, nil
}

// CirculatingSupply returns the circulating supply of s.
func (s State) CirculatingSupply() Quantity {
	return CirculatingSupply(s.InitialSupply, s.BurnPercentage)
}

// synced returns s with HoldingsPercentage recomputed from PersonalHoldings.
// It is never treated as an edit of the percentage.
func (s State) synced() State {
	s.HoldingsPercentage = HoldingsShare(s.PersonalHoldings, s.CirculatingSupply())
	return s
}

// MarshalJSON writes the inputs followed by the derived figures.
func (s State) MarshalJSON() ([]byte, error) {
	f := Derive(s)
	var w jsonObjectWriter
	w.Append("initialSupply", s.InitialSupply)
	w.Append("burnPercentage", float64(s.BurnPercentage))
	w.Append("pricePerToken", s.PricePerToken.value)
	w.Optional("currency", s.PricePerToken.cur)
	w.Append("personalHoldings", s.PersonalHoldings)
	w.Append("holdingsPercentage", float64(s.HoldingsPercentage))
	w.Append("circulatingSupply", f.CirculatingSupply)
	w.Append("marketCap", f.MarketCap.value)
	w.Append("holdingsValue", f.HoldingsValue.value)
	return w.MarshalJSON()
}
