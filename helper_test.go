package tokensense

import "testing"

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// sameState compares two states field by field, decimals by value.
func sameState(a, b State) bool {
	return a.InitialSupply.Equal(b.InitialSupply) &&
		a.BurnPercentage == b.BurnPercentage &&
		a.PricePerToken.Equal(b.PricePerToken) &&
		a.PersonalHoldings.Equal(b.PersonalHoldings) &&
		a.HoldingsPercentage == b.HoldingsPercentage
}

// newTestSession returns a session on the example form: 1,000,000 tokens,
// 50% burned, priced 0.01 USD.
func newTestSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(DefaultState())
	for _, e := range []Edit{
		NewEdit(FieldSupply, "1,000,000"),
		NewEdit(FieldBurn, "50"),
		NewEdit(FieldPrice, "0.01"),
	} {
		if err := s.Edit(e.Field, e.Value); err != nil {
			t.Fatalf("Edit(%s, %q) error = %v", e.Field, e.Value, err)
		}
	}
	return s
}
