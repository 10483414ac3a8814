package tokensense

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestDefaultState(t *testing.T) {
	s := DefaultState()
	if !s.InitialSupply.Equal(Q(int64(69_000_000_000_000))) {
		t.Errorf("InitialSupply = %v", s.InitialSupply)
	}
	if s.BurnPercentage != 30 {
		t.Errorf("BurnPercentage = %v", float64(s.BurnPercentage))
	}
	if !s.PricePerToken.Equal(USD(0.000414)) {
		t.Errorf("PricePerToken = %v", s.PricePerToken.value)
	}
	if !s.PersonalHoldings.IsZero() || s.HoldingsPercentage != 0 {
		t.Errorf("holdings = %v/%v, want 0/0", s.PersonalHoldings, float64(s.HoldingsPercentage))
	}

	f := Derive(s)
	if got := FormatGroupedInteger(f.CirculatingSupply); got != "48,300,000,000,000" {
		t.Errorf("CirculatingSupply = %q", got)
	}
	if got := FormatCurrency(f.MarketCap); got != "$19,996,200,000.00" {
		t.Errorf("MarketCap = %q", got)
	}
}

func TestNewDefaultState_Currency(t *testing.T) {
	s, err := NewDefaultState("EUR")
	if err != nil {
		t.Fatalf("NewDefaultState(EUR) error = %v", err)
	}
	if s.PricePerToken.Currency() != "EUR" {
		t.Errorf("currency = %q, want EUR", s.PricePerToken.Currency())
	}
	if _, err := NewDefaultState("XYZW"); err == nil {
		t.Error("NewDefaultState(XYZW) should fail")
	}
}

func TestState_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(DefaultState())
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	wantPrefix := `{"initialSupply":69000000000000,"burnPercentage":30,"pricePerToken":0.000414,"currency":"USD",`
	if !bytes.HasPrefix(data, []byte(wantPrefix)) {
		t.Errorf("json = %s, want prefix %s", data, wantPrefix)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		t.Fatalf("decode error = %v", err)
	}
	got := make(map[string]json.Number)
	for k, v := range raw {
		if n, ok := v.(json.Number); ok {
			got[k] = n
		}
	}

	want := map[string]string{
		"personalHoldings":   "0",
		"holdingsPercentage": "0",
		"circulatingSupply":  "48300000000000",
		"marketCap":          "19996200000",
		"holdingsValue":      "0",
	}
	for k, v := range want {
		if got[k].String() != v {
			t.Errorf("%s = %q, want %q", k, got[k], v)
		}
	}
}
