package tokensense

import (
	"errors"
	"strings"
	"testing"
)

func TestSession_HoldingsAmountDrivesPercentage(t *testing.T) {
	s := newTestSession(t)

	if err := s.EditHoldings("50,000"); err != nil {
		t.Fatalf("EditHoldings() error = %v", err)
	}

	st, f := s.State(), s.Figures()
	if !f.CirculatingSupply.Equal(Q(500_000)) {
		t.Errorf("CirculatingSupply = %v, want 500000", f.CirculatingSupply)
	}
	if !f.MarketCap.Equal(USD(5000)) {
		t.Errorf("MarketCap = %v, want 5000", f.MarketCap)
	}
	if got := FormatPercentage(st.HoldingsPercentage); got != "10.0000%" {
		t.Errorf("HoldingsPercentage = %q, want %q", got, "10.0000%")
	}
	if !f.HoldingsValue.Equal(USD(500)) {
		t.Errorf("HoldingsValue = %v, want 500", f.HoldingsValue)
	}
	if got := FormatAbbreviatedCurrency(f.HoldingsValue); got != "$500.00" {
		t.Errorf("FormatAbbreviatedCurrency(HoldingsValue) = %q, want %q", got, "$500.00")
	}
}

func TestSession_PercentageDrivesAmount(t *testing.T) {
	s := newTestSession(t)

	if err := s.EditHoldingsPercentage("25"); err != nil {
		t.Fatalf("EditHoldingsPercentage() error = %v", err)
	}
	st := s.State()
	if !st.PersonalHoldings.Equal(Q(125_000)) {
		t.Errorf("PersonalHoldings = %v, want 125000", st.PersonalHoldings)
	}
	if st.HoldingsPercentage != 25 {
		t.Errorf("HoldingsPercentage = %v, want 25", float64(st.HoldingsPercentage))
	}

	// Re-deriving the percentage from the new amount gives the edited value back.
	if got := HoldingsShare(st.PersonalHoldings, st.CirculatingSupply()); !got.Equal(25) {
		t.Errorf("HoldingsShare() = %v, want 25", float64(got))
	}
}

func TestSession_PercentageIsNotClamped(t *testing.T) {
	s := newTestSession(t)

	if err := s.EditHoldingsPercentage("150"); err != nil {
		t.Fatalf("EditHoldingsPercentage() error = %v", err)
	}
	st := s.State()
	if st.HoldingsPercentage != 150 {
		t.Errorf("HoldingsPercentage = %v, want 150", float64(st.HoldingsPercentage))
	}
	if !st.PersonalHoldings.Equal(Q(750_000)) {
		t.Errorf("PersonalHoldings = %v, want 750000", st.PersonalHoldings)
	}
}

func TestSession_SupplyChangesMovePercentageOnly(t *testing.T) {
	s := newTestSession(t)
	if err := s.EditHoldings("50,000"); err != nil {
		t.Fatalf("EditHoldings() error = %v", err)
	}

	if err := s.EditInitialSupply("2,000,000"); err != nil {
		t.Fatalf("EditInitialSupply() error = %v", err)
	}
	st := s.State()
	if !st.PersonalHoldings.Equal(Q(50_000)) {
		t.Errorf("PersonalHoldings = %v, want 50000 kept", st.PersonalHoldings)
	}
	if st.HoldingsPercentage != 5 {
		t.Errorf("HoldingsPercentage = %v, want 5", float64(st.HoldingsPercentage))
	}

	if err := s.EditBurnPercentage("75"); err != nil {
		t.Fatalf("EditBurnPercentage() error = %v", err)
	}
	st = s.State()
	if !st.PersonalHoldings.Equal(Q(50_000)) {
		t.Errorf("PersonalHoldings = %v, want 50000 kept", st.PersonalHoldings)
	}
	if st.HoldingsPercentage != 10 {
		t.Errorf("HoldingsPercentage = %v, want 10", float64(st.HoldingsPercentage))
	}
}

func TestSession_ZeroCirculatingSupply(t *testing.T) {
	s := newTestSession(t)
	if err := s.EditHoldings("1,000"); err != nil {
		t.Fatalf("EditHoldings() error = %v", err)
	}

	if err := s.EditBurnPercentage("100"); err != nil {
		t.Fatalf("EditBurnPercentage() error = %v", err)
	}
	st := s.State()
	if st.HoldingsPercentage != 0 {
		t.Errorf("HoldingsPercentage = %v, want exactly 0", float64(st.HoldingsPercentage))
	}
	if !st.PersonalHoldings.Equal(Q(1000)) {
		t.Errorf("PersonalHoldings = %v, want 1000 kept", st.PersonalHoldings)
	}

	// The direct path multiplies by zero.
	if err := s.EditHoldingsPercentage("10"); err != nil {
		t.Fatalf("EditHoldingsPercentage() error = %v", err)
	}
	st = s.State()
	if !st.PersonalHoldings.IsZero() {
		t.Errorf("PersonalHoldings = %v, want 0", st.PersonalHoldings)
	}
	if st.HoldingsPercentage != 10 {
		t.Errorf("HoldingsPercentage = %v, want 10 as edited", float64(st.HoldingsPercentage))
	}
}

func TestSession_PriceLeavesHoldingsAlone(t *testing.T) {
	s := newTestSession(t)
	if err := s.EditHoldingsPercentage("12.5"); err != nil {
		t.Fatalf("EditHoldingsPercentage() error = %v", err)
	}
	before := s.State()

	if err := s.EditPricePerToken("2"); err != nil {
		t.Fatalf("EditPricePerToken() error = %v", err)
	}
	after := s.State()
	if !after.PersonalHoldings.Equal(before.PersonalHoldings) || after.HoldingsPercentage != before.HoldingsPercentage {
		t.Errorf("price edit changed holdings: before %v/%v after %v/%v",
			before.PersonalHoldings, float64(before.HoldingsPercentage), after.PersonalHoldings, float64(after.HoldingsPercentage))
	}
	if !s.Figures().HoldingsValue.Equal(USD(125_000)) {
		t.Errorf("HoldingsValue = %v, want 125000", s.Figures().HoldingsValue)
	}
}

func TestSession_RejectedEditsKeepState(t *testing.T) {
	tests := []struct {
		field Field
		raw   string
		err   error
	}{
		{FieldHoldings, "12a3", ErrMalformed},
		{FieldSupply, "12a3", ErrMalformed},
		{FieldPrice, "cheap", ErrMalformed},
		{FieldBurn, "fifty", ErrMalformed},
		{FieldShare, "1,5", ErrMalformed},
		{FieldHoldings, "-5", ErrOutOfRange},
		{FieldSupply, "-1,000", ErrOutOfRange},
		{FieldPrice, "-0.1", ErrOutOfRange},
		{FieldBurn, "101", ErrOutOfRange},
		{FieldBurn, "-1", ErrOutOfRange},
		{FieldShare, "-3", ErrOutOfRange},
		{FieldHoldings, "1e999999999", ErrOutOfRange},
		{FieldSupply, "1e999999999", ErrOutOfRange},
		{FieldSupply, "1e-999999999", ErrOutOfRange},
		{FieldSupply, strings.Repeat("9", 400), ErrOutOfRange},
		{FieldPrice, "1e999999999", ErrOutOfRange},
		{FieldPrice, "2e308", ErrOutOfRange},
		{FieldBurn, "1e-999999999", ErrOutOfRange},
		{FieldShare, "1e999999999", ErrOutOfRange},
	}
	for _, tc := range tests {
		t.Run(string(tc.field)+"="+tc.raw, func(t *testing.T) {
			s := newTestSession(t)
			if err := s.EditHoldings("50,000"); err != nil {
				t.Fatalf("EditHoldings() error = %v", err)
			}
			before := s.State()

			err := s.Edit(tc.field, tc.raw)
			if !errors.Is(err, tc.err) {
				t.Fatalf("Edit(%s, %q) error = %v, want %v", tc.field, tc.raw, err, tc.err)
			}
			if !sameState(before, s.State()) {
				t.Errorf("Edit(%s, %q) changed the state", tc.field, tc.raw)
			}
		})
	}
}

func TestSession_UnknownField(t *testing.T) {
	s := NewSession(DefaultState())
	if err := s.Edit("color", "blue"); err == nil {
		t.Error("Edit() on an unknown field should fail")
	}
}

func TestSession_EmptyHoldingsIsZero(t *testing.T) {
	s := newTestSession(t)
	if err := s.EditHoldings("50,000"); err != nil {
		t.Fatalf("EditHoldings() error = %v", err)
	}
	if err := s.EditHoldings(""); err != nil {
		t.Fatalf("EditHoldings(\"\") error = %v", err)
	}
	if st := s.State(); !st.PersonalHoldings.IsZero() || st.HoldingsPercentage != 0 {
		t.Errorf("state = %v/%v, want 0/0", st.PersonalHoldings, float64(st.HoldingsPercentage))
	}
}

func TestNewSession_SyncsPercentage(t *testing.T) {
	st := DefaultState()
	st.InitialSupply = Q(1000)
	st.BurnPercentage = 0
	st.PersonalHoldings = Q(10)
	st.HoldingsPercentage = 99 // stale

	s := NewSession(st)
	if got := s.State().HoldingsPercentage; got != 1 {
		t.Errorf("HoldingsPercentage = %v, want 1", float64(got))
	}
}

func TestSession_Replay(t *testing.T) {
	s := NewSession(DefaultState())
	rejected := s.Replay([]Edit{
		NewEdit(FieldSupply, "1,000,000"),
		NewEdit(FieldBurn, "50"),
		NewEdit(FieldHoldings, "12a3"),
		NewEdit(FieldPrice, "0.01"),
		NewEdit(FieldShare, "25"),
	})

	if len(rejected) != 1 {
		t.Fatalf("Replay() rejected %d edits, want 1: %v", len(rejected), rejected)
	}
	if !errors.Is(rejected[0], ErrMalformed) {
		t.Errorf("Replay() rejection = %v, want ErrMalformed", rejected[0])
	}

	want := newTestSession(t)
	if err := want.EditHoldingsPercentage("25"); err != nil {
		t.Fatalf("EditHoldingsPercentage() error = %v", err)
	}
	if !sameState(s.State(), want.State()) {
		t.Errorf("Replay() state differs from the same edits applied one by one")
	}
}
