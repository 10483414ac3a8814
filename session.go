package tokensense

import (
	"fmt"
	"log/slog"
	"math"
)

// Session owns the State of one calculator session.
//
// Every edit works on a copy of the state and publishes it in one assignment,
// so a reader never sees a holdings amount and a percentage from different
// edits. A rejected edit leaves the state untouched.
//
// A Session is not safe for concurrent use.
type Session struct {
	state  State
	logger *slog.Logger
}

// NewSession starts a session from s, with HoldingsPercentage recomputed
// from s.PersonalHoldings.
func NewSession(s State) *Session {
	return &Session{state: s.synced(), logger: slog.Default()}
}

// WithLogger sets the logger used to report rejected edits.
func (s *Session) WithLogger(l *slog.Logger) *Session {
	s.logger = l
	return s
}

// State returns a copy of the current state.
func (s *Session) State() State { return s.state }

// Figures returns the figures derived from the current state.
func (s *Session) Figures() Figures { return Derive(s.state) }

// SetInitialSupply changes the initial supply. The holdings percentage
// follows the new circulating supply; holdings are kept.
func (s *Session) SetInitialSupply(q Quantity) error {
	if q.IsNegative() {
		return fmt.Errorf("initial supply %v: %w", q, ErrOutOfRange)
	}
	next := s.state
	next.InitialSupply = q
	s.state = next.synced()
	return nil
}

// SetBurnPercentage changes the burn percentage, which must be in [0, 100].
// The holdings percentage follows the new circulating supply; holdings are
// kept.
func (s *Session) SetBurnPercentage(p Percent) error {
	if !p.IsFinite() || p < 0 || p > 100 {
		return fmt.Errorf("burn percentage %v: %w", float64(p), ErrOutOfRange)
	}
	next := s.state
	next.BurnPercentage = p
	s.state = next.synced()
	return nil
}

// SetPricePerToken changes the unit price, in the session currency.
func (s *Session) SetPricePerToken(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return fmt.Errorf("price %v: %w", price, ErrOutOfRange)
	}
	p := M(price, s.state.PricePerToken.cur)
	if p.IsNegative() {
		return fmt.Errorf("price %v: %w", price, ErrOutOfRange)
	}
	next := s.state
	next.PricePerToken = p
	s.state = next
	return nil
}

// SetHoldings changes the holdings amount; the holdings percentage is then
// recomputed from it.
func (s *Session) SetHoldings(q Quantity) error {
	if q.IsNegative() {
		return fmt.Errorf("holdings %v: %w", q, ErrOutOfRange)
	}
	next := s.state
	next.PersonalHoldings = q
	s.state = next.synced()
	return nil
}

// SetHoldingsPercentage changes the holdings percentage to p, kept as given,
// and the holdings to the matching part of the circulating supply. p is not
// clamped to 100.
func (s *Session) SetHoldingsPercentage(p Percent) error {
	if !p.IsFinite() || p < 0 {
		return fmt.Errorf("holdings percentage %v: %w", float64(p), ErrOutOfRange)
	}
	next := s.state
	next.HoldingsPercentage = p
	next.PersonalHoldings = HoldingsFromShare(p, next.CirculatingSupply())
	s.state = next
	return nil
}

// EditInitialSupply applies raw text typed into the initial supply field.
func (s *Session) EditInitialSupply(raw string) error {
	return s.Edit(FieldSupply, raw)
}

// EditBurnPercentage applies a raw burn slider value.
func (s *Session) EditBurnPercentage(raw string) error {
	return s.Edit(FieldBurn, raw)
}

// EditPricePerToken applies raw text typed into the price field.
func (s *Session) EditPricePerToken(raw string) error {
	return s.Edit(FieldPrice, raw)
}

// EditHoldings applies raw text typed into the holdings amount field.
func (s *Session) EditHoldings(raw string) error {
	return s.Edit(FieldHoldings, raw)
}

// EditHoldingsPercentage applies a raw holdings percentage slider value.
func (s *Session) EditHoldingsPercentage(raw string) error {
	return s.Edit(FieldShare, raw)
}

// Edit parses raw for field and applies it. On error the state is unchanged
// and the rejection is logged at debug level.
func (s *Session) Edit(field Field, raw string) error {
	err := s.edit(field, raw)
	if err != nil {
		s.logger.Debug("edit rejected", "field", field, "value", raw, "err", err)
	}
	return err
}

func (s *Session) edit(field Field, raw string) error {
	switch field {
	case FieldSupply:
		q, err := ParseIntegerLike(raw)
		if err != nil {
			return err
		}
		return s.SetInitialSupply(q)
	case FieldHoldings:
		q, err := ParseIntegerLike(raw)
		if err != nil {
			return err
		}
		return s.SetHoldings(q)
	case FieldBurn:
		f, err := ParseDecimal(raw)
		if err != nil {
			return err
		}
		return s.SetBurnPercentage(Percent(f))
	case FieldPrice:
		f, err := ParseDecimal(raw)
		if err != nil {
			return err
		}
		return s.SetPricePerToken(f)
	case FieldShare:
		f, err := ParseDecimal(raw)
		if err != nil {
			return err
		}
		return s.SetHoldingsPercentage(Percent(f))
	default:
		return fmt.Errorf("unknown field %q", field)
	}
}

// Replay applies edits in order. Rejected edits are skipped and returned,
// each wrapped with its position.
func (s *Session) Replay(edits []Edit) []error {
	var rejected []error
	for i, e := range edits {
		if err := s.Edit(e.Field, e.Value); err != nil {
			rejected = append(rejected, fmt.Errorf("edit #%d %s=%q: %w", i+1, e.Field, e.Value, err))
		}
	}
	return rejected
}
