package entities

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrCeilingNotSet = errors.New("budget ceiling not set")
	ErrOverBudget    = errors.New("spend exceeds budget ceiling")
	ErrInvalidAmount = errors.New("invalid budget amount")
)

// Ledger tracks a report's allocated budget ceiling and cumulative spend.
//
// All arithmetic is exact decimal; the spend percentage is always derived
// from Used/Ceiling on read and never stored, so it cannot drift from the
// underlying figures.

type Ledger struct {
	Ceiling *decimal.Decimal `json:"ceiling,omitempty"`
	Used    decimal.Decimal  `json:"used"`
}

// SetCeiling replaces the ceiling. The new ceiling may not be negative and
// may not undercut what has already been spent.
func (l *Ledger) SetCeiling(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}
	if amount.LessThan(l.Used) {
		return ErrInvalidAmount
	}
	c := amount
	l.Ceiling = &c
	return nil
}

// RecordSpend charges delta against the ledger. A zero delta is a no-op so
// progress can be reported before any budget is allocated.
func (l *Ledger) RecordSpend(delta decimal.Decimal) error {
	if delta.IsNegative() {
		return ErrInvalidAmount
	}
	if delta.IsZero() {
		return nil
	}
	if l.Ceiling == nil {
		return ErrCeilingNotSet
	}
	next := l.Used.Add(delta)
	if next.GreaterThan(*l.Ceiling) {
		return ErrOverBudget
	}
	l.Used = next
	return nil
}

// Percentage derives the spend percentage, rounded to the nearest whole
// number. Nil when no positive ceiling exists (never divides by zero).
func (l Ledger) Percentage() *int64 {
	if l.Ceiling == nil || !l.Ceiling.IsPositive() {
		return nil
	}
	p := l.Used.Div(*l.Ceiling).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	return &p
}
