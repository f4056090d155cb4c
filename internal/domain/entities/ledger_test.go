package entities

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestLedger_SetCeiling(t *testing.T) {
	t.Run("negative ceiling", func(t *testing.T) {
		var l Ledger
		if err := l.SetCeiling(dec("-1")); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
		if l.Ceiling != nil {
			t.Fatalf("ceiling must stay unset after rejected set")
		}
	})

	t.Run("ceiling below spent", func(t *testing.T) {
		l := Ledger{Used: dec("500")}
		if err := l.SetCeiling(dec("100")); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("revision keeps used intact", func(t *testing.T) {
		var l Ledger
		if err := l.SetCeiling(dec("1000")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := l.RecordSpend(dec("300")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := l.SetCeiling(dec("300")); err != nil {
			t.Fatalf("ceiling equal to used must be allowed, got %v", err)
		}
		if !l.Used.Equal(dec("300")) {
			t.Fatalf("used changed on ceiling revision: %s", l.Used)
		}
	})
}

func TestLedger_RecordSpend(t *testing.T) {
	t.Run("negative delta", func(t *testing.T) {
		var l Ledger
		if err := l.RecordSpend(dec("-5")); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("zero delta without ceiling", func(t *testing.T) {
		var l Ledger
		if err := l.RecordSpend(decimal.Zero); err != nil {
			t.Fatalf("zero spend must be a no-op, got %v", err)
		}
		if !l.Used.IsZero() {
			t.Fatalf("used must stay zero, got %s", l.Used)
		}
	})

	t.Run("positive delta without ceiling", func(t *testing.T) {
		var l Ledger
		if err := l.RecordSpend(dec("10")); !errors.Is(err, ErrCeilingNotSet) {
			t.Fatalf("expected ErrCeilingNotSet, got %v", err)
		}
	})

	t.Run("overspend leaves ledger untouched", func(t *testing.T) {
		var l Ledger
		if err := l.SetCeiling(dec("100")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := l.RecordSpend(dec("60")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := l.RecordSpend(dec("60.01")); !errors.Is(err, ErrOverBudget) {
			t.Fatalf("expected ErrOverBudget, got %v", err)
		}
		if !l.Used.Equal(dec("60")) {
			t.Fatalf("rejected spend mutated used: %s", l.Used)
		}
	})

	t.Run("spend up to the ceiling exactly", func(t *testing.T) {
		var l Ledger
		if err := l.SetCeiling(dec("100")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := l.RecordSpend(dec("99.99")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := l.RecordSpend(dec("0.01")); err != nil {
			t.Fatalf("spend reaching the ceiling must succeed, got %v", err)
		}
		if !l.Used.Equal(dec("100")) {
			t.Fatalf("expected used 100, got %s", l.Used)
		}
	})

	t.Run("used equals sum of deltas", func(t *testing.T) {
		var l Ledger
		if err := l.SetCeiling(dec("1000")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		deltas := []string{"0.10", "0.20", "0.30", "250", "749.40"}
		for _, d := range deltas {
			if err := l.RecordSpend(dec(d)); err != nil {
				t.Fatalf("spend %s failed: %v", d, err)
			}
		}
		if !l.Used.Equal(dec("1000.00")) {
			t.Fatalf("expected exact sum 1000.00, got %s", l.Used)
		}
	})
}

func TestLedger_Percentage(t *testing.T) {
	t.Run("no ceiling", func(t *testing.T) {
		var l Ledger
		if p := l.Percentage(); p != nil {
			t.Fatalf("expected nil, got %d", *p)
		}
	})

	t.Run("zero ceiling", func(t *testing.T) {
		zero := decimal.Zero
		l := Ledger{Ceiling: &zero}
		if p := l.Percentage(); p != nil {
			t.Fatalf("expected nil for zero ceiling, got %d", *p)
		}
	})

	t.Run("rounded", func(t *testing.T) {
		cases := []struct {
			used, ceiling string
			want          int64
		}{
			{"0", "100", 0},
			{"33", "100", 33},
			{"1", "3", 33},
			{"2", "3", 67},
			{"100", "100", 100},
		}
		for _, tc := range cases {
			c := dec(tc.ceiling)
			l := Ledger{Ceiling: &c, Used: dec(tc.used)}
			p := l.Percentage()
			if p == nil || *p != tc.want {
				t.Fatalf("used=%s ceiling=%s: expected %d, got %v", tc.used, tc.ceiling, tc.want, p)
			}
		}
	})
}
