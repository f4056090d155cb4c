package request

import (
	"errors"
	"testing"
)

func TestVerifyRequest_ResolveBudgetTotal(t *testing.T) {
	r := VerifyRequest{Note: "ok", BudgetTotal: " 5000000.50 "}
	d, err := r.ResolveBudgetTotal()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d == nil || d.String() != "5000000.5" {
		t.Fatalf("unexpected decimal: %v", d)
	}

	r2 := VerifyRequest{Note: "ok"}
	d, err = r2.ResolveBudgetTotal()
	if err != nil || d != nil {
		t.Fatalf("empty budget must resolve to nil, got %v %v", d, err)
	}

	r3 := VerifyRequest{Note: "ok", BudgetTotal: "lots"}
	if _, err := r3.ResolveBudgetTotal(); !errors.Is(err, ErrInvalidDecimal) {
		t.Fatalf("expected ErrInvalidDecimal, got %v", err)
	}
}

func TestProgressRequest_ResolveBudgetDelta(t *testing.T) {
	r := ProgressRequest{Description: "work", BudgetDelta: "250.75"}
	d, err := r.ResolveBudgetDelta()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.String() != "250.75" {
		t.Fatalf("unexpected decimal: %s", d)
	}

	r2 := ProgressRequest{Description: "survey only"}
	d, err = r2.ResolveBudgetDelta()
	if err != nil || !d.IsZero() {
		t.Fatalf("empty delta must resolve to zero, got %s %v", d, err)
	}

	r3 := ProgressRequest{Description: "work", BudgetDelta: "1,5"}
	if _, err := r3.ResolveBudgetDelta(); !errors.Is(err, ErrInvalidDecimal) {
		t.Fatalf("expected ErrInvalidDecimal, got %v", err)
	}
}

func TestBudgetRequest_ResolveBudgetTotal(t *testing.T) {
	r := BudgetRequest{BudgetTotal: "750000"}
	d, err := r.ResolveBudgetTotal()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.String() != "750000" {
		t.Fatalf("unexpected decimal: %s", d)
	}

	r2 := BudgetRequest{BudgetTotal: ""}
	if _, err := r2.ResolveBudgetTotal(); !errors.Is(err, ErrInvalidDecimal) {
		t.Fatalf("expected ErrInvalidDecimal, got %v", err)
	}
}
