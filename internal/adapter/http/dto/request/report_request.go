package request

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidDecimal = errors.New("invalid decimal amount")

// CreateReportRequest is the web-channel creation payload. The caller
// identity comes from the session collaborator, not the body.
type CreateReportRequest struct {
	Category     string   `json:"category" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	LocationText string   `json:"location_text" binding:"required"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	ImageURLs    []string `json:"image_urls"`
}

type DisposeRequest struct {
	AgencyID string `json:"agency_id" binding:"required"`
	Note     string `json:"note"`
}

type RejectRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// VerifyRequest carries the agency verification note and an optional budget
// ceiling. Money fields travel as strings so they can be parsed into exact
// decimals instead of binary floats.
type VerifyRequest struct {
	Note        string `json:"note" binding:"required"`
	BudgetTotal string `json:"budget_total"`
}

func (r VerifyRequest) ResolveBudgetTotal() (*decimal.Decimal, error) {
	raw := strings.TrimSpace(r.BudgetTotal)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, ErrInvalidDecimal
	}
	return &d, nil
}

type ProgressRequest struct {
	Description string   `json:"description" binding:"required"`
	BudgetDelta string   `json:"budget_delta"`
	ImageURLs   []string `json:"image_urls"`
}

func (r ProgressRequest) ResolveBudgetDelta() (decimal.Decimal, error) {
	raw := strings.TrimSpace(r.BudgetDelta)
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, ErrInvalidDecimal
	}
	return d, nil
}

type BudgetRequest struct {
	BudgetTotal string `json:"budget_total" binding:"required"`
}

func (r BudgetRequest) ResolveBudgetTotal() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(r.BudgetTotal))
	if err != nil {
		return decimal.Decimal{}, ErrInvalidDecimal
	}
	return d, nil
}

type CompleteRequest struct {
	Note      string   `json:"note" binding:"required"`
	ImageURLs []string `json:"image_urls"`
}
