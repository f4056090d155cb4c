package entities

import (
	"errors"
	"time"
)

var ErrDuplicateSupport = errors.New("support already exists for this citizen and report")

// Role classifies an authenticated actor. Identity verification itself is
// handled by an external collaborator; the service only consumes the result.

type Role string

const (
	RoleCitizen Role = "citizen"
	RoleAdmin   Role = "admin"
	RoleAgency  Role = "agency"
)

// Actor is the authenticated identity driving a transition. AgencyID is set
// only for agency staff and must match the report's assigned agency.

type Actor struct {
	ID       string `json:"id"`
	Role     Role   `json:"role"`
	AgencyID string `json:"agency_id,omitempty"`
}

// Citizen is a registered reporter. SMS-originated reporters are synthesized
// on first contact with a placeholder email derived from the phone digits;
// the phone number is visible only to privileged roles.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (phone-index): phone

type Citizen struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	AgencyID     string    `json:"agency_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Agency is a mostly-static reference entity. CategoryTag drives the
// category-to-agency routing recommendation shown to admins.

type Agency struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	CategoryTag Category `json:"category_tag"`
}

// Support is a citizen's endorsement of a report, one row per
// (citizen, report) pair.
//
// Storage model (DynamoDB):
//   - PK: report_id, SK: citizen_id
//
// The exposed support count is always computed from the rows, never cached.

type Support struct {
	ReportID  string    `json:"report_id"`
	CitizenID string    `json:"citizen_id"`
	CreatedAt time.Time `json:"created_at"`
}
