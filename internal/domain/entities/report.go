package entities

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ReportStatus represents the lifecycle position of a citizen report.
//
// Domain notes:
//   - PENDING_REVIEW and RETURNED_BY_AGENCY are both "needs admin action";
//     the admin queue groups them together.
//   - REJECTED and COMPLETED are terminal; no transition leaves them.
//   - An agency rejection does not terminate the report, it loops it back
//     to the admin as RETURNED_BY_AGENCY.

type ReportStatus string

const (
	StatusPendingReview    ReportStatus = "PENDING_REVIEW"
	StatusReturnedByAgency ReportStatus = "RETURNED_BY_AGENCY"
	StatusDisposed         ReportStatus = "DISPOSED"
	StatusVerifiedByAgency ReportStatus = "VERIFIED_BY_AGENCY"
	StatusInProgress       ReportStatus = "IN_PROGRESS"
	StatusRejected         ReportStatus = "REJECTED"
	StatusCompleted        ReportStatus = "COMPLETED"
)

// IsTerminal reports whether no further transition may leave the status.
func (s ReportStatus) IsTerminal() bool {
	return s == StatusRejected || s == StatusCompleted
}

// AdminQueueStatuses are the statuses an admin must act on.
func AdminQueueStatuses() []ReportStatus {
	return []ReportStatus{StatusPendingReview, StatusReturnedByAgency}
}

var (
	ErrInvalidTransition = errors.New("transition not allowed from current status")
	ErrActorNotPermitted = errors.New("actor not permitted for this transition")
	ErrVersionConflict   = errors.New("report was modified concurrently")
)

// Report is the aggregate root for a citizen infrastructure complaint.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (status-index): status
//
// Concurrency:
//   - Version is bumped by exactly 1 on every applied transition and is
//     checked with a condition expression, so racing writers serialize and
//     the loser observes ErrVersionConflict.
//   - TimelineSeq is the per-report insertion counter; every appended
//     timeline entry takes the next value inside the same transaction.

type Report struct {
	ID           string       `json:"id"`
	Category     Category     `json:"category"`
	Description  string       `json:"description"`
	LocationText string       `json:"location_text"`
	Latitude     float64      `json:"latitude"`
	Longitude    float64      `json:"longitude"`
	Status       ReportStatus `json:"status"`

	ReporterID string   `json:"reporter_id"`
	ImageURLs  []string `json:"image_urls,omitempty"`

	AgencyID        string `json:"agency_id,omitempty"`
	RejectionReason string `json:"rejection_reason,omitempty"`
	AdminNote       string `json:"admin_note,omitempty"`
	AgencyNote      string `json:"agency_note,omitempty"`
	CompletionNote  string `json:"completion_note,omitempty"`

	CompletionImageURLs []string `json:"completion_image_urls,omitempty"`

	Budget Ledger `json:"budget"`

	TimelineSeq int64     `json:"timeline_seq"`
	Version     int64     `json:"version"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// appendEntry allocates the next timeline sequence number and builds the
// entry recording this transition. Entries are written in the same
// transaction as the report mutation, never on their own.
func (r *Report) appendEntry(event TimelineEventType, actorID, title, description string, delta *decimal.Decimal, now time.Time) TimelineEntry {
	r.TimelineSeq++
	return TimelineEntry{
		ReportID:    r.ID,
		Seq:         r.TimelineSeq,
		Event:       event,
		ActorID:     actorID,
		Title:       title,
		Description: description,
		BudgetDelta: delta,
		CreatedAt:   now,
	}
}

// Submit records the creation event. It is the only entry point for both the
// web form and the SMS intake; callers validate category/description/location
// before constructing the report.
func (r *Report) Submit(now time.Time) TimelineEntry {
	return r.appendEntry(EventCreated, r.ReporterID, "Report submitted", "Report received and awaiting admin review", nil, now)
}

func (r *Report) authorizeAssignedAgency(actor Actor) error {
	if actor.Role != RoleAgency || actor.AgencyID == "" || actor.AgencyID != r.AgencyID {
		return ErrActorNotPermitted
	}
	return nil
}

// Dispose routes the report to an agency. Admin only, from either of the
// admin-queue statuses. Unbounded dispose/agency-reject cycles are allowed.
func (r *Report) Dispose(actor Actor, agency Agency, note string, now time.Time) (TimelineEntry, error) {
	if actor.Role != RoleAdmin {
		return TimelineEntry{}, ErrActorNotPermitted
	}
	if r.Status != StatusPendingReview && r.Status != StatusReturnedByAgency {
		return TimelineEntry{}, ErrInvalidTransition
	}
	r.Status = StatusDisposed
	r.AgencyID = agency.ID
	r.AdminNote = note
	r.UpdatedAt = now
	title := fmt.Sprintf("Disposed to %s", agency.Name)
	return r.appendEntry(EventDisposed, actor.ID, title, note, nil, now), nil
}

// Reject terminates the report with an admin rejection reason.
func (r *Report) Reject(actor Actor, reason string, now time.Time) (TimelineEntry, error) {
	if actor.Role != RoleAdmin {
		return TimelineEntry{}, ErrActorNotPermitted
	}
	if r.Status != StatusPendingReview && r.Status != StatusReturnedByAgency {
		return TimelineEntry{}, ErrInvalidTransition
	}
	r.Status = StatusRejected
	r.RejectionReason = reason
	r.UpdatedAt = now
	return r.appendEntry(EventRejected, actor.ID, "Report rejected", reason, nil, now), nil
}

// AgencyVerify accepts the disposed report on the agency side, optionally
// fixing the budget ceiling in the same transition.
func (r *Report) AgencyVerify(actor Actor, note string, ceiling *decimal.Decimal, now time.Time) (TimelineEntry, error) {
	if err := r.authorizeAssignedAgency(actor); err != nil {
		return TimelineEntry{}, err
	}
	if r.Status != StatusDisposed {
		return TimelineEntry{}, ErrInvalidTransition
	}
	if ceiling != nil {
		if err := r.Budget.SetCeiling(*ceiling); err != nil {
			return TimelineEntry{}, err
		}
	}
	r.Status = StatusVerifiedByAgency
	r.AgencyNote = note
	r.UpdatedAt = now
	return r.appendEntry(EventVerifiedByAgency, actor.ID, "Verified by agency", note, nil, now), nil
}

// AgencyReject bounces the report back to the admin queue. Not terminal.
func (r *Report) AgencyReject(actor Actor, reason string, now time.Time) (TimelineEntry, error) {
	if err := r.authorizeAssignedAgency(actor); err != nil {
		return TimelineEntry{}, err
	}
	if r.Status != StatusDisposed {
		return TimelineEntry{}, ErrInvalidTransition
	}
	r.Status = StatusReturnedByAgency
	r.UpdatedAt = now
	return r.appendEntry(EventRejectedByAgency, actor.ID, "Returned by agency", reason, nil, now), nil
}

// StartExecution moves a verified report into active work. Explicitly
// actor-initiated so the timeline shows who started the work and when.
func (r *Report) StartExecution(actor Actor, now time.Time) (TimelineEntry, error) {
	if err := r.authorizeAssignedAgency(actor); err != nil {
		return TimelineEntry{}, err
	}
	if r.Status != StatusVerifiedByAgency {
		return TimelineEntry{}, ErrInvalidTransition
	}
	r.Status = StatusInProgress
	r.UpdatedAt = now
	return r.appendEntry(EventExecutionStarted, actor.ID, "Execution started", "", nil, now), nil
}

// RecordProgress registers a work-in-progress update, charging its spend
// delta against the ledger. The returned ProgressUpdate and TimelineEntry
// must be persisted in the same transaction as the report mutation.
func (r *Report) RecordProgress(actor Actor, description string, delta decimal.Decimal, imageURLs []string, now time.Time) (ProgressUpdate, TimelineEntry, error) {
	if err := r.authorizeAssignedAgency(actor); err != nil {
		return ProgressUpdate{}, TimelineEntry{}, err
	}
	if r.Status != StatusInProgress {
		return ProgressUpdate{}, TimelineEntry{}, ErrInvalidTransition
	}
	if err := r.Budget.RecordSpend(delta); err != nil {
		return ProgressUpdate{}, TimelineEntry{}, err
	}
	r.UpdatedAt = now
	entry := r.appendEntry(EventProgressUpdate, actor.ID, "Progress update", description, &delta, now)
	pu := ProgressUpdate{
		ReportID:    r.ID,
		Seq:         entry.Seq,
		AgencyID:    r.AgencyID,
		ActorID:     actor.ID,
		Description: description,
		BudgetDelta: delta,
		ImageURLs:   imageURLs,
		CreatedAt:   now,
	}
	return pu, entry, nil
}

// ReviseCeiling replaces the budget ceiling. Allowed while verified or in
// progress; the status itself does not change.
func (r *Report) ReviseCeiling(actor Actor, ceiling decimal.Decimal, now time.Time) (TimelineEntry, error) {
	if err := r.authorizeAssignedAgency(actor); err != nil {
		return TimelineEntry{}, err
	}
	if r.Status != StatusVerifiedByAgency && r.Status != StatusInProgress {
		return TimelineEntry{}, ErrInvalidTransition
	}
	if err := r.Budget.SetCeiling(ceiling); err != nil {
		return TimelineEntry{}, err
	}
	r.UpdatedAt = now
	title := fmt.Sprintf("Budget ceiling revised to %s", ceiling.String())
	return r.appendEntry(EventBudgetRevised, actor.ID, title, "", nil, now), nil
}

// Complete closes the report. Requires a completion note and at least one
// evidence image; callers validate both before invoking the transition.
func (r *Report) Complete(actor Actor, note string, evidenceURLs []string, now time.Time) (TimelineEntry, error) {
	if err := r.authorizeAssignedAgency(actor); err != nil {
		return TimelineEntry{}, err
	}
	if r.Status != StatusInProgress {
		return TimelineEntry{}, ErrInvalidTransition
	}
	r.Status = StatusCompleted
	r.CompletionNote = note
	r.CompletionImageURLs = evidenceURLs
	r.UpdatedAt = now
	return r.appendEntry(EventCompleted, actor.ID, "Report completed", note, nil, now), nil
}
