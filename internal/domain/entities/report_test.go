package entities

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

var (
	admin       = Actor{ID: "admin-1", Role: RoleAdmin}
	agencyActor = Actor{ID: "agent-1", Role: RoleAgency, AgencyID: "ag-1"}
	roadAgency  = Agency{ID: "ag-1", Name: "Dinas Jalan", CategoryTag: CategoryRoad}
)

func newTestReport(status ReportStatus) *Report {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	return &Report{
		ID:           "rep-1",
		Category:     CategoryRoad,
		Description:  "Jalan berlubang besar",
		LocationText: "Jl. Sudirman No 10",
		Status:       status,
		ReporterID:   "cit-1",
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestReport_Submit(t *testing.T) {
	r := newTestReport(StatusPendingReview)
	now := time.Now().UTC()

	entry := r.Submit(now)
	if entry.Event != EventCreated {
		t.Fatalf("expected CREATED, got %s", entry.Event)
	}
	if entry.Seq != 1 || r.TimelineSeq != 1 {
		t.Fatalf("expected seq 1, got entry=%d report=%d", entry.Seq, r.TimelineSeq)
	}
	if entry.ActorID != "cit-1" {
		t.Fatalf("expected reporter as actor, got %s", entry.ActorID)
	}
}

func TestReport_Dispose(t *testing.T) {
	t.Run("non-admin forbidden", func(t *testing.T) {
		r := newTestReport(StatusPendingReview)
		if _, err := r.Dispose(agencyActor, roadAgency, "", time.Now()); !errors.Is(err, ErrActorNotPermitted) {
			t.Fatalf("expected ErrActorNotPermitted, got %v", err)
		}
		if r.Status != StatusPendingReview {
			t.Fatalf("status changed on rejected transition: %s", r.Status)
		}
	})

	t.Run("from pending review", func(t *testing.T) {
		r := newTestReport(StatusPendingReview)
		now := time.Now().UTC()
		entry, err := r.Dispose(admin, roadAgency, "handle this", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Status != StatusDisposed || r.AgencyID != "ag-1" || r.AdminNote != "handle this" {
			t.Fatalf("unexpected report state: %+v", r)
		}
		if entry.Event != EventDisposed || entry.ActorID != "admin-1" {
			t.Fatalf("unexpected entry: %+v", entry)
		}
	})

	t.Run("from returned by agency", func(t *testing.T) {
		r := newTestReport(StatusReturnedByAgency)
		if _, err := r.Dispose(admin, roadAgency, "", time.Now()); err != nil {
			t.Fatalf("re-dispose after agency return must be allowed, got %v", err)
		}
	})

	t.Run("invalid source status", func(t *testing.T) {
		for _, s := range []ReportStatus{StatusDisposed, StatusVerifiedByAgency, StatusInProgress, StatusRejected, StatusCompleted} {
			r := newTestReport(s)
			if _, err := r.Dispose(admin, roadAgency, "", time.Now()); !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("%s: expected ErrInvalidTransition, got %v", s, err)
			}
		}
	})
}

func TestReport_Reject(t *testing.T) {
	t.Run("terminates report", func(t *testing.T) {
		r := newTestReport(StatusPendingReview)
		entry, err := r.Reject(admin, "duplicate of rep-0", time.Now())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Status != StatusRejected || r.RejectionReason != "duplicate of rep-0" {
			t.Fatalf("unexpected report state: %+v", r)
		}
		if !r.Status.IsTerminal() {
			t.Fatalf("REJECTED must be terminal")
		}
		if entry.Event != EventRejected {
			t.Fatalf("expected REJECTED entry, got %s", entry.Event)
		}
	})

	t.Run("non-admin forbidden", func(t *testing.T) {
		r := newTestReport(StatusPendingReview)
		citizen := Actor{ID: "cit-1", Role: RoleCitizen}
		if _, err := r.Reject(citizen, "x", time.Now()); !errors.Is(err, ErrActorNotPermitted) {
			t.Fatalf("expected ErrActorNotPermitted, got %v", err)
		}
	})
}

func TestReport_AgencyVerify(t *testing.T) {
	t.Run("wrong agency forbidden", func(t *testing.T) {
		r := newTestReport(StatusDisposed)
		r.AgencyID = "ag-1"
		other := Actor{ID: "agent-2", Role: RoleAgency, AgencyID: "ag-2"}
		if _, err := r.AgencyVerify(other, "ok", nil, time.Now()); !errors.Is(err, ErrActorNotPermitted) {
			t.Fatalf("expected ErrActorNotPermitted, got %v", err)
		}
	})

	t.Run("authorization checked before status", func(t *testing.T) {
		r := newTestReport(StatusInProgress)
		r.AgencyID = "ag-1"
		other := Actor{ID: "agent-2", Role: RoleAgency, AgencyID: "ag-2"}
		if _, err := r.AgencyVerify(other, "ok", nil, time.Now()); !errors.Is(err, ErrActorNotPermitted) {
			t.Fatalf("expected ErrActorNotPermitted before ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("verify with ceiling", func(t *testing.T) {
		r := newTestReport(StatusDisposed)
		r.AgencyID = "ag-1"
		ceiling := dec("5000000")
		entry, err := r.AgencyVerify(agencyActor, "verified on site", &ceiling, time.Now())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Status != StatusVerifiedByAgency || r.AgencyNote != "verified on site" {
			t.Fatalf("unexpected report state: %+v", r)
		}
		if r.Budget.Ceiling == nil || !r.Budget.Ceiling.Equal(ceiling) {
			t.Fatalf("ceiling not recorded: %+v", r.Budget)
		}
		if entry.Event != EventVerifiedByAgency {
			t.Fatalf("unexpected entry: %+v", entry)
		}
	})

	t.Run("verify without ceiling", func(t *testing.T) {
		r := newTestReport(StatusDisposed)
		r.AgencyID = "ag-1"
		if _, err := r.AgencyVerify(agencyActor, "verified", nil, time.Now()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Budget.Ceiling != nil {
			t.Fatalf("ceiling must stay unset")
		}
	})

	t.Run("negative ceiling rejected before status change", func(t *testing.T) {
		r := newTestReport(StatusDisposed)
		r.AgencyID = "ag-1"
		bad := dec("-1")
		if _, err := r.AgencyVerify(agencyActor, "verified", &bad, time.Now()); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
		if r.Status != StatusDisposed {
			t.Fatalf("status changed on rejected transition: %s", r.Status)
		}
	})
}

func TestReport_AgencyReject(t *testing.T) {
	r := newTestReport(StatusDisposed)
	r.AgencyID = "ag-1"
	entry, err := r.AgencyReject(agencyActor, "not our jurisdiction", time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Status != StatusReturnedByAgency {
		t.Fatalf("expected RETURNED_BY_AGENCY, got %s", r.Status)
	}
	if r.Status.IsTerminal() {
		t.Fatalf("agency rejection must not be terminal")
	}
	if entry.Event != EventRejectedByAgency || entry.Description != "not our jurisdiction" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
}

func TestReport_StartExecution(t *testing.T) {
	t.Run("from verified", func(t *testing.T) {
		r := newTestReport(StatusVerifiedByAgency)
		r.AgencyID = "ag-1"
		entry, err := r.StartExecution(agencyActor, time.Now())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Status != StatusInProgress || entry.Event != EventExecutionStarted {
			t.Fatalf("unexpected state: status=%s entry=%+v", r.Status, entry)
		}
	})

	t.Run("from disposed", func(t *testing.T) {
		r := newTestReport(StatusDisposed)
		r.AgencyID = "ag-1"
		if _, err := r.StartExecution(agencyActor, time.Now()); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestReport_RecordProgress(t *testing.T) {
	inProgress := func(ceiling string) *Report {
		r := newTestReport(StatusInProgress)
		r.AgencyID = "ag-1"
		if ceiling != "" {
			c := dec(ceiling)
			r.Budget.Ceiling = &c
		}
		return r
	}

	t.Run("success shares seq between entry and update", func(t *testing.T) {
		r := inProgress("1000")
		r.TimelineSeq = 4
		pu, entry, err := r.RecordProgress(agencyActor, "dug up the old asphalt", dec("250"), []string{"https://img/1.jpg"}, time.Now())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entry.Seq != 5 || pu.Seq != 5 {
			t.Fatalf("expected shared seq 5, got entry=%d update=%d", entry.Seq, pu.Seq)
		}
		if entry.Event != EventProgressUpdate {
			t.Fatalf("unexpected event: %s", entry.Event)
		}
		if entry.BudgetDelta == nil || !entry.BudgetDelta.Equal(dec("250")) {
			t.Fatalf("delta not carried on entry: %+v", entry)
		}
		if !r.Budget.Used.Equal(dec("250")) {
			t.Fatalf("spend not charged: %s", r.Budget.Used)
		}
		if pu.AgencyID != "ag-1" || len(pu.ImageURLs) != 1 {
			t.Fatalf("unexpected update: %+v", pu)
		}
	})

	t.Run("overspend rejected atomically", func(t *testing.T) {
		r := inProgress("100")
		_, _, err := r.RecordProgress(agencyActor, "work", dec("150"), nil, time.Now())
		if !errors.Is(err, ErrOverBudget) {
			t.Fatalf("expected ErrOverBudget, got %v", err)
		}
		if r.TimelineSeq != 0 || !r.Budget.Used.IsZero() {
			t.Fatalf("rejected progress mutated report: seq=%d used=%s", r.TimelineSeq, r.Budget.Used)
		}
	})

	t.Run("positive delta without ceiling", func(t *testing.T) {
		r := inProgress("")
		if _, _, err := r.RecordProgress(agencyActor, "work", dec("1"), nil, time.Now()); !errors.Is(err, ErrCeilingNotSet) {
			t.Fatalf("expected ErrCeilingNotSet, got %v", err)
		}
	})

	t.Run("zero delta without ceiling allowed", func(t *testing.T) {
		r := inProgress("")
		if _, _, err := r.RecordProgress(agencyActor, "site survey", decimal.Zero, nil, time.Now()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not in progress", func(t *testing.T) {
		r := newTestReport(StatusVerifiedByAgency)
		r.AgencyID = "ag-1"
		if _, _, err := r.RecordProgress(agencyActor, "work", decimal.Zero, nil, time.Now()); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestReport_ReviseCeiling(t *testing.T) {
	t.Run("while verified", func(t *testing.T) {
		r := newTestReport(StatusVerifiedByAgency)
		r.AgencyID = "ag-1"
		entry, err := r.ReviseCeiling(agencyActor, dec("2000"), time.Now())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Status != StatusVerifiedByAgency {
			t.Fatalf("revision must not change status, got %s", r.Status)
		}
		if entry.Event != EventBudgetRevised {
			t.Fatalf("unexpected event: %s", entry.Event)
		}
	})

	t.Run("cannot undercut spend", func(t *testing.T) {
		r := newTestReport(StatusInProgress)
		r.AgencyID = "ag-1"
		c := dec("1000")
		r.Budget.Ceiling = &c
		r.Budget.Used = dec("800")
		if _, err := r.ReviseCeiling(agencyActor, dec("500"), time.Now()); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
		if !r.Budget.Ceiling.Equal(dec("1000")) {
			t.Fatalf("rejected revision mutated ceiling: %s", r.Budget.Ceiling)
		}
	})

	t.Run("while disposed", func(t *testing.T) {
		r := newTestReport(StatusDisposed)
		r.AgencyID = "ag-1"
		if _, err := r.ReviseCeiling(agencyActor, dec("1"), time.Now()); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestReport_Complete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r := newTestReport(StatusInProgress)
		r.AgencyID = "ag-1"
		entry, err := r.Complete(agencyActor, "pothole resurfaced", []string{"https://img/done.jpg"}, time.Now())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Status != StatusCompleted || r.CompletionNote != "pothole resurfaced" || len(r.CompletionImageURLs) != 1 {
			t.Fatalf("unexpected report state: %+v", r)
		}
		if !r.Status.IsTerminal() {
			t.Fatalf("COMPLETED must be terminal")
		}
		if entry.Event != EventCompleted {
			t.Fatalf("unexpected event: %s", entry.Event)
		}
	})

	t.Run("only from in progress", func(t *testing.T) {
		for _, s := range []ReportStatus{StatusPendingReview, StatusDisposed, StatusVerifiedByAgency, StatusRejected, StatusCompleted} {
			r := newTestReport(s)
			r.AgencyID = "ag-1"
			if _, err := r.Complete(agencyActor, "done", []string{"x"}, time.Now()); !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("%s: expected ErrInvalidTransition, got %v", s, err)
			}
		}
	})
}

func TestReport_TerminalStatesRejectEverything(t *testing.T) {
	for _, s := range []ReportStatus{StatusRejected, StatusCompleted} {
		r := newTestReport(s)
		r.AgencyID = "ag-1"
		if _, err := r.Dispose(admin, roadAgency, "", time.Now()); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("%s dispose: expected ErrInvalidTransition, got %v", s, err)
		}
		if _, err := r.Reject(admin, "x", time.Now()); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("%s reject: expected ErrInvalidTransition, got %v", s, err)
		}
		if _, err := r.AgencyVerify(agencyActor, "x", nil, time.Now()); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("%s verify: expected ErrInvalidTransition, got %v", s, err)
		}
		if _, err := r.StartExecution(agencyActor, time.Now()); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("%s start: expected ErrInvalidTransition, got %v", s, err)
		}
		if _, _, err := r.RecordProgress(agencyActor, "x", decimal.Zero, nil, time.Now()); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("%s progress: expected ErrInvalidTransition, got %v", s, err)
		}
	}
}
