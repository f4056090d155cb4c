package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"lapor_publik/internal/domain/entities"
	"lapor_publik/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidReportID  = errors.New("invalid report id")
	ErrReportNotFound   = errors.New("report not found")
	ErrEmptyDescription = errors.New("description must not be empty")
	ErrEmptyLocation    = errors.New("location must not be empty")
	ErrEmptyNote        = errors.New("note must not be empty")
	ErrEmptyReason      = errors.New("reason must not be empty")
	ErrNoEvidenceImages = errors.New("at least one evidence image is required")
	ErrInvalidAgencyID  = errors.New("invalid agency id")
	ErrAgencyNotFound   = errors.New("agency not found")
	ErrUnauthenticated  = errors.New("caller is not authenticated")
)

// CreateReportCommand is the single internal creation command shared by the
// web handler and the SMS intake normalizer. Both channels funnel through
// IReportUseCase.Create so the creation guards exist exactly once.

type CreateReportCommand struct {
	ReporterID   string
	Category     string
	Description  string
	LocationText string
	Latitude     float64
	Longitude    float64
	ImageURLs    []string
}

// ReportDetail is the full read projection of one report: the aggregate,
// the merged timeline, the raw progress updates, and the derived support
// count. Budget percentage stays derived on the entity.

type ReportDetail struct {
	Report       entities.Report
	Timeline     []entities.TimelineItem
	Progress     []entities.ProgressUpdate
	SupportCount int
}

// IReportUseCase exposes the report lifecycle operations.
//
// Every mutating operation is one transition attempt: validate input, load
// the aggregate, apply the guarded transition, and persist atomically with
// an optimistic version check. On any error nothing is applied.

type IReportUseCase interface {
	Create(ctx context.Context, cmd CreateReportCommand) (entities.Report, error)
	Dispose(ctx context.Context, reportID string, actor entities.Actor, agencyID, note string) (entities.Report, error)
	Reject(ctx context.Context, reportID string, actor entities.Actor, reason string) (entities.Report, error)
	AgencyVerify(ctx context.Context, reportID string, actor entities.Actor, note string, ceiling *decimal.Decimal) (entities.Report, error)
	AgencyReject(ctx context.Context, reportID string, actor entities.Actor, reason string) (entities.Report, error)
	StartExecution(ctx context.Context, reportID string, actor entities.Actor) (entities.Report, error)
	RecordProgress(ctx context.Context, reportID string, actor entities.Actor, description string, delta decimal.Decimal, imageURLs []string) (entities.Report, error)
	ReviseCeiling(ctx context.Context, reportID string, actor entities.Actor, ceiling decimal.Decimal) (entities.Report, error)
	Complete(ctx context.Context, reportID string, actor entities.Actor, note string, evidenceURLs []string) (entities.Report, error)
	GetDetail(ctx context.Context, reportID string) (ReportDetail, error)
	ListQueue(ctx context.Context, statuses []entities.ReportStatus) ([]entities.Report, error)
}

type ReportUseCase struct {
	repo        interfaces.IReportRepository
	agencyRepo  interfaces.IAgencyRepository
	supportRepo interfaces.ISupportRepository
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(repo interfaces.IReportRepository, agencyRepo interfaces.IAgencyRepository, supportRepo interfaces.ISupportRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo, agencyRepo: agencyRepo, supportRepo: supportRepo}
}

func (u *ReportUseCase) Create(ctx context.Context, cmd CreateReportCommand) (entities.Report, error) {
	reporterID := strings.TrimSpace(cmd.ReporterID)
	if reporterID == "" {
		return entities.Report{}, ErrUnauthenticated
	}
	category, err := entities.ParseCategory(cmd.Category)
	if err != nil {
		return entities.Report{}, err
	}
	description := strings.TrimSpace(cmd.Description)
	if description == "" {
		return entities.Report{}, ErrEmptyDescription
	}
	location := strings.TrimSpace(cmd.LocationText)
	if location == "" {
		return entities.Report{}, ErrEmptyLocation
	}

	now := time.Now().UTC()
	r := entities.Report{
		ID:           uuid.NewString(),
		Category:     category,
		Description:  description,
		LocationText: location,
		Latitude:     cmd.Latitude,
		Longitude:    cmd.Longitude,
		Status:       entities.StatusPendingReview,
		ReporterID:   reporterID,
		ImageURLs:    cmd.ImageURLs,
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created := r.Submit(now)

	stored, err := u.repo.Create(ctx, r, created)
	if err != nil {
		log.Printf("[report][usecase] create failed reporter_id=%s err=%v", reporterID, err)
		return entities.Report{}, err
	}
	log.Printf("[report][usecase] create success report_id=%s category=%s", stored.ID, stored.Category)
	return stored, nil
}

func (u *ReportUseCase) Dispose(ctx context.Context, reportID string, actor entities.Actor, agencyID, note string) (entities.Report, error) {
	agencyID = strings.TrimSpace(agencyID)
	if agencyID == "" {
		return entities.Report{}, ErrInvalidAgencyID
	}
	note = strings.TrimSpace(note)

	agency, err := u.agencyRepo.GetByID(ctx, agencyID)
	if err != nil {
		return entities.Report{}, err
	}
	if agency.ID == "" {
		return entities.Report{}, ErrAgencyNotFound
	}

	return u.transition(ctx, reportID, func(r *entities.Report, now time.Time) (entities.TimelineEntry, *entities.ProgressUpdate, error) {
		entry, err := r.Dispose(actor, agency, note, now)
		return entry, nil, err
	})
}

func (u *ReportUseCase) Reject(ctx context.Context, reportID string, actor entities.Actor, reason string) (entities.Report, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.Report{}, ErrEmptyReason
	}
	return u.transition(ctx, reportID, func(r *entities.Report, now time.Time) (entities.TimelineEntry, *entities.ProgressUpdate, error) {
		entry, err := r.Reject(actor, reason, now)
		return entry, nil, err
	})
}

func (u *ReportUseCase) AgencyVerify(ctx context.Context, reportID string, actor entities.Actor, note string, ceiling *decimal.Decimal) (entities.Report, error) {
	note = strings.TrimSpace(note)
	if note == "" {
		return entities.Report{}, ErrEmptyNote
	}
	return u.transition(ctx, reportID, func(r *entities.Report, now time.Time) (entities.TimelineEntry, *entities.ProgressUpdate, error) {
		entry, err := r.AgencyVerify(actor, note, ceiling, now)
		return entry, nil, err
	})
}

func (u *ReportUseCase) AgencyReject(ctx context.Context, reportID string, actor entities.Actor, reason string) (entities.Report, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.Report{}, ErrEmptyReason
	}
	return u.transition(ctx, reportID, func(r *entities.Report, now time.Time) (entities.TimelineEntry, *entities.ProgressUpdate, error) {
		entry, err := r.AgencyReject(actor, reason, now)
		return entry, nil, err
	})
}

func (u *ReportUseCase) StartExecution(ctx context.Context, reportID string, actor entities.Actor) (entities.Report, error) {
	return u.transition(ctx, reportID, func(r *entities.Report, now time.Time) (entities.TimelineEntry, *entities.ProgressUpdate, error) {
		entry, err := r.StartExecution(actor, now)
		return entry, nil, err
	})
}

func (u *ReportUseCase) RecordProgress(ctx context.Context, reportID string, actor entities.Actor, description string, delta decimal.Decimal, imageURLs []string) (entities.Report, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return entities.Report{}, ErrEmptyDescription
	}
	return u.transition(ctx, reportID, func(r *entities.Report, now time.Time) (entities.TimelineEntry, *entities.ProgressUpdate, error) {
		pu, entry, err := r.RecordProgress(actor, description, delta, imageURLs, now)
		if err != nil {
			return entities.TimelineEntry{}, nil, err
		}
		return entry, &pu, nil
	})
}

func (u *ReportUseCase) ReviseCeiling(ctx context.Context, reportID string, actor entities.Actor, ceiling decimal.Decimal) (entities.Report, error) {
	return u.transition(ctx, reportID, func(r *entities.Report, now time.Time) (entities.TimelineEntry, *entities.ProgressUpdate, error) {
		entry, err := r.ReviseCeiling(actor, ceiling, now)
		return entry, nil, err
	})
}

func (u *ReportUseCase) Complete(ctx context.Context, reportID string, actor entities.Actor, note string, evidenceURLs []string) (entities.Report, error) {
	note = strings.TrimSpace(note)
	if note == "" {
		return entities.Report{}, ErrEmptyNote
	}
	if len(evidenceURLs) == 0 {
		return entities.Report{}, ErrNoEvidenceImages
	}
	return u.transition(ctx, reportID, func(r *entities.Report, now time.Time) (entities.TimelineEntry, *entities.ProgressUpdate, error) {
		entry, err := r.Complete(actor, note, evidenceURLs, now)
		return entry, nil, err
	})
}

// transition loads the report, applies one guarded mutation and persists it
// together with its timeline entry (and optional progress row) under the
// loaded version. The repository rejects stale versions, so concurrent
// transitions on the same report serialize and the loser gets
// entities.ErrVersionConflict.
func (u *ReportUseCase) transition(
	ctx context.Context,
	reportID string,
	apply func(r *entities.Report, now time.Time) (entities.TimelineEntry, *entities.ProgressUpdate, error),
) (entities.Report, error) {
	reportID = strings.TrimSpace(reportID)
	if reportID == "" {
		return entities.Report{}, ErrInvalidReportID
	}

	r, err := u.repo.GetByID(ctx, reportID)
	if err != nil {
		return entities.Report{}, err
	}
	if r.ID == "" {
		return entities.Report{}, ErrReportNotFound
	}

	expectedVersion := r.Version
	now := time.Now().UTC()
	entry, progress, err := apply(&r, now)
	if err != nil {
		log.Printf("[report][usecase] transition rejected report_id=%s status=%s err=%v", reportID, r.Status, err)
		return entities.Report{}, err
	}

	stored, err := u.repo.ApplyTransition(ctx, r, expectedVersion, entry, progress)
	if err != nil {
		log.Printf("[report][usecase] transition persist failed report_id=%s event=%s err=%v", reportID, entry.Event, err)
		return entities.Report{}, err
	}
	log.Printf("[report][usecase] transition applied report_id=%s event=%s status=%s", reportID, entry.Event, stored.Status)
	return stored, nil
}

func (u *ReportUseCase) GetDetail(ctx context.Context, reportID string) (ReportDetail, error) {
	reportID = strings.TrimSpace(reportID)
	if reportID == "" {
		return ReportDetail{}, ErrInvalidReportID
	}

	r, err := u.repo.GetByID(ctx, reportID)
	if err != nil {
		return ReportDetail{}, err
	}
	if r.ID == "" {
		return ReportDetail{}, ErrReportNotFound
	}

	entries, err := u.repo.ListTimeline(ctx, reportID)
	if err != nil {
		return ReportDetail{}, err
	}
	updates, err := u.repo.ListProgress(ctx, reportID)
	if err != nil {
		return ReportDetail{}, err
	}
	count, err := u.supportRepo.CountByReportID(ctx, reportID)
	if err != nil {
		return ReportDetail{}, err
	}

	return ReportDetail{
		Report:       r,
		Timeline:     entities.MergeTimeline(entries, updates),
		Progress:     updates,
		SupportCount: count,
	}, nil
}

func (u *ReportUseCase) ListQueue(ctx context.Context, statuses []entities.ReportStatus) ([]entities.Report, error) {
	if len(statuses) == 0 {
		statuses = entities.AdminQueueStatuses()
	}
	return u.repo.ListByStatus(ctx, statuses)
}
