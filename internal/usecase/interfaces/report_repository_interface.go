package interfaces

import (
	"context"
	"lapor_publik/internal/domain/entities"
)

// IReportRepository abstracts DynamoDB persistence for the Report aggregate.
//
// ApplyTransition is the single write path for every lifecycle transition:
// the report mutation, the timeline append and (for progress recording) the
// progress row commit in one transaction. The expectedVersion argument is
// checked with a condition expression; a stale version yields
// entities.ErrVersionConflict and nothing is written.

type IReportRepository interface {
	Create(ctx context.Context, r entities.Report, created entities.TimelineEntry) (entities.Report, error)
	GetByID(ctx context.Context, id string) (entities.Report, error)
	ListByStatus(ctx context.Context, statuses []entities.ReportStatus) ([]entities.Report, error)
	ApplyTransition(ctx context.Context, r entities.Report, expectedVersion int64, entry entities.TimelineEntry, progress *entities.ProgressUpdate) (entities.Report, error)
	ListTimeline(ctx context.Context, reportID string) ([]entities.TimelineEntry, error)
	ListProgress(ctx context.Context, reportID string) ([]entities.ProgressUpdate, error)
}
