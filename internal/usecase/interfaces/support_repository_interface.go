package interfaces

import (
	"context"
	"lapor_publik/internal/domain/entities"
)

// ISupportRepository abstracts DynamoDB persistence for Support rows.
//
// Add must fail with entities.ErrDuplicateSupport when the
// (report, citizen) pair already exists, so concurrent toggles surface the
// race instead of double-inserting. Count always reflects the rows.

type ISupportRepository interface {
	Exists(ctx context.Context, reportID, citizenID string) (bool, error)
	Add(ctx context.Context, s entities.Support) error
	Remove(ctx context.Context, reportID, citizenID string) error
	CountByReportID(ctx context.Context, reportID string) (int, error)
}
