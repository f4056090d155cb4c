package interfaces

import (
	"context"
	"lapor_publik/internal/domain/entities"
)

// IAgencyRepository abstracts the mostly-static agency reference table.

type IAgencyRepository interface {
	GetByID(ctx context.Context, id string) (entities.Agency, error)
	ListByCategory(ctx context.Context, category entities.Category) ([]entities.Agency, error)
}
