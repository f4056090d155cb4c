package interfaces

import (
	"context"
	"lapor_publik/internal/domain/entities"
)

// ICitizenRepository abstracts DynamoDB persistence for Citizen identities.
//
// GetByPhone backs the SMS intake path (phone-index GSI). Lookups follow the
// empty-ID-means-not-found convention.

type ICitizenRepository interface {
	GetByID(ctx context.Context, id string) (entities.Citizen, error)
	GetByPhone(ctx context.Context, phone string) (entities.Citizen, error)
	Create(ctx context.Context, c entities.Citizen) (entities.Citizen, error)
}
