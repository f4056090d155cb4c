package usecase

import (
	"context"

	"lapor_publik/internal/domain/entities"
	"lapor_publik/internal/usecase/interfaces"
)

// IAgencyUseCase exposes the agency reference data used by the admin UI to
// recommend a routing target for a report's category.

type IAgencyUseCase interface {
	ListByCategory(ctx context.Context, category string) ([]entities.Agency, error)
}

type AgencyUseCase struct {
	repo interfaces.IAgencyRepository
}

var _ IAgencyUseCase = (*AgencyUseCase)(nil)

func NewAgencyUseCase(repo interfaces.IAgencyRepository) *AgencyUseCase {
	return &AgencyUseCase{repo: repo}
}

func (u *AgencyUseCase) ListByCategory(ctx context.Context, category string) ([]entities.Agency, error) {
	c, err := entities.ParseCategory(category)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByCategory(ctx, c)
}
