package response

import "lapor_publik/internal/domain/entities"

type AgencyResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CategoryTag string `json:"category_tag"`
}

func FromAgency(a entities.Agency) AgencyResponse {
	return AgencyResponse{
		ID:          a.ID,
		Name:        a.Name,
		CategoryTag: string(a.CategoryTag),
	}
}
