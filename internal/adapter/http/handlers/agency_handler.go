package handlers

import (
	"errors"
	"net/http"

	response "lapor_publik/internal/adapter/http/dto/response"
	"lapor_publik/internal/domain/entities"
	"lapor_publik/internal/usecase"
	"lapor_publik/pkg"

	"github.com/gin-gonic/gin"
)

// AgencyHandler serves the agency reference data.

type AgencyHandler struct {
	usecase usecase.IAgencyUseCase
}

func NewAgencyHandler(uc usecase.IAgencyUseCase) *AgencyHandler {
	return &AgencyHandler{usecase: uc}
}

// ListAgencies returns the agencies tagged with the given category, the
// routing recommendation an admin sees before disposing a report.
func (h *AgencyHandler) ListAgencies(c *gin.Context) {
	agencies, err := h.usecase.ListByCategory(c.Request.Context(), c.Query("category"))
	if err != nil {
		appErr := mapAgencyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.AgencyResponse, 0, len(agencies))
	for _, a := range agencies {
		out = append(out, response.FromAgency(a))
	}
	c.JSON(http.StatusOK, out)
}

func mapAgencyError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrUnknownCategory):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
