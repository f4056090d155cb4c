package handlers

import (
	"errors"
	"log"
	"net/http"

	response "lapor_publik/internal/adapter/http/dto/response"
	"lapor_publik/internal/usecase"
	"lapor_publik/pkg"

	"github.com/gin-gonic/gin"
)

// SupportHandler handles the citizen endorsement toggle.

type SupportHandler struct {
	usecase usecase.ISupportUseCase
}

func NewSupportHandler(uc usecase.ISupportUseCase) *SupportHandler {
	return &SupportHandler{usecase: uc}
}

// ToggleSupport flips the caller's endorsement of the report and returns
// the new state plus the recomputed count.
func (h *SupportHandler) ToggleSupport(c *gin.Context) {
	reportID := c.Param("id")
	actor := actorFromRequest(c)

	supported, count, err := h.usecase.Toggle(c.Request.Context(), actor.ID, reportID)
	if err != nil {
		log.Printf("[support][handler] toggle failed report_id=%s err=%v", reportID, err)
		appErr := mapSupportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SupportResponse{Supported: supported, SupportCount: count})
}

func mapSupportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		// Distinct from state errors so clients can prompt a login.
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Sign in to support a report", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrReportNotFound):
		return pkg.NewDomainErrorSimple("REPORT_NOT_FOUND", "Report not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidReportID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
