package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "lapor_publik/internal/adapter/http/dto/request"
	response "lapor_publik/internal/adapter/http/dto/response"
	"lapor_publik/internal/domain/entities"
	"lapor_publik/internal/usecase"
	"lapor_publik/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidReportPayload = pkg.NewDomainErrorSimple("INVALID_REPORT_INPUT", "Invalid report payload", http.StatusBadRequest)

// ReportHandler handles HTTP requests for the report lifecycle.

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// CreateReport accepts the web-channel creation payload. The reporter
// identity comes from the session headers, never from the body.
func (h *ReportHandler) CreateReport(c *gin.Context) {
	var payload request.CreateReportRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReportPayload.HTTPStatus, errInvalidReportPayload.ToHTTPError())
		return
	}

	actor := actorFromRequest(c)
	report, err := h.usecase.Create(c.Request.Context(), usecase.CreateReportCommand{
		ReporterID:   actor.ID,
		Category:     payload.Category,
		Description:  payload.Description,
		LocationText: payload.LocationText,
		Latitude:     payload.Latitude,
		Longitude:    payload.Longitude,
		ImageURLs:    payload.ImageURLs,
	})
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromReport(report))
}

// GetReport returns the full projection: report, merged timeline, progress
// updates, derived budget percentage and support count.
func (h *ReportHandler) GetReport(c *gin.Context) {
	detail, err := h.usecase.GetDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReportDetail(detail))
}

// ListReports returns the work queue for the given statuses. Without a
// filter it returns the admin queue (pending review + returned by agency).
func (h *ReportHandler) ListReports(c *gin.Context) {
	var statuses []entities.ReportStatus
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			statuses = append(statuses, entities.ReportStatus(strings.ToUpper(strings.TrimSpace(s))))
		}
	}

	reports, err := h.usecase.ListQueue(c.Request.Context(), statuses)
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.ReportResponse, 0, len(reports))
	for _, r := range reports {
		out = append(out, response.FromReport(r))
	}
	c.JSON(http.StatusOK, out)
}

// DisposeReport routes a report to an agency (admin action).
func (h *ReportHandler) DisposeReport(c *gin.Context) {
	var payload request.DisposeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReportPayload.HTTPStatus, errInvalidReportPayload.ToHTTPError())
		return
	}

	h.respondTransition(c, func() (entities.Report, error) {
		return h.usecase.Dispose(c.Request.Context(), c.Param("id"), actorFromRequest(c), payload.AgencyID, payload.Note)
	})
}

// RejectReport terminates a report with an admin rejection reason.
func (h *ReportHandler) RejectReport(c *gin.Context) {
	var payload request.RejectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReportPayload.HTTPStatus, errInvalidReportPayload.ToHTTPError())
		return
	}

	h.respondTransition(c, func() (entities.Report, error) {
		return h.usecase.Reject(c.Request.Context(), c.Param("id"), actorFromRequest(c), payload.Reason)
	})
}

// VerifyReport accepts the disposed report on the agency side, optionally
// setting the budget ceiling.
func (h *ReportHandler) VerifyReport(c *gin.Context) {
	var payload request.VerifyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReportPayload.HTTPStatus, errInvalidReportPayload.ToHTTPError())
		return
	}
	ceiling, err := payload.ResolveBudgetTotal()
	if err != nil {
		c.JSON(errInvalidReportPayload.HTTPStatus, errInvalidReportPayload.ToHTTPError())
		return
	}

	h.respondTransition(c, func() (entities.Report, error) {
		return h.usecase.AgencyVerify(c.Request.Context(), c.Param("id"), actorFromRequest(c), payload.Note, ceiling)
	})
}

// AgencyRejectReport bounces the report back to the admin queue.
func (h *ReportHandler) AgencyRejectReport(c *gin.Context) {
	var payload request.RejectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReportPayload.HTTPStatus, errInvalidReportPayload.ToHTTPError())
		return
	}

	h.respondTransition(c, func() (entities.Report, error) {
		return h.usecase.AgencyReject(c.Request.Context(), c.Param("id"), actorFromRequest(c), payload.Reason)
	})
}

// StartExecution moves a verified report into active work.
func (h *ReportHandler) StartExecution(c *gin.Context) {
	h.respondTransition(c, func() (entities.Report, error) {
		return h.usecase.StartExecution(c.Request.Context(), c.Param("id"), actorFromRequest(c))
	})
}

// RecordProgress registers a progress update with its spend delta.
func (h *ReportHandler) RecordProgress(c *gin.Context) {
	var payload request.ProgressRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReportPayload.HTTPStatus, errInvalidReportPayload.ToHTTPError())
		return
	}
	delta, err := payload.ResolveBudgetDelta()
	if err != nil {
		c.JSON(errInvalidReportPayload.HTTPStatus, errInvalidReportPayload.ToHTTPError())
		return
	}

	h.respondTransition(c, func() (entities.Report, error) {
		return h.usecase.RecordProgress(c.Request.Context(), c.Param("id"), actorFromRequest(c), payload.Description, delta, payload.ImageURLs)
	})
}

// ReviseBudget replaces the budget ceiling.
func (h *ReportHandler) ReviseBudget(c *gin.Context) {
	var payload request.BudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReportPayload.HTTPStatus, errInvalidReportPayload.ToHTTPError())
		return
	}
	ceiling, err := payload.ResolveBudgetTotal()
	if err != nil {
		c.JSON(errInvalidReportPayload.HTTPStatus, errInvalidReportPayload.ToHTTPError())
		return
	}

	h.respondTransition(c, func() (entities.Report, error) {
		return h.usecase.ReviseCeiling(c.Request.Context(), c.Param("id"), actorFromRequest(c), ceiling)
	})
}

// CompleteReport closes an in-progress report with note and evidence.
func (h *ReportHandler) CompleteReport(c *gin.Context) {
	var payload request.CompleteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReportPayload.HTTPStatus, errInvalidReportPayload.ToHTTPError())
		return
	}

	h.respondTransition(c, func() (entities.Report, error) {
		return h.usecase.Complete(c.Request.Context(), c.Param("id"), actorFromRequest(c), payload.Note, payload.ImageURLs)
	})
}

func (h *ReportHandler) respondTransition(c *gin.Context, run func() (entities.Report, error)) {
	report, err := run()
	if err != nil {
		log.Printf("[report][handler] transition failed report_id=%s err=%v", c.Param("id"), err)
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReport(report))
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized)
	case errors.Is(err, entities.ErrActorNotPermitted):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Actor not permitted for this transition", http.StatusForbidden)
	case errors.Is(err, usecase.ErrReportNotFound):
		return pkg.NewDomainErrorSimple("REPORT_NOT_FOUND", "Report not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAgencyNotFound):
		return pkg.NewDomainErrorSimple("AGENCY_NOT_FOUND", "Agency not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Transition not allowed from current status", http.StatusConflict)
	case errors.Is(err, entities.ErrVersionConflict):
		return pkg.NewDomainErrorSimple("CONFLICT", "Report was modified concurrently, retry", http.StatusConflict)
	case errors.Is(err, entities.ErrCeilingNotSet):
		return pkg.NewDomainErrorSimple("CEILING_NOT_SET", "Budget ceiling must be set before recording spend", http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrOverBudget):
		return pkg.NewDomainErrorSimple("OVER_BUDGET", "Spend exceeds budget ceiling", http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Invalid budget amount", http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrUnknownCategory),
		errors.Is(err, usecase.ErrEmptyDescription),
		errors.Is(err, usecase.ErrEmptyLocation),
		errors.Is(err, usecase.ErrEmptyNote),
		errors.Is(err, usecase.ErrEmptyReason),
		errors.Is(err, usecase.ErrNoEvidenceImages),
		errors.Is(err, usecase.ErrInvalidAgencyID),
		errors.Is(err, usecase.ErrInvalidReportID):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
