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

	"github.com/gin-gonic/gin"
)

const smsExample = "LAPOR#JALAN#Jl. Sudirman No 10#Jalan berlubang besar"

// SMSHandler receives inbound messages from the SMS gateway webhook.
//
// The gateway retries on non-2xx responses, so every application-level
// failure is still answered with HTTP 200 and a structured error body
// carrying a hint plus a worked example.

type SMSHandler struct {
	usecase usecase.ISMSIntakeUseCase
}

func NewSMSHandler(uc usecase.ISMSIntakeUseCase) *SMSHandler {
	return &SMSHandler{usecase: uc}
}

func (h *SMSHandler) InboundSMS(c *gin.Context) {
	var payload request.SMSInboundRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusOK, response.SMSRejected("BAD_FORMAT", "Message body must carry phone and text", smsExample))
		return
	}

	report, err := h.usecase.Ingest(c.Request.Context(), payload.Phone, payload.Text)
	if err != nil {
		log.Printf("[sms][handler] ingest failed phone=%s err=%v", payload.Phone, err)
		code, message := smsErrorHint(err)
		c.JSON(http.StatusOK, response.SMSRejected(code, message, smsExample))
		return
	}

	log.Printf("[sms][handler] ingest success report_id=%s", report.ID)
	c.JSON(http.StatusOK, response.SMSAccepted(report.ID))
}

func smsErrorHint(err error) (code, message string) {
	switch {
	case errors.Is(err, usecase.ErrSMSBadFormat):
		return "BAD_FORMAT", "Use LAPOR#CATEGORY#LOCATION#DESCRIPTION"
	case errors.Is(err, entities.ErrUnknownCategory):
		return "UNKNOWN_CATEGORY", "Category must be one of: " + joinCategories()
	case errors.Is(err, usecase.ErrSMSEmptyLocation):
		return "EMPTY_LOCATION", "The location segment must not be empty"
	case errors.Is(err, usecase.ErrSMSEmptyDescription), errors.Is(err, usecase.ErrEmptyDescription):
		return "EMPTY_DESCRIPTION", "The description segment must not be empty"
	case errors.Is(err, usecase.ErrInvalidPhone):
		return "INVALID_PHONE", "Sender phone number could not be read"
	default:
		return "INTERNAL_ERROR", "Your report could not be processed, please try again later"
	}
}

func joinCategories() string {
	cats := entities.Categories()
	names := make([]string, 0, len(cats))
	for _, c := range cats {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
