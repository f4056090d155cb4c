package routes

import (
	"os"
	"strconv"
	"strings"

	"lapor_publik/internal/adapter/http/handlers"
	"lapor_publik/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	PathReports  = "/reports"
	PathAgencies = "/agencies"
	PathSMS      = "/sms"
)

func addReportRoutes(rg *gin.RouterGroup, reportHandler *handlers.ReportHandler, supportHandler *handlers.SupportHandler) {
	reports := rg.Group(PathReports)
	{
		reports.POST("", reportHandler.CreateReport)
		reports.GET("", reportHandler.ListReports)
		reports.GET("/:id", reportHandler.GetReport)

		// Admin transitions.
		reports.PATCH("/:id/dispose", reportHandler.DisposeReport)
		reports.PATCH("/:id/reject", reportHandler.RejectReport)

		// Agency transitions.
		reports.PATCH("/:id/verify", reportHandler.VerifyReport)
		reports.PATCH("/:id/agency-reject", reportHandler.AgencyRejectReport)
		reports.PATCH("/:id/start", reportHandler.StartExecution)
		reports.POST("/:id/progress", reportHandler.RecordProgress)
		reports.PATCH("/:id/budget", reportHandler.ReviseBudget)
		reports.PATCH("/:id/complete", reportHandler.CompleteReport)

		// Citizen endorsement.
		reports.POST("/:id/support", supportHandler.ToggleSupport)
	}
}

func addAgencyRoutes(rg *gin.RouterGroup, agencyHandler *handlers.AgencyHandler) {
	agencies := rg.Group(PathAgencies)
	{
		agencies.GET("", agencyHandler.ListAgencies)
	}
}

func addSMSRoutes(rg *gin.RouterGroup, smsHandler *handlers.SMSHandler) {
	sms := rg.Group(PathSMS)
	{
		sms.POST("/inbound", smsHandler.InboundSMS)
	}
}

// smsDefaultsFromEnv reads the fallback coordinates attached to
// SMS-originated reports, which carry no GPS data.
func smsDefaultsFromEnv() usecase.SMSDefaults {
	return usecase.SMSDefaults{
		Latitude:  parseCoord(os.Getenv("SMS_DEFAULT_LAT")),
		Longitude: parseCoord(os.Getenv("SMS_DEFAULT_LNG")),
	}
}

func parseCoord(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}
