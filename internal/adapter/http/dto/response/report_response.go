package response

import (
	"time"

	"lapor_publik/internal/domain/entities"
	"lapor_publik/internal/usecase"
)

type ReportResponse struct {
	ID           string    `json:"id"`
	Category     string    `json:"category"`
	Description  string    `json:"description"`
	LocationText string    `json:"location_text"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Status       string    `json:"status"`
	AgencyID     string    `json:"agency_id,omitempty"`
	ImageURLs    []string  `json:"image_urls,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	RejectionReason string `json:"rejection_reason,omitempty"`
	AdminNote       string `json:"admin_note,omitempty"`
	AgencyNote      string `json:"agency_note,omitempty"`
	CompletionNote  string `json:"completion_note,omitempty"`

	BudgetTotal      string `json:"budget_total,omitempty"`
	BudgetUsed       string `json:"budget_used"`
	BudgetPercentage *int64 `json:"budget_percentage,omitempty"`
}

func FromReport(r entities.Report) ReportResponse {
	resp := ReportResponse{
		ID:              r.ID,
		Category:        string(r.Category),
		Description:     r.Description,
		LocationText:    r.LocationText,
		Latitude:        r.Latitude,
		Longitude:       r.Longitude,
		Status:          string(r.Status),
		AgencyID:        r.AgencyID,
		ImageURLs:       r.ImageURLs,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
		RejectionReason: r.RejectionReason,
		AdminNote:       r.AdminNote,
		AgencyNote:      r.AgencyNote,
		CompletionNote:  r.CompletionNote,
		BudgetUsed:      r.Budget.Used.String(),
	}
	if r.Budget.Ceiling != nil {
		resp.BudgetTotal = r.Budget.Ceiling.String()
	}
	resp.BudgetPercentage = r.Budget.Percentage()
	return resp
}

type TimelineItemResponse struct {
	Seq         int64     `json:"seq"`
	Event       string    `json:"event"`
	ActorID     string    `json:"actor_id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	BudgetDelta string    `json:"budget_delta,omitempty"`
	ImageURLs   []string  `json:"image_urls,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func fromTimelineItem(it entities.TimelineItem) TimelineItemResponse {
	resp := TimelineItemResponse{
		Seq:         it.Seq,
		Event:       string(it.Event),
		ActorID:     it.ActorID,
		Title:       it.Title,
		Description: it.Description,
		ImageURLs:   it.ImageURLs,
		CreatedAt:   it.CreatedAt,
	}
	if it.BudgetDelta != nil {
		resp.BudgetDelta = it.BudgetDelta.String()
	}
	return resp
}

type ProgressUpdateResponse struct {
	Seq         int64     `json:"seq"`
	AgencyID    string    `json:"agency_id"`
	ActorID     string    `json:"actor_id"`
	Description string    `json:"description"`
	BudgetDelta string    `json:"budget_delta"`
	ImageURLs   []string  `json:"image_urls,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func fromProgressUpdate(u entities.ProgressUpdate) ProgressUpdateResponse {
	return ProgressUpdateResponse{
		Seq:         u.Seq,
		AgencyID:    u.AgencyID,
		ActorID:     u.ActorID,
		Description: u.Description,
		BudgetDelta: u.BudgetDelta.String(),
		ImageURLs:   u.ImageURLs,
		CreatedAt:   u.CreatedAt,
	}
}

// ReportDetailResponse is the full read projection: the report, the merged
// timeline, the progress updates, and the derived support count.
type ReportDetailResponse struct {
	Report       ReportResponse           `json:"report"`
	Timeline     []TimelineItemResponse   `json:"timeline"`
	Progress     []ProgressUpdateResponse `json:"progress_updates"`
	SupportCount int                      `json:"support_count"`
}

func FromReportDetail(d usecase.ReportDetail) ReportDetailResponse {
	timeline := make([]TimelineItemResponse, 0, len(d.Timeline))
	for _, it := range d.Timeline {
		timeline = append(timeline, fromTimelineItem(it))
	}
	progress := make([]ProgressUpdateResponse, 0, len(d.Progress))
	for _, u := range d.Progress {
		progress = append(progress, fromProgressUpdate(u))
	}
	return ReportDetailResponse{
		Report:       FromReport(d.Report),
		Timeline:     timeline,
		Progress:     progress,
		SupportCount: d.SupportCount,
	}
}

type SupportResponse struct {
	Supported    bool `json:"supported"`
	SupportCount int  `json:"support_count"`
}
