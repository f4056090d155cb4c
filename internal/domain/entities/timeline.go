package entities

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// TimelineEventType tags a timeline entry with the transition that wrote it.

type TimelineEventType string

const (
	EventCreated          TimelineEventType = "CREATED"
	EventDisposed         TimelineEventType = "DISPOSED"
	EventRejected         TimelineEventType = "REJECTED"
	EventVerifiedByAgency TimelineEventType = "VERIFIED_BY_AGENCY"
	EventRejectedByAgency TimelineEventType = "REJECTED_BY_AGENCY"
	EventExecutionStarted TimelineEventType = "EXECUTION_STARTED"
	EventProgressUpdate   TimelineEventType = "PROGRESS_UPDATE"
	EventBudgetRevised    TimelineEventType = "BUDGET_REVISED"
	EventCompleted        TimelineEventType = "COMPLETED"
)

// TimelineEntry is one append-only audit record owned by a single report.
//
// Storage model (DynamoDB):
//   - PK: report_id, SK: seq
//
// Entries are immutable once written; the repository exposes no update or
// delete path for them. Seq is assigned from the report's counter inside the
// transition transaction, so insertion order is deterministic even for
// entries sharing a timestamp.

type TimelineEntry struct {
	ReportID    string            `json:"report_id"`
	Seq         int64             `json:"seq"`
	Event       TimelineEventType `json:"event"`
	ActorID     string            `json:"actor_id,omitempty"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	BudgetDelta *decimal.Decimal  `json:"budget_delta,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// ProgressUpdate is an agency-authored work report with its evidence images
// and the spend delta it charged. It shares its Seq with the PROGRESS_UPDATE
// timeline entry written in the same transaction.
//
// Storage model (DynamoDB):
//   - PK: report_id, SK: seq

type ProgressUpdate struct {
	ReportID    string          `json:"report_id"`
	Seq         int64           `json:"seq"`
	AgencyID    string          `json:"agency_id"`
	ActorID     string          `json:"actor_id"`
	Description string          `json:"description"`
	BudgetDelta decimal.Decimal `json:"budget_delta"`
	ImageURLs   []string        `json:"image_urls,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// TimelineItem is the read-side projection of one timeline row, enriched
// with the evidence images of its progress update when one exists.

type TimelineItem struct {
	TimelineEntry
	ImageURLs []string `json:"image_urls,omitempty"`
}

// MergeTimeline interleaves timeline entries with the progress updates that
// share their sequence numbers, ordered for display: timestamp descending,
// ties broken by seq descending. Pure function, no side effects.
func MergeTimeline(entries []TimelineEntry, updates []ProgressUpdate) []TimelineItem {
	bySeq := make(map[int64]ProgressUpdate, len(updates))
	for _, u := range updates {
		bySeq[u.Seq] = u
	}

	items := make([]TimelineItem, 0, len(entries))
	for _, e := range entries {
		item := TimelineItem{TimelineEntry: e}
		if u, ok := bySeq[e.Seq]; ok && e.Event == EventProgressUpdate {
			item.ImageURLs = u.ImageURLs
		}
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].Seq > items[j].Seq
	})
	return items
}
