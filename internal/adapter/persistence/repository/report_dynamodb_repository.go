package repository

import (
	"context"
	"errors"
	"strconv"

	"lapor_publik/internal/domain/entities"
	"lapor_publik/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultReportsTableName  = "reports"
	defaultTimelineTableName = "report_timeline"
	defaultProgressTableName = "report_progress"
	statusIndexName          = "status-index"
)

type reportItem struct {
	ID           string   `dynamodbav:"id"`
	Category     string   `dynamodbav:"category"`
	Description  string   `dynamodbav:"description"`
	LocationText string   `dynamodbav:"location_text"`
	Latitude     float64  `dynamodbav:"latitude"`
	Longitude    float64  `dynamodbav:"longitude"`
	Status       string   `dynamodbav:"status"`
	ReporterID   string   `dynamodbav:"reporter_id"`
	ImageURLs    []string `dynamodbav:"image_urls,omitempty"`

	AgencyID            string   `dynamodbav:"agency_id,omitempty"`
	RejectionReason     string   `dynamodbav:"rejection_reason,omitempty"`
	AdminNote           string   `dynamodbav:"admin_note,omitempty"`
	AgencyNote          string   `dynamodbav:"agency_note,omitempty"`
	CompletionNote      string   `dynamodbav:"completion_note,omitempty"`
	CompletionImageURLs []string `dynamodbav:"completion_image_urls,omitempty"`

	BudgetTotal string `dynamodbav:"budget_total,omitempty"`
	BudgetUsed  string `dynamodbav:"budget_used"`

	TimelineSeq int64  `dynamodbav:"timeline_seq"`
	Version     int64  `dynamodbav:"version"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

type timelineItem struct {
	ReportID    string `dynamodbav:"report_id"`
	Seq         int64  `dynamodbav:"seq"`
	Event       string `dynamodbav:"event"`
	ActorID     string `dynamodbav:"actor_id,omitempty"`
	Title       string `dynamodbav:"title"`
	Description string `dynamodbav:"description,omitempty"`
	BudgetDelta string `dynamodbav:"budget_delta,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
}

type progressItem struct {
	ReportID    string   `dynamodbav:"report_id"`
	Seq         int64    `dynamodbav:"seq"`
	AgencyID    string   `dynamodbav:"agency_id"`
	ActorID     string   `dynamodbav:"actor_id"`
	Description string   `dynamodbav:"description"`
	BudgetDelta string   `dynamodbav:"budget_delta"`
	ImageURLs   []string `dynamodbav:"image_urls,omitempty"`
	CreatedAt   string   `dynamodbav:"created_at"`
}

// ReportDynamoRepository persists the Report aggregate in DynamoDB.
//
// Table requirements:
//   - reports: PK id (string), GSI status-index on status
//   - report_timeline: PK report_id (string), SK seq (number)
//   - report_progress: PK report_id (string), SK seq (number)
//
// The timeline table is append-only: this repository has no update or
// delete expression targeting it. Every transition goes through
// TransactWriteItems so the report row, the timeline entry and an optional
// progress row commit or roll back as one unit.

type ReportDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	timelineTable string
	progressTable string
}

var _ interfaces.IReportRepository = (*ReportDynamoRepository)(nil)

func NewReportDynamoRepository(ddb *dynamodb.Client) *ReportDynamoRepository {
	return &ReportDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("REPORTS_TABLE", defaultReportsTableName),
		timelineTable: getenvDefault("REPORT_TIMELINE_TABLE", defaultTimelineTableName),
		progressTable: getenvDefault("REPORT_PROGRESS_TABLE", defaultProgressTableName),
	}
}

func (r *ReportDynamoRepository) Create(ctx context.Context, report entities.Report, created entities.TimelineEntry) (entities.Report, error) {
	reportAV, err := attributevalue.MarshalMap(toReportItem(report))
	if err != nil {
		return entities.Report{}, err
	}
	entryAV, err := attributevalue.MarshalMap(toTimelineItem(created))
	if err != nil {
		return entities.Report{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:                aws.String(r.tableName),
					Item:                     reportAV,
					ConditionExpression:      aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{"#id": "id"},
				},
			},
			{
				Put: &types.Put{
					TableName:                aws.String(r.timelineTable),
					Item:                     entryAV,
					ConditionExpression:      aws.String("attribute_not_exists(#rid)"),
					ExpressionAttributeNames: map[string]string{"#rid": "report_id"},
				},
			},
		},
	})
	if err != nil {
		return entities.Report{}, err
	}
	return report, nil
}

func (r *ReportDynamoRepository) GetByID(ctx context.Context, id string) (entities.Report, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Report{}, err
	}
	if len(out.Item) == 0 {
		return entities.Report{}, nil
	}

	var it reportItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Report{}, err
	}
	return fromReportItem(it), nil
}

func (r *ReportDynamoRepository) ListByStatus(ctx context.Context, statuses []entities.ReportStatus) ([]entities.Report, error) {
	reports := make([]entities.Report, 0)
	for _, status := range statuses {
		var startKey map[string]types.AttributeValue
		for {
			out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
				TableName:                aws.String(r.tableName),
				IndexName:                aws.String(statusIndexName),
				KeyConditionExpression:   aws.String("#status = :status"),
				ExpressionAttributeNames: map[string]string{"#status": "status"},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":status": &types.AttributeValueMemberS{Value: string(status)},
				},
				ExclusiveStartKey: startKey,
			})
			if err != nil {
				return nil, err
			}
			for _, item := range out.Items {
				var it reportItem
				if err := attributevalue.UnmarshalMap(item, &it); err != nil {
					return nil, err
				}
				reports = append(reports, fromReportItem(it))
			}
			if len(out.LastEvaluatedKey) == 0 {
				break
			}
			startKey = out.LastEvaluatedKey
		}
	}
	return reports, nil
}

// ApplyTransition commits one lifecycle transition atomically. The report
// row is replaced under a version condition; the timeline entry (and the
// progress row, when present) are inserted alongside. A failed version
// check surfaces as entities.ErrVersionConflict with nothing written.
func (r *ReportDynamoRepository) ApplyTransition(
	ctx context.Context,
	report entities.Report,
	expectedVersion int64,
	entry entities.TimelineEntry,
	progress *entities.ProgressUpdate,
) (entities.Report, error) {
	report.Version = expectedVersion + 1

	reportAV, err := attributevalue.MarshalMap(toReportItem(report))
	if err != nil {
		return entities.Report{}, err
	}
	entryAV, err := attributevalue.MarshalMap(toTimelineItem(entry))
	if err != nil {
		return entities.Report{}, err
	}

	items := []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     reportAV,
				ConditionExpression:      aws.String("attribute_exists(#id) AND #version = :expected"),
				ExpressionAttributeNames: map[string]string{"#id": "id", "#version": "version"},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
				},
			},
		},
		{
			Put: &types.Put{
				TableName:                aws.String(r.timelineTable),
				Item:                     entryAV,
				ConditionExpression:      aws.String("attribute_not_exists(#rid)"),
				ExpressionAttributeNames: map[string]string{"#rid": "report_id"},
			},
		},
	}

	if progress != nil {
		progressAV, err := attributevalue.MarshalMap(toProgressItem(*progress))
		if err != nil {
			return entities.Report{}, err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName:                aws.String(r.progressTable),
				Item:                     progressAV,
				ConditionExpression:      aws.String("attribute_not_exists(#rid)"),
				ExpressionAttributeNames: map[string]string{"#rid": "report_id"},
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		if isConditionalTransactionFailure(err) {
			return entities.Report{}, entities.ErrVersionConflict
		}
		return entities.Report{}, err
	}
	return report, nil
}

func (r *ReportDynamoRepository) ListTimeline(ctx context.Context, reportID string) ([]entities.TimelineEntry, error) {
	entries := make([]entities.TimelineEntry, 0)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:                aws.String(r.timelineTable),
			KeyConditionExpression:   aws.String("#rid = :rid"),
			ExpressionAttributeNames: map[string]string{"#rid": "report_id"},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":rid": &types.AttributeValueMemberS{Value: reportID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			var it timelineItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			entries = append(entries, fromTimelineItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return entries, nil
}

func (r *ReportDynamoRepository) ListProgress(ctx context.Context, reportID string) ([]entities.ProgressUpdate, error) {
	updates := make([]entities.ProgressUpdate, 0)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:                aws.String(r.progressTable),
			KeyConditionExpression:   aws.String("#rid = :rid"),
			ExpressionAttributeNames: map[string]string{"#rid": "report_id"},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":rid": &types.AttributeValueMemberS{Value: reportID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			var it progressItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			updates = append(updates, fromProgressItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return updates, nil
}

// isConditionalTransactionFailure reports whether a transaction was
// cancelled by a condition check (the optimistic version guard losing a
// race) rather than by an infrastructure fault.
func isConditionalTransactionFailure(err error) bool {
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, reason := range tce.CancellationReasons {
			if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
				return true
			}
		}
		return false
	}
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

func toReportItem(e entities.Report) reportItem {
	return reportItem{
		ID:                  e.ID,
		Category:            string(e.Category),
		Description:         e.Description,
		LocationText:        e.LocationText,
		Latitude:            e.Latitude,
		Longitude:           e.Longitude,
		Status:              string(e.Status),
		ReporterID:          e.ReporterID,
		ImageURLs:           e.ImageURLs,
		AgencyID:            e.AgencyID,
		RejectionReason:     e.RejectionReason,
		AdminNote:           e.AdminNote,
		AgencyNote:          e.AgencyNote,
		CompletionNote:      e.CompletionNote,
		CompletionImageURLs: e.CompletionImageURLs,
		BudgetTotal:         decimalPtrToString(e.Budget.Ceiling),
		BudgetUsed:          decimalToString(e.Budget.Used),
		TimelineSeq:         e.TimelineSeq,
		Version:             e.Version,
		CreatedAt:           formatTime(e.CreatedAt),
		UpdatedAt:           formatTime(e.UpdatedAt),
	}
}

func fromReportItem(it reportItem) entities.Report {
	return entities.Report{
		ID:                  it.ID,
		Category:            entities.Category(it.Category),
		Description:         it.Description,
		LocationText:        it.LocationText,
		Latitude:            it.Latitude,
		Longitude:           it.Longitude,
		Status:              entities.ReportStatus(it.Status),
		ReporterID:          it.ReporterID,
		ImageURLs:           it.ImageURLs,
		AgencyID:            it.AgencyID,
		RejectionReason:     it.RejectionReason,
		AdminNote:           it.AdminNote,
		AgencyNote:          it.AgencyNote,
		CompletionNote:      it.CompletionNote,
		CompletionImageURLs: it.CompletionImageURLs,
		Budget: entities.Ledger{
			Ceiling: decimalPtrFromString(it.BudgetTotal),
			Used:    decimalFromString(it.BudgetUsed),
		},
		TimelineSeq: it.TimelineSeq,
		Version:     it.Version,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}

func toTimelineItem(e entities.TimelineEntry) timelineItem {
	return timelineItem{
		ReportID:    e.ReportID,
		Seq:         e.Seq,
		Event:       string(e.Event),
		ActorID:     e.ActorID,
		Title:       e.Title,
		Description: e.Description,
		BudgetDelta: decimalPtrToString(e.BudgetDelta),
		CreatedAt:   formatTime(e.CreatedAt),
	}
}

func fromTimelineItem(it timelineItem) entities.TimelineEntry {
	return entities.TimelineEntry{
		ReportID:    it.ReportID,
		Seq:         it.Seq,
		Event:       entities.TimelineEventType(it.Event),
		ActorID:     it.ActorID,
		Title:       it.Title,
		Description: it.Description,
		BudgetDelta: decimalPtrFromString(it.BudgetDelta),
		CreatedAt:   parseTime(it.CreatedAt),
	}
}

func toProgressItem(e entities.ProgressUpdate) progressItem {
	return progressItem{
		ReportID:    e.ReportID,
		Seq:         e.Seq,
		AgencyID:    e.AgencyID,
		ActorID:     e.ActorID,
		Description: e.Description,
		BudgetDelta: decimalToString(e.BudgetDelta),
		ImageURLs:   e.ImageURLs,
		CreatedAt:   formatTime(e.CreatedAt),
	}
}

func fromProgressItem(it progressItem) entities.ProgressUpdate {
	return entities.ProgressUpdate{
		ReportID:    it.ReportID,
		Seq:         it.Seq,
		AgencyID:    it.AgencyID,
		ActorID:     it.ActorID,
		Description: it.Description,
		BudgetDelta: decimalFromString(it.BudgetDelta),
		ImageURLs:   it.ImageURLs,
		CreatedAt:   parseTime(it.CreatedAt),
	}
}
