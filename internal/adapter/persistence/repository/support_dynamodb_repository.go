package repository

import (
	"context"
	"errors"

	"lapor_publik/internal/domain/entities"
	"lapor_publik/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSupportsTableName = "report_supports"

type supportItem struct {
	ReportID  string `dynamodbav:"report_id"`
	CitizenID string `dynamodbav:"citizen_id"`
	CreatedAt string `dynamodbav:"created_at"`
}

// SupportDynamoRepository persists Support rows in DynamoDB.
//
// Table requirements:
//   - report_supports: PK report_id (string), SK citizen_id (string)
//
// The composite key is the uniqueness guarantee: a conditional put turns a
// duplicate endorsement into entities.ErrDuplicateSupport instead of a
// silent overwrite, and the count is always a key-scoped COUNT query.

type SupportDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISupportRepository = (*SupportDynamoRepository)(nil)

func NewSupportDynamoRepository(ddb *dynamodb.Client) *SupportDynamoRepository {
	return &SupportDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REPORT_SUPPORTS_TABLE", defaultSupportsTableName),
	}
}

func (r *SupportDynamoRepository) Exists(ctx context.Context, reportID, citizenID string) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"report_id":  &types.AttributeValueMemberS{Value: reportID},
			"citizen_id": &types.AttributeValueMemberS{Value: citizenID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	return len(out.Item) > 0, nil
}

func (r *SupportDynamoRepository) Add(ctx context.Context, s entities.Support) error {
	av, err := attributevalue.MarshalMap(supportItem{
		ReportID:  s.ReportID,
		CitizenID: s.CitizenID,
		CreatedAt: formatTime(s.CreatedAt),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#rid)"),
		ExpressionAttributeNames: map[string]string{"#rid": "report_id"},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ErrDuplicateSupport
		}
		return err
	}
	return nil
}

func (r *SupportDynamoRepository) Remove(ctx context.Context, reportID, citizenID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"report_id":  &types.AttributeValueMemberS{Value: reportID},
			"citizen_id": &types.AttributeValueMemberS{Value: citizenID},
		},
		ConditionExpression:      aws.String("attribute_exists(#rid)"),
		ExpressionAttributeNames: map[string]string{"#rid": "report_id"},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// Already removed by a concurrent toggle; nothing to undo.
			return nil
		}
		return err
	}
	return nil
}

func (r *SupportDynamoRepository) CountByReportID(ctx context.Context, reportID string) (int, error) {
	total := 0
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:                aws.String(r.tableName),
			Select:                   types.SelectCount,
			KeyConditionExpression:   aws.String("#rid = :rid"),
			ExpressionAttributeNames: map[string]string{"#rid": "report_id"},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":rid": &types.AttributeValueMemberS{Value: reportID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return 0, err
		}
		total += int(out.Count)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return total, nil
}
