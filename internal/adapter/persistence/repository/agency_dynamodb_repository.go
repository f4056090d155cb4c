package repository

import (
	"context"

	"lapor_publik/internal/domain/entities"
	"lapor_publik/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAgenciesTableName = "agencies"

type agencyItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	CategoryTag string `dynamodbav:"category_tag"`
}

// AgencyDynamoRepository reads the mostly-static agency reference table.
//
// Table requirements:
//   - agencies: PK id (string)
//
// The table holds a handful of rows, so category filtering scans rather
// than maintaining an index.

type AgencyDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAgencyRepository = (*AgencyDynamoRepository)(nil)

func NewAgencyDynamoRepository(ddb *dynamodb.Client) *AgencyDynamoRepository {
	return &AgencyDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AGENCIES_TABLE", defaultAgenciesTableName),
	}
}

func (r *AgencyDynamoRepository) GetByID(ctx context.Context, id string) (entities.Agency, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Agency{}, err
	}
	if len(out.Item) == 0 {
		return entities.Agency{}, nil
	}

	var it agencyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Agency{}, err
	}
	return fromAgencyItem(it), nil
}

func (r *AgencyDynamoRepository) ListByCategory(ctx context.Context, category entities.Category) ([]entities.Agency, error) {
	agencies := make([]entities.Agency, 0)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:                aws.String(r.tableName),
			FilterExpression:         aws.String("#tag = :tag"),
			ExpressionAttributeNames: map[string]string{"#tag": "category_tag"},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":tag": &types.AttributeValueMemberS{Value: string(category)},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			var it agencyItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			agencies = append(agencies, fromAgencyItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return agencies, nil
}

func fromAgencyItem(it agencyItem) entities.Agency {
	return entities.Agency{
		ID:          it.ID,
		Name:        it.Name,
		CategoryTag: entities.Category(it.CategoryTag),
	}
}
