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

const (
	defaultCitizensTableName = "citizens"
	phoneIndexName           = "phone-index"
)

type citizenItem struct {
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name"`
	Email        string `dynamodbav:"email"`
	Phone        string `dynamodbav:"phone,omitempty"`
	PasswordHash string `dynamodbav:"password_hash,omitempty"`
	Role         string `dynamodbav:"role"`
	AgencyID     string `dynamodbav:"agency_id,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// CitizenDynamoRepository persists Citizen identities in DynamoDB.
//
// Table requirements:
//   - citizens: PK id (string), GSI phone-index on phone
//
// phone-index backs the SMS intake lookup; phone numbers are stored as
// sanitized digit strings.

type CitizenDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICitizenRepository = (*CitizenDynamoRepository)(nil)

func NewCitizenDynamoRepository(ddb *dynamodb.Client) *CitizenDynamoRepository {
	return &CitizenDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CITIZENS_TABLE", defaultCitizensTableName),
	}
}

func (r *CitizenDynamoRepository) GetByID(ctx context.Context, id string) (entities.Citizen, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Citizen{}, err
	}
	if len(out.Item) == 0 {
		return entities.Citizen{}, nil
	}

	var it citizenItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Citizen{}, err
	}
	return fromCitizenItem(it), nil
}

func (r *CitizenDynamoRepository) GetByPhone(ctx context.Context, phone string) (entities.Citizen, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		IndexName:                aws.String(phoneIndexName),
		KeyConditionExpression:   aws.String("#phone = :phone"),
		ExpressionAttributeNames: map[string]string{"#phone": "phone"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":phone": &types.AttributeValueMemberS{Value: phone},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Citizen{}, err
	}
	if len(out.Items) == 0 {
		return entities.Citizen{}, nil
	}

	var it citizenItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Citizen{}, err
	}
	return fromCitizenItem(it), nil
}

func (r *CitizenDynamoRepository) Create(ctx context.Context, c entities.Citizen) (entities.Citizen, error) {
	av, err := attributevalue.MarshalMap(toCitizenItem(c))
	if err != nil {
		return entities.Citizen{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Citizen{}, err
	}
	return c, nil
}

func toCitizenItem(c entities.Citizen) citizenItem {
	return citizenItem{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		PasswordHash: c.PasswordHash,
		Role:         string(c.Role),
		AgencyID:     c.AgencyID,
		CreatedAt:    formatTime(c.CreatedAt),
	}
}

func fromCitizenItem(it citizenItem) entities.Citizen {
	return entities.Citizen{
		ID:           it.ID,
		Name:         it.Name,
		Email:        it.Email,
		Phone:        it.Phone,
		PasswordHash: it.PasswordHash,
		Role:         entities.Role(it.Role),
		AgencyID:     it.AgencyID,
		CreatedAt:    parseTime(it.CreatedAt),
	}
}
