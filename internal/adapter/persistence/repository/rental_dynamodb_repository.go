package repository

import (
	"context"
	"time"

	"rental_billing/internal/domain/entities"
	"rental_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const rentalsTenantIDIndex = "tenant_id-index"

type rentalItem struct {
	ID             string `dynamodbav:"id"`
	TenantID       string `dynamodbav:"tenant_id"`
	RoomID         string `dynamodbav:"room_id"`
	EntryDate      string `dynamodbav:"entry_date"`
	ExitDate       string `dynamodbav:"exit_date,omitempty"`
	TotalPrice     string `dynamodbav:"total_price"`
	Status         string `dynamodbav:"status"`
	RentalPeriodID string `dynamodbav:"rental_period_id,omitempty"`
	PaymentTypeID  string `dynamodbav:"payment_type_id,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// RentalDynamoRepository persists Rental entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: tenant_id-index (PK: tenant_id)
type RentalDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IRentalRepository = (*RentalDynamoRepository)(nil)

func NewRentalDynamoRepository(ddb dynamoAPI, tableName string) *RentalDynamoRepository {
	return &RentalDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

func (r *RentalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Rental, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Rental{}, err
	}
	if len(out.Item) == 0 {
		return entities.Rental{}, nil
	}

	var it rentalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Rental{}, err
	}
	return fromRentalItem(it)
}

func (r *RentalDynamoRepository) ListByTenantID(ctx context.Context, tenantID string) ([]entities.Rental, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(rentalsTenantIDIndex),
		KeyConditionExpression: aws.String("tenant_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: tenantID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Rental, 0, len(raw))
	for _, av := range raw {
		var it rentalItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		rental, err := fromRentalItem(it)
		if err != nil {
			return nil, err
		}
		items = append(items, rental)
	}
	return items, nil
}

func (r *RentalDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.RentalStatus) (entities.Rental, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(r.now())},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Rental{}, interfaces.ErrConditionNotMet
		}
		return entities.Rental{}, err
	}

	var it rentalItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Rental{}, err
	}
	return fromRentalItem(it)
}

func fromRentalItem(it rentalItem) (entities.Rental, error) {
	d := itemDecoder{id: "rental " + it.ID}
	rental := entities.Rental{
		ID:             it.ID,
		TenantID:       it.TenantID,
		RoomID:         it.RoomID,
		EntryDate:      d.time("entry_date", it.EntryDate),
		ExitDate:       d.timePtr("exit_date", it.ExitDate),
		TotalPrice:     d.money("total_price", it.TotalPrice),
		Status:         entities.RentalStatus(it.Status),
		RentalPeriodID: it.RentalPeriodID,
		PaymentTypeID:  it.PaymentTypeID,
		CreatedAt:      d.time("created_at", it.CreatedAt),
		UpdatedAt:      d.time("updated_at", it.UpdatedAt),
	}
	if d.err != nil {
		return entities.Rental{}, d.err
	}
	return rental, nil
}
