package repository

import (
	"context"

	"rental_billing/internal/domain/entities"
	"rental_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type roomItem struct {
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name"`
	MonthlyPrice string `dynamodbav:"monthly_price"`
}

// RoomDynamoRepository reads Room entities. Rooms are owned by another
// service; this one only resolves them for rental details.
type RoomDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IRoomRepository = (*RoomDynamoRepository)(nil)

func NewRoomDynamoRepository(ddb dynamoAPI, tableName string) *RoomDynamoRepository {
	return &RoomDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *RoomDynamoRepository) GetByID(ctx context.Context, id string) (entities.Room, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Room{}, err
	}
	if len(out.Item) == 0 {
		return entities.Room{}, nil
	}

	var it roomItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Room{}, err
	}
	d := itemDecoder{id: "room " + it.ID}
	room := entities.Room{
		ID:           it.ID,
		Name:         it.Name,
		MonthlyPrice: d.money("monthly_price", it.MonthlyPrice),
	}
	if d.err != nil {
		return entities.Room{}, d.err
	}
	return room, nil
}
