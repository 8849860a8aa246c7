package repository

import (
	"context"
	"fmt"
	"time"

	"rental_billing/internal/domain/entities"
	"rental_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const paymentsRentalIDIndex = "rental_id-index"

type rentalPaymentItem struct {
	ID               string `dynamodbav:"id"`
	RentalID         string `dynamodbav:"rental_id"`
	Amount           string `dynamodbav:"amount"`
	Category         string `dynamodbav:"category"`
	BillingDate      string `dynamodbav:"billing_date"`
	DueDate          string `dynamodbav:"due_date"`
	PaymentStatus    string `dynamodbav:"payment_status"`
	PaymentMethod    string `dynamodbav:"payment_method,omitempty"`
	PaymentProof     string `dynamodbav:"payment_proof,omitempty"`
	ProofSubmittedAt string `dynamodbav:"proof_submitted_at,omitempty"`
	PaidAt           string `dynamodbav:"paid_at,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// RentalPaymentDynamoRepository persists RentalPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: rental_id-index (PK: rental_id)
//
// Every write is a single conditional UpdateItem, so a paid record is never
// overwritten even when two requests race.
type RentalPaymentDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IRentalPaymentRepository = (*RentalPaymentDynamoRepository)(nil)

func NewRentalPaymentDynamoRepository(ddb dynamoAPI, tableName string) *RentalPaymentDynamoRepository {
	return &RentalPaymentDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

func (r *RentalPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.RentalPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RentalPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.RentalPayment{}, nil
	}

	var it rentalPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RentalPayment{}, err
	}
	return fromRentalPaymentItem(it)
}

func (r *RentalPaymentDynamoRepository) ListByRentalID(ctx context.Context, rentalID string) ([]entities.RentalPayment, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsRentalIDIndex),
		KeyConditionExpression: aws.String("rental_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: rentalID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.RentalPayment, 0, len(raw))
	for _, av := range raw {
		var it rentalPaymentItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		p, err := fromRentalPaymentItem(it)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, nil
}

func (r *RentalPaymentDynamoRepository) MarkPaid(ctx context.Context, id string, paidAt time.Time, method entities.PaymentMethod) (entities.RentalPayment, error) {
	return r.update(ctx, id, func(now string) (string, string, map[string]types.AttributeValue, map[string]string) {
		cond := "#payment_status <> :paid"
		expr := "SET #payment_status = :paid, #paid_at = :paid_at, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":paid":       &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPaid)},
			":paid_at":    &types.AttributeValueMemberS{Value: formatTime(paidAt)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#payment_status": "payment_status",
			"#paid_at":        "paid_at",
			"#updated_at":     "updated_at",
		}
		if method != "" {
			expr += ", #payment_method = :method"
			vals[":method"] = &types.AttributeValueMemberS{Value: string(method)}
			names["#payment_method"] = "payment_method"
		}
		return cond, expr, vals, names
	})
}

func (r *RentalPaymentDynamoRepository) SubmitProof(ctx context.Context, id string, s interfaces.ProofSubmission) (entities.RentalPayment, error) {
	return r.update(ctx, id, func(now string) (string, string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #payment_method = :cash, #payment_status = :pending, #payment_proof = :proof, " +
			"#proof_submitted_at = :submitted_at, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":paid":         &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPaid)},
			":cash":         &types.AttributeValueMemberS{Value: string(entities.PaymentMethodCash)},
			":pending":      &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPending)},
			":proof":        &types.AttributeValueMemberS{Value: s.Proof},
			":submitted_at": &types.AttributeValueMemberS{Value: formatTime(s.SubmittedAt)},
			":updated_at":   &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#payment_method":     "payment_method",
			"#payment_status":     "payment_status",
			"#payment_proof":      "payment_proof",
			"#proof_submitted_at": "proof_submitted_at",
			"#updated_at":         "updated_at",
		}

		// The proof must still be the one the caller replaced.
		cond := "#payment_status <> :paid AND "
		if s.PreviousProof == "" {
			cond += "(attribute_not_exists(#payment_proof) OR #payment_proof = :empty)"
			vals[":empty"] = &types.AttributeValueMemberS{Value: ""}
		} else {
			cond += "#payment_proof = :previous"
			vals[":previous"] = &types.AttributeValueMemberS{Value: s.PreviousProof}
		}
		return cond, expr, vals, names
	})
}

func (r *RentalPaymentDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (condition, updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.RentalPayment, error) {
	now := formatTime(r.now())
	condition, updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND " + condition),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.RentalPayment{}, interfaces.ErrConditionNotMet
		}
		return entities.RentalPayment{}, err
	}

	var it rentalPaymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.RentalPayment{}, err
	}
	return fromRentalPaymentItem(it)
}

func fromRentalPaymentItem(it rentalPaymentItem) (entities.RentalPayment, error) {
	d := itemDecoder{id: "rental payment " + it.ID}
	p := entities.RentalPayment{
		ID:               it.ID,
		RentalID:         it.RentalID,
		Amount:           d.money("amount", it.Amount),
		Category:         entities.PaymentCategory(it.Category),
		BillingDate:      d.time("billing_date", it.BillingDate),
		DueDate:          d.time("due_date", it.DueDate),
		PaymentStatus:    entities.PaymentStatus(it.PaymentStatus),
		PaymentMethod:    entities.PaymentMethod(it.PaymentMethod),
		PaymentProof:     it.PaymentProof,
		ProofSubmittedAt: d.timePtr("proof_submitted_at", it.ProofSubmittedAt),
		PaidAt:           d.timePtr("paid_at", it.PaidAt),
		CreatedAt:        d.time("created_at", it.CreatedAt),
		UpdatedAt:        d.time("updated_at", it.UpdatedAt),
	}
	if d.err == nil && p.IsPaid() != (p.PaidAt != nil) {
		d.fail("paid_at", it.PaidAt, fmt.Errorf("payment_status is %q", it.PaymentStatus))
	}
	if d.err != nil {
		return entities.RentalPayment{}, d.err
	}
	return p, nil
}
