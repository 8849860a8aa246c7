package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// dynamoAPI is the subset of *dynamodb.Client the repositories use.
type dynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

var _ dynamoAPI = (*dynamodb.Client)(nil)

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// ErrMalformedItem is returned when a stored attribute cannot be decoded.
var ErrMalformedItem = errors.New("malformed item")

// itemDecoder parses string attributes and keeps the first failure, so a
// mapper can decode every field and check err once.
type itemDecoder struct {
	id  string
	err error
}

func (d *itemDecoder) fail(field, value string, err error) {
	if d.err == nil {
		d.err = fmt.Errorf("%w: %s %s=%q: %v", ErrMalformedItem, d.id, field, value, err)
	}
}

// time decodes an RFC3339 attribute. An absent attribute is the zero time.
func (d *itemDecoder) time(field, s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		d.fail(field, s, err)
	}
	return t
}

func (d *itemDecoder) timePtr(field, s string) *time.Time {
	if s == "" {
		return nil
	}
	t := d.time(field, s)
	return &t
}

// Money is stored as a decimal string to keep cents exact.
func (d *itemDecoder) money(field, s string) decimal.Decimal {
	m, err := decimal.NewFromString(s)
	if err != nil {
		d.fail(field, s, err)
		return decimal.Zero
	}
	return m
}

func isConditionFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// queryAll follows LastEvaluatedKey until the index partition is exhausted.
func queryAll(ctx context.Context, ddb dynamoAPI, in *dynamodb.QueryInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	for {
		out, err := ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}
