package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"burgerbude/internal/domain/entities"
	"burgerbude/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "orders"

// orderRecord is the DynamoDB item shape. The full order document travels as
// JSON in doc; created_at_ms is duplicated as a number so the "today" scan can
// filter without decoding every document.
type orderRecord struct {
	ID          string `dynamodbav:"id"`
	Status      string `dynamodbav:"status"`
	CreatedAtMS int64  `dynamodbav:"created_at_ms"`
	Doc         string `dynamodbav:"doc"`
}

// OrderDynamoRepository persists orders in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Targeted updates are read-modify-write with a conditional put on the id, so
// a lost record surfaces as not-found instead of resurrecting.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	loc       *time.Location
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		loc:       restaurantLocation(),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := marshalOrderRecord(o)
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, ErrDuplicateOrderID
		}
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}
	return unmarshalOrderRecord(out.Item)
}

func (r *OrderDynamoRepository) ListToday(ctx context.Context, now time.Time) ([]entities.Order, error) {
	start, end := dayRange(now, r.loc)

	var orders []entities.Order
	var lastKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#c BETWEEN :start AND :end"),
			ExpressionAttributeNames: map[string]string{
				"#c": "created_at_ms",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":start": &types.AttributeValueMemberN{Value: int64ToString(start.UnixMilli())},
				":end":   &types.AttributeValueMemberN{Value: int64ToString(end.UnixMilli() - 1)},
			},
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			o, err := unmarshalOrderRecord(item)
			if err != nil {
				return nil, err
			}
			orders = append(orders, o)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}
	return orders, nil
}

func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	return r.mutate(ctx, id, func(o *entities.Order, now time.Time) {
		o.Status = status
		o.PushHistory(status, now)
		if status == entities.OrderStatusCompleted && o.CompletedAt.IsZero() {
			o.CompletedAt = now
		}
	})
}

func (r *OrderDynamoRepository) SetManualStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	return r.mutate(ctx, id, func(o *entities.Order, _ time.Time) {
		o.StatusManual = status
	})
}

func (r *OrderDynamoRepository) SetEta(ctx context.Context, id string, etaMin, adjustDelta int) (entities.Order, error) {
	return r.mutate(ctx, id, func(o *entities.Order, _ time.Time) {
		if etaMin > 0 {
			o.EtaMin = etaMin
		}
		o.EtaAdjustMin += adjustDelta
	})
}

func (r *OrderDynamoRepository) mutate(ctx context.Context, id string, fn func(o *entities.Order, now time.Time)) (entities.Order, error) {
	o, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, nil
	}

	now := time.Now()
	fn(&o, now)
	o.UpdatedAt = now

	av, err := marshalOrderRecord(o)
	if err != nil {
		return entities.Order{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	return o, nil
}

func marshalOrderRecord(o entities.Order) (map[string]types.AttributeValue, error) {
	doc, err := json.Marshal(o)
	if err != nil {
		return nil, err
	}
	return attributevalue.MarshalMap(orderRecord{
		ID:          o.ID,
		Status:      string(o.Status),
		CreatedAtMS: o.CreatedAt.UnixMilli(),
		Doc:         string(doc),
	})
}

func unmarshalOrderRecord(item map[string]types.AttributeValue) (entities.Order, error) {
	var rec orderRecord
	if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
		return entities.Order{}, err
	}
	var o entities.Order
	if err := json.Unmarshal([]byte(rec.Doc), &o); err != nil {
		return entities.Order{}, err
	}
	return o, nil
}
