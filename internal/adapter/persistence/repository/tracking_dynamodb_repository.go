package repository

import (
	"context"
	"encoding/json"

	"burgerbude/internal/domain/entities"
	"burgerbude/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTrackingTableName = "tracking"

// orderLinkPrefix namespaces order→session index items so sessions and links
// share one table.
const orderLinkPrefix = "order#"

type sessionRecord struct {
	ID  string `dynamodbav:"id"`
	Doc string `dynamodbav:"doc"`
}

type orderLinkRecord struct {
	ID        string `dynamodbav:"id"`
	SessionID string `dynamodbav:"session_id"`
}

// TrackingDynamoRepository persists tracking sessions and the order→session
// index in one DynamoDB table (PK: id). Session items carry the session
// document as JSON; link items are "order#<orderId>" → session_id.

type TrackingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITrackingRepository = (*TrackingDynamoRepository)(nil)

func NewTrackingDynamoRepository(ddb *dynamodb.Client) *TrackingDynamoRepository {
	return &TrackingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRACKING_TABLE", defaultTrackingTableName),
	}
}

func (r *TrackingDynamoRepository) GetSession(ctx context.Context, id string) (entities.TrackSession, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.TrackSession{}, err
	}
	if len(out.Item) == 0 {
		return entities.TrackSession{}, nil
	}

	var rec sessionRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.TrackSession{}, err
	}
	var s entities.TrackSession
	if err := json.Unmarshal([]byte(rec.Doc), &s); err != nil {
		return entities.TrackSession{}, err
	}
	return s, nil
}

func (r *TrackingDynamoRepository) SessionIDForOrder(ctx context.Context, orderID string) (string, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: orderLinkPrefix + orderID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", err
	}
	if len(out.Item) == 0 {
		return "", nil
	}

	var rec orderLinkRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return "", err
	}
	return rec.SessionID, nil
}

func (r *TrackingDynamoRepository) MutateSession(ctx context.Context, id string, mutate func(*entities.TrackSession)) (entities.TrackSession, error) {
	s, err := r.GetSession(ctx, id)
	if err != nil {
		return entities.TrackSession{}, err
	}

	mutate(&s)

	doc, err := json.Marshal(s)
	if err != nil {
		return entities.TrackSession{}, err
	}
	av, err := attributevalue.MarshalMap(sessionRecord{ID: id, Doc: string(doc)})
	if err != nil {
		return entities.TrackSession{}, err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return entities.TrackSession{}, err
	}

	for _, oid := range s.Orders {
		link, err := attributevalue.MarshalMap(orderLinkRecord{
			ID:        orderLinkPrefix + oid,
			SessionID: id,
		})
		if err != nil {
			return entities.TrackSession{}, err
		}
		if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.tableName),
			Item:      link,
		}); err != nil {
			return entities.TrackSession{}, err
		}
	}
	return s, nil
}
