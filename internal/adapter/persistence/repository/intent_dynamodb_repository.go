package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"govbr_pagamentos/internal/domain/entities"
	"govbr_pagamentos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultIntentsTableName = "payment_intents"

	// Attempts for the read/conditional-write loop in CompareAndTransition.
	// Each failed attempt means another writer moved the record first, and
	// a re-read resolves the race; terminal states make retries converge.
	casAttempts = 3
)

type paymentIntentItem struct {
	ID            string `dynamodbav:"id"`
	Amount        string `dynamodbav:"amount"`
	PayerEmail    string `dynamodbav:"payer_email"`
	PayerName     string `dynamodbav:"payer_name,omitempty"`
	PayerDocument string `dynamodbav:"payer_document,omitempty"`
	Status        string `dynamodbav:"status"`
	CreatedAt     string `dynamodbav:"created_at"`
	ExpiresAt     string `dynamodbav:"expires_at"`
	ApprovedAt    string `dynamodbav:"approved_at,omitempty"`

	GatewayCode             string `dynamodbav:"gateway_code"`
	GatewayQRBase64         string `dynamodbav:"gateway_qr_base64,omitempty"`
	GatewayCorrelationToken string `dynamodbav:"gateway_correlation_token,omitempty"`
	GatewayRaw              string `dynamodbav:"gateway_raw,omitempty"`
}

// IntentDynamoRepository persists PaymentIntent entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Uniqueness relies on a conditional PutItem; compare-and-transition relies
// on a conditional write keyed on the current status, so a poll and a
// concurrent webhook can never both effect a terminal transition.
type IntentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IIntentRepository = (*IntentDynamoRepository)(nil)

func NewIntentDynamoRepository(ddb *dynamodb.Client) *IntentDynamoRepository {
	return &IntentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INTENTS_TABLE", defaultIntentsTableName),
	}
}

func (r *IntentDynamoRepository) Put(ctx context.Context, p entities.PaymentIntent) (entities.PaymentIntent, error) {
	av, err := attributevalue.MarshalMap(toPaymentIntentItem(p))
	if err != nil {
		return entities.PaymentIntent{}, err
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
			return entities.PaymentIntent{}, interfaces.ErrDuplicateIntentID
		}
		return entities.PaymentIntent{}, err
	}
	return p, nil
}

func (r *IntentDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentIntent, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentIntent{}, nil
	}

	var it paymentIntentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentIntent{}, err
	}
	return fromPaymentIntentItem(it), nil
}

func (r *IntentDynamoRepository) CompareAndTransition(ctx context.Context, id string, expected, next entities.IntentStatus, mutate interfaces.IntentMutator) (entities.PaymentIntent, error) {
	var current entities.PaymentIntent
	for attempt := 0; attempt < casAttempts; attempt++ {
		var err error
		current, err = r.GetByID(ctx, id)
		if err != nil {
			return entities.PaymentIntent{}, err
		}
		if current.ID == "" {
			return entities.PaymentIntent{}, nil
		}
		if current.Status != expected {
			return current, nil
		}

		updated := current
		if mutate != nil {
			mutate(&updated)
		}
		updated.Status = next

		av, err := attributevalue.MarshalMap(toPaymentIntentItem(updated))
		if err != nil {
			return entities.PaymentIntent{}, err
		}

		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:                 aws.String(r.tableName),
			Item:                      av,
			ConditionExpression:       aws.String("#status = :expected"),
			ExpressionAttributeNames:  map[string]string{"#status": "status"},
			ExpressionAttributeValues: map[string]types.AttributeValue{":expected": &types.AttributeValueMemberS{Value: string(expected)}},
		})
		if err != nil {
			var cfe *types.ConditionalCheckFailedException
			if errors.As(err, &cfe) {
				// Another writer transitioned first; re-read and re-decide.
				continue
			}
			return entities.PaymentIntent{}, err
		}
		return updated, nil
	}
	return current, nil
}

func (r *IntentDynamoRepository) Count(ctx context.Context) (int, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
		Select:    types.SelectCount,
	})
	if err != nil {
		return 0, err
	}
	return int(out.Count), nil
}

func toPaymentIntentItem(p entities.PaymentIntent) paymentIntentItem {
	it := paymentIntentItem{
		ID:            p.ID,
		Amount:        strconv.FormatFloat(p.Amount, 'f', -1, 64),
		PayerEmail:    p.PayerEmail,
		PayerName:     p.PayerName,
		PayerDocument: p.PayerDocument,
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt.UTC().Format(time.RFC3339Nano),
		ExpiresAt:     p.ExpiresAt.UTC().Format(time.RFC3339Nano),

		GatewayCode:             p.Gateway.Code,
		GatewayQRBase64:         p.Gateway.QRBase64,
		GatewayCorrelationToken: p.Gateway.CorrelationToken,
		GatewayRaw:              string(p.Gateway.Raw),
	}
	if p.ApprovedAt != nil {
		it.ApprovedAt = p.ApprovedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromPaymentIntentItem(it paymentIntentItem) entities.PaymentIntent {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	expiresAt, _ := time.Parse(time.RFC3339Nano, it.ExpiresAt)
	amount, _ := strconv.ParseFloat(it.Amount, 64)

	p := entities.PaymentIntent{
		ID:            it.ID,
		Amount:        amount,
		PayerEmail:    it.PayerEmail,
		PayerName:     it.PayerName,
		PayerDocument: it.PayerDocument,
		Status:        entities.IntentStatus(it.Status),
		CreatedAt:     createdAt,
		ExpiresAt:     expiresAt,
		Gateway: entities.GatewayReference{
			Code:             it.GatewayCode,
			QRBase64:         it.GatewayQRBase64,
			CorrelationToken: it.GatewayCorrelationToken,
			Raw:              []byte(it.GatewayRaw),
		},
	}
	if it.ApprovedAt != "" {
		approvedAt, err := time.Parse(time.RFC3339Nano, it.ApprovedAt)
		if err == nil {
			p.ApprovedAt = &approvedAt
		}
	}
	return p
}
