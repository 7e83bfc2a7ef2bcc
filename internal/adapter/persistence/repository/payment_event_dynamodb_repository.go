package repository

import (
	"context"
	"time"

	"plotbook/internal/domain/entities"
	"plotbook/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentEventsTableName = "payment_events"
	paymentEventsBookingIDIndex   = "booking_id-index"
)

type paymentEventItem struct {
	ID                string                 `dynamodbav:"id"`
	BookingID         string                 `dynamodbav:"booking_id"`
	StageName         string                 `dynamodbav:"stage_name"`
	Amount            string                 `dynamodbav:"amount"`
	Date              string                 `dynamodbav:"date"`
	Mode              string                 `dynamodbav:"mode"`
	Reference         string                 `dynamodbav:"reference,omitempty"`
	GatewayPaymentID  string                 `dynamodbav:"gateway_payment_id,omitempty"`
	GatewayPayload    map[string]interface{} `dynamodbav:"gateway_payload,omitempty"`
	GatewayPayloadRaw string                 `dynamodbav:"gateway_payload_raw,omitempty"`
	CreatedAt         string                 `dynamodbav:"created_at"`
}

// PaymentEventDynamoRepository persists PaymentEvent entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: booking_id-index (PK: booking_id)
//
// Events are append-only; there is no update path. The date-range listing
// scans with a filter on the RFC3339 date attribute, which compares
// lexicographically in chronological order.

type PaymentEventDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentEventRepository = (*PaymentEventDynamoRepository)(nil)

func NewPaymentEventDynamoRepository(ddb *dynamodb.Client) *PaymentEventDynamoRepository {
	return &PaymentEventDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_EVENTS_TABLE", defaultPaymentEventsTableName),
	}
}

func (r *PaymentEventDynamoRepository) Create(ctx context.Context, e entities.PaymentEvent) (entities.PaymentEvent, error) {
	it := toPaymentEventItem(e)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PaymentEvent{}, err
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
		return entities.PaymentEvent{}, err
	}
	return e, nil
}

func (r *PaymentEventDynamoRepository) ListByBookingID(ctx context.Context, bookingID string) ([]entities.PaymentEvent, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentEventsBookingIDIndex),
		KeyConditionExpression: aws.String("booking_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: bookingID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalPaymentEvents(out.Items)
}

func (r *PaymentEventDynamoRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]entities.PaymentEvent, error) {
	var events []entities.PaymentEvent
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#date >= :from AND #date < :to"),
			ExpressionAttributeNames: map[string]string{
				"#date": "date",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":from": &types.AttributeValueMemberS{Value: from.UTC().Format(time.RFC3339Nano)},
				":to":   &types.AttributeValueMemberS{Value: to.UTC().Format(time.RFC3339Nano)},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		page, err := unmarshalPaymentEvents(out.Items)
		if err != nil {
			return nil, err
		}
		events = append(events, page...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return events, nil
}

func unmarshalPaymentEvents(raw []map[string]types.AttributeValue) ([]entities.PaymentEvent, error) {
	items := make([]entities.PaymentEvent, 0, len(raw))
	for _, m := range raw {
		var it paymentEventItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentEventItem(it))
	}
	return items, nil
}

func toPaymentEventItem(e entities.PaymentEvent) paymentEventItem {
	return paymentEventItem{
		ID:                e.ID,
		BookingID:         e.BookingID,
		StageName:         e.StageName,
		Amount:            floatToString(e.Amount),
		Date:              timeToString(e.Date),
		Mode:              string(e.Mode),
		Reference:         e.Reference,
		GatewayPaymentID:  e.GatewayPaymentID,
		GatewayPayload:    e.GatewayPayload,
		GatewayPayloadRaw: e.GatewayPayloadRaw,
		CreatedAt:         timeToString(e.CreatedAt),
	}
}

func fromPaymentEventItem(it paymentEventItem) entities.PaymentEvent {
	return entities.PaymentEvent{
		ID:                it.ID,
		BookingID:         it.BookingID,
		StageName:         it.StageName,
		Amount:            stringToFloat(it.Amount),
		Date:              stringToTime(it.Date),
		Mode:              entities.PaymentMode(it.Mode),
		Reference:         it.Reference,
		GatewayPaymentID:  it.GatewayPaymentID,
		GatewayPayload:    it.GatewayPayload,
		GatewayPayloadRaw: it.GatewayPayloadRaw,
		CreatedAt:         stringToTime(it.CreatedAt),
	}
}
