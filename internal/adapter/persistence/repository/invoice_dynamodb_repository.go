package repository

import (
	"context"

	"plotbook/internal/domain/entities"
	"plotbook/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultInvoicesTableName = "invoices"
	invoicesBookingIDIndex   = "booking_id-index"
)

type invoiceItem struct {
	ID          string `dynamodbav:"id"`
	BookingID   string `dynamodbav:"booking_id"`
	CustomerID  string `dynamodbav:"customer_id"`
	PlotID      string `dynamodbav:"plot_id"`
	ProjectID   string `dynamodbav:"project_id"`
	Amount      string `dynamodbav:"amount"`
	PostingDate string `dynamodbav:"posting_date"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: booking_id-index (PK: booking_id)

type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	it := toInvoiceItem(inv)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Invoice{}, err
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
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) ListByBookingID(ctx context.Context, bookingID string) ([]entities.Invoice, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invoicesBookingIDIndex),
		KeyConditionExpression: aws.String("booking_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: bookingID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Invoice, 0, len(out.Items))
	for _, raw := range out.Items {
		var it invoiceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromInvoiceItem(it))
	}
	return items, nil
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	return invoiceItem{
		ID:          inv.ID,
		BookingID:   inv.BookingID,
		CustomerID:  inv.CustomerID,
		PlotID:      inv.PlotID,
		ProjectID:   inv.ProjectID,
		Amount:      floatToString(inv.Amount),
		PostingDate: timeToString(inv.PostingDate),
		CreatedAt:   timeToString(inv.CreatedAt),
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	return entities.Invoice{
		ID:          it.ID,
		BookingID:   it.BookingID,
		CustomerID:  it.CustomerID,
		PlotID:      it.PlotID,
		ProjectID:   it.ProjectID,
		Amount:      stringToFloat(it.Amount),
		PostingDate: stringToTime(it.PostingDate),
		CreatedAt:   stringToTime(it.CreatedAt),
	}
}
