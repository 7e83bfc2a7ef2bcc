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
	defaultBookingsTableName = "bookings"
	bookingsCustomerIDIndex  = "customer_id-index"
	bookingsDocStateIndex    = "doc_state-index"
)

type scheduleStageItem struct {
	Name              string `dynamodbav:"name"`
	Order             int    `dynamodbav:"order"`
	Percentage        string `dynamodbav:"percentage"`
	AmountDue         string `dynamodbav:"amount_due"`
	AmountReceived    string `dynamodbav:"amount_received"`
	Balance           string `dynamodbav:"balance"`
	DueDate           string `dynamodbav:"due_date,omitempty"`
	Status            string `dynamodbav:"status"`
	IsPossessionStage bool   `dynamodbav:"is_possession_stage"`
	ReceiptDate       string `dynamodbav:"receipt_date,omitempty"`
}

type bookingItem struct {
	ID             string              `dynamodbav:"id"`
	ProjectID      string              `dynamodbav:"project_id"`
	PlotID         string              `dynamodbav:"plot_id"`
	CustomerID     string              `dynamodbav:"customer_id"`
	AssignedRM     string              `dynamodbav:"assigned_rm"`
	RMEmail        string              `dynamodbav:"rm_email,omitempty"`
	PlanTemplateID string              `dynamodbav:"plan_template_id,omitempty"`
	PlotValue      string              `dynamodbav:"plot_value"`
	Discount       string              `dynamodbav:"discount"`
	FinalValue     string              `dynamodbav:"final_value"`
	BookingDate    string              `dynamodbav:"booking_date"`
	PossessionDate string              `dynamodbav:"possession_date,omitempty"`
	Status         string              `dynamodbav:"status"`
	DocState       string              `dynamodbav:"doc_state"`
	Schedule       []scheduleStageItem `dynamodbav:"schedule,omitempty"`
	CreatedAt      string              `dynamodbav:"created_at"`
	UpdatedAt      string              `dynamodbav:"updated_at"`
}

// BookingDynamoRepository persists Booking entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id)
//   - GSI: doc_state-index (PK: doc_state)
//
// The payment schedule lives inside the booking item. Every stage mutation
// rewrites the whole item, which keeps the schedule and the roll-up status
// consistent in one write.

type BookingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb *dynamodb.Client) *BookingDynamoRepository {
	return &BookingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BOOKINGS_TABLE", defaultBookingsTableName),
	}
}

func (r *BookingDynamoRepository) Create(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	it := toBookingItem(b)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Booking{}, err
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
		return entities.Booking{}, err
	}
	return b, nil
}

func (r *BookingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if len(out.Item) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func (r *BookingDynamoRepository) Update(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	it := toBookingItem(b)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Booking{}, err
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
		return entities.Booking{}, err
	}
	return b, nil
}

func (r *BookingDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Booking, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(bookingsCustomerIDIndex),
		KeyConditionExpression: aws.String("customer_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: customerID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalBookings(out.Items)
}

func (r *BookingDynamoRepository) ListSubmitted(ctx context.Context) ([]entities.Booking, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(bookingsDocStateIndex),
		KeyConditionExpression: aws.String("doc_state = :state"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":state": &types.AttributeValueMemberS{Value: string(entities.DocStateSubmitted)},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalBookings(out.Items)
}

func unmarshalBookings(raw []map[string]types.AttributeValue) ([]entities.Booking, error) {
	items := make([]entities.Booking, 0, len(raw))
	for _, m := range raw {
		var it bookingItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromBookingItem(it))
	}
	return items, nil
}

func toBookingItem(b entities.Booking) bookingItem {
	schedule := make([]scheduleStageItem, 0, len(b.Schedule))
	for _, s := range b.Schedule {
		schedule = append(schedule, scheduleStageItem{
			Name:              s.Name,
			Order:             s.Order,
			Percentage:        floatToString(s.Percentage),
			AmountDue:         floatToString(s.AmountDue),
			AmountReceived:    floatToString(s.AmountReceived),
			Balance:           floatToString(s.Balance),
			DueDate:           timeToString(s.DueDate),
			Status:            string(s.Status),
			IsPossessionStage: s.IsPossessionStage,
			ReceiptDate:       timeToString(s.ReceiptDate),
		})
	}
	return bookingItem{
		ID:             b.ID,
		ProjectID:      b.ProjectID,
		PlotID:         b.PlotID,
		CustomerID:     b.CustomerID,
		AssignedRM:     b.AssignedRM,
		RMEmail:        b.RMEmail,
		PlanTemplateID: b.PlanTemplateID,
		PlotValue:      floatToString(b.PlotValue),
		Discount:       floatToString(b.Discount),
		FinalValue:     floatToString(b.FinalValue),
		BookingDate:    timeToString(b.BookingDate),
		PossessionDate: timeToString(b.PossessionDate),
		Status:         string(b.Status),
		DocState:       string(b.DocState),
		Schedule:       schedule,
		CreatedAt:      timeToString(b.CreatedAt),
		UpdatedAt:      timeToString(b.UpdatedAt),
	}
}

func fromBookingItem(it bookingItem) entities.Booking {
	schedule := make([]entities.ScheduleStage, 0, len(it.Schedule))
	for _, s := range it.Schedule {
		schedule = append(schedule, entities.ScheduleStage{
			Name:              s.Name,
			Order:             s.Order,
			Percentage:        stringToFloat(s.Percentage),
			AmountDue:         stringToFloat(s.AmountDue),
			AmountReceived:    stringToFloat(s.AmountReceived),
			Balance:           stringToFloat(s.Balance),
			DueDate:           stringToTime(s.DueDate),
			Status:            entities.StageStatus(s.Status),
			IsPossessionStage: s.IsPossessionStage,
			ReceiptDate:       stringToTime(s.ReceiptDate),
		})
	}
	return entities.Booking{
		ID:             it.ID,
		ProjectID:      it.ProjectID,
		PlotID:         it.PlotID,
		CustomerID:     it.CustomerID,
		AssignedRM:     it.AssignedRM,
		RMEmail:        it.RMEmail,
		PlanTemplateID: it.PlanTemplateID,
		PlotValue:      stringToFloat(it.PlotValue),
		Discount:       stringToFloat(it.Discount),
		FinalValue:     stringToFloat(it.FinalValue),
		BookingDate:    stringToTime(it.BookingDate),
		PossessionDate: stringToTime(it.PossessionDate),
		Status:         entities.BookingStatus(it.Status),
		DocState:       entities.DocState(it.DocState),
		Schedule:       schedule,
		CreatedAt:      stringToTime(it.CreatedAt),
		UpdatedAt:      stringToTime(it.UpdatedAt),
	}
}
