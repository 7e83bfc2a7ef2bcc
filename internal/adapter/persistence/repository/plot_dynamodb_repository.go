package repository

import (
	"context"
	"errors"
	"time"

	"plotbook/internal/domain/entities"
	"plotbook/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPlotsTableName = "plots"
	plotsProjectIDIndex   = "project_id-index"
)

type plotItem struct {
	ID         string `dynamodbav:"id"`
	ProjectID  string `dynamodbav:"project_id"`
	PlotNumber string `dynamodbav:"plot_number"`
	AreaSqft   string `dynamodbav:"area_sqft,omitempty"`
	TotalValue string `dynamodbav:"total_value"`
	Status     string `dynamodbav:"status"`
	BookingID  string `dynamodbav:"booking_id,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// PlotDynamoRepository persists Plot inventory in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)
//
// Moving a plot to Booked is conditional on it still being Available, so
// two bookings racing for the same plot cannot both win.

type PlotDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPlotRepository = (*PlotDynamoRepository)(nil)

func NewPlotDynamoRepository(ddb *dynamodb.Client) *PlotDynamoRepository {
	return &PlotDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PLOTS_TABLE", defaultPlotsTableName),
	}
}

func (r *PlotDynamoRepository) Create(ctx context.Context, p entities.Plot) (entities.Plot, error) {
	it := toPlotItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Plot{}, err
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
		return entities.Plot{}, err
	}
	return p, nil
}

func (r *PlotDynamoRepository) GetByID(ctx context.Context, id string) (entities.Plot, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Plot{}, err
	}
	if len(out.Item) == 0 {
		return entities.Plot{}, nil
	}

	var it plotItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Plot{}, err
	}
	return fromPlotItem(it), nil
}

func (r *PlotDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.PlotStatus, bookingID string) (entities.Plot, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	updateExpr := "SET #status = :status, #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(status)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}

	conditionExpr := "attribute_exists(#id)"
	if bookingID != "" {
		updateExpr += ", #booking_id = :booking_id"
		values[":booking_id"] = &types.AttributeValueMemberS{Value: bookingID}
		names["#booking_id"] = "booking_id"
		if status == entities.PlotStatusBooked {
			// lock: only an Available plot can be taken
			conditionExpr += " AND #status = :available"
			values[":available"] = &types.AttributeValueMemberS{Value: string(entities.PlotStatusAvailable)}
		}
	} else {
		updateExpr += " REMOVE #booking_id"
		names["#booking_id"] = "booking_id"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(conditionExpr),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Plot{}, nil
		}
		return entities.Plot{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Plot{}, nil
	}

	var it plotItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Plot{}, err
	}
	return fromPlotItem(it), nil
}

func (r *PlotDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.Plot, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(plotsProjectIDIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Plot, 0, len(out.Items))
	for _, raw := range out.Items {
		var it plotItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPlotItem(it))
	}
	return items, nil
}

func toPlotItem(p entities.Plot) plotItem {
	area := ""
	if p.AreaSqft > 0 {
		area = floatToString(p.AreaSqft)
	}
	return plotItem{
		ID:         p.ID,
		ProjectID:  p.ProjectID,
		PlotNumber: p.PlotNumber,
		AreaSqft:   area,
		TotalValue: floatToString(p.TotalValue),
		Status:     string(p.Status),
		BookingID:  p.BookingID,
		CreatedAt:  timeToString(p.CreatedAt),
		UpdatedAt:  timeToString(p.UpdatedAt),
	}
}

func fromPlotItem(it plotItem) entities.Plot {
	return entities.Plot{
		ID:         it.ID,
		ProjectID:  it.ProjectID,
		PlotNumber: it.PlotNumber,
		AreaSqft:   stringToFloat(it.AreaSqft),
		TotalValue: stringToFloat(it.TotalValue),
		Status:     entities.PlotStatus(it.Status),
		BookingID:  it.BookingID,
		CreatedAt:  stringToTime(it.CreatedAt),
		UpdatedAt:  stringToTime(it.UpdatedAt),
	}
}
