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

const defaultPlanTemplatesTableName = "plan_templates"

type planStageItem struct {
	Name              string `dynamodbav:"name"`
	Order             int    `dynamodbav:"order"`
	Percentage        string `dynamodbav:"percentage"`
	DueTrigger        string `dynamodbav:"due_trigger"`
	DueDays           int    `dynamodbav:"due_days,omitempty"`
	IsPossessionStage bool   `dynamodbav:"is_possession_stage"`
}

type planTemplateItem struct {
	ID        string          `dynamodbav:"id"`
	Name      string          `dynamodbav:"name"`
	Stages    []planStageItem `dynamodbav:"stages"`
	CreatedAt string          `dynamodbav:"created_at"`
	UpdatedAt string          `dynamodbav:"updated_at"`
}

// PlanTemplateDynamoRepository persists PaymentPlanTemplate entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Templates are few and read-mostly; List is a full scan.

type PlanTemplateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPlanTemplateRepository = (*PlanTemplateDynamoRepository)(nil)

func NewPlanTemplateDynamoRepository(ddb *dynamodb.Client) *PlanTemplateDynamoRepository {
	return &PlanTemplateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PLAN_TEMPLATES_TABLE", defaultPlanTemplatesTableName),
	}
}

func (r *PlanTemplateDynamoRepository) Create(ctx context.Context, tpl entities.PaymentPlanTemplate) (entities.PaymentPlanTemplate, error) {
	it := toPlanTemplateItem(tpl)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PaymentPlanTemplate{}, err
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
		return entities.PaymentPlanTemplate{}, err
	}
	return tpl, nil
}

func (r *PlanTemplateDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentPlanTemplate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentPlanTemplate{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentPlanTemplate{}, nil
	}

	var it planTemplateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentPlanTemplate{}, err
	}
	return fromPlanTemplateItem(it), nil
}

func (r *PlanTemplateDynamoRepository) List(ctx context.Context) ([]entities.PaymentPlanTemplate, error) {
	var templates []entities.PaymentPlanTemplate
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it planTemplateItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			templates = append(templates, fromPlanTemplateItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return templates, nil
}

func toPlanTemplateItem(tpl entities.PaymentPlanTemplate) planTemplateItem {
	stages := make([]planStageItem, 0, len(tpl.Stages))
	for _, s := range tpl.Stages {
		stages = append(stages, planStageItem{
			Name:              s.Name,
			Order:             s.Order,
			Percentage:        floatToString(s.Percentage),
			DueTrigger:        string(s.DueTrigger),
			DueDays:           s.DueDays,
			IsPossessionStage: s.IsPossessionStage,
		})
	}
	return planTemplateItem{
		ID:        tpl.ID,
		Name:      tpl.Name,
		Stages:    stages,
		CreatedAt: timeToString(tpl.CreatedAt),
		UpdatedAt: timeToString(tpl.UpdatedAt),
	}
}

func fromPlanTemplateItem(it planTemplateItem) entities.PaymentPlanTemplate {
	stages := make([]entities.PlanStage, 0, len(it.Stages))
	for _, s := range it.Stages {
		stages = append(stages, entities.PlanStage{
			Name:              s.Name,
			Order:             s.Order,
			Percentage:        stringToFloat(s.Percentage),
			DueTrigger:        entities.DueTrigger(s.DueTrigger),
			DueDays:           s.DueDays,
			IsPossessionStage: s.IsPossessionStage,
		})
	}
	return entities.PaymentPlanTemplate{
		ID:        it.ID,
		Name:      it.Name,
		Stages:    stages,
		CreatedAt: stringToTime(it.CreatedAt),
		UpdatedAt: stringToTime(it.UpdatedAt),
	}
}
