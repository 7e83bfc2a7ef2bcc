package interfaces

import (
	"context"

	"plotbook/internal/domain/entities"
)

//go:generate mockgen -source=plan_template_repository_interface.go -destination=mocks/mock_plan_template_repository.go -package=mock_interfaces

// IPlanTemplateRepository abstracts DynamoDB persistence for
// PaymentPlanTemplate.

type IPlanTemplateRepository interface {
	Create(ctx context.Context, tpl entities.PaymentPlanTemplate) (entities.PaymentPlanTemplate, error)
	GetByID(ctx context.Context, id string) (entities.PaymentPlanTemplate, error)
	List(ctx context.Context) ([]entities.PaymentPlanTemplate, error)
}
