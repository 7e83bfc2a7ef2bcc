package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"plotbook/internal/domain/entities"
	"plotbook/internal/domain/finance"
	"plotbook/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrInvalidTemplateInput = errors.New("invalid plan template input")

// IPlanTemplateUseCase manages the payment plan templates bookings draw
// their schedules from.

type IPlanTemplateUseCase interface {
	Create(ctx context.Context, name string, stages []entities.PlanStage) (entities.PaymentPlanTemplate, error)
	GetByID(ctx context.Context, id string) (entities.PaymentPlanTemplate, error)
	List(ctx context.Context) ([]entities.PaymentPlanTemplate, error)
}

type PlanTemplateUseCase struct {
	repo interfaces.IPlanTemplateRepository
}

var _ IPlanTemplateUseCase = (*PlanTemplateUseCase)(nil)

func NewPlanTemplateUseCase(repo interfaces.IPlanTemplateRepository) *PlanTemplateUseCase {
	return &PlanTemplateUseCase{repo: repo}
}

func (u *PlanTemplateUseCase) Create(ctx context.Context, name string, stages []entities.PlanStage) (entities.PaymentPlanTemplate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.PaymentPlanTemplate{}, ErrInvalidTemplateInput
	}

	now := time.Now().UTC()
	tpl := entities.PaymentPlanTemplate{
		ID:        uuid.NewString(),
		Name:      name,
		Stages:    stages,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := finance.ValidateTemplate(tpl); err != nil {
		return entities.PaymentPlanTemplate{}, err
	}

	created, err := u.repo.Create(ctx, tpl)
	if err != nil {
		return entities.PaymentPlanTemplate{}, err
	}
	log.Printf("[plan][usecase] template created template_id=%s stages=%d", created.ID, len(created.Stages))
	return created, nil
}

func (u *PlanTemplateUseCase) GetByID(ctx context.Context, id string) (entities.PaymentPlanTemplate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentPlanTemplate{}, ErrInvalidTemplateInput
	}
	tpl, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentPlanTemplate{}, err
	}
	if tpl.ID == "" {
		return entities.PaymentPlanTemplate{}, ErrPlanTemplateNotFound
	}
	return tpl, nil
}

func (u *PlanTemplateUseCase) List(ctx context.Context) ([]entities.PaymentPlanTemplate, error) {
	return u.repo.List(ctx)
}
