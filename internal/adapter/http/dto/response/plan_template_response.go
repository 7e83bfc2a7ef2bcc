package response

import (
	"time"

	"plotbook/internal/domain/entities"
)

type PlanStageResponse struct {
	Name              string  `json:"name"`
	Order             int     `json:"order"`
	Percentage        float64 `json:"percentage"`
	DueTrigger        string  `json:"due_trigger"`
	DueDays           int     `json:"due_days,omitempty"`
	IsPossessionStage bool    `json:"is_possession_stage"`
}

type PlanTemplateResponse struct {
	TemplateID string              `json:"template_id"`
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	Stages     []PlanStageResponse `json:"stages"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

func FromPlanTemplate(tpl entities.PaymentPlanTemplate) PlanTemplateResponse {
	stages := make([]PlanStageResponse, 0, len(tpl.Stages))
	for _, s := range tpl.Stages {
		stages = append(stages, PlanStageResponse{
			Name:              s.Name,
			Order:             s.Order,
			Percentage:        s.Percentage,
			DueTrigger:        string(s.DueTrigger),
			DueDays:           s.DueDays,
			IsPossessionStage: s.IsPossessionStage,
		})
	}
	return PlanTemplateResponse{
		TemplateID: tpl.ID,
		ID:         tpl.ID,
		Name:       tpl.Name,
		Stages:     stages,
		CreatedAt:  tpl.CreatedAt,
		UpdatedAt:  tpl.UpdatedAt,
	}
}
