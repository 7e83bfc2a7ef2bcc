package request

import "plotbook/internal/domain/entities"

type PlanStageRequest struct {
	Name              string  `json:"name" binding:"required"`
	Order             int     `json:"order" binding:"required"`
	Percentage        float64 `json:"percentage" binding:"required"`
	DueTrigger        string  `json:"due_trigger" binding:"required"`
	DueDays           int     `json:"due_days"`
	IsPossessionStage bool    `json:"is_possession_stage"`
}

// PlanTemplateCreateRequest is the payload for defining a payment plan
// template. Percentage and possession invariants are enforced downstream.
type PlanTemplateCreateRequest struct {
	Name   string             `json:"name" binding:"required"`
	Stages []PlanStageRequest `json:"stages" binding:"required"`
}

func (r PlanTemplateCreateRequest) ToStages() []entities.PlanStage {
	stages := make([]entities.PlanStage, 0, len(r.Stages))
	for _, s := range r.Stages {
		stages = append(stages, entities.PlanStage{
			Name:              s.Name,
			Order:             s.Order,
			Percentage:        s.Percentage,
			DueTrigger:        entities.DueTrigger(s.DueTrigger),
			DueDays:           s.DueDays,
			IsPossessionStage: s.IsPossessionStage,
		})
	}
	return stages
}
