package entities

import "time"

// DueTrigger determines how a plan stage's due date is anchored.

type DueTrigger string

const (
	DueTriggerOnBooking          DueTrigger = "On Booking"
	DueTriggerDaysFromBooking    DueTrigger = "Days from Booking"
	DueTriggerOnPossession       DueTrigger = "On Possession"
	DueTriggerDaysFromPossession DueTrigger = "Days from Possession"
)

// IsPossessionLinked reports whether the trigger needs a possession date.
func (t DueTrigger) IsPossessionLinked() bool {
	return t == DueTriggerOnPossession || t == DueTriggerDaysFromPossession
}

// PlanStage is one installment definition inside a plan template.
type PlanStage struct {
	Name              string     `json:"name"`
	Order             int        `json:"order"`
	Percentage        float64    `json:"percentage"`
	DueTrigger        DueTrigger `json:"due_trigger"`
	DueDays           int        `json:"due_days,omitempty"`
	IsPossessionStage bool       `json:"is_possession_stage,omitempty"`
}

// PaymentPlanTemplate defines how a booking's schedule is generated at
// submission: one row per stage, amount = final value * percentage / 100.
//
// Invariants (enforced by the plan template use case):
//   - stage percentages total exactly 100 (within the money epsilon)
//   - at most one stage is marked as the possession stage
//
// Storage model (DynamoDB):
//   - PK: id
type PaymentPlanTemplate struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Stages    []PlanStage `json:"stages"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
