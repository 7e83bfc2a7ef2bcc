package finance

import (
	"errors"
	"math"
	"time"

	"plotbook/internal/domain/entities"
)

var (
	ErrNoPlanStages           = errors.New("payment plan template has no stages")
	ErrInvalidPlanPercentage  = errors.New("stage percentages must total exactly 100")
	ErrMultiplePossession     = errors.New("only one stage can be the possession stage")
	ErrPossessionDateRequired = errors.New("possession date is required for possession-linked stages")
)

// ValidateTemplate checks a plan template's invariants: stage percentages
// total exactly 100 (within the money epsilon) and at most one stage is
// marked as the possession stage.
func ValidateTemplate(tpl entities.PaymentPlanTemplate) error {
	if len(tpl.Stages) == 0 {
		return ErrNoPlanStages
	}
	total := 0.0
	possession := 0
	for _, s := range tpl.Stages {
		total += s.Percentage
		if s.IsPossessionStage {
			possession++
		}
	}
	if math.Abs(total-100.0) > MoneyEpsilon {
		return ErrInvalidPlanPercentage
	}
	if possession > 1 {
		return ErrMultiplePossession
	}
	return nil
}

// GenerateSchedule builds the payment schedule rows for a booking from its
// plan template. Rows come out in stage order, each due
// finalValue * percentage / 100, with the due date anchored per the stage
// trigger. A zero possessionDate fails when the template has
// possession-linked stages.
func GenerateSchedule(tpl entities.PaymentPlanTemplate, finalValue float64, bookingDate, possessionDate time.Time) ([]entities.ScheduleStage, error) {
	if err := ValidateTemplate(tpl); err != nil {
		return nil, err
	}

	stages := make([]entities.PlanStage, len(tpl.Stages))
	copy(stages, tpl.Stages)
	for i := 1; i < len(stages); i++ {
		for j := i; j > 0 && stages[j].Order < stages[j-1].Order; j-- {
			stages[j], stages[j-1] = stages[j-1], stages[j]
		}
	}

	schedule := make([]entities.ScheduleStage, 0, len(stages))
	for _, st := range stages {
		if st.DueTrigger.IsPossessionLinked() && possessionDate.IsZero() {
			return nil, ErrPossessionDateRequired
		}
		amountDue := finalValue * st.Percentage / 100.0
		schedule = append(schedule, entities.ScheduleStage{
			Name:              st.Name,
			Order:             st.Order,
			Percentage:        st.Percentage,
			AmountDue:         amountDue,
			AmountReceived:    0,
			Balance:           amountDue,
			DueDate:           dueDateFor(st, bookingDate, possessionDate),
			Status:            entities.StageStatusPending,
			IsPossessionStage: st.IsPossessionStage,
		})
	}
	return schedule, nil
}

func dueDateFor(st entities.PlanStage, bookingDate, possessionDate time.Time) time.Time {
	switch st.DueTrigger {
	case entities.DueTriggerOnBooking:
		return bookingDate
	case entities.DueTriggerDaysFromBooking:
		return bookingDate.AddDate(0, 0, st.DueDays)
	case entities.DueTriggerOnPossession:
		return possessionDate
	case entities.DueTriggerDaysFromPossession:
		return possessionDate.AddDate(0, 0, st.DueDays)
	default:
		return bookingDate
	}
}
