package finance

import (
	"errors"
	"time"

	"plotbook/internal/domain/entities"
)

// MoneyEpsilon is the rounding tolerance for money comparisons. Amounts
// within one paisa of each other are treated as equal.
const MoneyEpsilon = 0.01

var (
	ErrInvalidAmount    = errors.New("payment amount must be greater than zero")
	ErrOverpayment      = errors.New("payment amount exceeds stage balance")
	ErrStageAlreadyPaid = errors.New("stage is already fully paid")
	ErrStageCancelled   = errors.New("stage is cancelled")
	ErrEmptySchedule    = errors.New("no payable stages in schedule")
)

// FinalValue computes a booking's sale price. Discounts may not produce a
// negative price: the result is clamped at zero.
func FinalValue(plotValue, discount float64) float64 {
	if v := plotValue - discount; v > 0 {
		return v
	}
	return 0
}

// Balance is the outstanding amount on a stage, never below zero.
func Balance(s entities.ScheduleStage) float64 {
	if b := s.AmountDue - s.AmountReceived; b > 0 {
		return b
	}
	return 0
}

// DeriveStageStatus recomputes a stage status from first principles. It is a
// pure function of its four inputs, so re-deriving with the same tuple
// always yields the same status.
//
// Precedence: Paid beats everything; a past-due unpaid stage is Overdue even
// when partially collected (date wins at derivation time; ApplyPayment
// deliberately differs, see its doc).
func DeriveStageStatus(received, due float64, dueDate, asOf time.Time) entities.StageStatus {
	switch {
	case received >= due-MoneyEpsilon:
		return entities.StageStatusPaid
	case !dueDate.IsZero() && dueDate.Before(truncateToDay(asOf)):
		return entities.StageStatusOverdue
	case received > MoneyEpsilon:
		return entities.StageStatusPartial
	default:
		return entities.StageStatusPending
	}
}

// PayableStages returns, in schedule order, the stages a payment can still
// be recorded against. ErrEmptySchedule when nothing remains to collect.
func PayableStages(schedule []entities.ScheduleStage) ([]entities.ScheduleStage, error) {
	var payable []entities.ScheduleStage
	for _, s := range schedule {
		switch s.Status {
		case entities.StageStatusPending, entities.StageStatusPartial, entities.StageStatusOverdue:
			payable = append(payable, s)
		}
	}
	if len(payable) == 0 {
		return nil, ErrEmptySchedule
	}
	return payable, nil
}

// ValidatePayment checks a candidate amount against a stage before anything
// is committed. Overpayment is a hard rule here: the amount may not exceed
// the stage balance beyond the money epsilon.
func ValidatePayment(s entities.ScheduleStage, amount float64) error {
	switch s.Status {
	case entities.StageStatusPaid:
		return ErrStageAlreadyPaid
	case entities.StageStatusCancelled:
		return ErrStageCancelled
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if amount > Balance(s)+MoneyEpsilon {
		return ErrOverpayment
	}
	return nil
}

// ApplyPayment returns the stage after a validated amount is received.
// The stage becomes Paid when the balance closes and Partial otherwise,
// even when the due date has passed. Payment activity wins at write time;
// the periodic MarkOverdue sweep reinstates Overdue by date.
func ApplyPayment(s entities.ScheduleStage, amount float64, receiptDate time.Time) (entities.ScheduleStage, error) {
	if err := ValidatePayment(s, amount); err != nil {
		return s, err
	}
	s.AmountReceived += amount
	s.Balance = Balance(s)
	if s.Balance <= MoneyEpsilon {
		s.Balance = 0
		s.Status = entities.StageStatusPaid
	} else {
		s.Status = entities.StageStatusPartial
	}
	s.ReceiptDate = receiptDate
	return s, nil
}

// MarkOverdue flips past-due Pending/Partial stages to Overdue and returns
// the names of the stages that changed. asOf is truncated to a calendar day:
// a stage due today is not yet overdue.
func MarkOverdue(schedule []entities.ScheduleStage, asOf time.Time) ([]entities.ScheduleStage, []string) {
	day := truncateToDay(asOf)
	var changed []string
	out := make([]entities.ScheduleStage, len(schedule))
	for i, s := range schedule {
		if (s.Status == entities.StageStatusPending || s.Status == entities.StageStatusPartial) &&
			!s.DueDate.IsZero() && s.DueDate.Before(day) {
			s.Status = entities.StageStatusOverdue
			changed = append(changed, s.Name)
		}
		out[i] = s
	}
	return out, changed
}

// CancelSchedule marks every non-Paid row Cancelled. Used when the parent
// booking is cancelled; Paid rows keep their history.
func CancelSchedule(schedule []entities.ScheduleStage) []entities.ScheduleStage {
	out := make([]entities.ScheduleStage, len(schedule))
	for i, s := range schedule {
		if s.Status != entities.StageStatusPaid {
			s.Status = entities.StageStatusCancelled
		}
		out[i] = s
	}
	return out
}

// DeriveBookingStatus rolls the schedule up into a booking-level status.
//
// Precedence, highest first:
//  1. Completed: every stage Paid
//  2. Possession Due: all non-possession stages Paid and a possession stage exists
//  3. Payment In Progress: any Paid/Partial activity
//  4. Booked: otherwise
//
// Cancelled rows are ignored; cancellation is driven by the document state,
// not by the roll-up.
func DeriveBookingStatus(schedule []entities.ScheduleStage) entities.BookingStatus {
	var active, possession, nonPossession []entities.ScheduleStage
	for _, s := range schedule {
		if s.Status == entities.StageStatusCancelled {
			continue
		}
		active = append(active, s)
		if s.IsPossessionStage {
			possession = append(possession, s)
		} else {
			nonPossession = append(nonPossession, s)
		}
	}
	if len(active) == 0 {
		return entities.BookingStatusBooked
	}

	allPaid := true
	anyActivity := false
	for _, s := range active {
		if s.Status != entities.StageStatusPaid {
			allPaid = false
		}
		if s.Status == entities.StageStatusPaid || s.Status == entities.StageStatusPartial {
			anyActivity = true
		}
	}
	nonPossessionPaid := len(nonPossession) > 0
	for _, s := range nonPossession {
		if s.Status != entities.StageStatusPaid {
			nonPossessionPaid = false
		}
	}

	switch {
	case allPaid:
		return entities.BookingStatusCompleted
	case nonPossessionPaid && len(possession) > 0:
		return entities.BookingStatusPossessionDue
	case anyActivity:
		return entities.BookingStatusPaymentInProgress
	default:
		return entities.BookingStatusBooked
	}
}

// ScheduleTotals are the aggregate figures dashboards read per booking.
type ScheduleTotals struct {
	TotalDue         float64 `json:"total_due"`
	TotalReceived    float64 `json:"total_received"`
	TotalOutstanding float64 `json:"total_outstanding"`
}

// Totals sums the schedule, excluding Cancelled rows.
func Totals(schedule []entities.ScheduleStage) ScheduleTotals {
	var t ScheduleTotals
	for _, s := range schedule {
		if s.Status == entities.StageStatusCancelled {
			continue
		}
		t.TotalDue += s.AmountDue
		t.TotalReceived += s.AmountReceived
		t.TotalOutstanding += Balance(s)
	}
	return t
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
