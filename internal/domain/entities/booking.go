package entities

import "time"

// BookingStatus represents the collection lifecycle of a booking.
//
// Domain notes:
//   - Draft/Booked/Cancelled follow the document state; the statuses in
//     between are derived from the payment schedule roll-up.
//   - Lifecycle: Draft -> Booked -> Payment In Progress -> Possession Due -> Completed,
//     with Cancelled reachable from any submitted state.

type BookingStatus string

const (
	BookingStatusDraft             BookingStatus = "Draft"
	BookingStatusBooked            BookingStatus = "Booked"
	BookingStatusPaymentInProgress BookingStatus = "Payment In Progress"
	BookingStatusPossessionDue     BookingStatus = "Possession Due"
	BookingStatusCompleted         BookingStatus = "Completed"
	BookingStatusCancelled         BookingStatus = "Cancelled"
)

// DocState is the submission state of the booking document.

type DocState string

const (
	DocStateDraft     DocState = "draft"
	DocStateSubmitted DocState = "submitted"
	DocStateCancelled DocState = "cancelled"
)

// StageStatus represents one payment schedule row's collection state.
//
// Paid is terminal. Cancelled is only set when the parent booking is
// cancelled with the row still unpaid.

type StageStatus string

const (
	StageStatusPending   StageStatus = "Pending"
	StageStatusPartial   StageStatus = "Partial"
	StageStatusOverdue   StageStatus = "Overdue"
	StageStatusPaid      StageStatus = "Paid"
	StageStatusCancelled StageStatus = "Cancelled"
)

// ScheduleStage is one installment row of a booking's payment schedule.
//
// AmountReceived is the accumulated sum of payment events applied to the
// stage; Balance is persisted denormalized for read-side queries but is
// always recomputed from AmountDue - AmountReceived before writing.
type ScheduleStage struct {
	Name              string      `json:"name"`
	Order             int         `json:"order"`
	Percentage        float64     `json:"percentage"`
	AmountDue         float64     `json:"amount_due"`
	AmountReceived    float64     `json:"amount_received"`
	Balance           float64     `json:"balance"`
	DueDate           time.Time   `json:"due_date"`
	Status            StageStatus `json:"status"`
	IsPossessionStage bool        `json:"is_possession_stage"`
	ReceiptDate       time.Time   `json:"receipt_date,omitempty"`
}

// Booking is a customer's purchase of one plot, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
//
// The payment schedule is embedded in the booking item: rows are only ever
// mutated through the booking, never addressed independently.
//
// Monetary representation:
//   - FinalValue is always max(PlotValue - Discount, 0); it is recomputed
//     whenever PlotValue or Discount changes, never accepted from a caller.
type Booking struct {
	ID             string          `json:"id"`
	ProjectID      string          `json:"project_id"`
	PlotID         string          `json:"plot_id"`
	CustomerID     string          `json:"customer_id"`
	AssignedRM     string          `json:"assigned_rm"`
	RMEmail        string          `json:"rm_email,omitempty"`
	PlanTemplateID string          `json:"plan_template_id,omitempty"`
	PlotValue      float64         `json:"plot_value"`
	Discount       float64         `json:"discount"`
	FinalValue     float64         `json:"final_value"`
	BookingDate    time.Time       `json:"booking_date"`
	PossessionDate time.Time       `json:"possession_date,omitempty"`
	Status         BookingStatus   `json:"status"`
	DocState       DocState        `json:"doc_state"`
	Schedule       []ScheduleStage `json:"schedule,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
