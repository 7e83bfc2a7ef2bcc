package response

import (
	"time"

	"plotbook/internal/domain/entities"
	"plotbook/internal/domain/finance"
)

type ScheduleStageResponse struct {
	Name              string     `json:"name"`
	Order             int        `json:"order"`
	Percentage        float64    `json:"percentage"`
	AmountDue         float64    `json:"amount_due"`
	AmountReceived    float64    `json:"amount_received"`
	Balance           float64    `json:"balance"`
	DueDate           *time.Time `json:"due_date,omitempty"`
	Status            string     `json:"status"`
	IsPossessionStage bool       `json:"is_possession_stage"`
	ReceiptDate       *time.Time `json:"receipt_date,omitempty"`
}

type BookingResponse struct {
	BookingID      string                  `json:"booking_id"`
	ID             string                  `json:"id"`
	ProjectID      string                  `json:"project_id"`
	PlotID         string                  `json:"plot_id"`
	CustomerID     string                  `json:"customer_id"`
	AssignedRM     string                  `json:"assigned_rm,omitempty"`
	PlanTemplateID string                  `json:"plan_template_id,omitempty"`
	PlotValue      float64                 `json:"plot_value"`
	Discount       float64                 `json:"discount"`
	FinalValue     float64                 `json:"final_value"`
	BookingDate    *time.Time              `json:"booking_date,omitempty"`
	PossessionDate *time.Time              `json:"possession_date,omitempty"`
	Status         string                  `json:"status"`
	DocState       string                  `json:"doc_state"`
	Schedule       []ScheduleStageResponse `json:"schedule,omitempty"`
	Totals         *finance.ScheduleTotals `json:"totals,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

func FromBooking(b entities.Booking) BookingResponse {
	res := BookingResponse{
		BookingID:      b.ID,
		ID:             b.ID,
		ProjectID:      b.ProjectID,
		PlotID:         b.PlotID,
		CustomerID:     b.CustomerID,
		AssignedRM:     b.AssignedRM,
		PlanTemplateID: b.PlanTemplateID,
		PlotValue:      b.PlotValue,
		Discount:       b.Discount,
		FinalValue:     b.FinalValue,
		BookingDate:    optionalTime(b.BookingDate),
		PossessionDate: optionalTime(b.PossessionDate),
		Status:         string(b.Status),
		DocState:       string(b.DocState),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
	if len(b.Schedule) > 0 {
		res.Schedule = FromSchedule(b.Schedule)
		totals := finance.Totals(b.Schedule)
		res.Totals = &totals
	}
	return res
}

func FromSchedule(schedule []entities.ScheduleStage) []ScheduleStageResponse {
	out := make([]ScheduleStageResponse, 0, len(schedule))
	for _, s := range schedule {
		out = append(out, FromScheduleStage(s))
	}
	return out
}

func FromScheduleStage(s entities.ScheduleStage) ScheduleStageResponse {
	return ScheduleStageResponse{
		Name:              s.Name,
		Order:             s.Order,
		Percentage:        s.Percentage,
		AmountDue:         s.AmountDue,
		AmountReceived:    s.AmountReceived,
		Balance:           finance.Balance(s),
		DueDate:           optionalTime(s.DueDate),
		Status:            string(s.Status),
		IsPossessionStage: s.IsPossessionStage,
		ReceiptDate:       optionalTime(s.ReceiptDate),
	}
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
