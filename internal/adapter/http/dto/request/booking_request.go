package request

import (
	"errors"
	"time"

	"plotbook/internal/usecase"
)

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

const dateLayout = "2006-01-02"

// BookingCreateRequest is the payload for creating a draft booking.
// Dates come in as YYYY-MM-DD; booking_date defaults to today when omitted.
type BookingCreateRequest struct {
	ProjectID      string  `json:"project_id" binding:"required"`
	PlotID         string  `json:"plot_id" binding:"required"`
	CustomerID     string  `json:"customer_id" binding:"required"`
	AssignedRM     string  `json:"assigned_rm"`
	RMEmail        string  `json:"rm_email"`
	PlanTemplateID string  `json:"plan_template_id"`
	PlotValue      float64 `json:"plot_value"`
	Discount       float64 `json:"discount"`
	BookingDate    string  `json:"booking_date"`
	PossessionDate string  `json:"possession_date"`
}

func (r BookingCreateRequest) ToInput() (usecase.CreateBookingInput, error) {
	bookingDate, err := parseDate(r.BookingDate)
	if err != nil {
		return usecase.CreateBookingInput{}, err
	}
	possessionDate, err := parseDate(r.PossessionDate)
	if err != nil {
		return usecase.CreateBookingInput{}, err
	}
	return usecase.CreateBookingInput{
		ProjectID:      r.ProjectID,
		PlotID:         r.PlotID,
		CustomerID:     r.CustomerID,
		AssignedRM:     r.AssignedRM,
		RMEmail:        r.RMEmail,
		PlanTemplateID: r.PlanTemplateID,
		PlotValue:      r.PlotValue,
		Discount:       r.Discount,
		BookingDate:    bookingDate,
		PossessionDate: possessionDate,
	}, nil
}

// BookingValuesRequest is the payload for updating a draft booking's money
// fields. The final value is always recomputed server-side.
type BookingValuesRequest struct {
	PlotValue float64 `json:"plot_value" binding:"required"`
	Discount  float64 `json:"discount"`
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t.UTC(), nil
}
