package entities

import "time"

// PlotStatus is the inventory state of a plot.
//
// Available plots can be booked; a Booked plot carries a backref to the
// booking holding it; Registered means the sale deed is executed.

type PlotStatus string

const (
	PlotStatusAvailable  PlotStatus = "Available"
	PlotStatusBooked     PlotStatus = "Booked"
	PlotStatusRegistered PlotStatus = "Registered"
)

// Plot is a unit of real-estate inventory within a project.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
type Plot struct {
	ID         string     `json:"id"`
	ProjectID  string     `json:"project_id"`
	PlotNumber string     `json:"plot_number"`
	AreaSqft   float64    `json:"area_sqft,omitempty"`
	TotalValue float64    `json:"total_value"`
	Status     PlotStatus `json:"status"`
	BookingID  string     `json:"booking_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
