package entities

import "time"

// Invoice is a sale invoice raised for a submitted booking.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (booking_id-index): booking_id
type Invoice struct {
	ID          string    `json:"id"`
	BookingID   string    `json:"booking_id"`
	CustomerID  string    `json:"customer_id"`
	PlotID      string    `json:"plot_id"`
	ProjectID   string    `json:"project_id"`
	Amount      float64   `json:"amount"`
	PostingDate time.Time `json:"posting_date"`
	CreatedAt   time.Time `json:"created_at"`
}
