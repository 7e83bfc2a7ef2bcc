package response

import (
	"time"

	"plotbook/internal/domain/entities"
)

type InvoiceResponse struct {
	InvoiceID   string    `json:"invoice_id"`
	ID          string    `json:"id"`
	BookingID   string    `json:"booking_id"`
	CustomerID  string    `json:"customer_id"`
	PlotID      string    `json:"plot_id"`
	ProjectID   string    `json:"project_id"`
	Amount      float64   `json:"amount"`
	PostingDate time.Time `json:"posting_date"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:   inv.ID,
		ID:          inv.ID,
		BookingID:   inv.BookingID,
		CustomerID:  inv.CustomerID,
		PlotID:      inv.PlotID,
		ProjectID:   inv.ProjectID,
		Amount:      inv.Amount,
		PostingDate: inv.PostingDate,
		CreatedAt:   inv.CreatedAt,
	}
}
