package interfaces

import (
	"context"

	"plotbook/internal/domain/entities"
)

//go:generate mockgen -source=invoice_repository_interface.go -destination=mocks/mock_invoice_repository.go -package=mock_interfaces

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.

type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	ListByBookingID(ctx context.Context, bookingID string) ([]entities.Invoice, error)
}
