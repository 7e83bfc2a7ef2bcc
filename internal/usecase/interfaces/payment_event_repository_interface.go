package interfaces

import (
	"context"
	"time"

	"plotbook/internal/domain/entities"
)

//go:generate mockgen -source=payment_event_repository_interface.go -destination=mocks/mock_payment_event_repository.go -package=mock_interfaces

// IPaymentEventRepository abstracts DynamoDB persistence for PaymentEvent.
// Events are append-only; there is no update or delete.

type IPaymentEventRepository interface {
	Create(ctx context.Context, e entities.PaymentEvent) (entities.PaymentEvent, error)
	ListByBookingID(ctx context.Context, bookingID string) ([]entities.PaymentEvent, error)
	// ListByDateRange returns events with from <= date < to, for the
	// collection reports.
	ListByDateRange(ctx context.Context, from, to time.Time) ([]entities.PaymentEvent, error)
}
