package interfaces

import (
	"context"

	"plotbook/internal/domain/entities"
)

//go:generate mockgen -source=booking_repository_interface.go -destination=mocks/mock_booking_repository.go -package=mock_interfaces

// IBookingRepository abstracts DynamoDB persistence for Booking.
//
// The payment schedule is embedded in the booking item, so stage mutations
// go through Update as a whole-item write conditional on the item existing.

type IBookingRepository interface {
	Create(ctx context.Context, b entities.Booking) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	Update(ctx context.Context, b entities.Booking) (entities.Booking, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Booking, error)
	ListSubmitted(ctx context.Context) ([]entities.Booking, error)
}
