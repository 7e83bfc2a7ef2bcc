package interfaces

import (
	"context"

	"plotbook/internal/domain/entities"
)

//go:generate mockgen -source=notifier_interface.go -destination=mocks/mock_notifier.go -package=mock_interfaces

// INotifier delivers collection alerts to the booking's relationship
// manager. Delivery failures must not abort the overdue sweep; callers log
// and continue.

type INotifier interface {
	SendOverdueAlert(ctx context.Context, b entities.Booking, stageNames []string) error
}
