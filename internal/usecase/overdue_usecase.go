package usecase

import (
	"context"
	"log"
	"time"

	"plotbook/internal/domain/finance"
	"plotbook/internal/usecase/interfaces"
)

// IOverdueUseCase is the daily sweep: past-due Pending/Partial stages are
// flipped to Overdue and the booking's RM is alerted. Time passing fires no
// event on its own, so the scheduler drives this re-derivation.

type IOverdueUseCase interface {
	MarkOverdueBookings(ctx context.Context, asOf time.Time) (int, error)
}

type OverdueUseCase struct {
	bookingRepo interfaces.IBookingRepository
	notifier    interfaces.INotifier
}

var _ IOverdueUseCase = (*OverdueUseCase)(nil)

func NewOverdueUseCase(bookingRepo interfaces.IBookingRepository, notifier interfaces.INotifier) *OverdueUseCase {
	return &OverdueUseCase{bookingRepo: bookingRepo, notifier: notifier}
}

// MarkOverdueBookings returns the number of stages flipped. A failure on
// one booking is logged and does not stop the sweep; notification failures
// never fail the sweep.
func (u *OverdueUseCase) MarkOverdueBookings(ctx context.Context, asOf time.Time) (int, error) {
	bookings, err := u.bookingRepo.ListSubmitted(ctx)
	if err != nil {
		return 0, err
	}

	flipped := 0
	for _, b := range bookings {
		schedule, changed := finance.MarkOverdue(b.Schedule, asOf)
		if len(changed) == 0 {
			continue
		}
		b.Schedule = schedule
		b.UpdatedAt = time.Now().UTC()
		if _, err := u.bookingRepo.Update(ctx, b); err != nil {
			log.Printf("[overdue][usecase] update failed booking_id=%s err=%v", b.ID, err)
			continue
		}
		flipped += len(changed)
		log.Printf("[overdue][usecase] marked overdue booking_id=%s stages=%v", b.ID, changed)

		if u.notifier != nil && b.RMEmail != "" {
			if err := u.notifier.SendOverdueAlert(ctx, b, changed); err != nil {
				log.Printf("[overdue][usecase] rm alert failed booking_id=%s rm=%s err=%v", b.ID, b.AssignedRM, err)
			}
		}
	}
	return flipped, nil
}
