package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"plotbook/internal/domain/entities"
	"plotbook/internal/domain/finance"
	"plotbook/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound      = errors.New("booking not found")
	ErrInvalidBookingInput  = errors.New("invalid booking input")
	ErrPlotNotFound         = errors.New("plot not found")
	ErrPlotNotAvailable     = errors.New("plot is not available")
	ErrBookingNotDraft      = errors.New("booking is not in draft state")
	ErrBookingNotSubmitted  = errors.New("booking is not submitted")
	ErrBookingCancelled     = errors.New("booking is cancelled")
	ErrMissingPlanTemplate  = errors.New("payment plan is required before submitting")
	ErrInvalidFinalValue    = errors.New("final value must be greater than zero before submitting")
	ErrPlanTemplateNotFound = errors.New("payment plan template not found")
)

// CreateBookingInput carries the caller-supplied fields of a draft booking.
// PlotValue defaults to the plot's total value when zero.
type CreateBookingInput struct {
	ProjectID      string
	PlotID         string
	CustomerID     string
	AssignedRM     string
	RMEmail        string
	PlanTemplateID string
	PlotValue      float64
	Discount       float64
	BookingDate    time.Time
	PossessionDate time.Time
}

// IBookingUseCase encapsulates the booking document lifecycle:
// draft creation, value edits, submission (schedule generation + plot lock),
// cancellation (plot release), and invoice generation.

type IBookingUseCase interface {
	Create(ctx context.Context, in CreateBookingInput) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	ListByCustomer(ctx context.Context, customerID string) ([]entities.Booking, error)
	UpdateValues(ctx context.Context, id string, plotValue, discount float64) (entities.Booking, error)
	Submit(ctx context.Context, id string) (entities.Booking, error)
	Cancel(ctx context.Context, id string) (entities.Booking, error)
	GenerateInvoice(ctx context.Context, bookingID string) (entities.Invoice, error)
}

type BookingUseCase struct {
	repo        interfaces.IBookingRepository
	plotRepo    interfaces.IPlotRepository
	planRepo    interfaces.IPlanTemplateRepository
	invoiceRepo interfaces.IInvoiceRepository
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(
	repo interfaces.IBookingRepository,
	plotRepo interfaces.IPlotRepository,
	planRepo interfaces.IPlanTemplateRepository,
	invoiceRepo interfaces.IInvoiceRepository,
) *BookingUseCase {
	return &BookingUseCase{repo: repo, plotRepo: plotRepo, planRepo: planRepo, invoiceRepo: invoiceRepo}
}

func (u *BookingUseCase) Create(ctx context.Context, in CreateBookingInput) (entities.Booking, error) {
	in.ProjectID = strings.TrimSpace(in.ProjectID)
	in.PlotID = strings.TrimSpace(in.PlotID)
	in.CustomerID = strings.TrimSpace(in.CustomerID)
	if in.ProjectID == "" || in.PlotID == "" || in.CustomerID == "" {
		return entities.Booking{}, ErrInvalidBookingInput
	}
	if in.PlotValue < 0 || in.Discount < 0 {
		return entities.Booking{}, ErrInvalidBookingInput
	}

	plot, err := u.plotRepo.GetByID(ctx, in.PlotID)
	if err != nil {
		return entities.Booking{}, err
	}
	if plot.ID == "" {
		return entities.Booking{}, ErrPlotNotFound
	}
	if plot.Status != entities.PlotStatusAvailable {
		log.Printf("[booking][usecase] plot not available plot_id=%s status=%s held_by=%s", plot.ID, plot.Status, plot.BookingID)
		return entities.Booking{}, ErrPlotNotAvailable
	}

	plotValue := in.PlotValue
	if plotValue == 0 {
		plotValue = plot.TotalValue
	}
	bookingDate := in.BookingDate
	if bookingDate.IsZero() {
		bookingDate = time.Now().UTC()
	}

	now := time.Now().UTC()
	b := entities.Booking{
		ID:             uuid.NewString(),
		ProjectID:      in.ProjectID,
		PlotID:         in.PlotID,
		CustomerID:     in.CustomerID,
		AssignedRM:     strings.TrimSpace(in.AssignedRM),
		RMEmail:        strings.TrimSpace(in.RMEmail),
		PlanTemplateID: strings.TrimSpace(in.PlanTemplateID),
		PlotValue:      plotValue,
		Discount:       in.Discount,
		FinalValue:     finance.FinalValue(plotValue, in.Discount),
		BookingDate:    bookingDate,
		PossessionDate: in.PossessionDate,
		Status:         entities.BookingStatusDraft,
		DocState:       entities.DocStateDraft,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created, err := u.repo.Create(ctx, b)
	if err != nil {
		return entities.Booking{}, err
	}
	log.Printf("[booking][usecase] created booking_id=%s plot_id=%s final_value=%.2f", created.ID, created.PlotID, created.FinalValue)
	return created, nil
}

func (u *BookingUseCase) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Booking{}, ErrInvalidBookingInput
	}
	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

func (u *BookingUseCase) ListByCustomer(ctx context.Context, customerID string) ([]entities.Booking, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidBookingInput
	}
	return u.repo.ListByCustomerID(ctx, customerID)
}

// UpdateValues changes plot value / discount on a draft booking and
// recomputes the final value. Submitted bookings are immutable here.
func (u *BookingUseCase) UpdateValues(ctx context.Context, id string, plotValue, discount float64) (entities.Booking, error) {
	if plotValue < 0 || discount < 0 {
		return entities.Booking{}, ErrInvalidBookingInput
	}
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.DocState != entities.DocStateDraft {
		return entities.Booking{}, ErrBookingNotDraft
	}

	b.PlotValue = plotValue
	b.Discount = discount
	b.FinalValue = finance.FinalValue(plotValue, discount)
	b.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, b)
}

// Submit generates the payment schedule from the plan template, locks the
// plot and moves the booking to Booked. Submission is one-way.
func (u *BookingUseCase) Submit(ctx context.Context, id string) (entities.Booking, error) {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.DocState != entities.DocStateDraft {
		return entities.Booking{}, ErrBookingNotDraft
	}
	if b.PlanTemplateID == "" {
		return entities.Booking{}, ErrMissingPlanTemplate
	}
	if b.FinalValue <= 0 {
		return entities.Booking{}, ErrInvalidFinalValue
	}

	tpl, err := u.planRepo.GetByID(ctx, b.PlanTemplateID)
	if err != nil {
		return entities.Booking{}, err
	}
	if tpl.ID == "" {
		return entities.Booking{}, ErrPlanTemplateNotFound
	}

	schedule, err := finance.GenerateSchedule(tpl, b.FinalValue, b.BookingDate, b.PossessionDate)
	if err != nil {
		return entities.Booking{}, err
	}

	// Re-check availability at submit time; the plot may have been taken
	// while the booking sat in draft.
	plot, err := u.plotRepo.GetByID(ctx, b.PlotID)
	if err != nil {
		return entities.Booking{}, err
	}
	if plot.ID == "" {
		return entities.Booking{}, ErrPlotNotFound
	}
	if plot.Status != entities.PlotStatusAvailable && plot.BookingID != b.ID {
		return entities.Booking{}, ErrPlotNotAvailable
	}

	b.Schedule = schedule
	b.DocState = entities.DocStateSubmitted
	b.Status = entities.BookingStatusBooked
	b.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, b)
	if err != nil {
		return entities.Booking{}, err
	}
	if _, err := u.plotRepo.UpdateStatus(ctx, b.PlotID, entities.PlotStatusBooked, b.ID); err != nil {
		// Booking is submitted but the plot lock failed; surface the error
		// so the caller retries rather than leaving the plot sellable twice.
		log.Printf("[booking][usecase] plot lock failed booking_id=%s plot_id=%s err=%v", b.ID, b.PlotID, err)
		return entities.Booking{}, err
	}
	log.Printf("[booking][usecase] submitted booking_id=%s stages=%d", updated.ID, len(updated.Schedule))
	return updated, nil
}

// Cancel is terminal: the plot is released, non-Paid schedule rows are
// marked Cancelled and the booking status mirrors the cancellation.
func (u *BookingUseCase) Cancel(ctx context.Context, id string) (entities.Booking, error) {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.DocState == entities.DocStateCancelled {
		return entities.Booking{}, ErrBookingCancelled
	}
	if b.DocState != entities.DocStateSubmitted {
		return entities.Booking{}, ErrBookingNotSubmitted
	}

	b.Schedule = finance.CancelSchedule(b.Schedule)
	b.DocState = entities.DocStateCancelled
	b.Status = entities.BookingStatusCancelled
	b.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, b)
	if err != nil {
		return entities.Booking{}, err
	}
	if _, err := u.plotRepo.UpdateStatus(ctx, b.PlotID, entities.PlotStatusAvailable, ""); err != nil {
		log.Printf("[booking][usecase] plot release failed booking_id=%s plot_id=%s err=%v", b.ID, b.PlotID, err)
		return entities.Booking{}, err
	}
	log.Printf("[booking][usecase] cancelled booking_id=%s", updated.ID)
	return updated, nil
}

// GenerateInvoice raises a sale invoice for the booking's final value.
// Role enforcement (accounts only) happens at the route middleware.
func (u *BookingUseCase) GenerateInvoice(ctx context.Context, bookingID string) (entities.Invoice, error) {
	b, err := u.GetByID(ctx, bookingID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if b.DocState != entities.DocStateSubmitted {
		return entities.Invoice{}, ErrBookingNotSubmitted
	}

	now := time.Now().UTC()
	inv := entities.Invoice{
		ID:          uuid.NewString(),
		BookingID:   b.ID,
		CustomerID:  b.CustomerID,
		PlotID:      b.PlotID,
		ProjectID:   b.ProjectID,
		Amount:      b.FinalValue,
		PostingDate: now,
		CreatedAt:   now,
	}
	created, err := u.invoiceRepo.Create(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}
	log.Printf("[booking][usecase] invoice generated booking_id=%s invoice_id=%s amount=%.2f", b.ID, created.ID, created.Amount)
	return created, nil
}
