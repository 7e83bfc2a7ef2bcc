package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"plotbook/internal/domain/entities"
	"plotbook/internal/domain/finance"
	"plotbook/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidPaymentInput = errors.New("invalid payment input")
	ErrInvalidPaymentMode  = errors.New("invalid payment mode")
	ErrStageNotFound       = errors.New("payment schedule stage not found")
	ErrNothingToCollect    = errors.New("all payment stages are fully paid")
	ErrGatewayDeclined     = errors.New("online payment was not approved")
)

// ReceivePaymentInput is one staff-recorded receipt against a stage.
type ReceivePaymentInput struct {
	BookingID string
	StageName string
	Amount    float64
	Date      time.Time
	Mode      entities.PaymentMode
	Reference string
}

// IPaymentUseCase encapsulates payment capture against a booking's
// schedule: validation, event recording, stage update and booking status
// roll-up, plus the customer-initiated online collection flow.

type IPaymentUseCase interface {
	ReceivePayment(ctx context.Context, in ReceivePaymentInput) (entities.Booking, entities.PaymentEvent, error)
	ListPayableStages(ctx context.Context, bookingID string) ([]entities.ScheduleStage, error)
	ListByBooking(ctx context.Context, bookingID string) ([]entities.PaymentEvent, error)
	CollectOnline(ctx context.Context, bookingID, stageName string, payload json.RawMessage) (entities.Booking, entities.PaymentEvent, error)
}

type PaymentUseCase struct {
	bookingRepo interfaces.IBookingRepository
	eventRepo   interfaces.IPaymentEventRepository
	gateway     interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	bookingRepo interfaces.IBookingRepository,
	eventRepo interfaces.IPaymentEventRepository,
	gateway interfaces.IPaymentGateway,
) *PaymentUseCase {
	return &PaymentUseCase{bookingRepo: bookingRepo, eventRepo: eventRepo, gateway: gateway}
}

func validMode(m entities.PaymentMode) bool {
	switch m {
	case entities.PaymentModeCash, entities.PaymentModeCheque, entities.PaymentModeBankTransfer,
		entities.PaymentModeUPI, entities.PaymentModeOnline:
		return true
	}
	return false
}

// ReceivePayment records one receipt: the amount is validated against the
// stage balance, the event is persisted, the stage accumulates the amount
// and the booking status is rolled up. Validation failures leave both the
// booking and the event store untouched.
func (u *PaymentUseCase) ReceivePayment(ctx context.Context, in ReceivePaymentInput) (entities.Booking, entities.PaymentEvent, error) {
	in.BookingID = strings.TrimSpace(in.BookingID)
	in.StageName = strings.TrimSpace(in.StageName)
	if in.BookingID == "" || in.StageName == "" {
		return entities.Booking{}, entities.PaymentEvent{}, ErrInvalidPaymentInput
	}
	if !validMode(in.Mode) {
		return entities.Booking{}, entities.PaymentEvent{}, ErrInvalidPaymentMode
	}
	if in.Date.IsZero() {
		in.Date = time.Now().UTC()
	}

	b, err := u.loadSubmittedBooking(ctx, in.BookingID)
	if err != nil {
		return entities.Booking{}, entities.PaymentEvent{}, err
	}

	idx := stageIndex(b.Schedule, in.StageName)
	if idx < 0 {
		return entities.Booking{}, entities.PaymentEvent{}, ErrStageNotFound
	}

	updatedStage, err := finance.ApplyPayment(b.Schedule[idx], in.Amount, in.Date)
	if err != nil {
		log.Printf("[payment][usecase] validation failed booking_id=%s stage=%s amount=%.2f err=%v", in.BookingID, in.StageName, in.Amount, err)
		return entities.Booking{}, entities.PaymentEvent{}, err
	}

	now := time.Now().UTC()
	event := entities.PaymentEvent{
		ID:        uuid.NewString(),
		BookingID: b.ID,
		StageName: in.StageName,
		Amount:    in.Amount,
		Date:      in.Date,
		Mode:      in.Mode,
		Reference: strings.TrimSpace(in.Reference),
		CreatedAt: now,
	}

	b.Schedule[idx] = updatedStage
	b.Status = finance.DeriveBookingStatus(b.Schedule)
	b.UpdatedAt = now

	created, err := u.eventRepo.Create(ctx, event)
	if err != nil {
		return entities.Booking{}, entities.PaymentEvent{}, err
	}
	updated, err := u.bookingRepo.Update(ctx, b)
	if err != nil {
		// The event is persisted but the stage update failed; the next
		// recording retry reconciles from the stored schedule.
		log.Printf("[payment][usecase] booking update failed after event booking_id=%s event_id=%s err=%v", b.ID, created.ID, err)
		return entities.Booking{}, entities.PaymentEvent{}, err
	}
	log.Printf("[payment][usecase] payment recorded booking_id=%s stage=%s amount=%.2f mode=%s status=%s booking_status=%s",
		b.ID, in.StageName, in.Amount, in.Mode, updatedStage.Status, updated.Status)
	return updated, created, nil
}

// ListPayableStages returns the stages a payment can still be recorded
// against, in schedule order. ErrNothingToCollect when every stage is
// settled.
func (u *PaymentUseCase) ListPayableStages(ctx context.Context, bookingID string) ([]entities.ScheduleStage, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return nil, ErrInvalidPaymentInput
	}
	b, err := u.loadSubmittedBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	payable, err := finance.PayableStages(b.Schedule)
	if errors.Is(err, finance.ErrEmptySchedule) {
		return nil, ErrNothingToCollect
	}
	return payable, err
}

func (u *PaymentUseCase) ListByBooking(ctx context.Context, bookingID string) ([]entities.PaymentEvent, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return nil, ErrInvalidPaymentInput
	}
	return u.eventRepo.ListByBookingID(ctx, bookingID)
}

// CollectOnline charges the stage's outstanding balance through the payment
// gateway and records the approved charge as an Online payment event. The
// amount is always taken from the stored schedule, never from the payload.
func (u *PaymentUseCase) CollectOnline(ctx context.Context, bookingID, stageName string, payload json.RawMessage) (entities.Booking, entities.PaymentEvent, error) {
	bookingID = strings.TrimSpace(bookingID)
	stageName = strings.TrimSpace(stageName)
	if bookingID == "" || stageName == "" {
		return entities.Booking{}, entities.PaymentEvent{}, ErrInvalidPaymentInput
	}
	if u.gateway == nil {
		return entities.Booking{}, entities.PaymentEvent{}, errors.New("payment gateway not configured")
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		return entities.Booking{}, entities.PaymentEvent{}, ErrInvalidPaymentInput
	}

	b, err := u.loadSubmittedBooking(ctx, bookingID)
	if err != nil {
		return entities.Booking{}, entities.PaymentEvent{}, err
	}
	idx := stageIndex(b.Schedule, stageName)
	if idx < 0 {
		return entities.Booking{}, entities.PaymentEvent{}, ErrStageNotFound
	}
	stage := b.Schedule[idx]
	amount := finance.Balance(stage)
	if err := finance.ValidatePayment(stage, amount); err != nil {
		return entities.Booking{}, entities.PaymentEvent{}, err
	}

	// The stored balance is the source of truth for the charge amount;
	// external_reference ties the provider record back to the stage.
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil {
		reqMap = map[string]any{}
	}
	reqMap["transaction_amount"] = amount
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = fmt.Sprintf("%s/%s", b.ID, stageName)
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Booking %s / %s", b.ID, stageName)
	}
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.Booking{}, entities.PaymentEvent{}, err
	}

	log.Printf("[payment][usecase] online collect start booking_id=%s stage=%s amount=%.2f", b.ID, stageName, amount)
	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		log.Printf("[payment][usecase] gateway failed booking_id=%s stage=%s err=%v", b.ID, stageName, err)
		return entities.Booking{}, entities.PaymentEvent{}, err
	}
	if !strings.EqualFold(providerStatus, "approved") {
		log.Printf("[payment][usecase] gateway declined booking_id=%s stage=%s provider_status=%s", b.ID, stageName, providerStatus)
		return entities.Booking{}, entities.PaymentEvent{}, ErrGatewayDeclined
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed booking_id=%s err=%v", b.ID, err)
	}

	now := time.Now().UTC()
	updatedStage, err := finance.ApplyPayment(stage, amount, now)
	if err != nil {
		return entities.Booking{}, entities.PaymentEvent{}, err
	}

	event := entities.PaymentEvent{
		ID:                uuid.NewString(),
		BookingID:         b.ID,
		StageName:         stageName,
		Amount:            amount,
		Date:              now,
		Mode:              entities.PaymentModeOnline,
		Reference:         providerID,
		GatewayPaymentID:  providerID,
		GatewayPayload:    parsed,
		GatewayPayloadRaw: string(providerResp),
		CreatedAt:         now,
	}

	b.Schedule[idx] = updatedStage
	b.Status = finance.DeriveBookingStatus(b.Schedule)
	b.UpdatedAt = now

	created, err := u.eventRepo.Create(ctx, event)
	if err != nil {
		return entities.Booking{}, entities.PaymentEvent{}, err
	}
	updated, err := u.bookingRepo.Update(ctx, b)
	if err != nil {
		log.Printf("[payment][usecase] booking update failed after online event booking_id=%s event_id=%s err=%v", b.ID, created.ID, err)
		return entities.Booking{}, entities.PaymentEvent{}, err
	}
	log.Printf("[payment][usecase] online collect success booking_id=%s stage=%s provider_payment_id=%s", b.ID, stageName, providerID)
	return updated, created, nil
}

func (u *PaymentUseCase) loadSubmittedBooking(ctx context.Context, bookingID string) (entities.Booking, error) {
	b, err := u.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	if b.DocState == entities.DocStateCancelled {
		return entities.Booking{}, ErrBookingCancelled
	}
	if b.DocState != entities.DocStateSubmitted {
		return entities.Booking{}, ErrBookingNotSubmitted
	}
	return b, nil
}

func stageIndex(schedule []entities.ScheduleStage, name string) int {
	for i, s := range schedule {
		if s.Name == name {
			return i
		}
	}
	return -1
}
