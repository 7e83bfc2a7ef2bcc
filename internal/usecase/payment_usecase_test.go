package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"plotbook/internal/domain/entities"
	"plotbook/internal/domain/finance"
	mock_interfaces "plotbook/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type paymentMocks struct {
	bookingRepo *mock_interfaces.MockIBookingRepository
	eventRepo   *mock_interfaces.MockIPaymentEventRepository
	gateway     *mock_interfaces.MockIPaymentGateway
}

func newPaymentUseCase(t *testing.T) (*PaymentUseCase, paymentMocks) {
	ctrl := gomock.NewController(t)
	m := paymentMocks{
		bookingRepo: mock_interfaces.NewMockIBookingRepository(ctrl),
		eventRepo:   mock_interfaces.NewMockIPaymentEventRepository(ctrl),
		gateway:     mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	return NewPaymentUseCase(m.bookingRepo, m.eventRepo, m.gateway), m
}

func submittedBooking() entities.Booking {
	return entities.Booking{
		ID:         "bk-1",
		ProjectID:  "proj-1",
		PlotID:     "plot-1",
		CustomerID: "cust-1",
		FinalValue: 1000000,
		Status:     entities.BookingStatusBooked,
		DocState:   entities.DocStateSubmitted,
		Schedule: []entities.ScheduleStage{
			{
				Name:      "Booking Advance",
				Order:     1,
				AmountDue: 500000,
				Balance:   500000,
				DueDate:   time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
				Status:    entities.StageStatusOverdue,
			},
			{
				Name:      "On Possession",
				Order:     2,
				AmountDue: 500000,
				Balance:   500000,
				DueDate:   time.Date(2027, 1, 10, 0, 0, 0, 0, time.UTC),
				Status:    entities.StageStatusPending,
			},
		},
	}
}

func receiveInput(amount float64) ReceivePaymentInput {
	return ReceivePaymentInput{
		BookingID: "bk-1",
		StageName: "Booking Advance",
		Amount:    amount,
		Date:      time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Mode:      entities.PaymentModeUPI,
		Reference: "UTR-991",
	}
}

func TestPaymentUseCase_ReceivePayment(t *testing.T) {
	t.Run("partial payment updates stage and booking status", func(t *testing.T) {
		uc, m := newPaymentUseCase(t)
		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(submittedBooking(), nil)
		m.eventRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.PaymentEvent) (entities.PaymentEvent, error) { return e, nil },
		)
		m.bookingRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Booking) (entities.Booking, error) { return b, nil },
		)

		booking, event, err := uc.ReceivePayment(context.Background(), receiveInput(300000))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		stage := booking.Schedule[0]
		if stage.AmountReceived != 300000 || stage.Balance != 200000 {
			t.Fatalf("unexpected stage amounts: %+v", stage)
		}
		if stage.Status != entities.StageStatusPartial {
			t.Fatalf("expected Partial, got %s", stage.Status)
		}
		if booking.Status != entities.BookingStatusPaymentInProgress {
			t.Fatalf("expected Payment In Progress, got %s", booking.Status)
		}
		if event.Amount != 300000 || event.Mode != entities.PaymentModeUPI || event.Reference != "UTR-991" {
			t.Fatalf("unexpected event: %+v", event)
		}
	})

	t.Run("paying the full schedule completes the booking", func(t *testing.T) {
		uc, m := newPaymentUseCase(t)
		b := submittedBooking()
		b.Schedule[0].AmountReceived = 500000
		b.Schedule[0].Balance = 0
		b.Schedule[0].Status = entities.StageStatusPaid
		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(b, nil)
		m.eventRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.PaymentEvent) (entities.PaymentEvent, error) { return e, nil },
		)
		m.bookingRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Booking) (entities.Booking, error) { return b, nil },
		)

		in := receiveInput(500000)
		in.StageName = "On Possession"
		booking, _, err := uc.ReceivePayment(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if booking.Schedule[1].Status != entities.StageStatusPaid {
			t.Fatalf("expected Paid, got %s", booking.Schedule[1].Status)
		}
		if booking.Status != entities.BookingStatusCompleted {
			t.Fatalf("expected Completed, got %s", booking.Status)
		}
	})

	t.Run("non-positive amount fails without writes", func(t *testing.T) {
		uc, m := newPaymentUseCase(t)
		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(submittedBooking(), nil)

		_, _, err := uc.ReceivePayment(context.Background(), receiveInput(0))
		if !errors.Is(err, finance.ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("overpayment fails without writes", func(t *testing.T) {
		uc, m := newPaymentUseCase(t)
		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(submittedBooking(), nil)

		_, _, err := uc.ReceivePayment(context.Background(), receiveInput(500001))
		if !errors.Is(err, finance.ErrOverpayment) {
			t.Fatalf("expected ErrOverpayment, got %v", err)
		}
	})

	t.Run("unknown stage", func(t *testing.T) {
		uc, m := newPaymentUseCase(t)
		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(submittedBooking(), nil)

		in := receiveInput(1000)
		in.StageName = "Registration"
		if _, _, err := uc.ReceivePayment(context.Background(), in); !errors.Is(err, ErrStageNotFound) {
			t.Fatalf("expected ErrStageNotFound, got %v", err)
		}
	})

	t.Run("draft booking rejected", func(t *testing.T) {
		uc, m := newPaymentUseCase(t)
		b := submittedBooking()
		b.DocState = entities.DocStateDraft
		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(b, nil)

		if _, _, err := uc.ReceivePayment(context.Background(), receiveInput(1000)); !errors.Is(err, ErrBookingNotSubmitted) {
			t.Fatalf("expected ErrBookingNotSubmitted, got %v", err)
		}
	})

	t.Run("cancelled booking rejected", func(t *testing.T) {
		uc, m := newPaymentUseCase(t)
		b := submittedBooking()
		b.DocState = entities.DocStateCancelled
		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(b, nil)

		if _, _, err := uc.ReceivePayment(context.Background(), receiveInput(1000)); !errors.Is(err, ErrBookingCancelled) {
			t.Fatalf("expected ErrBookingCancelled, got %v", err)
		}
	})

	t.Run("invalid mode", func(t *testing.T) {
		uc, _ := newPaymentUseCase(t)
		in := receiveInput(1000)
		in.Mode = "Barter"
		if _, _, err := uc.ReceivePayment(context.Background(), in); !errors.Is(err, ErrInvalidPaymentMode) {
			t.Fatalf("expected ErrInvalidPaymentMode, got %v", err)
		}
	})
}

func TestPaymentUseCase_ListPayableStages(t *testing.T) {
	t.Run("returns open stages in order", func(t *testing.T) {
		uc, m := newPaymentUseCase(t)
		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(submittedBooking(), nil)

		stages, err := uc.ListPayableStages(context.Background(), "bk-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(stages) != 2 || stages[0].Name != "Booking Advance" {
			t.Fatalf("unexpected stages: %+v", stages)
		}
	})

	t.Run("fully paid schedule yields ErrNothingToCollect", func(t *testing.T) {
		uc, m := newPaymentUseCase(t)
		b := submittedBooking()
		for i := range b.Schedule {
			b.Schedule[i].AmountReceived = b.Schedule[i].AmountDue
			b.Schedule[i].Balance = 0
			b.Schedule[i].Status = entities.StageStatusPaid
		}
		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(b, nil)

		if _, err := uc.ListPayableStages(context.Background(), "bk-1"); !errors.Is(err, ErrNothingToCollect) {
			t.Fatalf("expected ErrNothingToCollect, got %v", err)
		}
	})
}

func TestPaymentUseCase_CollectOnline(t *testing.T) {
	t.Run("approved charge records online event for the balance", func(t *testing.T) {
		uc, m := newPaymentUseCase(t)
		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(submittedBooking(), nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var req map[string]any
				if err := json.Unmarshal(payload, &req); err != nil {
					t.Fatalf("gateway payload not json: %v", err)
				}
				if req["transaction_amount"].(float64) != 500000 {
					t.Fatalf("expected charge for stored balance, got %v", req["transaction_amount"])
				}
				return "mp-77", "approved", json.RawMessage(`{"id":"mp-77","status":"approved"}`), nil
			},
		)
		m.eventRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.PaymentEvent) (entities.PaymentEvent, error) { return e, nil },
		)
		m.bookingRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Booking) (entities.Booking, error) { return b, nil },
		)

		booking, event, err := uc.CollectOnline(context.Background(), "bk-1", "Booking Advance", json.RawMessage(`{"payment_method_id":"pix"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if event.Mode != entities.PaymentModeOnline || event.GatewayPaymentID != "mp-77" {
			t.Fatalf("unexpected event: %+v", event)
		}
		if booking.Schedule[0].Status != entities.StageStatusPaid {
			t.Fatalf("expected stage Paid after full-balance charge, got %s", booking.Schedule[0].Status)
		}
	})

	t.Run("declined charge records nothing", func(t *testing.T) {
		uc, m := newPaymentUseCase(t)
		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(submittedBooking(), nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-78", "rejected", json.RawMessage(`{}`), nil)

		_, _, err := uc.CollectOnline(context.Background(), "bk-1", "Booking Advance", nil)
		if !errors.Is(err, ErrGatewayDeclined) {
			t.Fatalf("expected ErrGatewayDeclined, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil)
		_, _, err := uc.CollectOnline(context.Background(), "bk-1", "Booking Advance", nil)
		if err == nil || err.Error() != "payment gateway not configured" {
			t.Fatalf("expected gateway not configured error, got %v", err)
		}
	})

	t.Run("paid stage cannot be charged", func(t *testing.T) {
		uc, m := newPaymentUseCase(t)
		b := submittedBooking()
		b.Schedule[0].AmountReceived = 500000
		b.Schedule[0].Balance = 0
		b.Schedule[0].Status = entities.StageStatusPaid
		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(b, nil)

		_, _, err := uc.CollectOnline(context.Background(), "bk-1", "Booking Advance", nil)
		if !errors.Is(err, finance.ErrStageAlreadyPaid) {
			t.Fatalf("expected ErrStageAlreadyPaid, got %v", err)
		}
	})
}
