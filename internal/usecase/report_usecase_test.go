package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"plotbook/internal/domain/entities"
	mock_interfaces "plotbook/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type reportMocks struct {
	bookingRepo *mock_interfaces.MockIBookingRepository
	eventRepo   *mock_interfaces.MockIPaymentEventRepository
	plotRepo    *mock_interfaces.MockIPlotRepository
}

func newReportUseCase(t *testing.T) (*ReportUseCase, reportMocks) {
	ctrl := gomock.NewController(t)
	m := reportMocks{
		bookingRepo: mock_interfaces.NewMockIBookingRepository(ctrl),
		eventRepo:   mock_interfaces.NewMockIPaymentEventRepository(ctrl),
		plotRepo:    mock_interfaces.NewMockIPlotRepository(ctrl),
	}
	return NewReportUseCase(m.bookingRepo, m.eventRepo, m.plotRepo), m
}

func TestReportUseCase_ScheduleSummary(t *testing.T) {
	t.Run("totals exclude cancelled rows", func(t *testing.T) {
		uc, m := newReportUseCase(t)
		b := submittedBooking()
		b.Schedule[0].AmountReceived = 200000
		b.Schedule[0].Balance = 300000
		b.Schedule[0].Status = entities.StageStatusPartial
		b.Schedule = append(b.Schedule, entities.ScheduleStage{
			Name: "Dropped", AmountDue: 100000, Status: entities.StageStatusCancelled,
		})
		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(b, nil)

		summary, err := uc.ScheduleSummary(context.Background(), "bk-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.Totals.TotalDue != 1000000 {
			t.Fatalf("expected total due 1000000, got %v", summary.Totals.TotalDue)
		}
		if summary.Totals.TotalReceived != 200000 || summary.Totals.TotalOutstanding != 800000 {
			t.Fatalf("unexpected totals: %+v", summary.Totals)
		}
		if len(summary.Schedule) != 3 {
			t.Fatalf("expected full schedule in summary, got %d rows", len(summary.Schedule))
		}
	})

	t.Run("booking not found", func(t *testing.T) {
		uc, m := newReportUseCase(t)
		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-missing").Return(entities.Booking{}, nil)

		if _, err := uc.ScheduleSummary(context.Background(), "bk-missing"); !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})
}

func TestReportUseCase_CollectionSummary(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("aggregates by mode", func(t *testing.T) {
		uc, m := newReportUseCase(t)
		m.eventRepo.EXPECT().ListByDateRange(gomock.Any(), from, to).Return([]entities.PaymentEvent{
			{Amount: 300000, Mode: entities.PaymentModeUPI},
			{Amount: 200000, Mode: entities.PaymentModeCheque},
			{Amount: 100000, Mode: entities.PaymentModeUPI},
		}, nil)

		summary, err := uc.CollectionSummary(context.Background(), from, to)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.TotalCollected != 600000 || summary.EventCount != 3 {
			t.Fatalf("unexpected summary: %+v", summary)
		}
		if summary.ByMode["UPI"] != 400000 || summary.ByMode["Cheque"] != 200000 {
			t.Fatalf("unexpected mode breakdown: %+v", summary.ByMode)
		}
	})

	t.Run("empty window is valid", func(t *testing.T) {
		uc, m := newReportUseCase(t)
		m.eventRepo.EXPECT().ListByDateRange(gomock.Any(), from, to).Return(nil, nil)

		summary, err := uc.CollectionSummary(context.Background(), from, to)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.TotalCollected != 0 || summary.EventCount != 0 {
			t.Fatalf("unexpected summary: %+v", summary)
		}
	})

	t.Run("inverted range rejected", func(t *testing.T) {
		uc, _ := newReportUseCase(t)
		if _, err := uc.CollectionSummary(context.Background(), to, from); !errors.Is(err, ErrInvalidPaymentInput) {
			t.Fatalf("expected ErrInvalidPaymentInput, got %v", err)
		}
	})
}

func TestReportUseCase_OverdueReport(t *testing.T) {
	asOf := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("derives overdue rows even before the sweep runs", func(t *testing.T) {
		uc, m := newReportUseCase(t)
		b := submittedBooking()
		b.AssignedRM = "rm-1"
		// stored status still Pending: the report derives from first principles
		b.Schedule[0].Status = entities.StageStatusPending
		b.Schedule[0].AmountReceived = 100000
		m.bookingRepo.EXPECT().ListSubmitted(gomock.Any()).Return([]entities.Booking{b}, nil)

		rows, err := uc.OverdueReport(context.Background(), asOf)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 1 {
			t.Fatalf("expected 1 overdue row, got %d", len(rows))
		}
		row := rows[0]
		if row.StageName != "Booking Advance" || row.Balance != 400000 || row.AssignedRM != "rm-1" {
			t.Fatalf("unexpected row: %+v", row)
		}
		if row.DaysOverdue != 142 {
			t.Fatalf("expected 142 days overdue, got %d", row.DaysOverdue)
		}
	})

	t.Run("paid and future stages excluded", func(t *testing.T) {
		uc, m := newReportUseCase(t)
		b := submittedBooking()
		b.Schedule[0].AmountReceived = 500000
		b.Schedule[0].Balance = 0
		b.Schedule[0].Status = entities.StageStatusPaid
		m.bookingRepo.EXPECT().ListSubmitted(gomock.Any()).Return([]entities.Booking{b}, nil)

		rows, err := uc.OverdueReport(context.Background(), asOf)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 0 {
			t.Fatalf("expected no overdue rows, got %+v", rows)
		}
	})
}

func TestReportUseCase_PlotInventory(t *testing.T) {
	t.Run("counts by status", func(t *testing.T) {
		uc, m := newReportUseCase(t)
		m.plotRepo.EXPECT().ListByProjectID(gomock.Any(), "proj-1").Return([]entities.Plot{
			{ID: "plot-1", ProjectID: "proj-1", Status: entities.PlotStatusAvailable},
			{ID: "plot-2", ProjectID: "proj-1", Status: entities.PlotStatusBooked},
			{ID: "plot-3", ProjectID: "proj-1", Status: entities.PlotStatusBooked},
			{ID: "plot-4", ProjectID: "proj-1", Status: entities.PlotStatusRegistered},
		}, nil)

		summary, err := uc.PlotInventory(context.Background(), "proj-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.Total != 4 || summary.Available != 1 || summary.Booked != 2 || summary.Registered != 1 {
			t.Fatalf("unexpected summary: %+v", summary)
		}
	})

	t.Run("empty project id rejected", func(t *testing.T) {
		uc, _ := newReportUseCase(t)
		if _, err := uc.PlotInventory(context.Background(), " "); !errors.Is(err, ErrInvalidBookingInput) {
			t.Fatalf("expected ErrInvalidBookingInput, got %v", err)
		}
	})
}
