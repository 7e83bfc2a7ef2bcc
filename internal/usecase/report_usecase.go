package usecase

import (
	"context"
	"strings"
	"time"

	"plotbook/internal/domain/entities"
	"plotbook/internal/domain/finance"
	"plotbook/internal/usecase/interfaces"
)

// ScheduleSummary is the per-booking aggregate the dashboards read.
type ScheduleSummary struct {
	BookingID string                   `json:"booking_id"`
	Status    entities.BookingStatus   `json:"status"`
	Totals    finance.ScheduleTotals   `json:"totals"`
	Schedule  []entities.ScheduleStage `json:"schedule"`
}

// CollectionSummary aggregates receipts in a date window, broken down by
// payment mode.
type CollectionSummary struct {
	From           time.Time          `json:"from"`
	To             time.Time          `json:"to"`
	TotalCollected float64            `json:"total_collected"`
	EventCount     int                `json:"event_count"`
	ByMode         map[string]float64 `json:"by_mode"`
}

// OverdueRow is one overdue stage across the active book of business.
type OverdueRow struct {
	BookingID      string    `json:"booking_id"`
	CustomerID     string    `json:"customer_id"`
	ProjectID      string    `json:"project_id"`
	PlotID         string    `json:"plot_id"`
	AssignedRM     string    `json:"assigned_rm"`
	StageName      string    `json:"stage_name"`
	AmountDue      float64   `json:"amount_due"`
	AmountReceived float64   `json:"amount_received"`
	Balance        float64   `json:"balance"`
	DueDate        time.Time `json:"due_date"`
	DaysOverdue    int       `json:"days_overdue"`
}

// PlotInventorySummary counts a project's plots by inventory status.
type PlotInventorySummary struct {
	ProjectID  string          `json:"project_id"`
	Total      int             `json:"total"`
	Available  int             `json:"available"`
	Booked     int             `json:"booked"`
	Registered int             `json:"registered"`
	Plots      []entities.Plot `json:"plots"`
}

// IReportUseCase computes the read-side aggregates. Rendering is the
// consumer's concern; this layer only returns figures.

type IReportUseCase interface {
	ScheduleSummary(ctx context.Context, bookingID string) (ScheduleSummary, error)
	CollectionSummary(ctx context.Context, from, to time.Time) (CollectionSummary, error)
	OverdueReport(ctx context.Context, asOf time.Time) ([]OverdueRow, error)
	PlotInventory(ctx context.Context, projectID string) (PlotInventorySummary, error)
}

type ReportUseCase struct {
	bookingRepo interfaces.IBookingRepository
	eventRepo   interfaces.IPaymentEventRepository
	plotRepo    interfaces.IPlotRepository
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(
	bookingRepo interfaces.IBookingRepository,
	eventRepo interfaces.IPaymentEventRepository,
	plotRepo interfaces.IPlotRepository,
) *ReportUseCase {
	return &ReportUseCase{bookingRepo: bookingRepo, eventRepo: eventRepo, plotRepo: plotRepo}
}

func (u *ReportUseCase) ScheduleSummary(ctx context.Context, bookingID string) (ScheduleSummary, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return ScheduleSummary{}, ErrInvalidBookingInput
	}
	b, err := u.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return ScheduleSummary{}, err
	}
	if b.ID == "" {
		return ScheduleSummary{}, ErrBookingNotFound
	}
	return ScheduleSummary{
		BookingID: b.ID,
		Status:    b.Status,
		Totals:    finance.Totals(b.Schedule),
		Schedule:  b.Schedule,
	}, nil
}

func (u *ReportUseCase) CollectionSummary(ctx context.Context, from, to time.Time) (CollectionSummary, error) {
	if !to.After(from) {
		return CollectionSummary{}, ErrInvalidPaymentInput
	}
	events, err := u.eventRepo.ListByDateRange(ctx, from, to)
	if err != nil {
		return CollectionSummary{}, err
	}

	summary := CollectionSummary{From: from, To: to, ByMode: map[string]float64{}}
	for _, e := range events {
		summary.TotalCollected += e.Amount
		summary.EventCount++
		summary.ByMode[string(e.Mode)] += e.Amount
	}
	return summary, nil
}

// OverdueReport derives overdue rows from the stored schedules as of the
// given date, so figures are correct even if the daily sweep has not run.
func (u *ReportUseCase) OverdueReport(ctx context.Context, asOf time.Time) ([]OverdueRow, error) {
	bookings, err := u.bookingRepo.ListSubmitted(ctx)
	if err != nil {
		return nil, err
	}

	var rows []OverdueRow
	for _, b := range bookings {
		for _, s := range b.Schedule {
			status := finance.DeriveStageStatus(s.AmountReceived, s.AmountDue, s.DueDate, asOf)
			if status != entities.StageStatusOverdue || s.Status == entities.StageStatusCancelled {
				continue
			}
			rows = append(rows, OverdueRow{
				BookingID:      b.ID,
				CustomerID:     b.CustomerID,
				ProjectID:      b.ProjectID,
				PlotID:         b.PlotID,
				AssignedRM:     b.AssignedRM,
				StageName:      s.Name,
				AmountDue:      s.AmountDue,
				AmountReceived: s.AmountReceived,
				Balance:        finance.Balance(s),
				DueDate:        s.DueDate,
				DaysOverdue:    int(asOf.Sub(s.DueDate).Hours() / 24),
			})
		}
	}
	return rows, nil
}

func (u *ReportUseCase) PlotInventory(ctx context.Context, projectID string) (PlotInventorySummary, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return PlotInventorySummary{}, ErrInvalidBookingInput
	}
	plots, err := u.plotRepo.ListByProjectID(ctx, projectID)
	if err != nil {
		return PlotInventorySummary{}, err
	}

	summary := PlotInventorySummary{ProjectID: projectID, Plots: plots}
	for _, p := range plots {
		summary.Total++
		switch p.Status {
		case entities.PlotStatusAvailable:
			summary.Available++
		case entities.PlotStatusBooked:
			summary.Booked++
		case entities.PlotStatusRegistered:
			summary.Registered++
		}
	}
	return summary, nil
}
