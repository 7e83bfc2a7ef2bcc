package handlers

import (
	"errors"
	"net/http"
	"time"

	"plotbook/internal/usecase"
	"plotbook/pkg"

	"github.com/gin-gonic/gin"
)

const reportDateLayout = "2006-01-02"

var errInvalidReportQuery = pkg.NewDomainErrorSimple("INVALID_REPORT_QUERY", "Invalid report query, dates must be YYYY-MM-DD", http.StatusBadRequest)

// ReportHandler exposes the read-side aggregates.

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// GetBookingSummary returns one booking's schedule with totals and status.
func (h *ReportHandler) GetBookingSummary(c *gin.Context) {
	bookingID := c.Param("booking_id")

	summary, err := h.usecase.ScheduleSummary(c.Request.Context(), bookingID)
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetCollectionsReport aggregates receipts between ?from and ?to
// (inclusive/exclusive), broken down by payment mode.
func (h *ReportHandler) GetCollectionsReport(c *gin.Context) {
	from, err := time.Parse(reportDateLayout, c.Query("from"))
	if err != nil {
		c.JSON(errInvalidReportQuery.HTTPStatus, errInvalidReportQuery.ToHTTPError())
		return
	}
	to, err := time.Parse(reportDateLayout, c.Query("to"))
	if err != nil {
		c.JSON(errInvalidReportQuery.HTTPStatus, errInvalidReportQuery.ToHTTPError())
		return
	}

	summary, err := h.usecase.CollectionSummary(c.Request.Context(), from.UTC(), to.UTC())
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetOverdueReport lists overdue stages across submitted bookings as of
// ?as_of (default today).
func (h *ReportHandler) GetOverdueReport(c *gin.Context) {
	asOf := time.Now().UTC()
	if q := c.Query("as_of"); q != "" {
		parsed, err := time.Parse(reportDateLayout, q)
		if err != nil {
			c.JSON(errInvalidReportQuery.HTTPStatus, errInvalidReportQuery.ToHTTPError())
			return
		}
		asOf = parsed.UTC()
	}

	rows, err := h.usecase.OverdueReport(c.Request.Context(), asOf)
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if rows == nil {
		rows = []usecase.OverdueRow{}
	}

	c.JSON(http.StatusOK, rows)
}

// GetPlotInventoryReport counts a project's plots by inventory status.
func (h *ReportHandler) GetPlotInventoryReport(c *gin.Context) {
	projectID := c.Query("project_id")

	summary, err := h.usecase.PlotInventory(c.Request.Context(), projectID)
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, summary)
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBookingInput), errors.Is(err, usecase.ErrInvalidPaymentInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
