package handlers

import (
	"errors"
	"log"
	"net/http"

	request "plotbook/internal/adapter/http/dto/request"
	response "plotbook/internal/adapter/http/dto/response"
	"plotbook/internal/domain/finance"
	"plotbook/internal/usecase"
	"plotbook/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidBookingPayload = pkg.NewDomainErrorSimple("INVALID_BOOKING_INPUT", "Invalid booking payload", http.StatusBadRequest)

// BookingHandler handles HTTP requests for the booking document lifecycle.

type BookingHandler struct {
	usecase usecase.IBookingUseCase
}

func NewBookingHandler(uc usecase.IBookingUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

// CreateBooking creates a draft booking against an available plot.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var payload request.BookingCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	in, err := payload.ToInput()
	if err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	booking, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		log.Printf("[booking][handler] create failed plot_id=%s err=%v", in.PlotID, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBooking(booking))
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	id := c.Param("booking_id")

	booking, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBooking(booking))
}

func (h *BookingHandler) ListBookingsByCustomer(c *gin.Context) {
	customerID := c.Query("customer_id")

	bookings, err := h.usecase.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, response.FromBooking(b))
	}
	c.JSON(http.StatusOK, out)
}

// UpdateBookingValues changes plot value / discount on a draft booking.
func (h *BookingHandler) UpdateBookingValues(c *gin.Context) {
	id := c.Param("booking_id")

	var payload request.BookingValuesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	booking, err := h.usecase.UpdateValues(c.Request.Context(), id, payload.PlotValue, payload.Discount)
	if err != nil {
		log.Printf("[booking][handler] update values failed booking_id=%s err=%v", id, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBooking(booking))
}

// SubmitBooking generates the payment schedule and locks the plot.
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	id := c.Param("booking_id")
	log.Printf("[booking][handler] submit start booking_id=%s", id)

	booking, err := h.usecase.Submit(c.Request.Context(), id)
	if err != nil {
		log.Printf("[booking][handler] submit failed booking_id=%s err=%v", id, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[booking][handler] submit success booking_id=%s stages=%d", booking.ID, len(booking.Schedule))

	c.JSON(http.StatusOK, response.FromBooking(booking))
}

// CancelBooking cancels a submitted booking and releases its plot.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id := c.Param("booking_id")
	log.Printf("[booking][handler] cancel start booking_id=%s", id)

	booking, err := h.usecase.Cancel(c.Request.Context(), id)
	if err != nil {
		log.Printf("[booking][handler] cancel failed booking_id=%s err=%v", id, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBooking(booking))
}

// GenerateInvoice raises a sale invoice for the booking. The route is
// restricted to the accounts role by middleware.
func (h *BookingHandler) GenerateInvoice(c *gin.Context) {
	id := c.Param("booking_id")

	invoice, err := h.usecase.GenerateInvoice(c.Request.Context(), id)
	if err != nil {
		log.Printf("[booking][handler] invoice failed booking_id=%s err=%v", id, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInvoice(invoice))
}

func mapBookingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBookingInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPlotNotFound):
		return pkg.NewDomainErrorSimple("PLOT_NOT_FOUND", "Plot not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPlotNotAvailable):
		return pkg.NewDomainErrorSimple("PLOT_NOT_AVAILABLE", "Plot is not available", http.StatusConflict)
	case errors.Is(err, usecase.ErrBookingNotDraft):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_DRAFT", "Booking is already submitted", http.StatusConflict)
	case errors.Is(err, usecase.ErrBookingNotSubmitted):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_SUBMITTED", "Booking is not submitted", http.StatusConflict)
	case errors.Is(err, usecase.ErrBookingCancelled):
		return pkg.NewDomainErrorSimple("BOOKING_CANCELLED", "Booking is cancelled", http.StatusConflict)
	case errors.Is(err, usecase.ErrMissingPlanTemplate):
		return pkg.NewDomainErrorSimple("PLAN_TEMPLATE_REQUIRED", "Payment plan is required before submitting", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidFinalValue):
		return pkg.NewDomainErrorSimple("INVALID_FINAL_VALUE", "Final value must be greater than zero", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPlanTemplateNotFound):
		return pkg.NewDomainErrorSimple("PLAN_TEMPLATE_NOT_FOUND", "Payment plan template not found", http.StatusNotFound)
	case errors.Is(err, finance.ErrNoPlanStages), errors.Is(err, finance.ErrInvalidPlanPercentage),
		errors.Is(err, finance.ErrMultiplePossession), errors.Is(err, finance.ErrPossessionDateRequired):
		return pkg.NewDomainError("INVALID_PAYMENT_PLAN", err.Error(), err, http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
