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

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)

// PaymentHandler handles HTTP requests for payment capture against a
// booking's schedule.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// ReceivePayment records one staff-entered receipt against a schedule stage.
func (h *PaymentHandler) ReceivePayment(c *gin.Context) {
	bookingID := c.Param("booking_id")
	log.Printf("[payment][handler] receive start booking_id=%s", bookingID)

	var payload request.PaymentReceiveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	in, err := payload.ToInput(bookingID)
	if err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	booking, event, err := h.usecase.ReceivePayment(c.Request.Context(), in)
	if err != nil {
		log.Printf("[payment][handler] receive failed booking_id=%s stage=%s err=%v", bookingID, in.StageName, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] receive success booking_id=%s payment_id=%s booking_status=%s", bookingID, event.ID, booking.Status)

	c.JSON(http.StatusCreated, response.FromPaymentResult(booking, event))
}

// ListPayableStages returns the stages a payment can still be recorded
// against.
func (h *PaymentHandler) ListPayableStages(c *gin.Context) {
	bookingID := c.Param("booking_id")

	stages, err := h.usecase.ListPayableStages(c.Request.Context(), bookingID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSchedule(stages))
}

// ListPayments returns the booking's payment history.
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	bookingID := c.Param("booking_id")

	events, err := h.usecase.ListByBooking(c.Request.Context(), bookingID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.PaymentEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, response.FromPaymentEvent(e))
	}
	c.JSON(http.StatusOK, out)
}

// CollectOnline charges a stage's outstanding balance through the payment
// gateway.
func (h *PaymentHandler) CollectOnline(c *gin.Context) {
	bookingID := c.Param("booking_id")
	log.Printf("[payment][handler] online collect start booking_id=%s", bookingID)

	var payload request.OnlineCollectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	booking, event, err := h.usecase.CollectOnline(c.Request.Context(), bookingID, payload.StageName, payload.GatewayPayload)
	if err != nil {
		log.Printf("[payment][handler] online collect failed booking_id=%s stage=%s err=%v", bookingID, payload.StageName, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] online collect success booking_id=%s payment_id=%s", bookingID, event.ID)

	c.JSON(http.StatusCreated, response.FromPaymentResult(booking, event))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentInput), errors.Is(err, usecase.ErrInvalidPaymentMode):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStageNotFound):
		return pkg.NewDomainErrorSimple("STAGE_NOT_FOUND", "Payment schedule stage not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBookingNotSubmitted):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_SUBMITTED", "Booking is not submitted", http.StatusConflict)
	case errors.Is(err, usecase.ErrBookingCancelled):
		return pkg.NewDomainErrorSimple("BOOKING_CANCELLED", "Booking is cancelled", http.StatusConflict)
	case errors.Is(err, usecase.ErrNothingToCollect):
		return pkg.NewDomainErrorSimple("NOTHING_TO_COLLECT", "All payment stages are fully paid", http.StatusConflict)
	case errors.Is(err, finance.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Payment amount must be greater than zero", http.StatusUnprocessableEntity)
	case errors.Is(err, finance.ErrOverpayment):
		return pkg.NewDomainErrorSimple("OVERPAYMENT", "Payment amount exceeds stage balance", http.StatusUnprocessableEntity)
	case errors.Is(err, finance.ErrStageAlreadyPaid):
		return pkg.NewDomainErrorSimple("STAGE_ALREADY_PAID", "Stage is already fully paid", http.StatusConflict)
	case errors.Is(err, finance.ErrStageCancelled):
		return pkg.NewDomainErrorSimple("STAGE_CANCELLED", "Stage is cancelled", http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayDeclined):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_APPROVED", "Online payment was not approved", http.StatusPaymentRequired)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
