package routes

import (
	"plotbook/internal/adapter/http/handlers"
	"plotbook/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathBookings = "/bookings"

	// RoleAccounts may generate invoices.
	RoleAccounts = "accounts"
)

func addBookingRoutes(
	rg *gin.RouterGroup,
	auth gin.HandlerFunc,
	bookingHandler *handlers.BookingHandler,
	paymentHandler *handlers.PaymentHandler,
	reportHandler *handlers.ReportHandler,
) {
	bookings := rg.Group(PathBookings)
	{
		bookings.GET("/:booking_id", bookingHandler.GetBooking)
		bookings.GET("", bookingHandler.ListBookingsByCustomer)
		bookings.GET("/:booking_id/payable-stages", paymentHandler.ListPayableStages)
		bookings.GET("/:booking_id/payments", paymentHandler.ListPayments)
		bookings.GET("/:booking_id/summary", reportHandler.GetBookingSummary)

		// Customer-initiated online collection carries no staff token.
		bookings.POST("/:booking_id/payments/online", paymentHandler.CollectOnline)
	}

	staff := rg.Group(PathBookings, auth)
	{
		staff.POST("", bookingHandler.CreateBooking)
		staff.PATCH("/:booking_id/values", bookingHandler.UpdateBookingValues)
		staff.POST("/:booking_id/submit", bookingHandler.SubmitBooking)
		staff.POST("/:booking_id/cancel", bookingHandler.CancelBooking)
		staff.POST("/:booking_id/payments", paymentHandler.ReceivePayment)
		staff.POST("/:booking_id/invoice", middleware.RequireRole(RoleAccounts), bookingHandler.GenerateInvoice)
	}
}
