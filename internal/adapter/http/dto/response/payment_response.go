package response

import (
	"time"

	"plotbook/internal/domain/entities"
)

type PaymentEventResponse struct {
	PaymentID string    `json:"payment_id"`
	ID        string    `json:"id"`
	BookingID string    `json:"booking_id"`
	StageName string    `json:"stage_name"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`
	Mode      string    `json:"mode"`
	Reference string    `json:"reference,omitempty"`

	GatewayPaymentID  string                 `json:"gateway_payment_id,omitempty"`
	GatewayPayload    map[string]interface{} `json:"gateway_payload,omitempty"`
	GatewayPayloadRaw string                 `json:"gateway_payload_raw,omitempty"`
}

func FromPaymentEvent(e entities.PaymentEvent) PaymentEventResponse {
	return PaymentEventResponse{
		PaymentID:         e.ID,
		ID:                e.ID,
		BookingID:         e.BookingID,
		StageName:         e.StageName,
		Amount:            e.Amount,
		Date:              e.Date,
		Mode:              string(e.Mode),
		Reference:         e.Reference,
		GatewayPaymentID:  e.GatewayPaymentID,
		GatewayPayload:    e.GatewayPayload,
		GatewayPayloadRaw: e.GatewayPayloadRaw,
	}
}

// PaymentResultResponse pairs the recorded event with the booking it
// updated, so the caller sees the new stage and roll-up status in one round
// trip.
type PaymentResultResponse struct {
	Payment PaymentEventResponse `json:"payment"`
	Booking BookingResponse      `json:"booking"`
}

func FromPaymentResult(b entities.Booking, e entities.PaymentEvent) PaymentResultResponse {
	return PaymentResultResponse{
		Payment: FromPaymentEvent(e),
		Booking: FromBooking(b),
	}
}
