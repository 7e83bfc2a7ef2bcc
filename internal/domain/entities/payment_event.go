package entities

import "time"

// PaymentMode is how the money was received.
//
// Cash, Cheque, Bank Transfer and UPI are staff-recorded receipts;
// Online is set by the collection gateway flow.

type PaymentMode string

const (
	PaymentModeCash         PaymentMode = "Cash"
	PaymentModeCheque       PaymentMode = "Cheque"
	PaymentModeBankTransfer PaymentMode = "Bank Transfer"
	PaymentModeUPI          PaymentMode = "UPI"
	PaymentModeOnline       PaymentMode = "Online"
)

// PaymentEvent is an immutable record of money received against exactly one
// schedule stage. Events are append-only: the stage's amount_received is the
// sum of its applied events and is maintained on the booking item.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (booking_id-index): booking_id
type PaymentEvent struct {
	ID        string      `json:"id"`
	BookingID string      `json:"booking_id"`
	StageName string      `json:"stage_name"`
	Amount    float64     `json:"amount"`
	Date      time.Time   `json:"date"`
	Mode      PaymentMode `json:"mode"`
	Reference string      `json:"reference,omitempty"`

	// GatewayPaymentID and GatewayPayloadRaw are only set for Online
	// collections; the raw provider response is kept for audit.
	GatewayPaymentID  string                 `json:"gateway_payment_id,omitempty"`
	GatewayPayload    map[string]interface{} `json:"gateway_payload,omitempty"`
	GatewayPayloadRaw string                 `json:"gateway_payload_raw,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
