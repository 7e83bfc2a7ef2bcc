package request

import (
	"encoding/json"

	"plotbook/internal/domain/entities"
	"plotbook/internal/usecase"
)

// PaymentReceiveRequest is one staff-recorded receipt against a schedule
// stage.
type PaymentReceiveRequest struct {
	StageName string  `json:"stage_name" binding:"required"`
	Amount    float64 `json:"amount" binding:"required"`
	Date      string  `json:"date"`
	Mode      string  `json:"mode" binding:"required"`
	Reference string  `json:"reference"`
}

func (r PaymentReceiveRequest) ToInput(bookingID string) (usecase.ReceivePaymentInput, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return usecase.ReceivePaymentInput{}, err
	}
	return usecase.ReceivePaymentInput{
		BookingID: bookingID,
		StageName: r.StageName,
		Amount:    r.Amount,
		Date:      date,
		Mode:      entities.PaymentMode(r.Mode),
		Reference: r.Reference,
	}, nil
}

// OnlineCollectRequest is the payload for the customer-initiated online
// collection flow.
//
// `gateway_payload` is forwarded to the provider as-is (raw JSON) to support
// varying provider schemas; the charge amount is never taken from it.
type OnlineCollectRequest struct {
	StageName      string          `json:"stage_name" binding:"required"`
	GatewayPayload json.RawMessage `json:"gateway_payload"`
}
