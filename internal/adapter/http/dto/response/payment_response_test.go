package response

import (
	"testing"
	"time"

	"plotbook/internal/domain/entities"
)

func TestFromPaymentEvent(t *testing.T) {
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	e := entities.PaymentEvent{
		ID:                "pay-1",
		BookingID:         "bk-1",
		StageName:         "Booking Advance",
		Amount:            300000,
		Date:              date,
		Mode:              entities.PaymentModeOnline,
		Reference:         "mp-77",
		GatewayPaymentID:  "mp-77",
		GatewayPayload:    map[string]interface{}{"status": "approved"},
		GatewayPayloadRaw: `{"status":"approved"}`,
	}

	res := FromPaymentEvent(e)
	if res.ID != "pay-1" || res.PaymentID != "pay-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Amount != 300000 || res.Mode != "Online" || !res.Date.Equal(date) {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.GatewayPaymentID != "mp-77" || res.GatewayPayload["status"] != "approved" {
		t.Fatalf("unexpected gateway fields: %+v", res)
	}
}
