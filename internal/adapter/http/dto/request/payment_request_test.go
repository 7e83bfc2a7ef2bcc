package request

import (
	"errors"
	"testing"
	"time"

	"plotbook/internal/domain/entities"
)

func TestPaymentReceiveRequest_ToInput(t *testing.T) {
	r := PaymentReceiveRequest{
		StageName: "Booking Advance",
		Amount:    300000,
		Date:      "2026-03-15",
		Mode:      "UPI",
		Reference: "UTR-991",
	}
	in, err := r.ToInput("bk-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.BookingID != "bk-1" || in.StageName != "Booking Advance" || in.Amount != 300000 {
		t.Fatalf("unexpected input: %+v", in)
	}
	if in.Mode != entities.PaymentModeUPI {
		t.Fatalf("unexpected mode: %s", in.Mode)
	}
	if !in.Date.Equal(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date: %v", in.Date)
	}
}

func TestPaymentReceiveRequest_ToInput_BadDate(t *testing.T) {
	r := PaymentReceiveRequest{StageName: "Booking Advance", Amount: 1, Mode: "Cash", Date: "15-03-2026"}
	if _, err := r.ToInput("bk-1"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}
