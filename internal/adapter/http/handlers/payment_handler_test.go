package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"plotbook/internal/adapter/http/handlers/mocks"
	"plotbook/internal/domain/entities"
	"plotbook/internal/domain/finance"
	"plotbook/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_ReceivePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/bookings/:booking_id/payments", h.ReceivePayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings/bk-1/payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("overpayment maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/bookings/:booking_id/payments", h.ReceivePayment)

		uc.EXPECT().ReceivePayment(gomock.Any(), gomock.Any()).Return(entities.Booking{}, entities.PaymentEvent{}, finance.ErrOverpayment)

		body := `{"stage_name":"Booking Advance","amount":600000,"mode":"UPI"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/bookings/bk-1/payments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success returns payment and booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/bookings/:booking_id/payments", h.ReceivePayment)

		uc.EXPECT().ReceivePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.ReceivePaymentInput) (entities.Booking, entities.PaymentEvent, error) {
				if in.BookingID != "bk-1" || in.StageName != "Booking Advance" || in.Amount != 300000 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Booking{ID: "bk-1", Status: entities.BookingStatusPaymentInProgress},
					entities.PaymentEvent{ID: "pay-1", BookingID: "bk-1", Amount: 300000, Mode: entities.PaymentModeUPI}, nil
			},
		)

		body := `{"stage_name":"Booking Advance","amount":300000,"mode":"UPI","reference":"UTR-991"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/bookings/bk-1/payments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		payment, ok := resp["payment"].(map[string]any)
		if !ok || payment["payment_id"] != "pay-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		booking, ok := resp["booking"].(map[string]any)
		if !ok || booking["status"] != "Payment In Progress" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_ListPayableStages(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/bookings/:booking_id/payable-stages", h.ListPayableStages)

		uc.EXPECT().ListPayableStages(gomock.Any(), "bk-1").Return([]entities.ScheduleStage{
			{Name: "Booking Advance", AmountDue: 925000, Status: entities.StageStatusPending},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/bookings/bk-1/payable-stages", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("nothing to collect maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/bookings/:booking_id/payable-stages", h.ListPayableStages)

		uc.EXPECT().ListPayableStages(gomock.Any(), "bk-1").Return(nil, usecase.ErrNothingToCollect)

		req := httptest.NewRequest(http.MethodGet, "/v1/bookings/bk-1/payable-stages", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_CollectOnline(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("declined maps to 402", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/bookings/:booking_id/payments/online", h.CollectOnline)

		uc.EXPECT().CollectOnline(gomock.Any(), "bk-1", "Booking Advance", gomock.Any()).
			Return(entities.Booking{}, entities.PaymentEvent{}, usecase.ErrGatewayDeclined)

		body := `{"stage_name":"Booking Advance","gateway_payload":{"payment_method_id":"pix"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/bookings/bk-1/payments/online", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusPaymentRequired {
			t.Fatalf("expected 402, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/bookings/:booking_id/payments/online", h.CollectOnline)

		uc.EXPECT().CollectOnline(gomock.Any(), "bk-1", "Booking Advance", gomock.Any()).
			Return(entities.Booking{ID: "bk-1", Status: entities.BookingStatusPaymentInProgress},
				entities.PaymentEvent{ID: "pay-1", Mode: entities.PaymentModeOnline, GatewayPaymentID: "mp-77"}, nil)

		body := `{"stage_name":"Booking Advance"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/bookings/bk-1/payments/online", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestMapPaymentError(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{usecase.ErrInvalidPaymentInput, http.StatusBadRequest},
		{usecase.ErrInvalidPaymentMode, http.StatusBadRequest},
		{usecase.ErrBookingNotFound, http.StatusNotFound},
		{usecase.ErrStageNotFound, http.StatusNotFound},
		{usecase.ErrBookingNotSubmitted, http.StatusConflict},
		{usecase.ErrBookingCancelled, http.StatusConflict},
		{usecase.ErrNothingToCollect, http.StatusConflict},
		{finance.ErrInvalidAmount, http.StatusUnprocessableEntity},
		{finance.ErrOverpayment, http.StatusUnprocessableEntity},
		{finance.ErrStageAlreadyPaid, http.StatusConflict},
		{finance.ErrStageCancelled, http.StatusConflict},
		{usecase.ErrGatewayDeclined, http.StatusPaymentRequired},
		{errors.New("x"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := mapPaymentError(tc.err); got.HTTPStatus != tc.status {
			t.Fatalf("err %v: expected %d, got %d", tc.err, tc.status, got.HTTPStatus)
		}
	}
}
