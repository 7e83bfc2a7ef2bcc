package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"plotbook/internal/adapter/http/handlers/mocks"
	"plotbook/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestReportHandler_GetCollectionsReport(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing dates rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.GET("/v1/reports/collections", h.GetCollectionsReport)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/collections", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.GET("/v1/reports/collections", h.GetCollectionsReport)

		from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().CollectionSummary(gomock.Any(), from, to).Return(usecase.CollectionSummary{
			From: from, To: to, TotalCollected: 600000, EventCount: 3,
			ByMode: map[string]float64{"UPI": 400000, "Cheque": 200000},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/collections?from=2026-03-01&to=2026-04-01", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["total_collected"].(float64) != 600000 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestReportHandler_GetOverdueReport(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("explicit as_of", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.GET("/v1/reports/overdue", h.GetOverdueReport)

		asOf := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().OverdueReport(gomock.Any(), asOf).Return([]usecase.OverdueRow{
			{BookingID: "bk-1", StageName: "Booking Advance", Balance: 400000, DaysOverdue: 142},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/overdue?as_of=2026-06-01", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("no rows yields empty array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.GET("/v1/reports/overdue", h.GetOverdueReport)

		uc.EXPECT().OverdueReport(gomock.Any(), gomock.Any()).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/overdue", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "[]" {
			t.Fatalf("expected empty array, got %s", w.Body.String())
		}
	})
}

func TestReportHandler_GetBookingSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIReportUseCase(ctrl)
	h := NewReportHandler(uc)

	r := gin.New()
	r.GET("/v1/bookings/:booking_id/summary", h.GetBookingSummary)

	uc.EXPECT().ScheduleSummary(gomock.Any(), "bk-missing").Return(usecase.ScheduleSummary{}, usecase.ErrBookingNotFound)

	req := httptest.NewRequest(http.MethodGet, "/v1/bookings/bk-missing/summary", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
