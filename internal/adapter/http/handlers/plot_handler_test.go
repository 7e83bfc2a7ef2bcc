package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"plotbook/internal/adapter/http/handlers/mocks"
	"plotbook/internal/domain/entities"
	"plotbook/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPlotHandler_CreatePlot(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPlotUseCase(ctrl)
		h := NewPlotHandler(uc)

		r := gin.New()
		r.POST("/v1/plots", h.CreatePlot)

		req := httptest.NewRequest(http.MethodPost, "/v1/plots", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPlotUseCase(ctrl)
		h := NewPlotHandler(uc)

		r := gin.New()
		r.POST("/v1/plots", h.CreatePlot)

		uc.EXPECT().Create(gomock.Any(), "proj-1", "A-101", 1200.0, 2400000.0).
			Return(entities.Plot{ID: "plot-1", ProjectID: "proj-1", PlotNumber: "A-101", Status: entities.PlotStatusAvailable}, nil)

		body := `{"project_id":"proj-1","plot_number":"A-101","area_sqft":1200,"total_value":2400000}`
		req := httptest.NewRequest(http.MethodPost, "/v1/plots", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["plot_id"] != "plot-1" || resp["status"] != "Available" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestPlotHandler_GetPlot(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPlotUseCase(ctrl)
	h := NewPlotHandler(uc)

	r := gin.New()
	r.GET("/v1/plots/:plot_id", h.GetPlot)

	uc.EXPECT().GetByID(gomock.Any(), "plot-missing").Return(entities.Plot{}, usecase.ErrPlotNotFound)

	req := httptest.NewRequest(http.MethodGet, "/v1/plots/plot-missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
