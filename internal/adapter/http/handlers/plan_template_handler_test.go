package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"plotbook/internal/adapter/http/handlers/mocks"
	"plotbook/internal/domain/entities"
	"plotbook/internal/domain/finance"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPlanTemplateHandler_CreatePlanTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid percentages map to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPlanTemplateUseCase(ctrl)
		h := NewPlanTemplateHandler(uc)

		r := gin.New()
		r.POST("/v1/plan-templates", h.CreatePlanTemplate)

		uc.EXPECT().Create(gomock.Any(), "Broken", gomock.Any()).Return(entities.PaymentPlanTemplate{}, finance.ErrInvalidPlanPercentage)

		body := `{"name":"Broken","stages":[{"name":"Advance","order":1,"percentage":20,"due_trigger":"On Booking"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/plan-templates", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPlanTemplateUseCase(ctrl)
		h := NewPlanTemplateHandler(uc)

		r := gin.New()
		r.POST("/v1/plan-templates", h.CreatePlanTemplate)

		uc.EXPECT().Create(gomock.Any(), "Standard", gomock.Any()).DoAndReturn(
			func(_ any, name string, stages []entities.PlanStage) (entities.PaymentPlanTemplate, error) {
				if len(stages) != 2 || stages[1].DueTrigger != entities.DueTriggerOnPossession {
					t.Fatalf("unexpected stages: %+v", stages)
				}
				return entities.PaymentPlanTemplate{ID: "tpl-1", Name: name, Stages: stages}, nil
			},
		)

		body := `{"name":"Standard","stages":[
			{"name":"Advance","order":1,"percentage":50,"due_trigger":"On Booking"},
			{"name":"On Possession","order":2,"percentage":50,"due_trigger":"On Possession","is_possession_stage":true}
		]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/plan-templates", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["template_id"] != "tpl-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestPlanTemplateHandler_GetPlanTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPlanTemplateUseCase(ctrl)
	h := NewPlanTemplateHandler(uc)

	r := gin.New()
	r.GET("/v1/plan-templates/:template_id", h.GetPlanTemplate)

	uc.EXPECT().GetByID(gomock.Any(), "tpl-1").Return(entities.PaymentPlanTemplate{ID: "tpl-1", Name: "Standard"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/plan-templates/tpl-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
