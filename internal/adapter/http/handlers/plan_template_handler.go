package handlers

import (
	"errors"
	"net/http"

	request "plotbook/internal/adapter/http/dto/request"
	response "plotbook/internal/adapter/http/dto/response"
	"plotbook/internal/domain/finance"
	"plotbook/internal/usecase"
	"plotbook/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidTemplatePayload = pkg.NewDomainErrorSimple("INVALID_TEMPLATE_INPUT", "Invalid plan template payload", http.StatusBadRequest)

// PlanTemplateHandler handles HTTP requests for payment plan templates.

type PlanTemplateHandler struct {
	usecase usecase.IPlanTemplateUseCase
}

func NewPlanTemplateHandler(uc usecase.IPlanTemplateUseCase) *PlanTemplateHandler {
	return &PlanTemplateHandler{usecase: uc}
}

func (h *PlanTemplateHandler) CreatePlanTemplate(c *gin.Context) {
	var payload request.PlanTemplateCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTemplatePayload.HTTPStatus, errInvalidTemplatePayload.ToHTTPError())
		return
	}

	tpl, err := h.usecase.Create(c.Request.Context(), payload.Name, payload.ToStages())
	if err != nil {
		appErr := mapPlanTemplateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPlanTemplate(tpl))
}

func (h *PlanTemplateHandler) GetPlanTemplate(c *gin.Context) {
	id := c.Param("template_id")

	tpl, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapPlanTemplateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPlanTemplate(tpl))
}

func (h *PlanTemplateHandler) ListPlanTemplates(c *gin.Context) {
	templates, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapPlanTemplateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.PlanTemplateResponse, 0, len(templates))
	for _, tpl := range templates {
		out = append(out, response.FromPlanTemplate(tpl))
	}
	c.JSON(http.StatusOK, out)
}

func mapPlanTemplateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTemplateInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPlanTemplateNotFound):
		return pkg.NewDomainErrorSimple("PLAN_TEMPLATE_NOT_FOUND", "Payment plan template not found", http.StatusNotFound)
	case errors.Is(err, finance.ErrNoPlanStages), errors.Is(err, finance.ErrInvalidPlanPercentage),
		errors.Is(err, finance.ErrMultiplePossession):
		return pkg.NewDomainError("INVALID_PAYMENT_PLAN", err.Error(), err, http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
