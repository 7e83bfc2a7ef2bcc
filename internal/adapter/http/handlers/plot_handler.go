package handlers

import (
	"errors"
	"net/http"

	request "plotbook/internal/adapter/http/dto/request"
	response "plotbook/internal/adapter/http/dto/response"
	"plotbook/internal/usecase"
	"plotbook/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPlotPayload = pkg.NewDomainErrorSimple("INVALID_PLOT_INPUT", "Invalid plot payload", http.StatusBadRequest)

// PlotHandler handles HTTP requests for plot inventory.

type PlotHandler struct {
	usecase usecase.IPlotUseCase
}

func NewPlotHandler(uc usecase.IPlotUseCase) *PlotHandler {
	return &PlotHandler{usecase: uc}
}

func (h *PlotHandler) CreatePlot(c *gin.Context) {
	var payload request.PlotCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPlotPayload.HTTPStatus, errInvalidPlotPayload.ToHTTPError())
		return
	}

	plot, err := h.usecase.Create(c.Request.Context(), payload.ProjectID, payload.PlotNumber, payload.AreaSqft, payload.TotalValue)
	if err != nil {
		appErr := mapPlotError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPlot(plot))
}

func (h *PlotHandler) GetPlot(c *gin.Context) {
	id := c.Param("plot_id")

	plot, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapPlotError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPlot(plot))
}

func (h *PlotHandler) ListPlotsByProject(c *gin.Context) {
	projectID := c.Query("project_id")

	plots, err := h.usecase.ListByProject(c.Request.Context(), projectID)
	if err != nil {
		appErr := mapPlotError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPlots(plots))
}

func mapPlotError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPlotInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPlotNotFound):
		return pkg.NewDomainErrorSimple("PLOT_NOT_FOUND", "Plot not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
