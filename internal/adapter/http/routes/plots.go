package routes

import (
	"plotbook/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathPlots = "/plots"

func addPlotRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc, plotHandler *handlers.PlotHandler) {
	plots := rg.Group(PathPlots)
	{
		plots.GET("/:plot_id", plotHandler.GetPlot)
		plots.GET("", plotHandler.ListPlotsByProject)
		plots.POST("", auth, plotHandler.CreatePlot)
	}
}
