package routes

import (
	"plotbook/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathReports = "/reports"

func addReportRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc, reportHandler *handlers.ReportHandler) {
	reports := rg.Group(PathReports, auth)
	{
		reports.GET("/collections", reportHandler.GetCollectionsReport)
		reports.GET("/overdue", reportHandler.GetOverdueReport)
		reports.GET("/plot-inventory", reportHandler.GetPlotInventoryReport)
	}
}
