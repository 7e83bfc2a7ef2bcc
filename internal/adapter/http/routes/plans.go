package routes

import (
	"plotbook/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathPlanTemplates = "/plan-templates"

func addPlanTemplateRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc, planHandler *handlers.PlanTemplateHandler) {
	plans := rg.Group(PathPlanTemplates)
	{
		plans.GET("", planHandler.ListPlanTemplates)
		plans.GET("/:template_id", planHandler.GetPlanTemplate)
		plans.POST("", auth, planHandler.CreatePlanTemplate)
	}
}
