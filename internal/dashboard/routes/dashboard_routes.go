package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/c14220110/hms-console/internal/dashboard/controllers"
)

func RegisterDashboardRoutes(api *echo.Group, dc *controllers.DashboardController) {
	dashboard := api.Group("/dashboard")
	dashboard.GET("/stats", dc.GetStats)
	dashboard.GET("/metrics", dc.GetMetrics)
	dashboard.POST("/refresh", dc.Refresh)
	dashboard.POST("/charts/:selection", dc.RenderCharts)
	dashboard.DELETE("/charts", dc.ClearCharts)
	dashboard.POST("/analytics", dc.RenderAnalytics)

	api.GET("/navigation/:section", dc.Navigate)
}
