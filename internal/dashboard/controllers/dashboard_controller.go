package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/c14220110/hms-console/internal/common/navigation"
	"github.com/c14220110/hms-console/internal/common/response"
	"github.com/c14220110/hms-console/internal/dashboard/models"
	"github.com/c14220110/hms-console/internal/dashboard/services"
)

type DashboardController struct {
	Service  *services.DashboardService
	Renderer *services.ChartRenderer
}

func NewDashboardController(service *services.DashboardService, renderer *services.ChartRenderer) *DashboardController {
	return &DashboardController{Service: service, Renderer: renderer}
}

// GetStats returns the aggregated dashboard payload.
func (dc *DashboardController) GetStats(c echo.Context) error {
	stats, err := dc.Service.Stats(c.Request().Context())
	if err != nil {
		return response.FetchError(c, err)
	}
	return response.OK(c, "Dashboard stats retrieved successfully", stats)
}

// GetMetrics returns the three summary cards.
func (dc *DashboardController) GetMetrics(c echo.Context) error {
	metrics, err := dc.Service.Metrics(c.Request().Context())
	if err != nil {
		return response.FetchError(c, err)
	}
	return response.OK(c, "Dashboard metrics retrieved successfully", metrics)
}

// Refresh re-fetches the stats and pushes them to subscribers.
func (dc *DashboardController) Refresh(c echo.Context) error {
	stats, err := dc.Service.Refresh(c.Request().Context())
	if err != nil {
		return response.FetchError(c, err)
	}
	return response.OK(c, "Dashboard refreshed", services.BuildMetrics(stats))
}

// RenderCharts swaps the live charts for the selection in the path.
func (dc *DashboardController) RenderCharts(c echo.Context) error {
	selection := models.Selection(c.Param("selection"))
	if _, err := services.ChartsFor(selection, models.DashboardStats{}); err != nil {
		return response.BadRequest(c, err.Error())
	}

	stats, err := dc.Service.Stats(c.Request().Context())
	if err != nil {
		return response.FetchError(c, err)
	}

	charts, err := dc.Renderer.Render(selection, stats)
	if err != nil {
		return response.JSON(c, http.StatusInternalServerError, err.Error(), charts)
	}
	return response.OK(c, "Charts rendered", charts)
}

// RenderAnalytics shows the admin analytics pair.
func (dc *DashboardController) RenderAnalytics(c echo.Context) error {
	stats, err := dc.Service.Stats(c.Request().Context())
	if err != nil {
		return response.FetchError(c, err)
	}

	charts, err := dc.Renderer.RenderAnalytics(stats)
	if err != nil {
		return response.JSON(c, http.StatusInternalServerError, err.Error(), charts)
	}
	return response.OK(c, "Analytics rendered", charts)
}

// ClearCharts tears every live chart down.
func (dc *DashboardController) ClearCharts(c echo.Context) error {
	if err := dc.Renderer.Close(); err != nil {
		return response.JSON(c, http.StatusInternalServerError, err.Error(), nil)
	}
	return response.OK(c, "Charts cleared", nil)
}

// Navigate resolves the list page behind a dashboard section. The dashboard
// section itself navigates nowhere and answers with null data.
func (dc *DashboardController) Navigate(c echo.Context) error {
	ref, ok := navigation.ForSection(c.Param("section"))
	if !ok {
		return response.OK(c, "No navigation for section", nil)
	}
	return response.OK(c, "Navigation resolved", ref)
}
