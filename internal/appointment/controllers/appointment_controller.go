package controllers

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/c14220110/hms-console/internal/appointment/services"
	"github.com/c14220110/hms-console/internal/common/response"
)

type AppointmentController struct {
	Service *services.AppointmentService
}

func NewAppointmentController(service *services.AppointmentService) *AppointmentController {
	return &AppointmentController{Service: service}
}

func (ac *AppointmentController) ListAppointments(c echo.Context) error {
	rows, err := ac.Service.List(c.Request().Context())
	if err != nil {
		return response.FetchError(c, err)
	}
	return response.OK(c, "Appointments retrieved successfully", rows)
}

// ListUpcoming accepts an optional ?limit=N.
func (ac *AppointmentController) ListUpcoming(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return response.BadRequest(c, "limit must be a non-negative number")
		}
		limit = n
	}

	rows, err := ac.Service.Upcoming(c.Request().Context(), limit)
	if err != nil {
		return response.FetchError(c, err)
	}
	return response.OK(c, "Upcoming appointments retrieved successfully", rows)
}

func (ac *AppointmentController) MarkComplete(c echo.Context) error {
	id := c.Param("id")
	toast, err := ac.Service.MarkComplete(c.Request().Context(), id)
	if err != nil {
		return response.JSON(c, response.StatusFor(err), toast.Message, toast)
	}
	return response.OK(c, toast.Message, toast)
}

// Navigate resolves the record page and, given ?patient=<id>, the patient page.
func (ac *AppointmentController) Navigate(c echo.Context) error {
	return response.OK(c, "Navigation resolved", services.Navigate(c.Param("id"), c.QueryParam("patient")))
}
