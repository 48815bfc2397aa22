package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/c14220110/hms-console/internal/appointment/controllers"
)

// RegisterAppointmentRoutes wires the appointment endpoints. mutate guards
// the write endpoints.
func RegisterAppointmentRoutes(api *echo.Group, ac *controllers.AppointmentController, mutate ...echo.MiddlewareFunc) {
	appointments := api.Group("/appointments")
	appointments.GET("", ac.ListAppointments)
	appointments.GET("/upcoming", ac.ListUpcoming)
	appointments.GET("/:id/navigation", ac.Navigate)
	appointments.PATCH("/:id/complete", ac.MarkComplete, mutate...)
}
