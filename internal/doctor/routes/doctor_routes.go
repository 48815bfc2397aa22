package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/c14220110/hms-console/internal/doctor/controllers"
)

func RegisterDoctorRoutes(api *echo.Group, dc *controllers.DoctorController, mutate ...echo.MiddlewareFunc) {
	doctors := api.Group("/doctors")
	doctors.GET("", dc.ListDoctors)
	doctors.GET("/:id/console", dc.GetConsole)
	doctors.POST("/:id/shifts", dc.CreateShift, mutate...)
}
