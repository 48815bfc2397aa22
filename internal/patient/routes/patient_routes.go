package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/c14220110/hms-console/internal/patient/controllers"
)

func RegisterPatientRoutes(api *echo.Group, pc *controllers.PatientController, mutate ...echo.MiddlewareFunc) {
	patients := api.Group("/patients")
	patients.GET("", pc.ListPatients)
	patients.POST("", pc.CreatePatient, mutate...)
	patients.GET("/:id/timeline", pc.GetTimeline)
}
