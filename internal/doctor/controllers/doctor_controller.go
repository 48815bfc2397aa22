package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/c14220110/hms-console/internal/common/response"
	"github.com/c14220110/hms-console/internal/doctor/models"
	"github.com/c14220110/hms-console/internal/doctor/services"
)

type DoctorController struct {
	Service *services.DoctorService
}

func NewDoctorController(service *services.DoctorService) *DoctorController {
	return &DoctorController{Service: service}
}

func (dc *DoctorController) ListDoctors(c echo.Context) error {
	doctors, err := dc.Service.List(c.Request().Context())
	if err != nil {
		return response.FetchError(c, err)
	}
	return response.OK(c, "Doctors retrieved successfully", doctors)
}

func (dc *DoctorController) GetConsole(c echo.Context) error {
	console, err := dc.Service.Console(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.FetchError(c, err)
	}
	return response.OK(c, "Doctor console retrieved successfully", console)
}

func (dc *DoctorController) CreateShift(c echo.Context) error {
	var req models.ShiftRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid request payload: "+err.Error())
	}

	toast, err := dc.Service.CreateShift(c.Request().Context(), c.Param("id"), req)
	switch {
	case errors.Is(err, services.ErrShiftTimesRequired), errors.Is(err, services.ErrShiftOrder):
		return response.BadRequest(c, err.Error())
	case err != nil:
		return response.JSON(c, response.StatusFor(err), toast.Message, toast)
	}
	return response.JSON(c, http.StatusCreated, toast.Message, toast)
}
