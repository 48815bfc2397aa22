package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/c14220110/hms-console/internal/common/response"
	"github.com/c14220110/hms-console/internal/patient/models"
	"github.com/c14220110/hms-console/internal/patient/services"
)

type PatientController struct {
	Service *services.PatientService
}

func NewPatientController(service *services.PatientService) *PatientController {
	return &PatientController{Service: service}
}

func (pc *PatientController) ListPatients(c echo.Context) error {
	patients, err := pc.Service.List(c.Request().Context())
	if err != nil {
		return response.FetchError(c, err)
	}
	return response.OK(c, "Patients retrieved successfully", patients)
}

func (pc *PatientController) CreatePatient(c echo.Context) error {
	var req models.NewPatient
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid request payload: "+err.Error())
	}

	result, err := pc.Service.QuickAdd(c.Request().Context(), req)
	switch {
	case errors.Is(err, services.ErrNameRequired):
		return response.BadRequest(c, err.Error())
	case err != nil:
		return response.JSON(c, response.StatusFor(err), result.Toast.Message, result)
	}
	return response.JSON(c, http.StatusCreated, result.Toast.Message, result)
}

func (pc *PatientController) GetTimeline(c echo.Context) error {
	items, err := pc.Service.Timeline(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.FetchError(c, err)
	}
	return response.OK(c, "Timeline retrieved successfully", items)
}
