// Package response writes the console's JSON envelope:
// {"status": <code>, "message": <text>, "data": <payload>}.
package response

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/c14220110/hms-console/internal/common/display"
	"github.com/c14220110/hms-console/internal/common/records"
	"github.com/c14220110/hms-console/pkg/salesforce"
)

func JSON(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, map[string]interface{}{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func OK(c echo.Context, message string, data any) error {
	return JSON(c, http.StatusOK, message, data)
}

func BadRequest(c echo.Context, message string) error {
	return JSON(c, http.StatusBadRequest, message, nil)
}

// StatusFor maps a collaborator failure onto an HTTP status.
func StatusFor(err error) int {
	var apiErr *salesforce.APIError
	switch {
	case errors.Is(err, salesforce.ErrMissingAccessToken):
		return http.StatusServiceUnavailable
	case errors.Is(err, records.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, records.ErrMissingID),
		errors.Is(err, records.ErrUnknownField),
		errors.Is(err, records.ErrUnknownObject):
		return http.StatusBadRequest
	case errors.As(err, &apiErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// FetchError reports a failed fetch as an inline error message.
func FetchError(c echo.Context, err error) error {
	return JSON(c, StatusFor(err), display.ErrorMessage(err), nil)
}
