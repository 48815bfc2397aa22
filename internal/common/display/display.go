// Package display derives the strings and flags the console renders from
// fetched records. Every function here is pure.
package display

import (
	"errors"
	"math"
	"strconv"
	"time"

	"github.com/c14220110/hms-console/internal/common/models"
	"github.com/c14220110/hms-console/pkg/salesforce"
)

// UnknownName stands in for an absent relationship.
const UnknownName = "Unknown"

// PersonName flattens a relationship expansion to "First Last".
func PersonName(ref *models.PersonRef) string {
	if ref == nil {
		return UnknownName
	}
	if name := ref.FullName(); name != "" {
		return name
	}
	return UnknownName
}

func IsCompleted(status models.AppointmentStatus) bool {
	return status == models.StatusCompleted
}

// StatusBadgeClass picks the badge style for an appointment status.
func StatusBadgeClass(status models.AppointmentStatus) string {
	switch status {
	case models.StatusCompleted:
		return "badge-completed"
	case models.StatusCancelled:
		return "badge-cancelled"
	default:
		return "badge-scheduled"
	}
}

const day = 24 * time.Hour

// RelativeDate describes t relative to now. Days are counted by rounding the
// absolute difference up, so anything inside the last 24h is "Today" and
// exactly now is "0 days ago".
func RelativeDate(t, now time.Time) string {
	diff := now.Sub(t)
	if diff < 0 {
		diff = -diff
	}
	days := int(math.Ceil(float64(diff) / float64(day)))

	switch {
	case days == 1:
		return "Today"
	case days == 2:
		return "Yesterday"
	case days > 30:
		return strconv.Itoa(days/30) + " months ago"
	default:
		return strconv.Itoa(days) + " days ago"
	}
}

// ErrorMessage extracts the user-facing message from a fetch or mutation
// failure: the server-provided message when there is one, the error text
// otherwise.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *salesforce.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
