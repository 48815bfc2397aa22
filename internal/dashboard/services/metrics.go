package services

import (
	commonModels "github.com/c14220110/hms-console/internal/common/models"
	"github.com/c14220110/hms-console/internal/dashboard/models"
)

// BuildMetrics produces the three summary cards. Each trend compares the
// recent count against the card's own total.
func BuildMetrics(stats models.DashboardStats) []models.Metric {
	card := func(id, label, icon string, total, recent int) models.Metric {
		trend := ComputeTrend(total, recent)
		return models.Metric{
			ID:         id,
			Label:      label,
			Value:      total,
			Icon:       icon,
			Trend:      trend.Label,
			TrendClass: trend.Class,
		}
	}

	return []models.Metric{
		card(commonModels.ObjectPatient, "Total Patients", "standard:user",
			stats.PatientsCount, stats.PatientsNew),
		card(commonModels.ObjectAppointment, "Upcoming Appointments", "standard:event",
			stats.AppointmentsToday, stats.AppointmentsNew),
		card(commonModels.ObjectDoctor, "Available Doctors", "standard:user_role",
			stats.DoctorsCount, stats.DoctorsNew),
	}
}
