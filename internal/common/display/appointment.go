package display

import "github.com/c14220110/hms-console/internal/common/models"

// AppointmentRow is an appointment flattened for table display.
type AppointmentRow struct {
	ID          string                   `json:"Id"`
	DateTime    *models.Timestamp        `json:"Date_Time__c"`
	Status      models.AppointmentStatus `json:"Status__c"`
	Notes       string                   `json:"Notes__c,omitempty"`
	PatientID   string                   `json:"Patient__c,omitempty"`
	DoctorID    string                   `json:"Doctor__c,omitempty"`
	PatientName string                   `json:"PatientName"`
	DoctorName  string                   `json:"DoctorName"`
	StatusBadge string                   `json:"statusBadge"`
	IsCompleted bool                     `json:"isCompleted"`
}

func FlattenAppointment(a models.Appointment) AppointmentRow {
	return AppointmentRow{
		ID:          a.ID,
		DateTime:    a.DateTime,
		Status:      a.Status,
		Notes:       a.Notes,
		PatientID:   a.PatientID,
		DoctorID:    a.DoctorID,
		PatientName: PersonName(a.Patient),
		DoctorName:  PersonName(a.Doctor),
		StatusBadge: StatusBadgeClass(a.Status),
		IsCompleted: IsCompleted(a.Status),
	}
}

// FlattenAppointments never returns nil, so an empty table encodes as [].
func FlattenAppointments(in []models.Appointment) []AppointmentRow {
	out := make([]AppointmentRow, len(in))
	for i, a := range in {
		out[i] = FlattenAppointment(a)
	}
	return out
}
