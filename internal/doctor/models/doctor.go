package models

import (
	"time"

	"github.com/c14220110/hms-console/internal/common/display"
	commonModels "github.com/c14220110/hms-console/internal/common/models"
)

// DoctorRow is a doctor as listed in the directory. Specialty mirrors
// Specialization__c under the name the directory table reads.
type DoctorRow struct {
	commonModels.Doctor
	Name      string `json:"Name"`
	Specialty string `json:"Specialty__c,omitempty"`
}

// Console is the doctor's own view of their appointments.
type Console struct {
	DoctorID     string                   `json:"doctorId"`
	DoctorName   string                   `json:"doctorName"`
	Appointments []display.AppointmentRow `json:"appointments"`
}

type ShiftRequest struct {
	StartTime time.Time `json:"Start_Time__c"`
	EndTime   time.Time `json:"End_Time__c"`
	ShiftType string    `json:"Shift_Type__c"`
}
