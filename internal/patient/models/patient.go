package models

import commonModels "github.com/c14220110/hms-console/internal/common/models"

type PatientRow struct {
	commonModels.Patient
	Name string `json:"Name"`
}

// NewPatient is the quick-add form payload.
type NewPatient struct {
	FirstName   string `json:"First_Name__c"`
	LastName    string `json:"Last_Name__c"`
	Email       string `json:"Email__c"`
	Phone       string `json:"Phone__c"`
	Gender      string `json:"Gender__c"`
	DateOfBirth string `json:"Date_of_Birth__c"`
}

// QuickAddResult carries the outcome toast and, on success, the new Id.
type QuickAddResult struct {
	ID    string             `json:"id,omitempty"`
	Toast commonModels.Toast `json:"toast"`
}

const (
	TypeAppointment   = "Appointment"
	TypeMedicalRecord = "Medical Record"
	TypeBilling       = "Billing"
)

// TimelineItem is one entry on a patient's activity timeline.
type TimelineItem struct {
	ID          string                  `json:"Id"`
	Type        string                  `json:"type"`
	Title       string                  `json:"title"`
	Description string                  `json:"description,omitempty"`
	Icon        string                  `json:"icon"`
	ItemDate    *commonModels.Timestamp `json:"itemDate"`

	CSSClass      string `json:"cssClass"`
	RelativeDate  string `json:"relativeDate"`
	IsAppointment bool   `json:"isAppointment"`
	IsMedical     bool   `json:"isMedical"`
	IsBilling     bool   `json:"isBilling"`
}
