package models

import "strings"

// Object API names on the host platform.
const (
	ObjectPatient     = "Patient__c"
	ObjectDoctor      = "Doctor__c"
	ObjectAppointment = "Appointment__c"
	ObjectDoctorShift = "Doctor_Shift__c"
)

// Field API names used by mutations.
const (
	FieldID        = "Id"
	FieldStatus    = "Status__c"
	FieldFirstName = "First_Name__c"
	FieldLastName  = "Last_Name__c"
	FieldEmail     = "Email__c"
	FieldPhone     = "Phone__c"
	FieldGender    = "Gender__c"
	FieldBirthDate = "Date_of_Birth__c"
	FieldDoctor    = "Doctor__c"
	FieldPatient   = "Patient__c"
	FieldDateTime  = "Date_Time__c"
	FieldNotes     = "Notes__c"
	FieldSpecialty = "Specialization__c"
	FieldStartTime = "Start_Time__c"
	FieldEndTime   = "End_Time__c"
	FieldShiftType = "Shift_Type__c"
)

type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "Scheduled"
	StatusCompleted AppointmentStatus = "Completed"
	StatusCancelled AppointmentStatus = "Cancelled"
)

type Patient struct {
	ID          string     `json:"Id"`
	FirstName   string     `json:"First_Name__c"`
	LastName    string     `json:"Last_Name__c"`
	Email       string     `json:"Email__c,omitempty"`
	Phone       string     `json:"Phone__c,omitempty"`
	Gender      string     `json:"Gender__c,omitempty"`
	DateOfBirth *Timestamp `json:"Date_of_Birth__c,omitempty"`
	CreatedDate *Timestamp `json:"CreatedDate,omitempty"`
}

func (p Patient) FullName() string {
	return joinName(p.FirstName, p.LastName)
}

type Doctor struct {
	ID             string     `json:"Id"`
	FirstName      string     `json:"First_Name__c"`
	LastName       string     `json:"Last_Name__c"`
	Email          string     `json:"Email__c,omitempty"`
	Phone          string     `json:"Phone__c,omitempty"`
	Specialization string     `json:"Specialization__c,omitempty"`
	CreatedDate    *Timestamp `json:"CreatedDate,omitempty"`
}

func (d Doctor) FullName() string {
	return joinName(d.FirstName, d.LastName)
}

// PersonRef is an inline relationship expansion (Patient__r, Doctor__r).
type PersonRef struct {
	FirstName string `json:"First_Name__c"`
	LastName  string `json:"Last_Name__c"`
}

func (r PersonRef) FullName() string {
	return joinName(r.FirstName, r.LastName)
}

type Appointment struct {
	ID          string            `json:"Id"`
	DateTime    *Timestamp        `json:"Date_Time__c,omitempty"`
	Status      AppointmentStatus `json:"Status__c"`
	Notes       string            `json:"Notes__c,omitempty"`
	PatientID   string            `json:"Patient__c,omitempty"`
	DoctorID    string            `json:"Doctor__c,omitempty"`
	Patient     *PersonRef        `json:"Patient__r,omitempty"`
	Doctor      *PersonRef        `json:"Doctor__r,omitempty"`
	CreatedDate *Timestamp        `json:"CreatedDate,omitempty"`
}

func joinName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}
