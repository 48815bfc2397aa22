package models

import "time"

type TrendClass string

const (
	TrendUp      TrendClass = "trend-up"
	TrendDown    TrendClass = "trend-down"
	TrendNeutral TrendClass = "trend-neutral"
)

// Trend is a signed percentage label plus its style class.
type Trend struct {
	Label string     `json:"trend"`
	Class TrendClass `json:"class"`
}

// Metric is one summary card on the dashboard.
type Metric struct {
	ID         string     `json:"id"`
	Label      string     `json:"label"`
	Value      int        `json:"value"`
	Icon       string     `json:"icon"`
	Trend      string     `json:"trend"`
	TrendClass TrendClass `json:"trendClass"`
}

type Bucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type StatusCount struct {
	Status string `json:"status"`
	Total  int    `json:"total"`
}

type SpecCount struct {
	Spec  string `json:"spec"`
	Total int    `json:"total"`
}

type DoctorLoad struct {
	Name  string `json:"name"`
	Total int    `json:"total"`
}

// DashboardStats is the pre-aggregated payload behind the dashboard cards and
// charts.
type DashboardStats struct {
	PatientsCount     int `json:"patientsCount"`
	PatientsNew       int `json:"patients_new"`
	DoctorsCount      int `json:"doctorsCount"`
	DoctorsNew        int `json:"doctors_new"`
	AppointmentsToday int `json:"appointmentsToday"`
	AppointmentsNew   int `json:"appointments_new"`

	PatientsByAge        []Bucket       `json:"patientsByAge"`
	PatientsByGender     []Bucket       `json:"patientsByGender"`
	PatientTrend         []Bucket       `json:"patientTrend"`
	AppointmentsByStatus []StatusCount  `json:"appointmentsByStatus"`
	AppointmentsByDay    map[string]int `json:"appointmentsByDay"`
	DoctorsBySpec        []SpecCount    `json:"doctorsBySpec"`
	TopDoctors           []DoctorLoad   `json:"topDoctors"`
	AppointmentsBySpec   []SpecCount    `json:"appointmentsBySpec"`

	GeneratedAt time.Time `json:"generatedAt"`
}
