package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/c14220110/hms-console/internal/common/display"
	"github.com/c14220110/hms-console/internal/common/models"
	"github.com/c14220110/hms-console/internal/common/navigation"
	"github.com/c14220110/hms-console/internal/common/records"
)

const DefaultUpcomingLimit = 10

type AppointmentService struct {
	Store records.Store

	now    func() time.Time
	logger *zap.Logger
}

func NewAppointmentService(store records.Store, logger *zap.Logger) *AppointmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AppointmentService{Store: store, now: time.Now, logger: logger}
}

func (s *AppointmentService) List(ctx context.Context) ([]display.AppointmentRow, error) {
	appts, err := s.Store.ListAppointments(ctx, records.AppointmentFilter{})
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return display.FlattenAppointments(appts), nil
}

// Upcoming lists appointments from now on, soonest first. A non-positive
// limit falls back to DefaultUpcomingLimit.
func (s *AppointmentService) Upcoming(ctx context.Context, limit int) ([]display.AppointmentRow, error) {
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}
	appts, err := s.Store.ListAppointments(ctx, records.AppointmentFilter{From: s.now(), Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("list upcoming appointments: %w", err)
	}
	return display.FlattenAppointments(appts), nil
}

// MarkComplete sets the appointment's status to Completed. The returned toast
// describes the outcome either way; err is non-nil only on failure.
func (s *AppointmentService) MarkComplete(ctx context.Context, id string) (models.Toast, error) {
	fields := records.Fields{
		models.FieldID:     id,
		models.FieldStatus: string(models.StatusCompleted),
	}
	if err := s.Store.UpdateRecord(ctx, models.ObjectAppointment, fields); err != nil {
		s.logger.Warn("mark appointment complete", zap.String("id", id), zap.Error(err))
		return models.ErrorToast("Error updating record", display.ErrorMessage(err)), err
	}
	return models.SuccessToast("Success", "Appointment marked as completed."), nil
}

// Destinations for an appointment row's actions.
type Destinations struct {
	Record  navigation.PageReference  `json:"record"`
	Patient *navigation.PageReference `json:"patient,omitempty"`
	ViewAll navigation.PageReference  `json:"viewAll"`
}

func Navigate(appointmentID, patientID string) Destinations {
	d := Destinations{
		Record:  navigation.RecordView(appointmentID, ""),
		ViewAll: navigation.ObjectList(models.ObjectAppointment),
	}
	if patientID != "" {
		p := navigation.RecordView(patientID, models.ObjectPatient)
		d.Patient = &p
	}
	return d
}
