package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/c14220110/hms-console/internal/common/display"
	commonModels "github.com/c14220110/hms-console/internal/common/models"
	"github.com/c14220110/hms-console/internal/common/records"
	"github.com/c14220110/hms-console/internal/patient/models"
)

var ErrNameRequired = errors.New("first and last name are required")

type PatientService struct {
	Store records.Store

	now    func() time.Time
	logger *zap.Logger
}

func NewPatientService(store records.Store, logger *zap.Logger) *PatientService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PatientService{Store: store, now: time.Now, logger: logger}
}

func (s *PatientService) List(ctx context.Context) ([]models.PatientRow, error) {
	patients, err := s.Store.ListPatients(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	out := make([]models.PatientRow, len(patients))
	for i, p := range patients {
		out[i] = models.PatientRow{Patient: p, Name: p.FullName()}
	}
	return out, nil
}

// QuickAdd registers a patient. Only non-empty form fields are sent.
func (s *PatientService) QuickAdd(ctx context.Context, in models.NewPatient) (models.QuickAddResult, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	if in.FirstName == "" || in.LastName == "" {
		return models.QuickAddResult{}, ErrNameRequired
	}

	fields := records.Fields{
		commonModels.FieldFirstName: in.FirstName,
		commonModels.FieldLastName:  in.LastName,
	}
	optional := map[string]string{
		commonModels.FieldEmail:     in.Email,
		commonModels.FieldPhone:     in.Phone,
		commonModels.FieldGender:    in.Gender,
		commonModels.FieldBirthDate: in.DateOfBirth,
	}
	for name, v := range optional {
		if v = strings.TrimSpace(v); v != "" {
			fields[name] = v
		}
	}

	id, err := s.Store.CreateRecord(ctx, commonModels.ObjectPatient, fields)
	if err != nil {
		s.logger.Warn("create patient", zap.Error(err))
		return models.QuickAddResult{
			Toast: commonModels.ErrorToast("Error", "Error creating patient: "+display.ErrorMessage(err)),
		}, err
	}
	s.logger.Info("patient registered", zap.String("id", id))
	return models.QuickAddResult{
		ID:    id,
		Toast: commonModels.SuccessToast("Success", "Patient registered successfully! ID: "+id),
	}, nil
}

// Timeline lists a patient's activity, newest first, decorated for display.
func (s *PatientService) Timeline(ctx context.Context, patientID string) ([]models.TimelineItem, error) {
	appts, err := s.Store.ListAppointments(ctx, records.AppointmentFilter{PatientID: patientID})
	if err != nil {
		return nil, fmt.Errorf("timeline for %s: %w", patientID, err)
	}

	now := s.now()
	items := appointmentItems(appts)
	for i := range items {
		items[i] = Decorate(items[i], now)
	}
	return items, nil
}
