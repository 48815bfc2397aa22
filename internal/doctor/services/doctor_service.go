package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/c14220110/hms-console/internal/common/display"
	commonModels "github.com/c14220110/hms-console/internal/common/models"
	"github.com/c14220110/hms-console/internal/common/records"
	"github.com/c14220110/hms-console/internal/doctor/models"
)

var (
	ErrShiftTimesRequired = errors.New("shift start and end times are required")
	ErrShiftOrder         = errors.New("shift end time must be after its start time")
)

type DoctorService struct {
	Store  records.Store
	logger *zap.Logger
}

func NewDoctorService(store records.Store, logger *zap.Logger) *DoctorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DoctorService{Store: store, logger: logger}
}

func (s *DoctorService) List(ctx context.Context) ([]models.DoctorRow, error) {
	doctors, err := s.Store.ListDoctors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	out := make([]models.DoctorRow, len(doctors))
	for i, d := range doctors {
		out[i] = models.DoctorRow{Doctor: d, Name: d.FullName(), Specialty: d.Specialization}
	}
	return out, nil
}

// Console loads a doctor and every appointment assigned to them.
func (s *DoctorService) Console(ctx context.Context, doctorID string) (models.Console, error) {
	doctor, err := s.Store.GetDoctor(ctx, doctorID)
	if err != nil {
		return models.Console{}, fmt.Errorf("get doctor %s: %w", doctorID, err)
	}
	appts, err := s.Store.ListAppointments(ctx, records.AppointmentFilter{DoctorID: doctorID})
	if err != nil {
		return models.Console{}, fmt.Errorf("list appointments for %s: %w", doctorID, err)
	}
	return models.Console{
		DoctorID:     doctor.ID,
		DoctorName:   doctor.FullName(),
		Appointments: display.FlattenAppointments(appts),
	}, nil
}

// ValidateShift checks a shift request before it is sent anywhere.
func ValidateShift(req models.ShiftRequest) error {
	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return ErrShiftTimesRequired
	}
	if !req.EndTime.After(req.StartTime) {
		return ErrShiftOrder
	}
	return nil
}

// CreateShift records a shift for doctorID. Validation errors are returned
// without a toast; create failures come back with an error toast.
func (s *DoctorService) CreateShift(ctx context.Context, doctorID string, req models.ShiftRequest) (commonModels.Toast, error) {
	if err := ValidateShift(req); err != nil {
		return commonModels.Toast{}, err
	}

	fields := records.Fields{
		commonModels.FieldDoctor:    doctorID,
		commonModels.FieldStartTime: req.StartTime.UTC().Format(time.RFC3339),
		commonModels.FieldEndTime:   req.EndTime.UTC().Format(time.RFC3339),
	}
	if req.ShiftType != "" {
		fields[commonModels.FieldShiftType] = req.ShiftType
	}

	id, err := s.Store.CreateRecord(ctx, commonModels.ObjectDoctorShift, fields)
	if err != nil {
		s.logger.Warn("create doctor shift", zap.String("doctor", doctorID), zap.Error(err))
		msg := display.ErrorMessage(err)
		if msg == "" {
			msg = "Error creating shift"
		}
		return commonModels.ErrorToast("Error", msg), err
	}
	s.logger.Info("doctor shift created", zap.String("doctor", doctorID), zap.String("id", id))
	return commonModels.SuccessToast("Success", "Doctor Shift created successfully"), nil
}
