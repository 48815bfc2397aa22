// Package recordstest provides an in-memory records.Store for tests.
package recordstest

import (
	"context"
	"fmt"
	"sync"

	"github.com/c14220110/hms-console/internal/common/models"
	"github.com/c14220110/hms-console/internal/common/records"
)

// Store serves fixed lists and records every mutation. Set Err to fail all
// reads, MutateErr to fail all writes.
type Store struct {
	Patients     []models.Patient
	Doctors      []models.Doctor
	Appointments []models.Appointment

	Err       error
	MutateErr error

	mu      sync.Mutex
	Created []Mutation
	Updated []Mutation
	Filters []records.AppointmentFilter
	nextID  int
}

type Mutation struct {
	Object string
	Fields records.Fields
}

var _ records.Store = (*Store)(nil)

func (s *Store) ListPatients(ctx context.Context) ([]models.Patient, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Patients, nil
}

func (s *Store) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Doctors, nil
}

func (s *Store) ListAppointments(ctx context.Context, filter records.AppointmentFilter) ([]models.Appointment, error) {
	s.mu.Lock()
	s.Filters = append(s.Filters, filter)
	s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	var out []models.Appointment
	for _, a := range s.Appointments {
		if filter.DoctorID != "" && a.DoctorID != filter.DoctorID {
			continue
		}
		if filter.PatientID != "" && a.PatientID != filter.PatientID {
			continue
		}
		if !filter.From.IsZero() && (a.DateTime == nil || a.DateTime.Before(filter.From)) {
			continue
		}
		out = append(out, a)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (s *Store) GetDoctor(ctx context.Context, id string) (models.Doctor, error) {
	if s.Err != nil {
		return models.Doctor{}, s.Err
	}
	for _, d := range s.Doctors {
		if d.ID == id {
			return d, nil
		}
	}
	return models.Doctor{}, records.ErrNotFound
}

func (s *Store) CreateRecord(ctx context.Context, object string, fields records.Fields) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.MutateErr != nil {
		return "", s.MutateErr
	}
	s.nextID++
	s.Created = append(s.Created, Mutation{Object: object, Fields: fields})
	return fmt.Sprintf("a0%d", s.nextID), nil
}

func (s *Store) UpdateRecord(ctx context.Context, object string, fields records.Fields) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.MutateErr != nil {
		return s.MutateErr
	}
	if _, ok := fields.ID(); !ok {
		return records.ErrMissingID
	}
	s.Updated = append(s.Updated, Mutation{Object: object, Fields: fields})
	return nil
}
