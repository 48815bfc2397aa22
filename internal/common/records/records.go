// Package records defines the record-fetch and record-mutation collaborators
// the console reads from and writes to.
package records

import (
	"context"
	"errors"
	"time"

	"github.com/c14220110/hms-console/internal/common/models"
)

var (
	ErrUnknownObject = errors.New("unknown object")
	ErrUnknownField  = errors.New("unknown field")
	ErrMissingID     = errors.New("field map has no Id")
	ErrNotFound      = errors.New("record not found")
)

// Fields is a mutation payload keyed by field API name, e.g. "Status__c".
type Fields map[string]any

// ID returns the "Id" entry of the field map.
func (f Fields) ID() (string, bool) {
	id, ok := f[models.FieldID].(string)
	return id, ok && id != ""
}

// Without returns a copy of f without the named keys.
func (f Fields) Without(keys ...string) Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// AppointmentFilter narrows ListAppointments. Zero values mean "no filter".
type AppointmentFilter struct {
	DoctorID  string
	PatientID string
	From      time.Time
	Limit     int
}

type Source interface {
	ListPatients(ctx context.Context) ([]models.Patient, error)
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	ListAppointments(ctx context.Context, filter AppointmentFilter) ([]models.Appointment, error)
	GetDoctor(ctx context.Context, id string) (models.Doctor, error)
}

type Mutator interface {
	// CreateRecord inserts a record and returns its Id.
	CreateRecord(ctx context.Context, object string, fields Fields) (string, error)
	// UpdateRecord updates the record identified by fields["Id"].
	UpdateRecord(ctx context.Context, object string, fields Fields) error
}

type Store interface {
	Source
	Mutator
}
