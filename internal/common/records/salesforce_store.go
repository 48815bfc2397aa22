package records

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/c14220110/hms-console/internal/common/models"
	"github.com/c14220110/hms-console/pkg/salesforce"
)

const (
	patientQuery = "SELECT Id, First_Name__c, Last_Name__c, Email__c, Phone__c, Gender__c, Date_of_Birth__c, CreatedDate FROM Patient__c"
	doctorQuery  = "SELECT Id, First_Name__c, Last_Name__c, Email__c, Phone__c, Specialization__c, CreatedDate FROM Doctor__c"

	appointmentSelect = "SELECT Id, Date_Time__c, Status__c, Notes__c, Patient__c, Doctor__c, " +
		"Doctor__r.First_Name__c, Doctor__r.Last_Name__c, " +
		"Patient__r.First_Name__c, Patient__r.Last_Name__c, CreatedDate " +
		"FROM Appointment__c"
)

// SalesforceStore reads and writes records through the REST API.
type SalesforceStore struct {
	client *salesforce.Client
}

func NewSalesforceStore(client *salesforce.Client) *SalesforceStore {
	return &SalesforceStore{client: client}
}

func (s *SalesforceStore) ListPatients(ctx context.Context) ([]models.Patient, error) {
	return salesforce.Query[models.Patient](ctx, s.client, patientQuery)
}

func (s *SalesforceStore) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	return salesforce.Query[models.Doctor](ctx, s.client, doctorQuery)
}

func (s *SalesforceStore) GetDoctor(ctx context.Context, id string) (models.Doctor, error) {
	docs, err := salesforce.Query[models.Doctor](ctx, s.client, doctorQuery+" WHERE Id = "+salesforce.Quote(id)+" LIMIT 1")
	if err != nil {
		return models.Doctor{}, err
	}
	if len(docs) == 0 {
		return models.Doctor{}, fmt.Errorf("doctor %s: %w", id, ErrNotFound)
	}
	return docs[0], nil
}

func (s *SalesforceStore) ListAppointments(ctx context.Context, filter AppointmentFilter) ([]models.Appointment, error) {
	return salesforce.Query[models.Appointment](ctx, s.client, appointmentSOQL(filter))
}

func appointmentSOQL(filter AppointmentFilter) string {
	var where []string
	if filter.DoctorID != "" {
		where = append(where, "Doctor__c = "+salesforce.Quote(filter.DoctorID))
	}
	if filter.PatientID != "" {
		where = append(where, "Patient__c = "+salesforce.Quote(filter.PatientID))
	}
	if !filter.From.IsZero() {
		where = append(where, "Date_Time__c >= "+salesforce.DateTimeLiteral(filter.From))
	}

	q := appointmentSelect
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY Date_Time__c"
	if filter.Limit > 0 {
		q += " LIMIT " + strconv.Itoa(filter.Limit)
	}
	return q
}

func (s *SalesforceStore) CreateRecord(ctx context.Context, object string, fields Fields) (string, error) {
	return s.client.Create(ctx, object, fields.Without(models.FieldID))
}

func (s *SalesforceStore) UpdateRecord(ctx context.Context, object string, fields Fields) error {
	id, ok := fields.ID()
	if !ok {
		return ErrMissingID
	}
	return s.client.Update(ctx, object, id, fields.Without(models.FieldID))
}
