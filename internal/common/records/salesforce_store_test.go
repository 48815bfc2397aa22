package records

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c14220110/hms-console/internal/common/models"
	"github.com/c14220110/hms-console/pkg/salesforce"
)

func TestAppointmentSOQL_Filters(t *testing.T) {
	from := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	q := appointmentSOQL(AppointmentFilter{DoctorID: "d'1", From: from, Limit: 10})

	assert.Contains(t, q, `WHERE Doctor__c = 'd\'1' AND Date_Time__c >= 2026-10-19T00:00:00Z`)
	assert.Contains(t, q, "Patient__r.First_Name__c")
	assert.True(t, strings.HasSuffix(q, "ORDER BY Date_Time__c LIMIT 10"))
}

func TestAppointmentSOQL_NoFilter(t *testing.T) {
	q := appointmentSOQL(AppointmentFilter{})
	assert.NotContains(t, q, "WHERE")
	assert.NotContains(t, q, "LIMIT")
}

func TestSalesforceStore_ListAppointments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"done":true,"records":[
			{"Id":"a1","Status__c":"Scheduled","Patient__r":{"First_Name__c":"Ada","Last_Name__c":"Lovelace"},"Doctor__r":null}
		]}`))
	}))
	defer srv.Close()

	store := NewSalesforceStore(salesforce.NewClient(srv.URL, "tok"))
	appts, err := store.ListAppointments(context.Background(), AppointmentFilter{})

	require.NoError(t, err)
	require.Len(t, appts, 1)
	assert.Equal(t, "Ada Lovelace", appts[0].Patient.FullName())
	assert.Nil(t, appts[0].Doctor)
}

func TestSalesforceStore_UpdateRecordStripsID(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/services/data/v60.0/sobjects/Appointment__c/a1", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	store := NewSalesforceStore(salesforce.NewClient(srv.URL, "tok"))
	err := store.UpdateRecord(context.Background(), models.ObjectAppointment, Fields{
		models.FieldID:     "a1",
		models.FieldStatus: "Completed",
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"Status__c": "Completed"}, body)
}

func TestSalesforceStore_UpdateRecordRequiresID(t *testing.T) {
	store := NewSalesforceStore(salesforce.NewClient("http://unused", "tok"))
	err := store.UpdateRecord(context.Background(), models.ObjectAppointment, Fields{models.FieldStatus: "Completed"})
	assert.ErrorIs(t, err, ErrMissingID)
}

func TestSalesforceStore_GetDoctorNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"done":true,"records":[]}`))
	}))
	defer srv.Close()

	_, err := NewSalesforceStore(salesforce.NewClient(srv.URL, "tok")).GetDoctor(context.Background(), "d9")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFields_Without(t *testing.T) {
	f := Fields{"Id": "x", "A": 1}
	out := f.Without("Id")

	assert.Equal(t, Fields{"A": 1}, out)
	assert.Contains(t, f, "Id")
}
