package mariadb

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c14220110/hms-console/config"
	"github.com/c14220110/hms-console/internal/common/models"
	"github.com/c14220110/hms-console/internal/common/records"
)

func newMockStore(t *testing.T) (*RecordStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store := NewRecordStore(db)
	store.newID = func() string { return "generated-id" }
	return store, mock
}

type sameTime time.Time

func (st sameTime) Match(v driver.Value) bool {
	t, ok := v.(time.Time)
	return ok && t.Equal(time.Time(st))
}

func TestDSN(t *testing.T) {
	dsn := DSN(&config.Config{DBUser: "hms", DBPassword: "pw", DBHost: "db", DBPort: "3306", DBName: "hospital"})
	assert.Contains(t, dsn, "hms:pw@tcp(db:3306)/hospital")
	assert.Contains(t, dsn, "parseTime=true")

	parsed, err := mysql.ParseDSN(dsn)
	require.NoError(t, err)
	assert.True(t, parsed.ClientFoundRows, "unchanged updates must count as matched")
	assert.True(t, parsed.ParseTime)
}

func TestListPatients(t *testing.T) {
	store, mock := newMockStore(t)
	created := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	dob := time.Date(1990, 1, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM patient ORDER BY created_at")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "email", "phone", "gender", "date_of_birth", "created_at"}).
			AddRow("p1", "Ada", "Lovelace", "ada@example.com", "555", "Female", dob, created).
			AddRow("p2", "Alan", "Turing", "", "", "Male", nil, created))

	patients, err := store.ListPatients(context.Background())

	require.NoError(t, err)
	require.Len(t, patients, 2)
	assert.Equal(t, "Ada Lovelace", patients[0].FullName())
	assert.Equal(t, 1990, patients[0].DateOfBirth.Year())
	assert.Nil(t, patients[1].DateOfBirth)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAppointments_JoinsAndFilters(t *testing.T) {
	store, mock := newMockStore(t)
	at := time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC)
	from := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE a.doctor_id = ? AND a.date_time >= ? ORDER BY a.date_time LIMIT ?")).
		WithArgs("d1", from, 5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "date_time", "status", "notes", "patient_id", "doctor_id", "created_at",
			"p_first", "p_last", "d_first", "d_last"}).
			AddRow("a1", at, "Scheduled", "checkup", "p1", "d1", at, "Ada", "Lovelace", "Gregory", "House").
			AddRow("a2", at, "Cancelled", nil, nil, "d1", at, nil, nil, "Gregory", "House"))

	appts, err := store.ListAppointments(context.Background(), records.AppointmentFilter{DoctorID: "d1", From: from, Limit: 5})

	require.NoError(t, err)
	require.Len(t, appts, 2)
	assert.Equal(t, "Ada Lovelace", appts[0].Patient.FullName())
	assert.Equal(t, "Gregory House", appts[0].Doctor.FullName())
	assert.Nil(t, appts[1].Patient)
	assert.Equal(t, models.StatusCancelled, appts[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDoctor_NotFound(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM doctor WHERE id = ?")).
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := store.GetDoctor(context.Background(), "nope")

	assert.ErrorIs(t, err, records.ErrNotFound)
}

func TestCreateRecord_InsertsKnownColumns(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO patient (id, first_name, gender, last_name) VALUES (?, ?, ?, ?)")).
		WithArgs("generated-id", "Ada", "Female", "Lovelace").
		WillReturnResult(sqlmock.NewResult(0, 1))

	id, err := store.CreateRecord(context.Background(), models.ObjectPatient, records.Fields{
		models.FieldFirstName: "Ada",
		models.FieldLastName:  "Lovelace",
		models.FieldGender:    "Female",
	})

	require.NoError(t, err)
	assert.Equal(t, "generated-id", id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRecord_ParsesTimeFields(t *testing.T) {
	store, mock := newMockStore(t)
	start := time.Date(2026, 10, 20, 8, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO doctor_shift (id, doctor_id, start_time) VALUES (?, ?, ?)")).
		WithArgs("generated-id", "d1", sameTime(start)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	_, err := store.CreateRecord(context.Background(), models.ObjectDoctorShift, records.Fields{
		models.FieldDoctor:    "d1",
		models.FieldStartTime: "2026-10-20T08:00:00.000+0000",
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRecord_RejectsUnknownField(t *testing.T) {
	store, _ := newMockStore(t)

	_, err := store.CreateRecord(context.Background(), models.ObjectPatient, records.Fields{"Hack__c": "x"})
	assert.ErrorIs(t, err, records.ErrUnknownField)

	_, err = store.CreateRecord(context.Background(), "Invoice__c", records.Fields{})
	assert.ErrorIs(t, err, records.ErrUnknownObject)
}

func TestUpdateRecord(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE appointment SET status = ? WHERE id = ?")).
		WithArgs("Completed", "a1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.UpdateRecord(context.Background(), models.ObjectAppointment, records.Fields{
		models.FieldID:     "a1",
		models.FieldStatus: "Completed",
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRecord_NoRowsIsNotFound(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE appointment SET status = ? WHERE id = ?")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.UpdateRecord(context.Background(), models.ObjectAppointment, records.Fields{
		models.FieldID:     "missing",
		models.FieldStatus: "Completed",
	})

	assert.ErrorIs(t, err, records.ErrNotFound)
}

func TestUpdateRecord_RequiresID(t *testing.T) {
	store, _ := newMockStore(t)
	err := store.UpdateRecord(context.Background(), models.ObjectAppointment, records.Fields{models.FieldStatus: "Completed"})
	assert.ErrorIs(t, err, records.ErrMissingID)
}

func TestMigrate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	for range schema {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS").WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, Migrate(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}
