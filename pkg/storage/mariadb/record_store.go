package mariadb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/c14220110/hms-console/internal/common/models"
	"github.com/c14220110/hms-console/internal/common/records"
)

type column struct {
	name   string
	isTime bool
}

type tableSpec struct {
	table   string
	columns map[string]column
}

// Field API name -> mirror column, per object.
var objectTables = map[string]tableSpec{
	models.ObjectPatient: {table: "patient", columns: map[string]column{
		models.FieldFirstName: {name: "first_name"},
		models.FieldLastName:  {name: "last_name"},
		models.FieldEmail:     {name: "email"},
		models.FieldPhone:     {name: "phone"},
		models.FieldGender:    {name: "gender"},
		models.FieldBirthDate: {name: "date_of_birth", isTime: true},
	}},
	models.ObjectDoctor: {table: "doctor", columns: map[string]column{
		models.FieldFirstName: {name: "first_name"},
		models.FieldLastName:  {name: "last_name"},
		models.FieldEmail:     {name: "email"},
		models.FieldPhone:     {name: "phone"},
		models.FieldSpecialty: {name: "specialization"},
	}},
	models.ObjectAppointment: {table: "appointment", columns: map[string]column{
		models.FieldDateTime: {name: "date_time", isTime: true},
		models.FieldStatus:   {name: "status"},
		models.FieldNotes:    {name: "notes"},
		models.FieldPatient:  {name: "patient_id"},
		models.FieldDoctor:   {name: "doctor_id"},
	}},
	models.ObjectDoctorShift: {table: "doctor_shift", columns: map[string]column{
		models.FieldDoctor:    {name: "doctor_id"},
		models.FieldStartTime: {name: "start_time", isTime: true},
		models.FieldEndTime:   {name: "end_time", isTime: true},
		models.FieldShiftType: {name: "shift_type"},
	}},
}

// RecordStore is a MariaDB mirror of the hospital objects. It satisfies
// records.Store so the console can run without a Salesforce org.
type RecordStore struct {
	DB    *sql.DB
	newID func() string
}

func NewRecordStore(db *sql.DB) *RecordStore {
	return &RecordStore{DB: db, newID: uuid.NewString}
}

func (s *RecordStore) ListPatients(ctx context.Context) ([]models.Patient, error) {
	rows, err := s.DB.QueryContext(ctx,
		"SELECT id, first_name, last_name, email, phone, gender, date_of_birth, created_at FROM patient ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	defer rows.Close()

	var out []models.Patient
	for rows.Next() {
		var p models.Patient
		var dob sql.NullTime
		var created time.Time
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.Phone, &p.Gender, &dob, &created); err != nil {
			return nil, fmt.Errorf("scan patient: %w", err)
		}
		p.DateOfBirth = nullTimestamp(dob)
		p.CreatedDate = models.NewTimestamp(created)
		out = append(out, p)
	}
	return out, rows.Err()
}

const doctorColumns = "SELECT id, first_name, last_name, email, phone, specialization, created_at FROM doctor"

func (s *RecordStore) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	rows, err := s.DB.QueryContext(ctx, doctorColumns+" ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	defer rows.Close()

	var out []models.Doctor
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *RecordStore) GetDoctor(ctx context.Context, id string) (models.Doctor, error) {
	d, err := scanDoctor(s.DB.QueryRowContext(ctx, doctorColumns+" WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Doctor{}, fmt.Errorf("doctor %s: %w", id, records.ErrNotFound)
	}
	return d, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDoctor(row scanner) (models.Doctor, error) {
	var d models.Doctor
	var created time.Time
	if err := row.Scan(&d.ID, &d.FirstName, &d.LastName, &d.Email, &d.Phone, &d.Specialization, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return d, err
		}
		return d, fmt.Errorf("scan doctor: %w", err)
	}
	d.CreatedDate = models.NewTimestamp(created)
	return d, nil
}

const appointmentQuery = `SELECT a.id, a.date_time, a.status, a.notes, a.patient_id, a.doctor_id, a.created_at,
	p.first_name, p.last_name, d.first_name, d.last_name
	FROM appointment a
	LEFT JOIN patient p ON p.id = a.patient_id
	LEFT JOIN doctor d ON d.id = a.doctor_id`

func (s *RecordStore) ListAppointments(ctx context.Context, filter records.AppointmentFilter) ([]models.Appointment, error) {
	q := appointmentQuery
	var (
		where []string
		args  []any
	)
	if filter.DoctorID != "" {
		where = append(where, "a.doctor_id = ?")
		args = append(args, filter.DoctorID)
	}
	if filter.PatientID != "" {
		where = append(where, "a.patient_id = ?")
		args = append(args, filter.PatientID)
	}
	if !filter.From.IsZero() {
		where = append(where, "a.date_time >= ?")
		args = append(args, filter.From)
	}
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY a.date_time"
	if filter.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()

	var out []models.Appointment
	for rows.Next() {
		var (
			a                   models.Appointment
			dateTime            sql.NullTime
			status              string
			notes, patID, docID sql.NullString
			created             time.Time
			pFirst, pLast       sql.NullString
			dFirst, dLast       sql.NullString
		)
		if err := rows.Scan(&a.ID, &dateTime, &status, &notes, &patID, &docID, &created,
			&pFirst, &pLast, &dFirst, &dLast); err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		a.DateTime = nullTimestamp(dateTime)
		a.Status = models.AppointmentStatus(status)
		a.Notes = notes.String
		a.PatientID = patID.String
		a.DoctorID = docID.String
		a.CreatedDate = models.NewTimestamp(created)
		if pFirst.Valid || pLast.Valid {
			a.Patient = &models.PersonRef{FirstName: pFirst.String, LastName: pLast.String}
		}
		if dFirst.Valid || dLast.Valid {
			a.Doctor = &models.PersonRef{FirstName: dFirst.String, LastName: dLast.String}
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *RecordStore) CreateRecord(ctx context.Context, object string, fields records.Fields) (string, error) {
	spec, cols, vals, err := resolve(object, fields.Without(models.FieldID))
	if err != nil {
		return "", err
	}
	id := s.newID()
	cols = append([]string{"id"}, cols...)
	vals = append([]any{id}, vals...)

	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		spec.table, strings.Join(cols, ", "), strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", "))
	if _, err := s.DB.ExecContext(ctx, q, vals...); err != nil {
		return "", fmt.Errorf("insert %s: %w", object, err)
	}
	return id, nil
}

func (s *RecordStore) UpdateRecord(ctx context.Context, object string, fields records.Fields) error {
	id, ok := fields.ID()
	if !ok {
		return records.ErrMissingID
	}
	spec, cols, vals, err := resolve(object, fields.Without(models.FieldID))
	if err != nil {
		return err
	}
	if len(cols) == 0 {
		return nil
	}

	sets := make([]string, len(cols))
	for i, c := range cols {
		sets[i] = c + " = ?"
	}
	q := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", spec.table, strings.Join(sets, ", "))
	res, err := s.DB.ExecContext(ctx, q, append(vals, id)...)
	if err != nil {
		return fmt.Errorf("update %s: %w", object, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%s %s: %w", object, id, records.ErrNotFound)
	}
	return nil
}

// resolve maps a field map onto mirror columns, in field-name order.
func resolve(object string, fields records.Fields) (tableSpec, []string, []any, error) {
	spec, ok := objectTables[object]
	if !ok {
		return tableSpec{}, nil, nil, fmt.Errorf("%w: %s", records.ErrUnknownObject, object)
	}

	names := make([]string, 0, len(fields))
	for k := range fields {
		names = append(names, k)
	}
	sort.Strings(names)

	cols := make([]string, 0, len(names))
	vals := make([]any, 0, len(names))
	for _, name := range names {
		col, ok := spec.columns[name]
		if !ok {
			return tableSpec{}, nil, nil, fmt.Errorf("%w: %s.%s", records.ErrUnknownField, object, name)
		}
		v := fields[name]
		if col.isTime {
			t, err := toTime(v)
			if err != nil {
				return tableSpec{}, nil, nil, fmt.Errorf("%s.%s: %w", object, name, err)
			}
			v = t
		}
		cols = append(cols, col.name)
		vals = append(vals, v)
	}
	return spec, cols, vals, nil
}

func toTime(v any) (any, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return t.UTC(), nil
	case string:
		if t == "" {
			return nil, nil
		}
		ts, err := models.ParseTimestamp(t)
		if err != nil {
			return nil, err
		}
		return ts.UTC(), nil
	default:
		return nil, fmt.Errorf("unsupported time value %T", v)
	}
}

func nullTimestamp(nt sql.NullTime) *models.Timestamp {
	if !nt.Valid {
		return nil
	}
	return models.NewTimestamp(nt.Time)
}
