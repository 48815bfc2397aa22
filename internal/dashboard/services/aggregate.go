package services

import (
	"sort"
	"time"

	"github.com/c14220110/hms-console/internal/common/display"
	commonModels "github.com/c14220110/hms-console/internal/common/models"
	"github.com/c14220110/hms-console/internal/dashboard/models"
)

const (
	trendMonths   = 6
	topDoctorsMax = 5

	unspecified = "Unspecified"
)

// WeekdayOrder is the fixed day sequence used by the weekly charts.
var WeekdayOrder = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

var ageBuckets = []struct {
	label    string
	min, max int
}{
	{"0-17", 0, 17},
	{"18-35", 18, 35},
	{"36-50", 36, 50},
	{"51-64", 51, 64},
	{"65+", 65, 1 << 30},
}

var statusOrder = map[string]int{
	string(commonModels.StatusScheduled): 0,
	string(commonModels.StatusCompleted): 1,
	string(commonModels.StatusCancelled): 2,
}

// Snapshot is one consistent read of the three record lists.
type Snapshot struct {
	Patients     []commonModels.Patient
	Doctors      []commonModels.Doctor
	Appointments []commonModels.Appointment
}

// Aggregate derives the dashboard payload from a snapshot. Records created
// within window before now count as "new"; "today" and weekdays follow now's
// location.
func Aggregate(snap Snapshot, now time.Time, window time.Duration) models.DashboardStats {
	since := now.Add(-window)
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	stats := models.DashboardStats{
		PatientsCount:     len(snap.Patients),
		DoctorsCount:      len(snap.Doctors),
		AppointmentsByDay: make(map[string]int),
		GeneratedAt:       now,
	}

	for _, p := range snap.Patients {
		if createdAfter(p.CreatedDate, since) {
			stats.PatientsNew++
		}
	}
	for _, d := range snap.Doctors {
		if createdAfter(d.CreatedDate, since) {
			stats.DoctorsNew++
		}
	}

	doctorByID := make(map[string]commonModels.Doctor, len(snap.Doctors))
	for _, d := range snap.Doctors {
		doctorByID[d.ID] = d
	}

	byStatus := map[string]int{}
	bySpec := map[string]int{}
	load := map[string]int{}
	loadName := map[string]string{}

	for _, a := range snap.Appointments {
		if createdAfter(a.CreatedDate, since) {
			stats.AppointmentsNew++
		}
		if a.DateTime != nil {
			at := a.DateTime.In(now.Location())
			if !at.Before(startOfDay) && a.Status != commonModels.StatusCancelled {
				stats.AppointmentsToday++
			}
			stats.AppointmentsByDay[weekdayLabel(at.Weekday())]++
		}

		status := string(a.Status)
		if status == "" {
			status = string(commonModels.StatusScheduled)
		}
		byStatus[status]++

		if a.DoctorID == "" {
			continue
		}
		doc, known := doctorByID[a.DoctorID]
		spec := unspecified
		if known && doc.Specialization != "" {
			spec = doc.Specialization
		}
		bySpec[spec]++

		load[a.DoctorID]++
		if known {
			loadName[a.DoctorID] = display.PersonName(&commonModels.PersonRef{FirstName: doc.FirstName, LastName: doc.LastName})
		} else {
			loadName[a.DoctorID] = display.PersonName(a.Doctor)
		}
	}

	stats.PatientsByAge = ageDistribution(snap.Patients, now)
	stats.PatientsByGender = genderRatio(snap.Patients)
	stats.PatientTrend = patientTrend(snap.Patients, now)
	stats.AppointmentsByStatus = statusCounts(byStatus)
	stats.DoctorsBySpec = doctorSpecs(snap.Doctors)
	stats.AppointmentsBySpec = specCounts(bySpec)
	stats.TopDoctors = topDoctors(load, loadName)

	return stats
}

func createdAfter(ts *commonModels.Timestamp, since time.Time) bool {
	return ts != nil && !ts.IsZero() && ts.After(since)
}

func weekdayLabel(d time.Weekday) string {
	// WeekdayOrder starts on Monday, time.Weekday on Sunday.
	return WeekdayOrder[(int(d)+6)%7]
}

func ageAt(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	return years
}

func ageDistribution(patients []commonModels.Patient, now time.Time) []models.Bucket {
	out := make([]models.Bucket, len(ageBuckets))
	for i, b := range ageBuckets {
		out[i].Label = b.label
	}
	for _, p := range patients {
		if p.DateOfBirth == nil || p.DateOfBirth.IsZero() {
			continue
		}
		age := ageAt(p.DateOfBirth.Time, now)
		for i, b := range ageBuckets {
			if age >= b.min && age <= b.max {
				out[i].Count++
				break
			}
		}
	}
	return out
}

func genderRatio(patients []commonModels.Patient) []models.Bucket {
	counts := map[string]int{}
	for _, p := range patients {
		g := p.Gender
		if g == "" {
			g = display.UnknownName
		}
		counts[g]++
	}
	out := make([]models.Bucket, 0, len(counts))
	for label, n := range counts {
		out = append(out, models.Bucket{Label: label, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// patientTrend counts registrations per calendar month, oldest first, for the
// trailing months up to and including now's month.
func patientTrend(patients []commonModels.Patient, now time.Time) []models.Bucket {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(trendMonths - 1), 0)

	out := make([]models.Bucket, trendMonths)
	index := make(map[string]int, trendMonths)
	for i := range out {
		m := first.AddDate(0, i, 0)
		out[i].Label = m.Format("Jan 2006")
		index[out[i].Label] = i
	}

	for _, p := range patients {
		if p.CreatedDate == nil || p.CreatedDate.IsZero() {
			continue
		}
		label := p.CreatedDate.In(now.Location()).Format("Jan 2006")
		if i, ok := index[label]; ok {
			out[i].Count++
		}
	}
	return out
}

func statusCounts(counts map[string]int) []models.StatusCount {
	out := make([]models.StatusCount, 0, len(counts))
	for status, n := range counts {
		out = append(out, models.StatusCount{Status: status, Total: n})
	}
	sort.Slice(out, func(i, j int) bool {
		oi, iKnown := statusOrder[out[i].Status]
		oj, jKnown := statusOrder[out[j].Status]
		switch {
		case iKnown && jKnown:
			return oi < oj
		case iKnown != jKnown:
			return iKnown
		default:
			return out[i].Status < out[j].Status
		}
	})
	return out
}

func doctorSpecs(doctors []commonModels.Doctor) []models.SpecCount {
	counts := map[string]int{}
	for _, d := range doctors {
		spec := d.Specialization
		if spec == "" {
			spec = unspecified
		}
		counts[spec]++
	}
	return specCounts(counts)
}

// specCounts orders by total descending, then name.
func specCounts(counts map[string]int) []models.SpecCount {
	out := make([]models.SpecCount, 0, len(counts))
	for spec, n := range counts {
		out = append(out, models.SpecCount{Spec: spec, Total: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Spec < out[j].Spec
	})
	return out
}

func topDoctors(load map[string]int, names map[string]string) []models.DoctorLoad {
	out := make([]models.DoctorLoad, 0, len(load))
	for id, n := range load {
		out = append(out, models.DoctorLoad{Name: names[id], Total: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > topDoctorsMax {
		out = out[:topDoctorsMax]
	}
	return out
}
