package services

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/c14220110/hms-console/internal/dashboard/models"
)

var ErrUnknownSelection = errors.New("unknown chart selection")

// Chart is a live instance on the rendering service.
type Chart interface {
	ID() string
	Destroy() error
}

// Backend creates charts on a canvas. The console never talks to a charting
// library directly; every instance goes through an injected Backend.
type Backend interface {
	Create(canvasID string, cfg models.ChartConfig) (Chart, error)
}

var palette = []string{"#0176d3", "#2e844a", "#fe9339", "#ba0517", "#9050e9", "#06a59a", "#dd7a01"}

// ChartRenderer owns the charts currently on screen. At most one selection is
// live at a time: every render tears down what the previous one created.
type ChartRenderer struct {
	backend Backend
	logger  *zap.Logger

	mu   sync.Mutex
	live []Chart
}

func NewChartRenderer(backend Backend, logger *zap.Logger) *ChartRenderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChartRenderer{backend: backend, logger: logger}
}

// Render replaces the live charts with the set for selection. An unknown
// selection leaves the current charts untouched.
func (r *ChartRenderer) Render(selection models.Selection, stats models.DashboardStats) ([]models.ChartInstance, error) {
	configs, err := ChartsFor(selection, stats)
	if err != nil {
		return nil, err
	}
	return r.replace("chart", configs)
}

// RenderAnalytics replaces the live charts with the admin analytics pair.
func (r *ChartRenderer) RenderAnalytics(stats models.DashboardStats) ([]models.ChartInstance, error) {
	return r.replace("analytics", analyticsCharts(stats))
}

// Close destroys every live chart.
func (r *ChartRenderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.destroyLocked()
}

// Live returns the ids of the charts currently on screen.
func (r *ChartRenderer) Live() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, len(r.live))
	for i, c := range r.live {
		ids[i] = c.ID()
	}
	return ids
}

func (r *ChartRenderer) replace(prefix string, configs []models.ChartConfig) ([]models.ChartInstance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.destroyLocked(); err != nil {
		return nil, err
	}

	out := make([]models.ChartInstance, 0, len(configs))
	for i, cfg := range configs {
		canvas := fmt.Sprintf("%s-%d", prefix, i+1)
		chart, err := r.backend.Create(canvas, cfg)
		if err != nil {
			return out, fmt.Errorf("create %s: %w", canvas, err)
		}
		r.live = append(r.live, chart)
		out = append(out, models.ChartInstance{ID: chart.ID(), Canvas: canvas, Config: cfg})
	}
	r.logger.Debug("charts rendered", zap.String("prefix", prefix), zap.Int("count", len(out)))
	return out, nil
}

// destroyLocked drops every live chart even when some fail to destroy, and
// reports the failures together.
func (r *ChartRenderer) destroyLocked() error {
	var errs []error
	for _, c := range r.live {
		if err := c.Destroy(); err != nil {
			r.logger.Warn("destroy chart", zap.String("id", c.ID()), zap.Error(err))
			errs = append(errs, err)
		}
	}
	r.live = nil
	return errors.Join(errs...)
}

// OrderByWeekday maps day counts onto Mon..Sun, missing days as zero.
func OrderByWeekday(byDay map[string]int) []int {
	out := make([]int, len(WeekdayOrder))
	for i, d := range WeekdayOrder {
		out[i] = byDay[d]
	}
	return out
}

// ChartsFor builds the chart configs for a selection without rendering them.
func ChartsFor(selection models.Selection, stats models.DashboardStats) ([]models.ChartConfig, error) {
	switch selection {
	case models.SelectPatients:
		return patientCharts(stats), nil
	case models.SelectAppointments:
		return appointmentCharts(stats), nil
	case models.SelectDoctors:
		return doctorCharts(stats), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSelection, selection)
	}
}

func patientCharts(stats models.DashboardStats) []models.ChartConfig {
	ageLabels, ageData := buckets(stats.PatientsByAge)
	genderLabels, genderData := buckets(stats.PatientsByGender)
	trendLabels, trendData := buckets(stats.PatientTrend)
	fill := true

	return []models.ChartConfig{
		chart(models.ChartBar, "Age Distribution", ageLabels, models.Dataset{
			Label: "Patients", Data: ageData, BackgroundColor: palette[0],
		}),
		chart(models.ChartPie, "Gender Ratio", genderLabels, models.Dataset{
			Data: genderData, BackgroundColor: colors(len(genderData)),
		}),
		chart(models.ChartLine, "Patient Growth Trend", trendLabels, models.Dataset{
			Label: "New Patients", Data: trendData, BorderColor: palette[1],
			BackgroundColor: "rgba(46, 132, 74, 0.2)", Fill: &fill, Tension: 0.4,
		}),
	}
}

func appointmentCharts(stats models.DashboardStats) []models.ChartConfig {
	labels := make([]string, len(stats.AppointmentsByStatus))
	data := make([]int, len(stats.AppointmentsByStatus))
	for i, s := range stats.AppointmentsByStatus {
		labels[i] = s.Status
		data[i] = s.Total
	}

	return []models.ChartConfig{
		chart(models.ChartDoughnut, "Status Overview", labels, models.Dataset{
			Data: data, BackgroundColor: colors(len(data)),
		}),
		chart(models.ChartBar, "Weekly Traffic Volume", WeekdayOrder, models.Dataset{
			Label: "Appointments", Data: OrderByWeekday(stats.AppointmentsByDay), BackgroundColor: palette[2],
		}),
		emptyChart(),
	}
}

func doctorCharts(stats models.DashboardStats) []models.ChartConfig {
	specLabels, specData := specs(stats.DoctorsBySpec)

	loadLabels := make([]string, len(stats.TopDoctors))
	loadData := make([]int, len(stats.TopDoctors))
	for i, d := range stats.TopDoctors {
		loadLabels[i] = "Dr. " + d.Name
		loadData[i] = d.Total
	}
	workload := chart(models.ChartBar, "Top Doctors by Workload", loadLabels, models.Dataset{
		Label: "Appointments", Data: loadData, BackgroundColor: palette[4],
	})
	workload.IndexAxis = "y"

	return []models.ChartConfig{
		chart(models.ChartPie, "Specializations", specLabels, models.Dataset{
			Data: specData, BackgroundColor: colors(len(specData)),
		}),
		workload,
		emptyChart(),
	}
}

func analyticsCharts(stats models.DashboardStats) []models.ChartConfig {
	specLabels, specData := specs(stats.AppointmentsBySpec)
	statusCharts := appointmentCharts(stats)

	return []models.ChartConfig{
		chart(models.ChartBar, "Appointments by Specialization", specLabels, models.Dataset{
			Label: "Appointments", Data: specData, BackgroundColor: palette[0],
		}),
		statusCharts[0],
	}
}

func chart(typ models.ChartType, title string, labels []string, ds models.Dataset) models.ChartConfig {
	if ds.Data == nil {
		ds.Data = []int{}
	}
	return models.ChartConfig{
		Type: typ,
		Data: models.ChartData{Labels: labels, Datasets: []models.Dataset{ds}},
		Options: models.ChartOptions{
			Responsive: true,
			Plugins:    models.Plugins{Title: models.ChartTitle{Display: true, Text: title}},
		},
	}
}

func emptyChart() models.ChartConfig {
	return chart(models.ChartBubble, "No Data", nil, models.Dataset{})
}

func buckets(in []models.Bucket) ([]string, []int) {
	labels := make([]string, len(in))
	data := make([]int, len(in))
	for i, b := range in {
		labels[i] = b.Label
		data[i] = b.Count
	}
	return labels, data
}

func specs(in []models.SpecCount) ([]string, []int) {
	labels := make([]string, len(in))
	data := make([]int, len(in))
	for i, s := range in {
		labels[i] = s.Spec
		data[i] = s.Total
	}
	return labels, data
}

func colors(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = palette[i%len(palette)]
	}
	return out
}
