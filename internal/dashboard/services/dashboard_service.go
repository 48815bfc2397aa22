package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/c14220110/hms-console/internal/common/records"
	"github.com/c14220110/hms-console/internal/common/wire"
	"github.com/c14220110/hms-console/internal/dashboard/models"
)

type DashboardService struct {
	Source records.Source
	Window time.Duration

	now    func() time.Time
	logger *zap.Logger
	stats  *wire.Subscription[models.DashboardStats]
}

func NewDashboardService(source records.Source, window time.Duration, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &DashboardService{
		Source: source,
		Window: window,
		now:    time.Now,
		logger: logger,
	}
	s.stats = wire.New(s.load)
	return s
}

// load reads the three lists in parallel; any failure fails the whole read.
func (s *DashboardService) load(ctx context.Context) (models.DashboardStats, error) {
	var snap Snapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		patients, err := s.Source.ListPatients(gctx)
		if err != nil {
			return fmt.Errorf("list patients: %w", err)
		}
		snap.Patients = patients
		return nil
	})
	g.Go(func() error {
		doctors, err := s.Source.ListDoctors(gctx)
		if err != nil {
			return fmt.Errorf("list doctors: %w", err)
		}
		snap.Doctors = doctors
		return nil
	})
	g.Go(func() error {
		appts, err := s.Source.ListAppointments(gctx, records.AppointmentFilter{})
		if err != nil {
			return fmt.Errorf("list appointments: %w", err)
		}
		snap.Appointments = appts
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("dashboard fetch failed", zap.Error(err))
		return models.DashboardStats{}, err
	}
	return Aggregate(snap, s.now(), s.Window), nil
}

// Stats fetches fresh stats and re-delivers them to every subscriber.
func (s *DashboardService) Stats(ctx context.Context) (models.DashboardStats, error) {
	return s.Refresh(ctx)
}

// Refresh re-fetches and re-delivers the stats to every subscriber. A failed
// fetch only fails the call that triggered it.
func (s *DashboardService) Refresh(ctx context.Context) (models.DashboardStats, error) {
	res := s.stats.Refresh(ctx)
	return res.Data, res.Err
}

func (s *DashboardService) Metrics(ctx context.Context) ([]models.Metric, error) {
	stats, err := s.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return BuildMetrics(stats), nil
}

// OnUpdate registers a callback run after every refresh, successful or not.
func (s *DashboardService) OnUpdate(cb func(wire.Result[models.DashboardStats])) {
	s.stats.OnResult(cb)
}
