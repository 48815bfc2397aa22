package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/c14220110/hms-console/internal/common/records/recordstest"
	"github.com/c14220110/hms-console/internal/common/wire"
	"github.com/c14220110/hms-console/internal/dashboard/models"
)

func newTestService(store *recordstest.Store) *DashboardService {
	s := NewDashboardService(store, 30*24*time.Hour, nil)
	s.now = func() time.Time { return testNow }
	return s
}

func TestDashboardService_StatsAndMetrics(t *testing.T) {
	defer goleak.VerifyNone(t)

	snap := fixtureSnapshot()
	store := &recordstest.Store{Patients: snap.Patients, Doctors: snap.Doctors, Appointments: snap.Appointments}
	s := newTestService(store)

	stats, err := s.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, stats.PatientsCount)

	metrics, err := s.Metrics(context.Background())
	require.NoError(t, err)
	require.Len(t, metrics, 3)
	assert.Equal(t, "Total Patients", metrics[0].Label)
	assert.Equal(t, "+100%", metrics[0].Trend)
	assert.Equal(t, models.TrendUp, metrics[0].TrendClass)
	assert.Equal(t, "+100%", metrics[1].Trend)
	assert.Equal(t, models.TrendNeutral, metrics[1].TrendClass)

	// Every read fetches.
	assert.Len(t, store.Filters, 2)
}

func TestDashboardService_RefreshNotifiesSubscribers(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := &recordstest.Store{}
	s := newTestService(store)

	var got []wire.Result[models.DashboardStats]
	s.OnUpdate(func(r wire.Result[models.DashboardStats]) { got = append(got, r) })

	_, err := s.Refresh(context.Background())
	require.NoError(t, err)

	store.Err = errors.New("session expired")
	_, err = s.Refresh(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session expired")

	require.Len(t, got, 2)
	assert.True(t, got[0].OK())
	assert.False(t, got[1].OK())
}

func TestDashboardService_StatsRecoverAfterFailedFetch(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := &recordstest.Store{Err: errors.New("transient network blip")}
	s := newTestService(store)

	_, err := s.Stats(context.Background())
	require.Error(t, err)
	_, err = s.Metrics(context.Background())
	require.Error(t, err)

	store.Err = nil
	store.Patients = fixtureSnapshot().Patients

	stats, err := s.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, stats.PatientsCount)

	metrics, err := s.Metrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, metrics[0].Value)
}

func TestDashboardService_StatsFollowClock(t *testing.T) {
	defer goleak.VerifyNone(t)

	snap := fixtureSnapshot()
	store := &recordstest.Store{Patients: snap.Patients, Doctors: snap.Doctors, Appointments: snap.Appointments}
	s := newTestService(store)

	before, err := s.Stats(context.Background())
	require.NoError(t, err)

	later := testNow.Add(48 * time.Hour)
	s.now = func() time.Time { return later }
	after, err := s.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, testNow, before.GeneratedAt)
	assert.Equal(t, later, after.GeneratedAt)
	assert.Equal(t, 2, before.AppointmentsToday)
	assert.Equal(t, 0, after.AppointmentsToday)
}
