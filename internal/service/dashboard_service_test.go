package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/child-therapy-api/internal/models"
)

type fakeDashboardStore struct {
	childrenByDoctor int
	childrenByParent int
	sessionCounts    []int
	countWindows     [][2]time.Time
	recent           []models.SessionActivity
}

func (f *fakeDashboardStore) CountChildrenByDoctor(_ context.Context, _ string) (int, error) {
	return f.childrenByDoctor, nil
}

func (f *fakeDashboardStore) CountSessionsByDoctor(_ context.Context, _ string, from, to time.Time) (int, error) {
	f.countWindows = append(f.countWindows, [2]time.Time{from, to})
	count := f.sessionCounts[0]
	f.sessionCounts = f.sessionCounts[1:]
	return count, nil
}

func (f *fakeDashboardStore) RecentSessionsByDoctor(_ context.Context, _ string, _ int) ([]models.SessionActivity, error) {
	return f.recent, nil
}

func (f *fakeDashboardStore) CountChildrenByParent(_ context.Context, _ string) (int, error) {
	return f.childrenByParent, nil
}

func (f *fakeDashboardStore) CountSessionsByParent(_ context.Context, _ string, from, to time.Time) (int, error) {
	f.countWindows = append(f.countWindows, [2]time.Time{from, to})
	count := f.sessionCounts[0]
	f.sessionCounts = f.sessionCounts[1:]
	return count, nil
}

func (f *fakeDashboardStore) RecentSessionsByParent(_ context.Context, _ string, _ int) ([]models.SessionActivity, error) {
	return f.recent, nil
}

func newTestDashboardService(store *fakeDashboardStore, now time.Time) *DashboardService {
	// Cache disabled: every call recomputes from the store.
	cache := NewCacheService(nil, nil, 0, zap.NewNop(), false)
	svc := NewDashboardService(store, cache, zap.NewNop())
	svc.now = func() time.Time { return now }
	return svc
}

func TestDoctorDashboardWindows(t *testing.T) {
	// Tuesday 2026-08-25.
	now := time.Date(2026, 8, 25, 15, 30, 0, 0, time.UTC)
	store := &fakeDashboardStore{
		childrenByDoctor: 3,
		sessionCounts:    []int{2, 9},
		recent: []models.SessionActivity{
			{ChildName: "Mia", SessionDate: now, DurationMinutes: 45, ActivitiesPerformed: "floor play"},
		},
	}

	dashboard, err := newTestDashboardService(store, now).DoctorDashboard(context.Background(), "d1")
	require.NoError(t, err)

	assert.Equal(t, 3, dashboard.TotalChildren)
	assert.Equal(t, 2, dashboard.TodaysSessions)
	assert.Equal(t, 9, dashboard.WeeksSessions)

	require.Len(t, store.countWindows, 2)
	assert.Equal(t, time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC), store.countWindows[0][0])
	// The week starts on the preceding Monday.
	assert.Equal(t, time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), store.countWindows[1][0])

	require.Len(t, dashboard.RecentActivity, 1)
	assert.Equal(t, "Mia", dashboard.RecentActivity[0].ChildName)
	// Doctor feeds omit the activities text.
	assert.Empty(t, dashboard.RecentActivity[0].Activities)
}

func TestParentDashboard(t *testing.T) {
	now := time.Date(2026, 8, 25, 15, 30, 0, 0, time.UTC)
	longActivities := strings.Repeat("a", 150)
	store := &fakeDashboardStore{
		childrenByParent: 1,
		sessionCounts:    []int{7},
		recent: []models.SessionActivity{
			{ChildName: "Mia", SessionDate: now, DurationMinutes: 30, ActivitiesPerformed: longActivities},
		},
	}

	dashboard, err := newTestDashboardService(store, now).ParentDashboard(context.Background(), "p1")
	require.NoError(t, err)

	assert.Equal(t, 1, dashboard.TotalChildren)
	assert.Equal(t, 7, dashboard.MonthlySessions)

	require.Len(t, store.countWindows, 1)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), store.countWindows[0][0])

	// Activities preview is truncated to 100 characters.
	require.Len(t, dashboard.RecentActivity, 1)
	assert.Len(t, dashboard.RecentActivity[0].Activities, 100)
}

func TestStartOfWeekOnMonday(t *testing.T) {
	monday := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), startOfWeek(monday))

	sunday := time.Date(2026, 8, 23, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC), startOfWeek(sunday))
}
