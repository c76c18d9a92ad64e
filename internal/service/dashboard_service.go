package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/child-therapy-api/internal/dto"
	"github.com/noah-isme/child-therapy-api/internal/models"
	appErrors "github.com/noah-isme/child-therapy-api/pkg/errors"
)

const (
	recentActivityLimit  = 5
	activitiesPreviewLen = 100
)

type dashboardStore interface {
	CountChildrenByDoctor(ctx context.Context, doctorID string) (int, error)
	CountSessionsByDoctor(ctx context.Context, doctorID string, from, to time.Time) (int, error)
	RecentSessionsByDoctor(ctx context.Context, doctorID string, limit int) ([]models.SessionActivity, error)

	CountChildrenByParent(ctx context.Context, parentID string) (int, error)
	CountSessionsByParent(ctx context.Context, parentID string, from, to time.Time) (int, error)
	RecentSessionsByParent(ctx context.Context, parentID string, limit int) ([]models.SessionActivity, error)
}

// DashboardService aggregates caseload statistics. Unlike reports, dashboard
// payloads are cheap to stale-serve and are cached in Redis.
type DashboardService struct {
	store  dashboardStore
	cache  *CacheService
	logger *zap.Logger
	now    func() time.Time
}

// NewDashboardService constructs a dashboard service.
func NewDashboardService(store dashboardStore, cache *CacheService, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		store:  store,
		cache:  cache,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// DoctorDashboard returns the clinician's caseload summary.
func (s *DashboardService) DoctorDashboard(ctx context.Context, doctorID string) (*dto.DoctorDashboard, error) {
	key := fmt.Sprintf("dashboard:doctor:%s", doctorID)
	cached := &dto.DoctorDashboard{}
	if hit, _ := s.cache.Get(ctx, key, cached); hit {
		return cached, nil
	}

	now := s.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekStart := startOfWeek(now)

	totalChildren, err := s.store.CountChildrenByDoctor(ctx, doctorID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count children")
	}
	today, err := s.store.CountSessionsByDoctor(ctx, doctorID, midnight, now)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count sessions")
	}
	week, err := s.store.CountSessionsByDoctor(ctx, doctorID, weekStart, now)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count sessions")
	}
	recent, err := s.store.RecentSessionsByDoctor(ctx, doctorID, recentActivityLimit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load recent sessions")
	}

	dashboard := &dto.DoctorDashboard{
		TotalChildren:  totalChildren,
		TodaysSessions: today,
		WeeksSessions:  week,
		RecentActivity: recentActivity(recent, false),
	}

	_ = s.cache.Set(ctx, key, dashboard, 0)
	return dashboard, nil
}

// ParentDashboard returns the guardian's summary for linked children.
func (s *DashboardService) ParentDashboard(ctx context.Context, parentID string) (*dto.ParentDashboard, error) {
	key := fmt.Sprintf("dashboard:parent:%s", parentID)
	cached := &dto.ParentDashboard{}
	if hit, _ := s.cache.Get(ctx, key, cached); hit {
		return cached, nil
	}

	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	totalChildren, err := s.store.CountChildrenByParent(ctx, parentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count children")
	}
	monthly, err := s.store.CountSessionsByParent(ctx, parentID, monthStart, now)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count sessions")
	}
	recent, err := s.store.RecentSessionsByParent(ctx, parentID, recentActivityLimit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load recent sessions")
	}

	dashboard := &dto.ParentDashboard{
		TotalChildren:   totalChildren,
		MonthlySessions: monthly,
		RecentActivity:  recentActivity(recent, true),
	}

	_ = s.cache.Set(ctx, key, dashboard, 0)
	return dashboard, nil
}

// InvalidateForChild clears cached dashboards after a session write.
func (s *DashboardService) InvalidateForChild(ctx context.Context, doctorID string) {
	if err := s.cache.Invalidate(ctx, fmt.Sprintf("dashboard:doctor:%s", doctorID)); err != nil {
		s.logger.Warn("dashboard invalidation failed", zap.Error(err))
	}
	if err := s.cache.Invalidate(ctx, "dashboard:parent:*"); err != nil {
		s.logger.Warn("dashboard invalidation failed", zap.Error(err))
	}
}

// startOfWeek returns the Monday midnight on or before t.
func startOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	day := t.AddDate(0, 0, -offset)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
}

func recentActivity(rows []models.SessionActivity, includeActivities bool) []dto.RecentActivity {
	out := make([]dto.RecentActivity, 0, len(rows))
	for _, row := range rows {
		item := dto.RecentActivity{
			ChildName: row.ChildName,
			Date:      row.SessionDate,
			Duration:  row.DurationMinutes,
		}
		if includeActivities {
			item.Activities = truncate(row.ActivitiesPerformed, activitiesPreviewLen)
		}
		out = append(out, item)
	}
	return out
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
