package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/child-therapy-api/internal/dto"
	"github.com/noah-isme/child-therapy-api/internal/models"
	appErrors "github.com/noah-isme/child-therapy-api/pkg/errors"
	"github.com/noah-isme/child-therapy-api/pkg/export"
)

type reportChildStore interface {
	FindByID(ctx context.Context, id string) (*models.Child, error)
}

type reportSessionStore interface {
	// ListByChildWindow returns sessions with session_date in [from, to],
	// newest first, matching the order the weekly view delivers.
	ListByChildWindow(ctx context.Context, childID string, from, to time.Time) ([]models.TherapySession, error)
	// ListByChildMonth returns sessions with session_date in [from, to),
	// oldest first.
	ListByChildMonth(ctx context.Context, childID string, from, to time.Time) ([]models.TherapySession, error)
}

// ProgressService builds weekly and monthly progress reports. Every request
// recomputes from raw session records: the engine is pure and keeps no cache,
// so two calls with no intervening writes produce identical output.
type ProgressService struct {
	children reportChildStore
	sessions reportSessionStore
	exporter *export.PDFExporter
	metrics  *MetricsService
	logger   *zap.Logger
	now      func() time.Time
}

// NewProgressService constructs the report engine.
func NewProgressService(children reportChildStore, sessions reportSessionStore, exporter *export.PDFExporter, metrics *MetricsService, logger *zap.Logger) *ProgressService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProgressService{
		children: children,
		sessions: sessions,
		exporter: exporter,
		metrics:  metrics,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// BuildWeeklyReport aggregates the trailing 7-day window for the child.
func (s *ProgressService) BuildWeeklyReport(ctx context.Context, childID string) (*dto.WeeklyReport, error) {
	child, err := s.findChild(ctx, childID)
	if err != nil {
		return nil, err
	}

	weekStart, weekEnd := TrailingWeek(s.now())

	started := time.Now()
	logs, err := s.sessions.ListByChildWindow(ctx, childID, weekStart, weekEnd)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load sessions")
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("sessions_weekly_window", time.Since(started))
	}

	report := &dto.WeeklyReport{
		ChildID:           child.ID,
		ChildName:         child.Name,
		WeekStart:         weekStart,
		WeekEnd:           weekEnd,
		TotalSessions:     len(logs),
		SessionSummaries:  make([]dto.SessionSummary, 0, len(logs)),
		DomainAverages:    make(map[models.DomainKey]float64, len(models.OrderedDomains)),
		ImprovementTrends: make(map[models.DomainKey]models.Trend, len(models.OrderedDomains)),
	}

	for _, log := range logs {
		report.TotalDuration += log.DurationMinutes
		report.SessionSummaries = append(report.SessionSummaries, dto.SessionSummary{
			Date:       log.SessionDate,
			Duration:   log.DurationMinutes,
			Activities: log.ActivitiesPerformed,
			Notes:      log.Notes,
		})
	}

	for _, domain := range models.OrderedDomains {
		// Logs arrive newest first; trend detection needs chronological
		// order, so scores are collected walking the slice backwards.
		scores := make([]float64, 0, len(logs))
		for i := len(logs) - 1; i >= 0; i-- {
			if assessment := logs[i].Domains.Get(domain); assessment != nil {
				if sc := CalculateDomainScore(assessment); sc.Total > 0 {
					scores = append(scores, sc.Score)
				}
			}
		}
		report.DomainAverages[domain] = AverageScores(scores)
		report.ImprovementTrends[domain] = ClassifyTrend(scores)
	}

	if s.metrics != nil {
		s.metrics.ObserveReportBuild("weekly", time.Since(started))
	}
	return report, nil
}

// BuildMonthlyReport aggregates a calendar month, defaulting to the current
// month and year when the arguments are zero.
func (s *ProgressService) BuildMonthlyReport(ctx context.Context, childID string, month, year int) (*dto.MonthlyReport, error) {
	child, err := s.findChild(ctx, childID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	if month < 1 || month > 12 {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("invalid month %d", month))
	}

	monthStart, monthEnd := MonthBounds(year, time.Month(month))

	started := time.Now()
	logs, err := s.sessions.ListByChildMonth(ctx, childID, monthStart, monthEnd)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load sessions")
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("sessions_monthly_range", time.Since(started))
	}

	report := &dto.MonthlyReport{
		ChildID:         child.ID,
		ChildName:       child.Name,
		Month:           month,
		Year:            year,
		TotalSessions:   len(logs),
		DomainAverages:  make(map[models.DomainKey]float64, len(models.OrderedDomains)),
		WeeklyTrends:    make([]dto.WeeklyTrend, 0, 5),
		Recommendations: []string{},
		BehaviorAlerts:  []string{},
	}

	for _, log := range logs {
		report.TotalDuration += log.DurationMinutes
	}

	for _, window := range PartitionMonth(monthStart, monthEnd, logs) {
		trend := dto.WeeklyTrend{
			WeekStart:    window.Start,
			WeekEnd:      window.End,
			Sessions:     len(window.Sessions),
			DomainScores: make(map[models.DomainKey]float64, len(models.OrderedDomains)),
		}
		for _, domain := range models.OrderedDomains {
			trend.DomainScores[domain] = averageForDomain(window.Sessions, domain)
		}
		report.WeeklyTrends = append(report.WeeklyTrends, trend)
	}

	for _, domain := range models.OrderedDomains {
		avg := averageForDomain(logs, domain)
		report.DomainAverages[domain] = avg

		rec := RecommendForDomain(domain, avg)
		if rec.Message != "" {
			report.Recommendations = append(report.Recommendations, rec.Message)
		}
		if rec.Alert != "" {
			report.BehaviorAlerts = append(report.BehaviorAlerts, rec.Alert)
		}
	}

	if s.metrics != nil {
		s.metrics.ObserveReportBuild("monthly", time.Since(started))
	}
	return report, nil
}

// RenderMonthlyPDF turns a monthly report into a downloadable PDF document.
func (s *ProgressService) RenderMonthlyPDF(report *dto.MonthlyReport) ([]byte, error) {
	if s.exporter == nil {
		return nil, appErrors.Clone(appErrors.ErrInternal, "pdf exporter not configured")
	}

	averages := export.Dataset{Headers: []string{"Domain", "Average Score"}}
	for _, domain := range models.OrderedDomains {
		averages.Rows = append(averages.Rows, map[string]string{
			"Domain":        humanizeDomain(domain),
			"Average Score": fmt.Sprintf("%.1f", report.DomainAverages[domain]),
		})
	}

	weeks := export.Dataset{Headers: []string{"Week Start", "Week End", "Sessions"}}
	for _, week := range report.WeeklyTrends {
		weeks.Rows = append(weeks.Rows, map[string]string{
			"Week Start": week.WeekStart.Format("2006-01-02"),
			"Week End":   week.WeekEnd.Format("2006-01-02"),
			"Sessions":   fmt.Sprintf("%d", week.Sessions),
		})
	}

	guidance := export.Dataset{Headers: []string{"Recommendation"}}
	for _, rec := range report.Recommendations {
		guidance.Rows = append(guidance.Rows, map[string]string{"Recommendation": rec})
	}
	for _, alert := range report.BehaviorAlerts {
		guidance.Rows = append(guidance.Rows, map[string]string{"Recommendation": alert})
	}

	title := fmt.Sprintf("Monthly Progress Report - %s (%d/%d)", report.ChildName, report.Month, report.Year)
	return s.exporter.Render(title,
		export.Section{Title: "Domain Averages", Data: averages},
		export.Section{Title: "Weekly Activity", Data: weeks},
		export.Section{Title: "Recommendations", Data: guidance},
	)
}

func (s *ProgressService) findChild(ctx context.Context, childID string) (*models.Child, error) {
	child, err := s.children.FindByID(ctx, childID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "child not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load child")
	}
	return child, nil
}

// averageForDomain averages the weighted score of every session that
// assessed the domain; sessions that skipped it are excluded, not zeroed.
func averageForDomain(sessions []models.TherapySession, domain models.DomainKey) float64 {
	scores := make([]float64, 0, len(sessions))
	for _, session := range sessions {
		if assessment := session.Domains.Get(domain); assessment != nil {
			if sc := CalculateDomainScore(assessment); sc.Total > 0 {
				scores = append(scores, sc.Score)
			}
		}
	}
	return AverageScores(scores)
}
