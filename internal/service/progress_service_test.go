package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/child-therapy-api/internal/models"
	appErrors "github.com/noah-isme/child-therapy-api/pkg/errors"
	"github.com/noah-isme/child-therapy-api/pkg/export"
)

type fakeChildStore struct {
	children map[string]*models.Child
}

func (f *fakeChildStore) FindByID(_ context.Context, id string) (*models.Child, error) {
	child, ok := f.children[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return child, nil
}

type fakeSessionStore struct {
	sessions []models.TherapySession
}

func (f *fakeSessionStore) ListByChildWindow(_ context.Context, childID string, from, to time.Time) ([]models.TherapySession, error) {
	var out []models.TherapySession
	// Newest first, inclusive bounds, matching the repository contract.
	for i := len(f.sessions) - 1; i >= 0; i-- {
		s := f.sessions[i]
		if s.ChildID == childID && !s.SessionDate.Before(from) && !s.SessionDate.After(to) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSessionStore) ListByChildMonth(_ context.Context, childID string, from, to time.Time) ([]models.TherapySession, error) {
	var out []models.TherapySession
	for _, s := range f.sessions {
		if s.ChildID == childID && !s.SessionDate.Before(from) && s.SessionDate.Before(to) {
			out = append(out, s)
		}
	}
	return out, nil
}

func behaviorSession(childID string, ts time.Time, rating models.Rating) models.TherapySession {
	return models.TherapySession{
		ID:              childID + ts.Format("0102"),
		ChildID:         childID,
		SessionDate:     ts,
		DurationMinutes: 45,
		Domains: models.DomainAssessments{
			Behavior: &models.Behavior{
				Aggression: ratingPtr(rating),
				SelfInjury: ratingPtr(rating),
			},
		},
	}
}

func newTestProgressService(children *fakeChildStore, sessions *fakeSessionStore, now time.Time) *ProgressService {
	svc := NewProgressService(children, sessions, export.NewPDFExporter(), nil, zap.NewNop())
	svc.now = func() time.Time { return now }
	return svc
}

func TestBuildWeeklyReport(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	children := &fakeChildStore{children: map[string]*models.Child{
		"c1": {ID: "c1", Name: "Mia"},
	}}
	sessions := &fakeSessionStore{sessions: []models.TherapySession{
		behaviorSession("c1", now.AddDate(0, 0, -6), models.RatingGood),
		behaviorSession("c1", now.AddDate(0, 0, -3), models.RatingGood),
		behaviorSession("c1", now.AddDate(0, 0, -1), models.RatingGood),
		// Outside the trailing week, must not be counted.
		behaviorSession("c1", now.AddDate(0, 0, -10), models.RatingNoImprovement),
	}}

	report, err := newTestProgressService(children, sessions, now).BuildWeeklyReport(context.Background(), "c1")
	require.NoError(t, err)

	assert.Equal(t, "Mia", report.ChildName)
	assert.Equal(t, 3, report.TotalSessions)
	assert.Equal(t, 135, report.TotalDuration)
	require.Len(t, report.SessionSummaries, 3)
	// Summaries follow the store order, newest first.
	assert.Equal(t, now.AddDate(0, 0, -1), report.SessionSummaries[0].Date)

	assert.Equal(t, 100.0, report.DomainAverages[models.DomainBehavior])
	assert.Equal(t, models.TrendStable, report.ImprovementTrends[models.DomainBehavior])

	// Domains never assessed still appear, averaged at zero with no trend.
	assert.Equal(t, 0.0, report.DomainAverages[models.DomainSocialSkills])
	assert.Equal(t, models.TrendInsufficientData, report.ImprovementTrends[models.DomainSocialSkills])
}

func TestBuildWeeklyReportTrendUsesChronologicalOrder(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	children := &fakeChildStore{children: map[string]*models.Child{
		"c1": {ID: "c1", Name: "Mia"},
	}}
	// Scores go 33.3 then 100: improving, not declining.
	sessions := &fakeSessionStore{sessions: []models.TherapySession{
		behaviorSession("c1", now.AddDate(0, 0, -5), models.RatingNoImprovement),
		behaviorSession("c1", now.AddDate(0, 0, -1), models.RatingGood),
	}}

	report, err := newTestProgressService(children, sessions, now).BuildWeeklyReport(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, models.TrendImproving, report.ImprovementTrends[models.DomainBehavior])
}

func TestBuildWeeklyReportChildNotFound(t *testing.T) {
	svc := newTestProgressService(&fakeChildStore{}, &fakeSessionStore{}, time.Now())

	_, err := svc.BuildWeeklyReport(context.Background(), "missing")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestBuildMonthlyReport(t *testing.T) {
	now := time.Date(2026, 1, 31, 12, 0, 0, 0, time.UTC)
	children := &fakeChildStore{children: map[string]*models.Child{
		"c1": {ID: "c1", Name: "Mia"},
	}}
	sessions := &fakeSessionStore{sessions: []models.TherapySession{
		behaviorSession("c1", time.Date(2026, 1, 3, 9, 0, 0, 0, time.UTC), models.RatingNoImprovement),
		behaviorSession("c1", time.Date(2026, 1, 18, 9, 0, 0, 0, time.UTC), models.RatingGood),
	}}

	report, err := newTestProgressService(children, sessions, now).BuildMonthlyReport(context.Background(), "c1", 1, 2026)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Month)
	assert.Equal(t, 2026, report.Year)
	assert.Equal(t, 2, report.TotalSessions)
	assert.Equal(t, 90, report.TotalDuration)

	// Empty calendar weeks are dropped, leaving two trend rows.
	require.Len(t, report.WeeklyTrends, 2)
	assert.Equal(t, 1, report.WeeklyTrends[0].Sessions)
	assert.Equal(t, 33.3, report.WeeklyTrends[0].DomainScores[models.DomainBehavior])
	assert.Equal(t, 100.0, report.WeeklyTrends[1].DomainScores[models.DomainBehavior])

	// Whole-month behavior average: (33.3 + 100) / 2 = 66.7, silent band.
	assert.Equal(t, 66.7, report.DomainAverages[models.DomainBehavior])

	// Every unassessed domain averages zero and lands in the lowest bucket.
	require.Len(t, report.Recommendations, 7)
	assert.Equal(t, "Focus more on Communication Skills - current progress is below expectations", report.Recommendations[0])
	assert.Empty(t, report.BehaviorAlerts)
}

func TestBuildMonthlyReportBehaviorAlert(t *testing.T) {
	now := time.Date(2026, 1, 31, 12, 0, 0, 0, time.UTC)
	children := &fakeChildStore{children: map[string]*models.Child{
		"c1": {ID: "c1", Name: "Mia"},
	}}
	sessions := &fakeSessionStore{sessions: []models.TherapySession{
		behaviorSession("c1", time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC), models.RatingNoImprovement),
	}}

	report, err := newTestProgressService(children, sessions, now).BuildMonthlyReport(context.Background(), "c1", 1, 2026)
	require.NoError(t, err)
	require.Len(t, report.BehaviorAlerts, 1)
	assert.Equal(t, "Behavioral concerns detected - score: 33.3%", report.BehaviorAlerts[0])
}

func TestBuildMonthlyReportInvalidMonth(t *testing.T) {
	children := &fakeChildStore{children: map[string]*models.Child{
		"c1": {ID: "c1", Name: "Mia"},
	}}
	svc := newTestProgressService(children, &fakeSessionStore{}, time.Now())

	_, err := svc.BuildMonthlyReport(context.Background(), "c1", 13, 2026)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestBuildMonthlyReportDefaultsToCurrentMonth(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	children := &fakeChildStore{children: map[string]*models.Child{
		"c1": {ID: "c1", Name: "Mia"},
	}}
	svc := newTestProgressService(children, &fakeSessionStore{}, now)

	report, err := svc.BuildMonthlyReport(context.Background(), "c1", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Month)
	assert.Equal(t, 2026, report.Year)
	assert.Empty(t, report.WeeklyTrends)
	assert.NotNil(t, report.Recommendations)
	assert.NotNil(t, report.BehaviorAlerts)
}

func TestRenderMonthlyPDF(t *testing.T) {
	now := time.Date(2026, 1, 31, 12, 0, 0, 0, time.UTC)
	children := &fakeChildStore{children: map[string]*models.Child{
		"c1": {ID: "c1", Name: "Mia"},
	}}
	sessions := &fakeSessionStore{sessions: []models.TherapySession{
		behaviorSession("c1", time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC), models.RatingGood),
	}}
	svc := newTestProgressService(children, sessions, now)

	report, err := svc.BuildMonthlyReport(context.Background(), "c1", 1, 2026)
	require.NoError(t, err)

	pdf, err := svc.RenderMonthlyPDF(report)
	require.NoError(t, err)
	assert.True(t, len(pdf) > 0)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}
