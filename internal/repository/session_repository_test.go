package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/child-therapy-api/internal/models"
)

func sessionRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "child_id", "doctor_id", "session_date",
		"duration_minutes", "activities_performed", "notes", "domains", "created_at"})
}

func TestCreateSession(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewSessionRepository(db)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO therapy_sessions").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

	session := &models.TherapySession{
		ID:                  "s1",
		ChildID:             "c1",
		DoctorID:            "d1",
		SessionDate:         now,
		DurationMinutes:     45,
		ActivitiesPerformed: "floor play",
		Notes:               "calm",
	}
	err := repo.Create(context.Background(), session)
	require.NoError(t, err)
	assert.Equal(t, now, session.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindSessionScansDomains(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewSessionRepository(db)

	now := time.Now()
	domains := []byte(`{"behavior":{"aggression":"good","self_injury":"average"}}`)
	rows := sessionRows().AddRow("s1", "c1", "d1", now, 45, "floor play", "calm", domains, now)
	mock.ExpectQuery("FROM therapy_sessions WHERE id").
		WithArgs("s1").
		WillReturnRows(rows)

	session, err := repo.FindByID(context.Background(), "s1")
	require.NoError(t, err)
	require.NotNil(t, session.Domains.Behavior)
	assert.Equal(t, models.RatingGood, *session.Domains.Behavior.Aggression)
	assert.Equal(t, models.RatingAverage, *session.Domains.Behavior.SelfInjury)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByChildWindow(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewSessionRepository(db)

	to := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	from := to.AddDate(0, 0, -7)
	rows := sessionRows().
		AddRow("s2", "c1", "d1", to.AddDate(0, 0, -1), 30, "puzzle", "", []byte(`{}`), to).
		AddRow("s1", "c1", "d1", to.AddDate(0, 0, -3), 45, "blocks", "", []byte(`{}`), to)
	mock.ExpectQuery("session_date >= \\$2 AND session_date <= \\$3").
		WithArgs("c1", from, to).
		WillReturnRows(rows)

	sessions, err := repo.ListByChildWindow(context.Background(), "c1", from, to)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	// Newest first.
	assert.True(t, sessions[0].SessionDate.After(sessions[1].SessionDate))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByChildMonth(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewSessionRepository(db)

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	rows := sessionRows().
		AddRow("s1", "c1", "d1", from.AddDate(0, 0, 2), 45, "blocks", "", []byte(`{}`), from)
	mock.ExpectQuery("session_date >= \\$2 AND session_date < \\$3").
		WithArgs("c1", from, to).
		WillReturnRows(rows)

	sessions, err := repo.ListByChildMonth(context.Background(), "c1", from, to)
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountSessionsByDoctor(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewSessionRepository(db)

	from := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	to := from.Add(12 * time.Hour)
	mock.ExpectQuery("SELECT COUNT").
		WithArgs("d1", from, to).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountSessionsByDoctor(context.Background(), "d1", from, to)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecentSessionsByParent(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewSessionRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"child_name", "session_date", "duration_minutes", "activities_performed"}).
		AddRow("Mia", now, 45, "floor play")
	mock.ExpectQuery("JOIN parent_children").
		WithArgs("p1", 5).
		WillReturnRows(rows)

	activity, err := repo.RecentSessionsByParent(context.Background(), "p1", 5)
	require.NoError(t, err)
	require.Len(t, activity, 1)
	assert.Equal(t, "Mia", activity[0].ChildName)
	assert.NoError(t, mock.ExpectationsWereMet())
}
