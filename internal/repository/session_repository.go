package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/child-therapy-api/internal/models"
)

const sessionColumns = `id, child_id, doctor_id, session_date, duration_minutes, activities_performed, notes, domains, created_at`

// SessionRepository persists therapy session logs. Sessions are append-only;
// there are no update or delete statements.
type SessionRepository struct {
	db *sqlx.DB
}

// NewSessionRepository constructs a session repository.
func NewSessionRepository(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create inserts a session log.
func (r *SessionRepository) Create(ctx context.Context, session *models.TherapySession) error {
	const query = `
		INSERT INTO therapy_sessions (id, child_id, doctor_id, session_date,
		                              duration_minutes, activities_performed, notes, domains, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		session.ID, session.ChildID, session.DoctorID, session.SessionDate,
		session.DurationMinutes, session.ActivitiesPerformed, session.Notes, session.Domains,
	).Scan(&session.CreatedAt)
}

// FindByID loads one session.
func (r *SessionRepository) FindByID(ctx context.Context, id string) (*models.TherapySession, error) {
	query := `SELECT ` + sessionColumns + ` FROM therapy_sessions WHERE id = $1`

	session := &models.TherapySession{}
	if err := r.db.GetContext(ctx, session, query, id); err != nil {
		return nil, err
	}
	return session, nil
}

// ListByChild returns all of a child's sessions, newest first.
func (r *SessionRepository) ListByChild(ctx context.Context, childID string) ([]models.TherapySession, error) {
	query := `SELECT ` + sessionColumns + ` FROM therapy_sessions WHERE child_id = $1 ORDER BY session_date DESC`

	sessions := []models.TherapySession{}
	if err := r.db.SelectContext(ctx, &sessions, query, childID); err != nil {
		return nil, err
	}
	return sessions, nil
}

// ListByChildWindow returns sessions with session_date in [from, to],
// newest first.
func (r *SessionRepository) ListByChildWindow(ctx context.Context, childID string, from, to time.Time) ([]models.TherapySession, error) {
	query := `SELECT ` + sessionColumns + `
		FROM therapy_sessions
		WHERE child_id = $1 AND session_date >= $2 AND session_date <= $3
		ORDER BY session_date DESC`

	sessions := []models.TherapySession{}
	if err := r.db.SelectContext(ctx, &sessions, query, childID, from, to); err != nil {
		return nil, err
	}
	return sessions, nil
}

// ListByChildMonth returns sessions with session_date in [from, to),
// oldest first.
func (r *SessionRepository) ListByChildMonth(ctx context.Context, childID string, from, to time.Time) ([]models.TherapySession, error) {
	query := `SELECT ` + sessionColumns + `
		FROM therapy_sessions
		WHERE child_id = $1 AND session_date >= $2 AND session_date < $3
		ORDER BY session_date ASC`

	sessions := []models.TherapySession{}
	if err := r.db.SelectContext(ctx, &sessions, query, childID, from, to); err != nil {
		return nil, err
	}
	return sessions, nil
}

// CountSessionsByDoctor counts the doctor's sessions in [from, to].
func (r *SessionRepository) CountSessionsByDoctor(ctx context.Context, doctorID string, from, to time.Time) (int, error) {
	const query = `
		SELECT COUNT(*) FROM therapy_sessions
		WHERE doctor_id = $1 AND session_date >= $2 AND session_date <= $3`

	var count int
	if err := r.db.GetContext(ctx, &count, query, doctorID, from, to); err != nil {
		return 0, err
	}
	return count, nil
}

// CountSessionsByParent counts sessions for the parent's linked children in
// [from, to].
func (r *SessionRepository) CountSessionsByParent(ctx context.Context, parentID string, from, to time.Time) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM therapy_sessions ts
		JOIN parent_children pc ON pc.child_id = ts.child_id
		WHERE pc.parent_id = $1 AND ts.session_date >= $2 AND ts.session_date <= $3`

	var count int
	if err := r.db.GetContext(ctx, &count, query, parentID, from, to); err != nil {
		return 0, err
	}
	return count, nil
}

// RecentSessionsByDoctor returns the doctor's latest sessions with child names.
func (r *SessionRepository) RecentSessionsByDoctor(ctx context.Context, doctorID string, limit int) ([]models.SessionActivity, error) {
	const query = `
		SELECT c.name AS child_name, ts.session_date, ts.duration_minutes, ts.activities_performed
		FROM therapy_sessions ts
		JOIN children c ON c.id = ts.child_id
		WHERE ts.doctor_id = $1
		ORDER BY ts.session_date DESC
		LIMIT $2`

	rows := []models.SessionActivity{}
	if err := r.db.SelectContext(ctx, &rows, query, doctorID, limit); err != nil {
		return nil, err
	}
	return rows, nil
}

// RecentSessionsByParent returns the latest sessions across the parent's
// linked children.
func (r *SessionRepository) RecentSessionsByParent(ctx context.Context, parentID string, limit int) ([]models.SessionActivity, error) {
	const query = `
		SELECT c.name AS child_name, ts.session_date, ts.duration_minutes, ts.activities_performed
		FROM therapy_sessions ts
		JOIN children c ON c.id = ts.child_id
		JOIN parent_children pc ON pc.child_id = ts.child_id
		WHERE pc.parent_id = $1
		ORDER BY ts.session_date DESC
		LIMIT $2`

	rows := []models.SessionActivity{}
	if err := r.db.SelectContext(ctx, &rows, query, parentID, limit); err != nil {
		return nil, err
	}
	return rows, nil
}
