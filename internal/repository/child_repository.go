package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/child-therapy-api/internal/models"
)

const childColumns = `id, child_code, name, age, gender, diagnosis, assigned_doctor_id, created_at`

// ChildRepository persists child profiles, child codes and parent links.
type ChildRepository struct {
	db *sqlx.DB
}

// NewChildRepository constructs a child repository.
func NewChildRepository(db *sqlx.DB) *ChildRepository {
	return &ChildRepository{db: db}
}

// Create inserts the child and its redeemable code in one transaction.
func (r *ChildRepository) Create(ctx context.Context, child *models.Child, code *models.ChildCode) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	const childQuery = `
		INSERT INTO children (id, child_code, name, age, gender, diagnosis, assigned_doctor_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING created_at`
	if err := tx.QueryRowxContext(ctx, childQuery,
		child.ID, child.ChildCode, child.Name, child.Age, child.Gender,
		child.Diagnosis, child.AssignedDoctorID,
	).Scan(&child.CreatedAt); err != nil {
		return fmt.Errorf("insert child: %w", err)
	}

	const codeQuery = `
		INSERT INTO child_codes (id, child_id, code, status, created_at)
		VALUES ($1, $2, $3, $4, NOW())`
	if _, err := tx.ExecContext(ctx, codeQuery, code.ID, code.ChildID, code.Code, code.Status); err != nil {
		return fmt.Errorf("insert child code: %w", err)
	}

	return tx.Commit()
}

// FindByID loads a child by primary key.
func (r *ChildRepository) FindByID(ctx context.Context, id string) (*models.Child, error) {
	query := `SELECT ` + childColumns + ` FROM children WHERE id = $1`

	child := &models.Child{}
	if err := r.db.GetContext(ctx, child, query, id); err != nil {
		return nil, err
	}
	return child, nil
}

// FindByActiveCode resolves a redeemable child code to its child.
func (r *ChildRepository) FindByActiveCode(ctx context.Context, code string) (*models.Child, error) {
	const query = `
		SELECT c.id, c.child_code, c.name, c.age, c.gender, c.diagnosis, c.assigned_doctor_id, c.created_at
		FROM children c
		JOIN child_codes cc ON cc.child_id = c.id
		WHERE cc.code = $1 AND cc.status = $2`

	child := &models.Child{}
	if err := r.db.GetContext(ctx, child, query, code, models.ChildCodeStatusActive); err != nil {
		return nil, err
	}
	return child, nil
}

// CodeExists reports whether the code was ever issued.
func (r *ChildRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM child_codes WHERE code = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, code); err != nil {
		return false, err
	}
	return exists, nil
}

// ListByDoctor returns the children assigned to the doctor, newest first.
func (r *ChildRepository) ListByDoctor(ctx context.Context, doctorID string) ([]models.Child, error) {
	query := `SELECT ` + childColumns + ` FROM children WHERE assigned_doctor_id = $1 ORDER BY created_at DESC`

	children := []models.Child{}
	if err := r.db.SelectContext(ctx, &children, query, doctorID); err != nil {
		return nil, err
	}
	return children, nil
}

// ListByParent returns the children linked to the parent, newest first.
func (r *ChildRepository) ListByParent(ctx context.Context, parentID string) ([]models.Child, error) {
	const query = `
		SELECT c.id, c.child_code, c.name, c.age, c.gender, c.diagnosis, c.assigned_doctor_id, c.created_at
		FROM children c
		JOIN parent_children pc ON pc.child_id = c.id
		WHERE pc.parent_id = $1
		ORDER BY c.created_at DESC`

	children := []models.Child{}
	if err := r.db.SelectContext(ctx, &children, query, parentID); err != nil {
		return nil, err
	}
	return children, nil
}

// LinkParent records the parent-child relationship. Re-linking is a no-op.
func (r *ChildRepository) LinkParent(ctx context.Context, parentID, childID string) error {
	const query = `
		INSERT INTO parent_children (parent_id, child_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (parent_id, child_id) DO NOTHING`

	_, err := r.db.ExecContext(ctx, query, parentID, childID)
	return err
}

// IsLinked reports whether the parent is linked to the child.
func (r *ChildRepository) IsLinked(ctx context.Context, parentID, childID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM parent_children WHERE parent_id = $1 AND child_id = $2)`

	var linked bool
	if err := r.db.GetContext(ctx, &linked, query, parentID, childID); err != nil {
		return false, err
	}
	return linked, nil
}

// CountChildrenByDoctor counts the doctor's caseload.
func (r *ChildRepository) CountChildrenByDoctor(ctx context.Context, doctorID string) (int, error) {
	const query = `SELECT COUNT(*) FROM children WHERE assigned_doctor_id = $1`

	var count int
	if err := r.db.GetContext(ctx, &count, query, doctorID); err != nil {
		return 0, err
	}
	return count, nil
}

// CountChildrenByParent counts the parent's linked children.
func (r *ChildRepository) CountChildrenByParent(ctx context.Context, parentID string) (int, error) {
	const query = `SELECT COUNT(*) FROM parent_children WHERE parent_id = $1`

	var count int
	if err := r.db.GetContext(ctx, &count, query, parentID); err != nil {
		return 0, err
	}
	return count, nil
}
