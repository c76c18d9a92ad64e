package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/child-therapy-api/internal/models"
)

// UserRepository persists doctor and parent accounts.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository constructs a user repository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByEmailAndRole loads the account registered under email for the role.
func (r *UserRepository) FindByEmailAndRole(ctx context.Context, email string, role models.UserRole) (*models.User, error) {
	const query = `
		SELECT id, email, password_hash, full_name, role, phone, specialization,
		       created_by_system, active, created_at, updated_at
		FROM users
		WHERE email = $1 AND role = $2`

	user := &models.User{}
	if err := r.db.GetContext(ctx, user, query, email, role); err != nil {
		return nil, err
	}
	return user, nil
}

// FindByID loads an account by primary key.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	const query = `
		SELECT id, email, password_hash, full_name, role, phone, specialization,
		       created_by_system, active, created_at, updated_at
		FROM users
		WHERE id = $1`

	user := &models.User{}
	if err := r.db.GetContext(ctx, user, query, id); err != nil {
		return nil, err
	}
	return user, nil
}

// EmailExists reports whether the email is already registered for the role.
func (r *UserRepository) EmailExists(ctx context.Context, email string, role models.UserRole) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 AND role = $2)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, email, role); err != nil {
		return false, err
	}
	return exists, nil
}

// Create inserts a new account.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	const query = `
		INSERT INTO users (id, email, password_hash, full_name, role, phone,
		                   specialization, created_by_system, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.FullName, user.Role,
		user.Phone, user.Specialization, user.CreatedBySystem, user.Active,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
}
