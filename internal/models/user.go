package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UserRole distinguishes clinicians from guardians.
type UserRole string

const (
	RoleDoctor UserRole = "DOCTOR"
	RoleParent UserRole = "PARENT"
)

// User is a doctor or parent account stored in the users table.
type User struct {
	ID              string    `db:"id" json:"id"`
	Email           string    `db:"email" json:"email"`
	PasswordHash    string    `db:"password_hash" json:"-"`
	FullName        string    `db:"full_name" json:"full_name"`
	Role            UserRole  `db:"role" json:"role"`
	Phone           *string   `db:"phone" json:"phone,omitempty"`
	Specialization  *string   `db:"specialization" json:"specialization,omitempty"`
	CreatedBySystem bool      `db:"created_by_system" json:"created_by_system"`
	Active          bool      `db:"active" json:"active"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// JWTClaims carries the identity embedded in access tokens.
type JWTClaims struct {
	UserID   string   `json:"user_id"`
	Role     UserRole `json:"role"`
	Email    string   `json:"email"`
	FullName string   `json:"full_name"`
	jwt.RegisteredClaims
}

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}
