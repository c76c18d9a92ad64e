package dto

import (
	"time"

	"github.com/noah-isme/child-therapy-api/internal/models"
)

// CreateSessionRequest appends one therapy session to a child's history.
type CreateSessionRequest struct {
	ChildID             string                   `json:"child_id" validate:"required"`
	SessionDate         time.Time                `json:"session_date" validate:"required"`
	DurationMinutes     int                      `json:"duration_minutes" validate:"required,gt=0"`
	ActivitiesPerformed string                   `json:"activities_performed" validate:"required"`
	Notes               string                   `json:"notes" validate:"required"`
	Domains             models.DomainAssessments `json:"domains"`
}

// CreateSessionResponse returns the stored log identifier.
type CreateSessionResponse struct {
	LogID string `json:"log_id"`
}

// SessionResponse is the list view of a logged session.
type SessionResponse struct {
	ID                  string                   `json:"id"`
	SessionDate         time.Time                `json:"session_date"`
	DurationMinutes     int                      `json:"duration_minutes"`
	ActivitiesPerformed string                   `json:"activities_performed"`
	Notes               string                   `json:"notes"`
	Domains             models.DomainAssessments `json:"domains"`
	CreatedAt           time.Time                `json:"created_at"`
}

// SessionDetail is the single-session view with flat per-domain percentages
// (good=100, average=60, no_improvement=20 mean, distinct from report scores).
type SessionDetail struct {
	SessionResponse
	DomainScores map[string]int `json:"domain_scores,omitempty"`
}
