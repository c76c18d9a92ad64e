package dto

import (
	"time"

	"github.com/noah-isme/child-therapy-api/internal/models"
)

// SessionSummary is the per-session line item inside a weekly report.
type SessionSummary struct {
	Date       time.Time `json:"date"`
	Duration   int       `json:"duration"`
	Activities string    `json:"activities"`
	Notes      string    `json:"notes"`
}

// WeeklyReport aggregates the trailing 7-day window for one child.
type WeeklyReport struct {
	ChildID           string                            `json:"child_id"`
	ChildName         string                            `json:"child_name"`
	WeekStart         time.Time                         `json:"week_start"`
	WeekEnd           time.Time                         `json:"week_end"`
	TotalSessions     int                               `json:"total_sessions"`
	TotalDuration     int                               `json:"total_duration"`
	DomainAverages    map[models.DomainKey]float64      `json:"domain_averages"`
	SessionSummaries  []SessionSummary                  `json:"session_summaries"`
	ImprovementTrends map[models.DomainKey]models.Trend `json:"improvement_trends"`
}

// WeeklyTrend is one calendar-aligned sub-window of a monthly report. Weeks
// with no sessions are omitted from the report entirely.
type WeeklyTrend struct {
	WeekStart    time.Time                    `json:"week_start"`
	WeekEnd      time.Time                    `json:"week_end"`
	Sessions     int                          `json:"sessions"`
	DomainScores map[models.DomainKey]float64 `json:"domain_scores"`
}

// MonthlyReport aggregates a calendar month for one child.
type MonthlyReport struct {
	ChildID         string                       `json:"child_id"`
	ChildName       string                       `json:"child_name"`
	Month           int                          `json:"month"`
	Year            int                          `json:"year"`
	TotalSessions   int                          `json:"total_sessions"`
	TotalDuration   int                          `json:"total_duration"`
	DomainAverages  map[models.DomainKey]float64 `json:"domain_averages"`
	WeeklyTrends    []WeeklyTrend                `json:"weekly_trends"`
	Recommendations []string                     `json:"recommendations"`
	BehaviorAlerts  []string                     `json:"behavior_alerts"`
}
