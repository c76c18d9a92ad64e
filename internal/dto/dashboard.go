package dto

import "time"

// RecentActivity is one recent-session line on a dashboard.
type RecentActivity struct {
	ChildName  string    `json:"child_name"`
	Date       time.Time `json:"date"`
	Duration   int       `json:"duration"`
	Activities string    `json:"activities,omitempty"`
}

// DoctorDashboard summarises a clinician's caseload.
type DoctorDashboard struct {
	TotalChildren  int              `json:"total_children"`
	TodaysSessions int              `json:"todays_sessions"`
	WeeksSessions  int              `json:"weeks_sessions"`
	RecentActivity []RecentActivity `json:"recent_activity"`
}

// ParentDashboard summarises a guardian's linked children.
type ParentDashboard struct {
	TotalChildren   int              `json:"total_children"`
	MonthlySessions int              `json:"monthly_sessions"`
	RecentActivity  []RecentActivity `json:"recent_activity"`
}
