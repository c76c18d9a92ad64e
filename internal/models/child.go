package models

import "time"

// ChildCodeStatusActive marks a redeemable child code.
const ChildCodeStatusActive = "active"

// Child is a child profile under a doctor's care.
type Child struct {
	ID               string    `db:"id" json:"id"`
	ChildCode        string    `db:"child_code" json:"child_code"`
	Name             string    `db:"name" json:"name"`
	Age              int       `db:"age" json:"age"`
	Gender           string    `db:"gender" json:"gender"`
	Diagnosis        string    `db:"diagnosis" json:"diagnosis"`
	AssignedDoctorID string    `db:"assigned_doctor_id" json:"assigned_doctor_id"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}

// ChildCode links a shareable code to a child for parent onboarding.
type ChildCode struct {
	ID        string    `db:"id" json:"id"`
	ChildID   string    `db:"child_id" json:"child_id"`
	Code      string    `db:"code" json:"code"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
