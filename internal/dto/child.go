package dto

import "time"

// CreateChildRequest creates a child profile, optionally provisioning the
// parent account in the same call.
type CreateChildRequest struct {
	Name        string  `json:"name" validate:"required"`
	Age         int     `json:"age" validate:"required,gt=0"`
	Gender      string  `json:"gender" validate:"required"`
	Diagnosis   string  `json:"diagnosis" validate:"required"`
	ParentEmail *string `json:"parent_email,omitempty" validate:"omitempty,email"`
	ParentPhone *string `json:"parent_phone,omitempty"`
	ParentName  *string `json:"parent_name,omitempty"`
}

// CreateChildResponse reports the generated identifiers and whether a parent
// account was auto-created and notified.
type CreateChildResponse struct {
	ChildID       string `json:"child_id"`
	ChildCode     string `json:"child_code"`
	ParentCreated bool   `json:"parent_created"`
	EmailSent     bool   `json:"email_sent"`
}

// ChildResponse is the public view of a child profile.
type ChildResponse struct {
	ID        string    `json:"id"`
	ChildCode string    `json:"child_code"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Gender    string    `json:"gender"`
	Diagnosis string    `json:"diagnosis"`
	CreatedAt time.Time `json:"created_at"`
}

// LinkChildRequest attaches an existing child to the calling parent by code.
type LinkChildRequest struct {
	ChildCode string `json:"child_code" validate:"required"`
}

// LinkChildResponse confirms the linkage.
type LinkChildResponse struct {
	ChildID       string `json:"child_id"`
	ChildName     string `json:"child_name"`
	AlreadyLinked bool   `json:"already_linked"`
}

// VerifyCodeRequest checks a child code before parent registration.
type VerifyCodeRequest struct {
	Code string `json:"code" validate:"required"`
}

// VerifyCodeResponse reports the code's validity.
type VerifyCodeResponse struct {
	Valid     bool   `json:"valid"`
	ChildName string `json:"child_name"`
}
