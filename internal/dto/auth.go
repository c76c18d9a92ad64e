package dto

// LoginRequest authenticates either a doctor or a parent account.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	UserType string `json:"user_type" validate:"required,oneof=doctor parent"`
}

// LoginResponse mirrors the token payload issued on login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserType    string `json:"user_type"`
	UserID      string `json:"user_id"`
	UserName    string `json:"user_name"`
}

// RegisterDoctorRequest creates a clinician account.
type RegisterDoctorRequest struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	Specialization string `json:"specialization" validate:"required"`
}

// RegisterParentRequest creates a guardian account, optionally linking a
// child by code during signup.
type RegisterParentRequest struct {
	Name      string  `json:"name" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	Phone     *string `json:"phone,omitempty"`
	Password  string  `json:"password" validate:"required,min=8"`
	ChildCode *string `json:"child_code,omitempty"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          *string `json:"phone,omitempty"`
	Specialization *string `json:"specialization,omitempty"`
	Role           string  `json:"role"`
}
