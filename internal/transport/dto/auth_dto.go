package dto

import (
	"jobboard-api/internal/models"

	"github.com/google/uuid"
)

// SignupUserRequest defines the structure for registering a job seeker.
type SignupUserRequest struct {
	FirstName    string  `json:"first_name" validate:"required,max=100"`
	LastName     string  `json:"last_name" validate:"required,max=100"`
	Email        string  `json:"email" validate:"required,email"`
	Phone        string  `json:"phone" validate:"required,max=30"`
	Password     string  `json:"password" validate:"required,min=6"`
	LocationCity *string `json:"location_city" validate:"omitempty,max=100"`
}

// SignupAdminRequest defines the structure for registering a recruiter.
type SignupAdminRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest is shared by the user and admin login endpoints.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GetUserByIDRequest defines the structure for reading a user by id.
type GetUserByIDRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// UpdateProfileRequest carries the allow-listed mutable profile fields.
// Anything outside this list in the request body is ignored, not rejected.
type UpdateProfileRequest struct {
	ID              uuid.UUID   `json:"-"` // set from auth context
	FirstName       *string     `json:"first_name" validate:"omitempty,max=100"`
	LastName        *string     `json:"last_name" validate:"omitempty,max=100"`
	Phone           *string     `json:"phone" validate:"omitempty,max=30"`
	LocationCity    *string     `json:"location_city" validate:"omitempty,max=100"`
	LocationState   *string     `json:"location_state" validate:"omitempty,max=100"`
	Country         *string     `json:"country" validate:"omitempty,max=100"`
	Degree          *string     `json:"degree" validate:"omitempty,max=100"`
	Specialization  *string     `json:"specialization" validate:"omitempty,max=100"`
	University      *string     `json:"university" validate:"omitempty,max=200"`
	GraduationYear  *int        `json:"graduation_year" validate:"omitempty,gte=1950,lte=2100"`
	ExperienceYears *int        `json:"experience_years" validate:"omitempty,gte=0"`
	CurrentCompany  *string     `json:"current_company" validate:"omitempty,max=200"`
	CurrentSalary   *float64    `json:"current_salary" validate:"omitempty,gte=0"`
	ExpectedSalary  *float64    `json:"expected_salary" validate:"omitempty,gte=0"`
	ResumeURL       *string     `json:"resume_url" validate:"omitempty,max=500"`
	LinkedinURL     *string     `json:"linkedin_url" validate:"omitempty,max=500"`
	Skills          []uuid.UUID `json:"skills" validate:"omitempty"`
	Password        *string     `json:"password" validate:"omitempty,min=6"` // re-hashed only if present
}

// AuthResponse is returned by signup and login for both principal kinds.
type AuthResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Token string    `json:"token"`
}

// ProfileUpdateResponse returns the refreshed profile together with a new
// token; clients replace their stored token after every profile edit.
type ProfileUpdateResponse struct {
	models.User
	Token string `json:"token"`
}
