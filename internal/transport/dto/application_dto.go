package dto

import (
	"jobboard-api/internal/models"

	"github.com/google/uuid"
)

// ApplyRequest defines the structure for a user applying to a job. The
// snapshot fields are taken from the request body, not re-derived from the
// live profile, so later profile edits do not retroactively change what
// the recruiter saw.
type ApplyRequest struct {
	JobID       uuid.UUID `json:"job_id" validate:"required"`
	ResumeURL   string    `json:"resume_url" validate:"required,max=500"`
	CoverLetter *string   `json:"cover_letter" validate:"omitempty,max=5000"`

	Degree          *string `json:"degree" validate:"omitempty,max=100"`
	Specialization  *string `json:"specialization" validate:"omitempty,max=100"`
	University      *string `json:"university" validate:"omitempty,max=200"`
	ExperienceYears *int    `json:"experience_years" validate:"omitempty,gte=0"`
	CurrentCompany  *string `json:"current_company" validate:"omitempty,max=200"`

	UserID uuid.UUID `json:"-"` // set from auth context
}

// GetApplicationByIDRequest reads one application. Visibility: any admin,
// or the user owning the application; everyone else is forbidden.
type GetApplicationByIDRequest struct {
	ID            uuid.UUID   `json:"-" validate:"required"`
	RequesterID   uuid.UUID   `json:"-"`
	RequesterRole models.Role `json:"-"`
}

// ListMyApplicationsRequest lists the calling user's own applications.
type ListMyApplicationsRequest struct {
	UserID uuid.UUID `json:"-" validate:"required"`
}

// ListJobApplicationsRequest lists all applications for one job (admin).
type ListJobApplicationsRequest struct {
	JobID uuid.UUID `json:"-" validate:"required"`
}

// UpdateApplicationStatusRequest moves an application to any of the five
// status values. Any status can follow any other.
type UpdateApplicationStatusRequest struct {
	ID     uuid.UUID                `json:"-" validate:"required"`
	Status models.ApplicationStatus `json:"status" validate:"required"`
}

// ApplicationDetailResponse is an application with both sides expanded.
// The user side never carries credential fields.
type ApplicationDetailResponse struct {
	models.Application
	Job  *models.Job  `json:"job,omitempty"`
	User *models.User `json:"user,omitempty"`
}
