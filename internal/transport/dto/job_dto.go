package dto

import (
	"encoding/json"
	"time"

	"jobboard-api/internal/models"

	"github.com/google/uuid"
)

// StringList accepts either a JSON array of strings or a single free-text
// string. Both shapes go through the same newline normalization in the
// service layer, so the stored list is identical regardless of input shape.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (s *StringList) UnmarshalJSON(data []byte) error {
	var asList []string
	if err := json.Unmarshal(data, &asList); err == nil {
		*s = asList
		return nil
	}
	var asText string
	if err := json.Unmarshal(data, &asText); err != nil {
		return err
	}
	*s = []string{asText}
	return nil
}

// CreateJobRequest defines the structure for creating a job posting.
type CreateJobRequest struct {
	JobID               string            `json:"job_id" validate:"required,max=50"`
	Title               string            `json:"title" validate:"required,max=200"`
	CompanyID           *uuid.UUID        `json:"company_id"`
	CompanyName         *string           `json:"company_name" validate:"omitempty,max=200"`
	CompanyLogo         *string           `json:"company_logo" validate:"omitempty,max=500"`
	Description         string            `json:"description" validate:"required"`
	Requirements        StringList        `json:"requirements"`
	Responsibilities    StringList        `json:"responsibilities"`
	SalaryMin           *float64          `json:"salary_min" validate:"omitempty,gte=0"`
	SalaryMax           *float64          `json:"salary_max" validate:"omitempty,gte=0"`
	ExperienceRequired  *int              `json:"experience_required" validate:"omitempty,gte=0"`
	JobType             models.JobType    `json:"job_type" validate:"required,oneof=full-time part-time internship contract"`
	WorkMode            models.WorkMode   `json:"work_mode" validate:"required,oneof=remote hybrid onsite"`
	LocationCity        *string           `json:"location_city" validate:"omitempty,max=100"`
	LocationState       *string           `json:"location_state" validate:"omitempty,max=100"`
	Country             *string           `json:"country" validate:"omitempty,max=100"`
	OpeningsCount       int               `json:"openings_count" validate:"omitempty,gte=0"`
	ApplicationDeadline *time.Time        `json:"application_deadline"`
	Status              *models.JobStatus `json:"status" validate:"omitempty,oneof=draft open closed"`
	SkillsRequired      []uuid.UUID       `json:"skills_required"`
	PostedByAdminID     uuid.UUID         `json:"-"` // set from auth context
}

// UpdateJobRequest applies patch semantics: any provided field overwrites.
type UpdateJobRequest struct {
	ID                  uuid.UUID         `json:"-"` // from path
	Title               *string           `json:"title" validate:"omitempty,max=200"`
	CompanyID           *uuid.UUID        `json:"company_id"`
	CompanyName         *string           `json:"company_name" validate:"omitempty,max=200"`
	CompanyLogo         *string           `json:"company_logo" validate:"omitempty,max=500"`
	Description         *string           `json:"description"`
	Requirements        *StringList       `json:"requirements"`
	Responsibilities    *StringList       `json:"responsibilities"`
	SalaryMin           *float64          `json:"salary_min" validate:"omitempty,gte=0"`
	SalaryMax           *float64          `json:"salary_max" validate:"omitempty,gte=0"`
	ExperienceRequired  *int              `json:"experience_required" validate:"omitempty,gte=0"`
	JobType             *models.JobType   `json:"job_type" validate:"omitempty,oneof=full-time part-time internship contract"`
	WorkMode            *models.WorkMode  `json:"work_mode" validate:"omitempty,oneof=remote hybrid onsite"`
	LocationCity        *string           `json:"location_city" validate:"omitempty,max=100"`
	LocationState       *string           `json:"location_state" validate:"omitempty,max=100"`
	Country             *string           `json:"country" validate:"omitempty,max=100"`
	OpeningsCount       *int              `json:"openings_count" validate:"omitempty,gte=0"`
	ApplicationDeadline *time.Time        `json:"application_deadline"`
	Status              *models.JobStatus `json:"status" validate:"omitempty,oneof=draft open closed"`
	SkillsRequired      []uuid.UUID       `json:"skills_required"`
}

// ListJobsRequest holds the optional public listing filters, AND-combined.
type ListJobsRequest struct {
	Keyword  string `form:"keyword" validate:"omitempty,max=200"`
	Location string `form:"location" validate:"omitempty,max=200"`
	JobType  string `form:"job_type" validate:"omitempty,oneof=full-time part-time internship contract"`
	WorkMode string `form:"work_mode" validate:"omitempty,oneof=remote hybrid onsite"`
	Role     string `form:"role" validate:"omitempty,max=200"`
}

// GetJobByIDRequest defines the structure for reading a job by id.
type GetJobByIDRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// DeleteJobRequest defines the structure for deleting a job.
type DeleteJobRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// ListAdminJobsRequest lists the calling admin's own jobs.
type ListAdminJobsRequest struct {
	AdminID uuid.UUID `json:"-" validate:"required"`
}

// JobDetailResponse is a job with its company and skill references expanded.
type JobDetailResponse struct {
	models.Job
	Company *models.Company `json:"company,omitempty"`
	Skills  []models.Skill  `json:"skills"`
}
