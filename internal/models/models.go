package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// --- Job Status Enum ---
type JobStatus string

const (
	JobStatusDraft  JobStatus = "draft"
	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"
)

// Scan implements the sql.Scanner interface for JobStatus
func (js *JobStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan JobStatus: value is not string or []byte")
		}
	}
	v := JobStatus(strVal)
	switch v {
	case JobStatusDraft, JobStatusOpen, JobStatusClosed:
		*js = v
		return nil
	default:
		return fmt.Errorf("invalid JobStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for JobStatus
func (js JobStatus) Value() (driver.Value, error) {
	return string(js), nil
}

// --- Job Type Enum ---
type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeInternship JobType = "internship"
	JobTypeContract   JobType = "contract"
)

// Scan implements the sql.Scanner interface for JobType
func (jt *JobType) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan JobType: value is not string or []byte")
		}
	}
	v := JobType(strVal)
	switch v {
	case JobTypeFullTime, JobTypePartTime, JobTypeInternship, JobTypeContract:
		*jt = v
		return nil
	default:
		return fmt.Errorf("invalid JobType value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for JobType
func (jt JobType) Value() (driver.Value, error) {
	return string(jt), nil
}

// --- Work Mode Enum ---
type WorkMode string

const (
	WorkModeRemote WorkMode = "remote"
	WorkModeHybrid WorkMode = "hybrid"
	WorkModeOnsite WorkMode = "onsite"
)

// Scan implements the sql.Scanner interface for WorkMode
func (wm *WorkMode) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan WorkMode: value is not string or []byte")
		}
	}
	v := WorkMode(strVal)
	switch v {
	case WorkModeRemote, WorkModeHybrid, WorkModeOnsite:
		*wm = v
		return nil
	default:
		return fmt.Errorf("invalid WorkMode value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for WorkMode
func (wm WorkMode) Value() (driver.Value, error) {
	return string(wm), nil
}

// --- Application Status Enum ---
// The set is flat and transitions are intentionally permissive: any admin
// may move an application between any two members.
type ApplicationStatus string

const (
	ApplicationStatusApplied     ApplicationStatus = "applied"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	ApplicationStatusInterview   ApplicationStatus = "interview"
	ApplicationStatusHired       ApplicationStatus = "hired"
)

// IsValid reports whether the value is one of the five known statuses.
func (as ApplicationStatus) IsValid() bool {
	switch as {
	case ApplicationStatusApplied, ApplicationStatusShortlisted,
		ApplicationStatusRejected, ApplicationStatusInterview, ApplicationStatusHired:
		return true
	default:
		return false
	}
}

// Scan implements the sql.Scanner interface for ApplicationStatus
func (as *ApplicationStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan ApplicationStatus: value is not string or []byte")
		}
	}
	v := ApplicationStatus(strVal)
	if !v.IsValid() {
		return fmt.Errorf("invalid ApplicationStatus value: %s", strVal)
	}
	*as = v
	return nil
}

// Value implements the driver.Valuer interface for ApplicationStatus
func (as ApplicationStatus) Value() (driver.Value, error) {
	return string(as), nil
}

// User represents a job seeker with their candidate profile.
type User struct {
	ID              uuid.UUID   `json:"id" db:"id"`
	FirstName       string      `json:"first_name" db:"first_name"`
	LastName        string      `json:"last_name" db:"last_name"`
	Email           string      `json:"email" db:"email"`
	Phone           string      `json:"phone" db:"phone"`
	PasswordHash    string      `json:"-" db:"password_hash"`
	LocationCity    *string     `json:"location_city,omitempty" db:"location_city"`
	LocationState   *string     `json:"location_state,omitempty" db:"location_state"`
	Country         *string     `json:"country,omitempty" db:"country"`
	Degree          *string     `json:"degree,omitempty" db:"degree"`
	Specialization  *string     `json:"specialization,omitempty" db:"specialization"`
	University      *string     `json:"university,omitempty" db:"university"`
	GraduationYear  *int        `json:"graduation_year,omitempty" db:"graduation_year"`
	ExperienceYears int         `json:"experience_years" db:"experience_years"`
	CurrentCompany  *string     `json:"current_company,omitempty" db:"current_company"`
	CurrentSalary   *float64    `json:"current_salary,omitempty" db:"current_salary"`
	ExpectedSalary  *float64    `json:"expected_salary,omitempty" db:"expected_salary"`
	ResumeURL       *string     `json:"resume_url,omitempty" db:"resume_url"`
	LinkedinURL     *string     `json:"linkedin_url,omitempty" db:"linkedin_url"`
	Skills          []uuid.UUID `json:"skills" db:"skills"`
	CreatedAt       time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at" db:"updated_at"`
}

// Admin represents a recruiter. Admins are structurally separate from
// users: an admin cannot apply to jobs and a user cannot post them.
type Admin struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Job represents a posting owned by an admin.
type Job struct {
	ID                  uuid.UUID   `json:"id" db:"id"`
	JobID               string      `json:"job_id" db:"job_id"` // public human-readable identifier, e.g. JOB1024
	Title               string      `json:"title" db:"title"`
	CompanyID           *uuid.UUID  `json:"company_id,omitempty" db:"company_id"`
	CompanyName         *string     `json:"company_name,omitempty" db:"company_name"` // fallback if no Company reference
	CompanyLogo         *string     `json:"company_logo,omitempty" db:"company_logo"`
	PostedByAdminID     uuid.UUID   `json:"posted_by_admin_id" db:"posted_by_admin_id"`
	Description         string      `json:"description" db:"description"`
	Requirements        []string    `json:"requirements" db:"requirements"`
	Responsibilities    []string    `json:"responsibilities" db:"responsibilities"`
	SalaryMin           *float64    `json:"salary_min,omitempty" db:"salary_min"`
	SalaryMax           *float64    `json:"salary_max,omitempty" db:"salary_max"`
	ExperienceRequired  *int        `json:"experience_required,omitempty" db:"experience_required"`
	JobType             JobType     `json:"job_type" db:"job_type"`
	WorkMode            WorkMode    `json:"work_mode" db:"work_mode"`
	LocationCity        *string     `json:"location_city,omitempty" db:"location_city"`
	LocationState       *string     `json:"location_state,omitempty" db:"location_state"`
	Country             *string     `json:"country,omitempty" db:"country"`
	OpeningsCount       int         `json:"openings_count" db:"openings_count"`
	ApplicationDeadline *time.Time  `json:"application_deadline,omitempty" db:"application_deadline"`
	Status              JobStatus   `json:"status" db:"status"`
	SkillsRequired      []uuid.UUID `json:"skills_required" db:"skills_required"`
	CreatedAt           time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at" db:"updated_at"`
}

// JobWithCount is a job annotated with its live application count.
// The count is computed at read time, never stored.
type JobWithCount struct {
	Job
	ApplicationCount int `json:"applicationCount" db:"application_count"`
}

// Application is the join of exactly one user and one job, unique on the
// (job, user) pair. The snapshot fields freeze the applicant's profile as
// it was at submission time; later profile edits never alter them.
type Application struct {
	ID          uuid.UUID         `json:"id" db:"id"`
	JobID       uuid.UUID         `json:"job_id" db:"job_id"`
	UserID      uuid.UUID         `json:"user_id" db:"user_id"`
	ResumeURL   string            `json:"resume_url" db:"resume_url"`
	CoverLetter *string           `json:"cover_letter,omitempty" db:"cover_letter"`
	Status      ApplicationStatus `json:"status" db:"status"`

	// Profile snapshot captured at apply time.
	SnapshotDegree          *string `json:"snapshot_degree,omitempty" db:"snapshot_degree"`
	SnapshotSpecialization  *string `json:"snapshot_specialization,omitempty" db:"snapshot_specialization"`
	SnapshotUniversity      *string `json:"snapshot_university,omitempty" db:"snapshot_university"`
	SnapshotExperienceYears *int    `json:"snapshot_experience_years,omitempty" db:"snapshot_experience_years"`
	SnapshotCurrentCompany  *string `json:"snapshot_current_company,omitempty" db:"snapshot_current_company"`

	AppliedAt time.Time `json:"applied_at" db:"applied_at"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// JobSummary is the partial job projection returned with a user's own
// application listing.
type JobSummary struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	CompanyName  *string   `json:"company_name,omitempty" db:"company_name"`
	LocationCity *string   `json:"location_city,omitempty" db:"location_city"`
	Status       JobStatus `json:"status" db:"status"`
}

// ApplicationWithJob pairs an application with the partial job projection.
type ApplicationWithJob struct {
	Application
	Job JobSummary `json:"job"`
}

// ApplicantProfile is the user projection shown to admins when listing a
// job's applicants. Credential fields are never included.
type ApplicantProfile struct {
	ID              uuid.UUID `json:"id" db:"id"`
	FirstName       string    `json:"first_name" db:"first_name"`
	LastName        string    `json:"last_name" db:"last_name"`
	Email           string    `json:"email" db:"email"`
	Phone           string    `json:"phone" db:"phone"`
	LocationCity    *string   `json:"location_city,omitempty" db:"location_city"`
	Degree          *string   `json:"degree,omitempty" db:"degree"`
	Specialization  *string   `json:"specialization,omitempty" db:"specialization"`
	ExperienceYears int       `json:"experience_years" db:"experience_years"`
}

// ApplicationWithUser pairs an application with the applicant projection.
type ApplicationWithUser struct {
	Application
	User ApplicantProfile `json:"user"`
}

// Company holds denormalized employer metadata a job may reference.
type Company struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Logo         *string   `json:"logo,omitempty" db:"logo"`
	Website      *string   `json:"website,omitempty" db:"website"`
	Description  *string   `json:"description,omitempty" db:"description"`
	Industry     *string   `json:"industry,omitempty" db:"industry"`
	Size         *string   `json:"size,omitempty" db:"size"`
	Headquarters *string   `json:"headquarters,omitempty" db:"headquarters"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Skill is a named tag. Skill names are canonical and unique; users and
// jobs reference skills by id.
type Skill struct {
	ID        uuid.UUID `json:"id" db:"id"`
	SkillName string    `json:"skill_name" db:"skill_name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// --- Principal ---

// Role tags the two disjoint principal kinds carried in tokens.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)
