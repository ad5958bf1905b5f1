package storage

import (
	"context"

	"jobboard-api/internal/models"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
)

// UserRepository defines the interface for job-seeker data operations.
type UserRepository interface {
	Create(ctx context.Context, req *dto.SignupUserRequest) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error) // includes the password hash
	UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error)
}

// AdminRepository defines the interface for recruiter data operations.
// Admins live in their own table; their email namespace is independent of
// the user one.
type AdminRepository interface {
	Create(ctx context.Context, req *dto.SignupAdminRequest) (*models.Admin, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Admin, error)
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
}

// JobRepository defines the interface for job posting data operations.
type JobRepository interface {
	Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error)
	ListOpen(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, error)
	// ListByAdmin annotates each job with its live application count,
	// computed with a grouped count join at read time.
	ListByAdmin(ctx context.Context, adminID uuid.UUID) ([]models.JobWithCount, error)
	Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ApplicationRepository defines the interface for application data
// operations. Create must surface the (job_id, user_id) unique-index
// violation as ErrConflict so concurrent duplicate applies resolve to
// exactly one success.
type ApplicationRepository interface {
	Create(ctx context.Context, req *dto.ApplyRequest) (*models.Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error)
	GetByJobAndUser(ctx context.Context, jobID, userID uuid.UUID) (*models.Application, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.ApplicationWithJob, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.ApplicationWithUser, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) (*models.Application, error)
}

// CompanyRepository defines the interface for company data operations.
type CompanyRepository interface {
	Create(ctx context.Context, req *dto.CreateCompanyRequest) (*models.Company, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error)
	List(ctx context.Context) ([]models.Company, error)
}

// SkillRepository defines the interface for skill tag data operations.
type SkillRepository interface {
	Create(ctx context.Context, req *dto.CreateSkillRequest) (*models.Skill, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Skill, error)
	List(ctx context.Context) ([]models.Skill, error)
}
